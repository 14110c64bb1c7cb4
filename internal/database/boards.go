package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidboard/vidboard/internal/models"
	"github.com/vidboard/vidboard/internal/utils"
)

// BoardStore persists boards as single documents with an embedded, ordered
// video array. Appends go through $push so concurrent appends to the same
// board serialize inside MongoDB and none are lost.
type BoardStore struct {
	boards *mongo.Collection
}

func NewBoardStore(db *MongoDB) *BoardStore {
	return &BoardStore{
		boards: db.Boards(),
	}
}

func (s *BoardStore) CreateBoard(ctx context.Context, owner, name string) (*models.Board, error) {
	if strings.TrimSpace(name) == "" {
		return nil, utils.NewValidationError("Board name is required", map[string]interface{}{
			"field": "name",
		})
	}

	now := time.Now().UTC()
	board := &models.Board{
		ID:        uuid.New().String(),
		Owner:     owner,
		Name:      name,
		Videos:    []models.VideoRecord{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.boards.InsertOne(ctx, board); err != nil {
		utils.LogError(ctx, "Failed to insert board", err, utils.Fields{
			"board_name": name,
		})
		return nil, utils.NewDatabaseError(err)
	}

	return board, nil
}

func (s *BoardStore) ListBoards(ctx context.Context, owner string) ([]models.Board, error) {
	cursor, err := s.boards.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		utils.LogError(ctx, "Failed to list boards", err)
		return nil, utils.NewDatabaseError(err)
	}
	defer cursor.Close(ctx)

	boards := []models.Board{}
	if err := cursor.All(ctx, &boards); err != nil {
		utils.LogError(ctx, "Failed to decode boards", err)
		return nil, utils.NewDatabaseError(err)
	}

	return boards, nil
}

func (s *BoardStore) GetBoard(ctx context.Context, owner, boardID string) (*models.Board, error) {
	var board models.Board
	err := s.boards.FindOne(ctx, bson.M{"_id": boardID, "owner": owner}).Decode(&board)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewBoardNotFoundError(boardID)
		}
		utils.LogError(ctx, "Failed to get board", err, utils.Fields{
			"board_id": boardID,
		})
		return nil, utils.NewDatabaseError(err)
	}

	return &board, nil
}

func (s *BoardStore) AppendVideo(ctx context.Context, owner, boardID string, record models.VideoRecord) (*models.Board, error) {
	update := bson.M{
		"$push": bson.M{"videos": record},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var board models.Board
	err := s.boards.FindOneAndUpdate(ctx, bson.M{"_id": boardID, "owner": owner}, update, opts).Decode(&board)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewBoardNotFoundError(boardID)
		}
		utils.LogError(ctx, "Failed to append video", err, utils.Fields{
			"board_id": boardID,
			"video_id": record.ExternalID,
		})
		return nil, utils.NewDatabaseError(err)
	}

	return &board, nil
}

func (s *BoardStore) DeleteBoard(ctx context.Context, owner, boardID string) (*models.Board, error) {
	var board models.Board
	err := s.boards.FindOneAndDelete(ctx, bson.M{"_id": boardID, "owner": owner}).Decode(&board)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewBoardNotFoundError(boardID)
		}
		utils.LogError(ctx, "Failed to delete board", err, utils.Fields{
			"board_id": boardID,
		})
		return nil, utils.NewDatabaseError(err)
	}

	return &board, nil
}
