package boards

import (
	"context"
	"errors"
	"strings"

	"github.com/vidboard/vidboard/internal/models"
	"github.com/vidboard/vidboard/internal/services/youtube"
	"github.com/vidboard/vidboard/internal/utils"
)

// Service orchestrates board mutations and the URL-to-record pipeline.
// All failures are classified into *utils.AppError; the append is the only
// mutating step of the add-video flow and runs after everything else passed.
type Service struct {
	store    Store
	metadata youtube.MetadataProvider
}

func NewService(store Store, metadata youtube.MetadataProvider) *Service {
	return &Service{
		store:    store,
		metadata: metadata,
	}
}

func (s *Service) CreateBoard(ctx context.Context, owner, name string) (*models.Board, error) {
	if owner == "" {
		return nil, utils.NewUnauthorizedError()
	}
	if strings.TrimSpace(name) == "" {
		return nil, utils.NewValidationError("Board name is required", map[string]interface{}{
			"field": "name",
		})
	}

	board, err := s.store.CreateBoard(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	utils.LogInfo(ctx, "Board created", utils.Fields{
		"board_id":   board.ID,
		"board_name": board.Name,
	})

	return board, nil
}

func (s *Service) ListBoards(ctx context.Context, owner string) ([]models.Board, error) {
	if owner == "" {
		return nil, utils.NewUnauthorizedError()
	}
	return s.store.ListBoards(ctx, owner)
}

func (s *Service) DeleteBoard(ctx context.Context, owner, boardID string) (*models.Board, error) {
	if owner == "" {
		return nil, utils.NewUnauthorizedError()
	}
	if boardID == "" {
		return nil, utils.NewValidationError("Board ID is required", map[string]interface{}{
			"field": "boardId",
		})
	}

	board, err := s.store.DeleteBoard(ctx, owner, boardID)
	if err != nil {
		return nil, err
	}

	utils.LogInfo(ctx, "Board deleted", utils.Fields{
		"board_id":    board.ID,
		"video_count": len(board.Videos),
	})

	return board, nil
}

// AddVideo resolves the board, extracts the video ID from the raw URL,
// fetches metadata, builds a record and appends it. No step before the
// append mutates the board, so a failure anywhere leaves it untouched.
func (s *Service) AddVideo(ctx context.Context, owner, boardID, videoURL string) (*models.Board, error) {
	if owner == "" {
		return nil, utils.NewUnauthorizedError()
	}

	if _, err := s.store.GetBoard(ctx, owner, boardID); err != nil {
		return nil, err
	}

	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, utils.NewInvalidVideoURLError(videoURL)
	}

	details, err := s.metadata.GetVideoDetails(ctx, videoID)
	if err != nil {
		if errors.Is(err, youtube.ErrVideoNotFound) {
			return nil, utils.NewVideoNotFoundError(videoID)
		}
		utils.LogError(ctx, "Failed to fetch video details", err, utils.Fields{
			"video_id": videoID,
		})
		return nil, utils.NewUpstreamError()
	}

	record := buildVideoRecord(details)

	board, err := s.store.AppendVideo(ctx, owner, boardID, record)
	if err != nil {
		return nil, err
	}

	utils.LogInfo(ctx, "Video added to board", utils.Fields{
		"board_id":    board.ID,
		"video_id":    record.ExternalID,
		"video_count": len(board.Videos),
	})

	return board, nil
}
