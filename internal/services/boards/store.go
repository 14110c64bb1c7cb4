package boards

import (
	"context"

	"github.com/vidboard/vidboard/internal/models"
)

// Store is the persistence boundary for boards. Every mutating operation is
// scoped by owner, so callers can only touch boards they own; a foreign board
// ID behaves exactly like a missing one.
type Store interface {
	// CreateBoard persists a new empty board and returns the stored document.
	CreateBoard(ctx context.Context, owner, name string) (*models.Board, error)

	// ListBoards returns only boards owned by the given identity.
	ListBoards(ctx context.Context, owner string) ([]models.Board, error)

	// GetBoard resolves one board by ID within the owner's boards.
	GetBoard(ctx context.Context, owner, boardID string) (*models.Board, error)

	// AppendVideo atomically appends a record to the end of the board's video
	// list and returns the updated board. Concurrent appends to the same
	// board must all be retained.
	AppendVideo(ctx context.Context, owner, boardID string, record models.VideoRecord) (*models.Board, error)

	// DeleteBoard removes the board and its embedded videos irreversibly and
	// returns the deleted document.
	DeleteBoard(ctx context.Context, owner, boardID string) (*models.Board, error)
}
