package client

import (
	"errors"
	"strings"
	"sync"

	"github.com/vidboard/vidboard/internal/models"
)

// ErrNoActiveBoard is returned by cache operations that need an active board.
var ErrNoActiveBoard = errors.New("no active board selected")

// BoardCache holds the last-fetched board list and the active board on the
// client side. The server representation is authoritative: every successful
// create/add-video response replaces the cached board, and a refresh replaces
// the whole list. Reordering mutates the cache only and is never sent to the
// server, so it is lost on the next refresh.
type BoardCache struct {
	mu     sync.RWMutex
	boards []models.Board
	active string
}

func NewBoardCache() *BoardCache {
	return &BoardCache{}
}

// SetBoards replaces the cached list with a fresh server fetch. The active
// selection is kept if the board still exists, otherwise it falls back to
// the first board.
func (c *BoardCache) SetBoards(boards []models.Board) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.boards = make([]models.Board, len(boards))
	copy(c.boards, boards)

	if c.indexOfLocked(c.active) == -1 {
		if len(c.boards) > 0 {
			c.active = c.boards[0].ID
		} else {
			c.active = ""
		}
	}
}

// Boards returns a copy of the cached board list.
func (c *BoardCache) Boards() []models.Board {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Board, len(c.boards))
	copy(out, c.boards)
	return out
}

// SetActive selects a cached board by ID.
func (c *BoardCache) SetActive(boardID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOfLocked(boardID) == -1 {
		return false
	}
	c.active = boardID
	return true
}

// Active returns a copy of the currently active board.
func (c *BoardCache) Active() (models.Board, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOfLocked(c.active)
	if i == -1 {
		return models.Board{}, false
	}
	return c.boards[i], true
}

// ApplyServerBoard installs a server-returned board representation, replacing
// the cached entry (or inserting a new one) and making it the active board.
func (c *BoardCache) ApplyServerBoard(board models.Board) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOfLocked(board.ID); i != -1 {
		c.boards[i] = board
	} else {
		c.boards = append(c.boards, board)
	}
	c.active = board.ID
}

// RemoveBoard drops a deleted board from the cache. If it was active, the
// first remaining board becomes active.
func (c *BoardCache) RemoveBoard(boardID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOfLocked(boardID)
	if i == -1 {
		return
	}
	c.boards = append(c.boards[:i], c.boards[i+1:]...)

	if c.active == boardID {
		if len(c.boards) > 0 {
			c.active = c.boards[0].ID
		} else {
			c.active = ""
		}
	}
}

// ReorderVideos moves the active board's video at position from to position
// to, display-order only. The change stays local: it is not persisted and the
// next SetBoards/ApplyServerBoard restores the server order.
func (c *BoardCache) ReorderVideos(from, to int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOfLocked(c.active)
	if i == -1 {
		return ErrNoActiveBoard
	}

	videos := c.boards[i].Videos
	if from < 0 || from >= len(videos) || to < 0 || to >= len(videos) {
		return errors.New("reorder position out of range")
	}

	moved := videos[from]
	videos = append(videos[:from], videos[from+1:]...)
	videos = append(videos[:to], append([]models.VideoRecord{moved}, videos[to:]...)...)
	c.boards[i].Videos = videos

	return nil
}

// SearchVideos filters the active board's videos by case-insensitive title
// substring. Display-only; the cached order is untouched.
func (c *BoardCache) SearchVideos(term string) []models.VideoRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOfLocked(c.active)
	if i == -1 {
		return nil
	}

	needle := strings.ToLower(term)
	matches := []models.VideoRecord{}
	for _, video := range c.boards[i].Videos {
		if strings.Contains(strings.ToLower(video.Title), needle) {
			matches = append(matches, video)
		}
	}
	return matches
}

func (c *BoardCache) indexOfLocked(boardID string) int {
	if boardID == "" {
		return -1
	}
	for i := range c.boards {
		if c.boards[i].ID == boardID {
			return i
		}
	}
	return -1
}
