package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidboard/vidboard/internal/models"
)

func boardFixture(id, name string, titles ...string) models.Board {
	videos := make([]models.VideoRecord, len(titles))
	for i, title := range titles {
		videos[i] = models.VideoRecord{
			ExternalID: title + "-id",
			Title:      title,
		}
	}
	return models.Board{ID: id, Owner: "alice@example.com", Name: name, Videos: videos}
}

func videoTitles(videos []models.VideoRecord) []string {
	titles := make([]string, len(videos))
	for i, video := range videos {
		titles[i] = video.Title
	}
	return titles
}

func TestSetBoardsSelectsFirstBoard(t *testing.T) {
	cache := NewBoardCache()

	_, ok := cache.Active()
	assert.False(t, ok)

	cache.SetBoards([]models.Board{
		boardFixture("b1", "First"),
		boardFixture("b2", "Second"),
	})

	active, ok := cache.Active()
	require.True(t, ok)
	assert.Equal(t, "b1", active.ID)
}

func TestReorderVideosIsLocalOnly(t *testing.T) {
	cache := NewBoardCache()
	cache.SetBoards([]models.Board{boardFixture("b1", "Board", "one", "two", "three")})

	require.NoError(t, cache.ReorderVideos(0, 2))

	active, ok := cache.Active()
	require.True(t, ok)
	assert.Equal(t, []string{"two", "three", "one"}, videoTitles(active.Videos))

	// A refresh restores the server order: the local reorder is never persisted.
	cache.SetBoards([]models.Board{boardFixture("b1", "Board", "one", "two", "three")})
	active, ok = cache.Active()
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two", "three"}, videoTitles(active.Videos))
}

func TestReorderVideosBounds(t *testing.T) {
	cache := NewBoardCache()

	assert.ErrorIs(t, cache.ReorderVideos(0, 1), ErrNoActiveBoard)

	cache.SetBoards([]models.Board{boardFixture("b1", "Board", "one", "two")})
	assert.Error(t, cache.ReorderVideos(0, 5))
	assert.Error(t, cache.ReorderVideos(-1, 0))
}

func TestSearchVideos(t *testing.T) {
	cache := NewBoardCache()
	cache.SetBoards([]models.Board{
		boardFixture("b1", "Board", "Go Tutorial", "Rust Tutorial", "Cooking show"),
	})

	matches := cache.SearchVideos("tutorial")
	assert.Equal(t, []string{"Go Tutorial", "Rust Tutorial"}, videoTitles(matches))

	matches = cache.SearchVideos("")
	assert.Len(t, matches, 3)

	matches = cache.SearchVideos("nomatch")
	assert.Empty(t, matches)

	// Filtering never reorders the cached videos
	active, ok := cache.Active()
	require.True(t, ok)
	assert.Equal(t, []string{"Go Tutorial", "Rust Tutorial", "Cooking show"}, videoTitles(active.Videos))
}

func TestApplyServerBoardIsAuthoritative(t *testing.T) {
	cache := NewBoardCache()
	cache.SetBoards([]models.Board{boardFixture("b1", "Board", "one", "two")})
	require.NoError(t, cache.ReorderVideos(0, 1))

	// Server response (e.g. after add-video) replaces the local state
	cache.ApplyServerBoard(boardFixture("b1", "Board", "one", "two", "three"))

	active, ok := cache.Active()
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two", "three"}, videoTitles(active.Videos))
}

func TestApplyServerBoardInsertsNewBoard(t *testing.T) {
	cache := NewBoardCache()
	cache.SetBoards([]models.Board{boardFixture("b1", "Board")})

	cache.ApplyServerBoard(boardFixture("b2", "New board"))

	assert.Len(t, cache.Boards(), 2)
	active, ok := cache.Active()
	require.True(t, ok)
	assert.Equal(t, "b2", active.ID)
}

func TestRemoveBoard(t *testing.T) {
	cache := NewBoardCache()
	cache.SetBoards([]models.Board{
		boardFixture("b1", "First"),
		boardFixture("b2", "Second"),
	})
	require.True(t, cache.SetActive("b2"))

	cache.RemoveBoard("b2")

	active, ok := cache.Active()
	require.True(t, ok)
	assert.Equal(t, "b1", active.ID)

	cache.RemoveBoard("b1")
	_, ok = cache.Active()
	assert.False(t, ok)
	assert.Empty(t, cache.Boards())
}
