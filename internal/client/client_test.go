package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidboard/vidboard/internal/models"
)

func TestClientTalksToBoardsAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/boards":
			json.NewEncoder(w).Encode([]models.Board{{ID: "b1", Name: "Board"}})
		case r.Method == http.MethodPost && r.URL.Path == "/boards":
			var req models.CreateBoardRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Board{ID: "b2", Name: req.Name, Videos: []models.VideoRecord{}})
		case r.Method == http.MethodPost && r.URL.Path == "/boards/b2/videos":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Board{ID: "b2", Name: "Tutorials", Videos: []models.VideoRecord{
				{ExternalID: "dQw4w9WgXcQ", Title: "Video"},
			}})
		case r.Method == http.MethodDelete && r.URL.Path == "/boards":
			json.NewEncoder(w).Encode(models.DeleteBoardResponse{
				Message:      "Board deleted successfully",
				DeletedBoard: &models.Board{ID: "b2"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := New(server.URL, "test-token")
	ctx := context.Background()

	boards, err := c.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)

	board, err := c.CreateBoard(ctx, "Tutorials")
	require.NoError(t, err)
	assert.Equal(t, "Tutorials", board.Name)

	updated, err := c.AddVideo(ctx, "b2", "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, updated.Videos, 1)

	deleted, err := c.DeleteBoard(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, "b2", deleted.ID)
}

func TestClientDecodesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":    "BOARD_NOT_FOUND",
				"message": "Board with ID b9 not found",
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, "test-token")

	_, err := c.DeleteBoard(context.Background(), "b9")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "BOARD_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Board with ID b9 not found", apiErr.Message)
}
