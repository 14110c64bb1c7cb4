package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidboard/vidboard/internal/api/middleware"
	"github.com/vidboard/vidboard/internal/models"
	"github.com/vidboard/vidboard/internal/services/boards"
	"github.com/vidboard/vidboard/internal/utils"
)

type BoardHandler struct {
	service *boards.Service
}

func NewBoardHandler(service *boards.Service) *BoardHandler {
	return &BoardHandler{
		service: service,
	}
}

// ListBoards godoc
// @Summary List boards for the caller
// @Description Return all boards owned by the authenticated identity
// @Tags boards
// @Produce json
// @Success 200 {array} models.Board
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /boards [get]
// @Security BearerAuth
func (h *BoardHandler) ListBoards(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.service.ListBoards(ctx, c.GetString(middleware.OwnerIdentityKey))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateBoard godoc
// @Summary Create a new board
// @Description Create a named empty board owned by the authenticated identity
// @Tags boards
// @Accept json
// @Produce json
// @Param request body models.CreateBoardRequest true "Board name"
// @Success 201 {object} models.Board
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /boards [post]
// @Security BearerAuth
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, utils.NewValidationError("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		}))
		return
	}

	board, err := h.service.CreateBoard(ctx, c.GetString(middleware.OwnerIdentityKey), req.Name)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// DeleteBoard godoc
// @Summary Delete a board
// @Description Delete a board and all of its embedded videos
// @Tags boards
// @Accept json
// @Produce json
// @Param request body models.DeleteBoardRequest true "Board ID"
// @Success 200 {object} models.DeleteBoardResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /boards [delete]
// @Security BearerAuth
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.DeleteBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BoardID == "" {
		h.errorResponse(c, utils.NewValidationError("Board ID is required", map[string]interface{}{
			"field": "boardId",
		}))
		return
	}

	board, err := h.service.DeleteBoard(ctx, c.GetString(middleware.OwnerIdentityKey), req.BoardID)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DeleteBoardResponse{
		Message:      "Board deleted successfully",
		DeletedBoard: board,
	})
}

// AddVideo godoc
// @Summary Add a video to a board
// @Description Resolve a YouTube URL to a video record and append it to the board
// @Tags boards
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param request body models.AddVideoRequest true "YouTube video URL"
// @Success 201 {object} models.Board
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /boards/{id}/videos [post]
// @Security BearerAuth
func (h *BoardHandler) AddVideo(c *gin.Context) {
	ctx := c.Request.Context()
	boardID := c.Param("id")

	var req models.AddVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, utils.NewValidationError("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		}))
		return
	}

	board, err := h.service.AddVideo(ctx, c.GetString(middleware.OwnerIdentityKey), boardID, req.YouTubeVideoURL)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

func (h *BoardHandler) errorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*utils.AppError)
	if !ok {
		utils.LogError(c.Request.Context(), "Unclassified handler error", err)
		appErr = utils.NewInternalError()
	}

	c.JSON(appErr.StatusCode, gin.H{
		"error":      appErr,
		"request_id": c.GetString("request_id"),
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}
