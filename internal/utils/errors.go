package utils

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeInvalidVideoURL   ErrorCode = "INVALID_VIDEO_URL"
	ErrorCodeBoardNotFound     ErrorCode = "BOARD_NOT_FOUND"
	ErrorCodeVideoNotFound     ErrorCode = "VIDEO_NOT_FOUND"
	ErrorCodeUpstreamError     ErrorCode = "UPSTREAM_ERROR"
	ErrorCodeDatabaseError     ErrorCode = "DATABASE_ERROR"
	ErrorCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrorCodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrorCodeValidationError   ErrorCode = "VALIDATION_ERROR"
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Common error constructors
func NewValidationError(message string, details map[string]interface{}) *AppError {
	return NewErrorWithDetails(ErrorCodeValidationError, message, http.StatusBadRequest, details)
}

func NewInvalidVideoURLError(url string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidVideoURL,
		"The provided video URL is not a recognized YouTube link",
		http.StatusBadRequest,
		map[string]interface{}{
			"expected_format": "https://www.youtube.com/watch?v=VIDEO_ID",
			"provided":        url,
		},
	)
}

func NewBoardNotFoundError(boardID string) *AppError {
	return NewError(
		ErrorCodeBoardNotFound,
		fmt.Sprintf("Board with ID %s not found", boardID),
		http.StatusNotFound,
	)
}

func NewVideoNotFoundError(videoID string) *AppError {
	return NewError(
		ErrorCodeVideoNotFound,
		fmt.Sprintf("Video details for %s not found", videoID),
		http.StatusNotFound,
	)
}

func NewUpstreamError() *AppError {
	return NewError(
		ErrorCodeUpstreamError,
		"Failed to fetch video details, try again",
		http.StatusInternalServerError,
	)
}

func NewDatabaseError(err error) *AppError {
	return NewError(
		ErrorCodeDatabaseError,
		"Database operation failed",
		http.StatusInternalServerError,
	)
}

func NewUnauthorizedError() *AppError {
	return NewError(
		ErrorCodeUnauthorized,
		"Invalid or missing authentication",
		http.StatusUnauthorized,
	)
}

func NewRateLimitError() *AppError {
	return NewError(
		ErrorCodeRateLimitExceeded,
		"Too many requests",
		http.StatusTooManyRequests,
	)
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
