package middleware

import (
	"log/slog"
	"net/http"

	"measure/internal/delivery/http/response"
	"measure/internal/domain/repository"
	"measure/internal/infra/canvas"
	"measure/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Known session and repository errors map to stable business codes
	switch {
	case errors.Is(err, usecase.ErrToolInactive):
		c.JSON(http.StatusConflict, errorBody(http.StatusConflict, "TOOL_INACTIVE", err))
		return
	case errors.Is(err, usecase.ErrToolActive):
		c.JSON(http.StatusConflict, errorBody(http.StatusConflict, "TOOL_ACTIVE", err))
		return
	case errors.Is(err, repository.ErrCollectionNotFound):
		c.JSON(http.StatusNotFound, errorBody(http.StatusNotFound, "COLLECTION_NOT_FOUND", err))
		return
	case errors.Is(err, repository.ErrCollectionExists):
		c.JSON(http.StatusConflict, errorBody(http.StatusConflict, "COLLECTION_EXISTS", err))
		return
	case errors.Is(err, canvas.ErrUnknownReferenceSystem):
		c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "UNKNOWN_CRS", err))
		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}
		c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})
		return
	}

	// Default to internal error, log error and return generic error
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &response.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Details: err.Error(),
		},
	})
}

func errorBody(code int, errorCode string, err error) response.Response {
	return response.Response{
		Success: false,
		Code:    code,
		Message: err.Error(),
		Error: &response.ErrorInfo{
			Code:    errorCode,
			Details: err.Error(),
		},
	}
}
