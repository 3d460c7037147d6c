// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"measure/internal/delivery/http/response"
	"measure/internal/infra/overlay"
	"measure/internal/infra/status"
	"measure/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PointRequest represents the request body carrying a pointer position.
// Pointer fields distinguish an absent coordinate from a legitimate zero.
type PointRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// MeasureHandler holds dependencies for measurement session handlers.
type MeasureHandler struct {
	uc       usecase.MeasureUsecase
	overlays *overlay.Renderer
	status   *status.Notifier
	logger   *slog.Logger
}

// NewMeasureHandler is the constructor for MeasureHandler, injected by Fx.
func NewMeasureHandler(uc usecase.MeasureUsecase, overlays *overlay.Renderer, statusBar *status.Notifier, logger *slog.Logger) *MeasureHandler {
	return &MeasureHandler{
		uc:       uc,
		overlays: overlays,
		status:   statusBar,
		logger:   logger,
	}
}

// ActivateTool turns the measurement tool on with a fresh idle session.
func (h *MeasureHandler) ActivateTool(c echo.Context) error {
	if err := h.uc.Activate(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"active": true}, "Measurement tool activated")
}

// DeactivateTool turns the measurement tool off and discards the session.
func (h *MeasureHandler) DeactivateTool(c echo.Context) error {
	if err := h.uc.Deactivate(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"active": false}, "Measurement tool deactivated")
}

// ToggleTool flips the tool between active and inactive.
func (h *MeasureHandler) ToggleTool(c echo.Context) error {
	active, err := h.uc.Toggle(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Measurement tool deactivated"
	if active {
		message = "Measurement tool activated"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"active": active}, message)
}

// Click registers an accepted primary-button press on the canvas.
func (h *MeasureHandler) Click(c echo.Context) error {
	var req PointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid click input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	snapshot, err := h.uc.Click(c.Request().Context(), usecase.PointInput{X: *req.X, Y: *req.Y})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Click registered")
}

// Preview computes the ephemeral segment from the last committed vertex to
// the current pointer position.
func (h *MeasureHandler) Preview(c echo.Context) error {
	var req PointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	preview, err := h.uc.Preview(c.Request().Context(), usecase.PointInput{X: *req.X, Y: *req.Y})
	if err != nil {
		return errors.WithStack(err)
	}
	if preview == nil {
		return response.Success(c, http.StatusOK, nil, "No open segment")
	}

	return response.Success(c, http.StatusOK, preview, "Preview updated")
}

// Finish materializes the session into a persisted collection.
func (h *MeasureHandler) Finish(c echo.Context) error {
	collection, err := h.uc.Finish(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if collection == nil {
		return response.Success(c, http.StatusOK, nil, "No complete segments to persist")
	}

	return response.Success(c, http.StatusCreated, collection, "Measurement finalized")
}

// Cancel clears the transient overlays without touching the session table.
func (h *MeasureHandler) Cancel(c echo.Context) error {
	if err := h.uc.Cancel(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Measurement cancelled")
}

// Undo removes the most recently completed segment.
func (h *MeasureHandler) Undo(c echo.Context) error {
	snapshot, err := h.uc.Undo(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Last segment removed")
}

// Session returns the current session table.
func (h *MeasureHandler) Session(c echo.Context) error {
	snapshot, err := h.uc.Snapshot(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Session snapshot")
}

// Overlays returns the current overlay geometry as GeoJSON.
func (h *MeasureHandler) Overlays(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.overlays.Snapshot(), "Overlay snapshot")
}

// Status returns the most recent status bar message.
func (h *MeasureHandler) Status(c echo.Context) error {
	message, ok := h.status.Last()
	if !ok {
		return response.Success(c, http.StatusOK, nil, "No status message")
	}

	return response.Success(c, http.StatusOK, message, "Status message")
}
