package handler

import (
	"net/http"

	"measure/internal/delivery/http/response"
	"measure/internal/infra/canvas"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UpdateCRSInput is the payload for changing the canvas reference system.
type UpdateCRSInput struct {
	CRS string `json:"crs" validate:"required"`
}

// CanvasHandler holds dependencies for canvas-related handlers.
type CanvasHandler struct {
	canvas *canvas.Canvas
}

// NewCanvasHandler is the constructor for CanvasHandler, injected by Fx.
func NewCanvasHandler(canvasState *canvas.Canvas) *CanvasHandler {
	return &CanvasHandler{
		canvas: canvasState,
	}
}

// GetCanvas returns the current canvas reference system and ellipsoid.
func (h *CanvasHandler) GetCanvas(c echo.Context) error {
	crs := h.canvas.CRS()
	ellipsoid := h.canvas.Ellipsoid()

	return response.Success(c, http.StatusOK, map[string]any{
		"crs":        crs.AuthID,
		"geographic": crs.Geographic,
		"ellipsoid":  ellipsoid.Name,
	}, "Canvas state")
}

// UpdateCRS switches the canvas reference system. Sessions in progress pick
// up the new system on their next distance computation.
func (h *CanvasHandler) UpdateCRS(c echo.Context) error {
	var input UpdateCRSInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid CRS input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.canvas.SetCRS(input.CRS); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"crs": input.CRS}, "Canvas reference system updated")
}
