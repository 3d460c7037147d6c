package service

import "measure/internal/domain/entity"

// OverlaySlot names one of the two transient shapes the session draws.
type OverlaySlot string

const (
	// OverlayCommitted is the polyline of all completed segments.
	OverlayCommitted OverlaySlot = "committed"

	// OverlayPreview is the live line from the last vertex to the pointer.
	OverlayPreview OverlaySlot = "preview"
)

// OverlayRenderer consumes replace/clear intents for the transient overlay
// shapes. The session never holds a rendering surface; shapes are always
// fully replaced, never patched.
type OverlayRenderer interface {
	Replace(slot OverlaySlot, line []entity.Vertex) error
	Clear(slot OverlaySlot) error
}
