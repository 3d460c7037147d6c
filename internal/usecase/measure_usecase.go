package usecase

import (
	"context"
	"errors"

	"measure/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrToolInactive is returned when an event arrives while the tool is off.
	ErrToolInactive = errors.New("measurement tool is not active")
	// ErrToolActive is returned when activating an already active tool.
	ErrToolActive = errors.New("measurement tool is already active")
)

// PointInput is a pointer position in the canvas reference system.
type PointInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SegmentView is one row of the session table as exposed to callers. Length
// fields are nil while the segment is still open.
type SegmentView struct {
	ID          int            `json:"line_id"`
	Start       entity.Vertex  `json:"start"`
	End         *entity.Vertex `json:"end,omitempty"`
	LengthM     *float64       `json:"length_m,omitempty"`
	LengthNM    *float64       `json:"length_nm,omitempty"`
	CumLengthM  *float64       `json:"cum_length_m,omitempty"`
	CumLengthNM *float64       `json:"cum_length_nm,omitempty"`
}

// SessionSnapshot is a read-only view of the measurement session.
type SessionSnapshot struct {
	SessionID uuid.UUID     `json:"session_id"`
	Active    bool          `json:"active"`
	Measuring bool          `json:"measuring"`
	Segments  []SegmentView `json:"segments"`
}

// PreviewResult is the ephemeral feedback for a hypothetical segment from the
// last committed vertex to the current pointer position. It is advisory only
// and never stored.
type PreviewResult struct {
	LengthM  float64 `json:"length_m"`
	LengthNM float64 `json:"length_nm"`
	TotalM   float64 `json:"total_m"`
	TotalNM  float64 `json:"total_nm"`
	Message  string  `json:"message"`
}

// MeasureUsecase drives one measurement session per tool activation. Events
// are processed strictly one at a time.
type MeasureUsecase interface {
	// Activate creates a fresh idle session; Deactivate discards the session
	// with best-effort overlay cleanup. Toggle flips between the two and
	// reports the resulting active state.
	Activate(ctx context.Context) error
	Deactivate(ctx context.Context) error
	Toggle(ctx context.Context) (bool, error)

	// Click registers an accepted primary-button press.
	Click(ctx context.Context, point PointInput) (*SessionSnapshot, error)

	// Preview updates the live preview for the current pointer position.
	// Returns nil when no open segment exists.
	Preview(ctx context.Context, point PointInput) (*PreviewResult, error)

	// Finish materializes all complete segments into a persisted collection
	// and resets the session. Returns nil when there is nothing to persist.
	Finish(ctx context.Context) (*entity.MeasurementCollection, error)

	// Cancel clears the transient overlays without touching the table.
	Cancel(ctx context.Context) error

	// Undo removes the most recently completed segment. Segment ids are
	// never reused. No-op when no segment is complete.
	Undo(ctx context.Context) (*SessionSnapshot, error)

	// Snapshot returns the current session table.
	Snapshot(ctx context.Context) (*SessionSnapshot, error)
}
