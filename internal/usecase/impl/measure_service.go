package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"measure/config"
	"measure/internal/domain/entity"
	"measure/internal/domain/repository"
	"measure/internal/domain/service"
	"measure/internal/usecase"
	"measure/internal/util"

	"github.com/google/uuid"
)

const metersPerNauticalMile = 1852.0

// measureService is the measurement session state machine. Events are
// serialized by a mutex, so exactly one event mutates the session at a time.
type measureService struct {
	calc        service.DistanceCalculator
	transformer service.CoordinateTransformer
	canvas      service.CanvasState
	overlays    service.OverlayRenderer
	status      service.StatusNotifier
	collections repository.CollectionRepository
	config      *config.Config
	logger      *slog.Logger

	mu        sync.Mutex
	active    bool
	measuring bool
	sessionID uuid.UUID
	segments  []*entity.Segment
	lastPoint *entity.Vertex
	idCounter int
	cumRawM   float64 // unrounded accumulator; rounded on storage only

	now func() time.Time
}

// NewMeasureService creates a new measurement session service instance
func NewMeasureService(
	calc service.DistanceCalculator,
	transformer service.CoordinateTransformer,
	canvas service.CanvasState,
	overlays service.OverlayRenderer,
	status service.StatusNotifier,
	collections repository.CollectionRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MeasureUsecase {
	// If Measure is not configured, provide a default configuration
	if cfg.Measure == nil {
		cfg.Measure = &config.MeasureConfig{CollectionPrefix: "Measurement"}
	}

	return &measureService{
		calc:        calc,
		transformer: transformer,
		canvas:      canvas,
		overlays:    overlays,
		status:      status,
		collections: collections,
		config:      cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Activate creates a fresh idle session.
func (s *measureService) Activate(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return usecase.ErrToolActive
	}

	s.active = true
	s.sessionID = uuid.New()
	s.resetLocked()
	s.logger.Info("measurement tool activated", slog.String("session_id", s.sessionID.String()))

	return nil
}

// Deactivate tears the session down, discarding all in-progress state.
// Overlay removal is best effort; a failing removal must not fail teardown.
func (s *measureService) Deactivate(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return usecase.ErrToolInactive
	}

	if err := s.overlays.Clear(service.OverlayCommitted); err != nil {
		s.logger.Warn("failed to clear committed overlay on teardown", slog.Any("error", err))
	}
	if err := s.overlays.Clear(service.OverlayPreview); err != nil {
		s.logger.Warn("failed to clear preview overlay on teardown", slog.Any("error", err))
	}

	s.active = false
	s.measuring = false
	s.segments = nil
	s.lastPoint = nil
	s.idCounter = 0
	s.cumRawM = 0
	s.logger.Info("measurement tool deactivated", slog.String("session_id", s.sessionID.String()))

	return nil
}

// Toggle activates an inactive tool and deactivates an active one,
// discarding in-progress state in the latter case.
func (s *measureService) Toggle(ctx context.Context) (bool, error) {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active {
		return false, s.Deactivate(ctx)
	}

	return true, s.Activate(ctx)
}

// Click registers an accepted primary-button press.
func (s *measureService) Click(ctx context.Context, point usecase.PointInput) (*usecase.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, usecase.ErrToolInactive
	}

	captured := entity.CaptureVertex(point.X, point.Y)

	if !s.measuring {
		// First click of a session resets everything and opens segment 1.
		s.resetLocked()
		s.measuring = true
		s.idCounter++
		s.segments = append(s.segments, &entity.Segment{ID: s.idCounter, Start: captured})
		s.lastPoint = &captured

		return s.snapshotLocked(), nil
	}

	open := s.segments[len(s.segments)-1]
	open.End = &captured

	if err := s.completeSegmentLocked(ctx, open); err != nil {
		open.End = nil

		return nil, err
	}

	// The terminating click also opens the next segment.
	s.idCounter++
	s.segments = append(s.segments, &entity.Segment{ID: s.idCounter, Start: captured})
	s.lastPoint = &captured

	if err := s.overlays.Replace(service.OverlayCommitted, s.committedPathLocked()); err != nil {
		return nil, fmt.Errorf("failed to update committed overlay: %w", err)
	}

	return s.snapshotLocked(), nil
}

// completeSegmentLocked computes and stores the lengths of a segment whose
// end vertex was just set. The reference system and ellipsoid are resolved
// from the canvas now, not at session start; the user may have changed them
// since the previous click.
func (s *measureService) completeSegmentLocked(ctx context.Context, segment *entity.Segment) error {
	crs := s.canvas.CRS()
	ellipsoid := s.canvas.Ellipsoid()

	rawM, err := s.calc.Measure(ctx, segment.Start, *segment.End, crs, ellipsoid)
	if err != nil {
		return fmt.Errorf("failed to measure segment length: %w", err)
	}

	rawNM := rawM / metersPerNauticalMile
	s.cumRawM += rawM

	segment.RawLengthM = rawM
	segment.LengthM = util.RoundTo(rawM, 1)
	segment.LengthNM = util.RoundTo(rawNM, 2)
	segment.CumLengthM = util.RoundTo(s.cumRawM, 1)
	segment.CumLengthNM = util.RoundTo(s.cumRawM/metersPerNauticalMile, 2)

	return nil
}

// Preview replaces the live preview overlay and reports the hypothetical
// lengths. Nothing is stored; the numbers are discarded after display.
func (s *measureService) Preview(ctx context.Context, point usecase.PointInput) (*usecase.PreviewResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || !s.measuring || s.lastPoint == nil {
		return nil, nil
	}

	current := entity.CaptureVertex(point.X, point.Y)

	if err := s.overlays.Replace(service.OverlayPreview, []entity.Vertex{*s.lastPoint, current}); err != nil {
		return nil, fmt.Errorf("failed to update preview overlay: %w", err)
	}

	rawM, err := s.calc.Measure(ctx, *s.lastPoint, current, s.canvas.CRS(), s.canvas.Ellipsoid())
	if err != nil {
		return nil, fmt.Errorf("failed to measure preview length: %w", err)
	}

	totalM := s.cumRawM + rawM
	result := &usecase.PreviewResult{
		LengthM:  util.RoundTo(rawM, 1),
		LengthNM: util.RoundTo(rawM/metersPerNauticalMile, 2),
		TotalM:   util.RoundTo(totalM, 1),
		TotalNM:  util.RoundTo(totalM/metersPerNauticalMile, 2),
	}
	result.Message = fmt.Sprintf("Segment: %.1f m (%.2f nm) | Total: %.1f m (%.2f nm)",
		rawM, rawM/metersPerNauticalMile, totalM, totalM/metersPerNauticalMile)

	s.status.Push("Measure", result.Message)

	return result, nil
}

// Finish materializes the complete segments as a persisted collection and
// resets the session. With no complete segments it is a silent reset.
func (s *measureService) Finish(ctx context.Context) (*entity.MeasurementCollection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, usecase.ErrToolInactive
	}

	if err := s.overlays.Clear(service.OverlayPreview); err != nil {
		return nil, fmt.Errorf("failed to clear preview overlay: %w", err)
	}

	complete := make([]*entity.Segment, 0, len(s.segments))
	for _, segment := range s.segments {
		if segment.Complete() {
			complete = append(complete, segment)
		}
	}

	if len(complete) == 0 {
		s.resetLocked()

		return nil, nil
	}

	collection, err := s.buildCollectionLocked(complete)
	if err != nil {
		return nil, err
	}

	if err := s.collections.SaveCollection(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to save measurement collection: %w", err)
	}

	s.resetLocked()
	s.logger.Info("measurement finalized",
		slog.String("session_id", s.sessionID.String()),
		slog.String("collection", collection.Name),
		slog.Int("segments", len(collection.Records)),
	)

	return collection, nil
}

// buildCollectionLocked is a pure transform from the complete-segment list to
// the output records. Start/Stop columns are always geographic: projected
// endpoints are re-expressed via the transformer, geographic ones pass
// through unchanged.
func (s *measureService) buildCollectionLocked(complete []*entity.Segment) (*entity.MeasurementCollection, error) {
	crs := s.canvas.CRS()

	records := make([]entity.SegmentRecord, 0, len(complete))
	for _, segment := range complete {
		start, err := s.geographicLocked(segment.Start, crs)
		if err != nil {
			return nil, err
		}
		stop, err := s.geographicLocked(*segment.End, crs)
		if err != nil {
			return nil, err
		}

		records = append(records, entity.SegmentRecord{
			LineID:      segment.ID,
			Start:       util.FormatLatLon(start.Y, start.X),
			Stop:        util.FormatLatLon(stop.Y, stop.X),
			LengthM:     segment.LengthM,
			LengthNM:    segment.LengthNM,
			CumLengthM:  segment.CumLengthM,
			CumLengthNM: segment.CumLengthNM,
			StartVertex: segment.Start,
			StopVertex:  *segment.End,
		})
	}

	return &entity.MeasurementCollection{
		ID:        uuid.New(),
		Name:      util.CollectionName(s.config.Measure.CollectionPrefix, s.now()),
		CRS:       crs.AuthID,
		CreatedAt: s.now(),
		Records:   records,
	}, nil
}

func (s *measureService) geographicLocked(point entity.Vertex, crs entity.ReferenceSystem) (entity.Vertex, error) {
	if crs.Geographic {
		return point, nil
	}

	transformed, err := s.transformer.Transform(point, crs, entity.CRSWGS84)
	if err != nil {
		return entity.Vertex{}, fmt.Errorf("failed to transform endpoint to geographic coordinates: %w", err)
	}

	return transformed, nil
}

// Cancel clears the transient overlays and notifies the operator. The table,
// id counter, and accumulator are deliberately left intact and the session
// stays in its measuring state; this mirrors the tool's observed behavior.
func (s *measureService) Cancel(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return usecase.ErrToolInactive
	}

	if err := s.overlays.Clear(service.OverlayCommitted); err != nil {
		return fmt.Errorf("failed to clear committed overlay: %w", err)
	}
	if err := s.overlays.Clear(service.OverlayPreview); err != nil {
		return fmt.Errorf("failed to clear preview overlay: %w", err)
	}

	s.status.Push("Measure", "Measurement cancelled")

	return nil
}

// Undo removes the most recently completed segment and re-chains the open
// segment to its start vertex. The removed id is never reused.
func (s *measureService) Undo(_ context.Context) (*usecase.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, usecase.ErrToolInactive
	}

	last := -1
	for i := len(s.segments) - 1; i >= 0; i-- {
		if s.segments[i].Complete() {
			last = i

			break
		}
	}
	if last < 0 {
		return s.snapshotLocked(), nil
	}

	removed := s.segments[last]
	s.cumRawM -= removed.RawLengthM
	s.segments = append(s.segments[:last], s.segments[last+1:]...)

	// The open segment now starts where the removed one did.
	if len(s.segments) > 0 {
		open := s.segments[len(s.segments)-1]
		open.Start = removed.Start
		s.lastPoint = &open.Start
	} else {
		s.lastPoint = nil
	}

	if err := s.overlays.Replace(service.OverlayCommitted, s.committedPathLocked()); err != nil {
		return nil, fmt.Errorf("failed to update committed overlay: %w", err)
	}

	return s.snapshotLocked(), nil
}

// Snapshot returns a read-only view of the session table.
func (s *measureService) Snapshot(_ context.Context) (*usecase.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(), nil
}

// resetLocked restores the empty-session state and clears both overlays.
func (s *measureService) resetLocked() {
	s.segments = nil
	s.lastPoint = nil
	s.idCounter = 0
	s.cumRawM = 0
	s.measuring = false

	if err := s.overlays.Clear(service.OverlayCommitted); err != nil {
		s.logger.Warn("failed to clear committed overlay", slog.Any("error", err))
	}
	if err := s.overlays.Clear(service.OverlayPreview); err != nil {
		s.logger.Warn("failed to clear preview overlay", slog.Any("error", err))
	}
}

// committedPathLocked builds the full polyline of completed segments. The
// path is contiguous by construction: every open segment starts at the end
// of the previous complete one.
func (s *measureService) committedPathLocked() []entity.Vertex {
	var path []entity.Vertex
	for _, segment := range s.segments {
		if !segment.Complete() {
			continue
		}
		if len(path) == 0 {
			path = append(path, segment.Start)
		}
		path = append(path, *segment.End)
	}

	return path
}

func (s *measureService) snapshotLocked() *usecase.SessionSnapshot {
	views := make([]usecase.SegmentView, 0, len(s.segments))
	for _, segment := range s.segments {
		view := usecase.SegmentView{
			ID:    segment.ID,
			Start: segment.Start,
		}
		if segment.Complete() {
			end := *segment.End
			lengthM := segment.LengthM
			lengthNM := segment.LengthNM
			cumM := segment.CumLengthM
			cumNM := segment.CumLengthNM
			view.End = &end
			view.LengthM = &lengthM
			view.LengthNM = &lengthNM
			view.CumLengthM = &cumM
			view.CumLengthNM = &cumNM
		}
		views = append(views, view)
	}

	return &usecase.SessionSnapshot{
		SessionID: s.sessionID,
		Active:    s.active,
		Measuring: s.measuring,
		Segments:  views,
	}
}
