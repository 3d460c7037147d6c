package impl

import (
	"context"
	"log/slog"
	"time"

	"measure/config"
	"measure/internal/domain/entity"
	"measure/internal/domain/service"
	"measure/internal/usecase"
)

// stubCalculator returns canned lengths and records what it was asked.
type stubCalculator struct {
	measureFn func(start, end entity.Vertex) (float64, error)
	seenCRS   []entity.ReferenceSystem
	seenEllps []entity.Ellipsoid
}

func (c *stubCalculator) Measure(_ context.Context, start, end entity.Vertex, crs entity.ReferenceSystem, ellipsoid entity.Ellipsoid) (float64, error) {
	c.seenCRS = append(c.seenCRS, crs)
	c.seenEllps = append(c.seenEllps, ellipsoid)

	return c.measureFn(start, end)
}

// stubTransformer applies a fixed scale, enough to observe that projected
// endpoints get re-expressed before formatting.
type stubTransformer struct {
	scale float64
	calls int
}

func (t *stubTransformer) Transform(point entity.Vertex, from, to entity.ReferenceSystem) (entity.Vertex, error) {
	t.calls++
	if from.AuthID == to.AuthID {
		return point, nil
	}

	return entity.Vertex{X: point.X * t.scale, Y: point.Y * t.scale}, nil
}

// stubCanvas hands out whatever reference system the test sets, so tests can
// flip the CRS between clicks.
type stubCanvas struct {
	crs       entity.ReferenceSystem
	ellipsoid entity.Ellipsoid
}

func (c *stubCanvas) CRS() entity.ReferenceSystem { return c.crs }
func (c *stubCanvas) Ellipsoid() entity.Ellipsoid { return c.ellipsoid }

// stubOverlays records the last line per slot.
type stubOverlays struct {
	lines      map[service.OverlaySlot][]entity.Vertex
	replaceErr error
}

func newStubOverlays() *stubOverlays {
	return &stubOverlays{lines: make(map[service.OverlaySlot][]entity.Vertex)}
}

func (o *stubOverlays) Replace(slot service.OverlaySlot, line []entity.Vertex) error {
	if o.replaceErr != nil {
		return o.replaceErr
	}
	o.lines[slot] = append([]entity.Vertex(nil), line...)

	return nil
}

func (o *stubOverlays) Clear(slot service.OverlaySlot) error {
	delete(o.lines, slot)

	return nil
}

// stubStatus records pushed status messages in order.
type stubStatus struct {
	messages []string
}

func (s *stubStatus) Push(_, message string) {
	s.messages = append(s.messages, message)
}

// stubCollections stores saved collections and optionally fails.
type stubCollections struct {
	saved   []*entity.MeasurementCollection
	saveErr error
}

func (r *stubCollections) SaveCollection(_ context.Context, collection *entity.MeasurementCollection) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, collection)

	return nil
}

func (r *stubCollections) FindCollectionByName(_ context.Context, name string) (*entity.MeasurementCollection, error) {
	for _, collection := range r.saved {
		if collection.Name == name {
			return collection, nil
		}
	}

	return nil, nil
}

func (r *stubCollections) ListCollections(_ context.Context) ([]*entity.MeasurementCollection, error) {
	return r.saved, nil
}

// testFixture bundles the stubs wired into one measureService under test.
type testFixture struct {
	calc        *stubCalculator
	transformer *stubTransformer
	canvas      *stubCanvas
	overlays    *stubOverlays
	status      *stubStatus
	collections *stubCollections
	service     usecase.MeasureUsecase
}

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

// newTestFixture builds a service on a geographic canvas whose calculator
// returns a constant length for every segment.
func newTestFixture(length float64) *testFixture {
	f := &testFixture{
		calc: &stubCalculator{
			measureFn: func(_, _ entity.Vertex) (float64, error) { return length, nil },
		},
		transformer: &stubTransformer{scale: 1},
		canvas:      &stubCanvas{crs: entity.CRSWGS84, ellipsoid: entity.EllipsoidWGS84},
		overlays:    newStubOverlays(),
		status:      &stubStatus{},
		collections: &stubCollections{},
	}

	cfg := &config.Config{}
	svc := NewMeasureService(
		f.calc, f.transformer, f.canvas, f.overlays, f.status, f.collections,
		cfg, slog.New(slog.DiscardHandler),
	)
	svc.(*measureService).now = func() time.Time { return testNow }
	f.service = svc

	return f
}
