package geodesy

import (
	"context"
	"log/slog"
	"testing"

	"measure/internal/domain/entity"
	"measure/internal/domain/service"
	"measure/internal/infra/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator() service.DistanceCalculator {
	return NewCalculator(Params{
		Transformer: projection.NewTransformer(),
		Logger:      slog.New(slog.DiscardHandler),
	})
}

func TestCalculator_Measure_EquatorialDegree(t *testing.T) {
	calc := newTestCalculator()

	// One degree of longitude along the equator is a*pi/180.
	dist, err := calc.Measure(context.Background(),
		entity.Vertex{X: 0, Y: 0}, entity.Vertex{X: 1, Y: 0},
		entity.CRSWGS84, entity.EllipsoidWGS84,
	)
	require.NoError(t, err)
	assert.InDelta(t, 111319.49, dist, 0.5)
}

func TestCalculator_Measure_MeridianDegree(t *testing.T) {
	calc := newTestCalculator()

	// One degree of latitude from the equator is about 110.574 km on WGS84,
	// shorter than the equatorial degree because of flattening.
	dist, err := calc.Measure(context.Background(),
		entity.Vertex{X: 0, Y: 0}, entity.Vertex{X: 0, Y: 1},
		entity.CRSWGS84, entity.EllipsoidWGS84,
	)
	require.NoError(t, err)
	assert.InDelta(t, 110574.4, dist, 5)
}

func TestCalculator_Measure_CoincidentPoints(t *testing.T) {
	calc := newTestCalculator()

	dist, err := calc.Measure(context.Background(),
		entity.Vertex{X: 12.5, Y: 55.7}, entity.Vertex{X: 12.5, Y: 55.7},
		entity.CRSWGS84, entity.EllipsoidWGS84,
	)
	require.NoError(t, err)
	assert.Zero(t, dist)
}

func TestCalculator_Measure_Symmetric(t *testing.T) {
	calc := newTestCalculator()
	ctx := context.Background()

	a := entity.Vertex{X: 10.75, Y: 59.91}
	b := entity.Vertex{X: 24.94, Y: 60.17}

	forward, err := calc.Measure(ctx, a, b, entity.CRSWGS84, entity.EllipsoidWGS84)
	require.NoError(t, err)
	backward, err := calc.Measure(ctx, b, a, entity.CRSWGS84, entity.EllipsoidWGS84)
	require.NoError(t, err)

	assert.InDelta(t, forward, backward, 1e-6)
}

func TestCalculator_Measure_SphereUsesGreatCircle(t *testing.T) {
	calc := newTestCalculator()
	sphere := entity.Ellipsoid{Name: "sphere", SemiMajorM: 6371000}

	dist, err := calc.Measure(context.Background(),
		entity.Vertex{X: 0, Y: 0}, entity.Vertex{X: 1, Y: 0},
		entity.CRSWGS84, sphere,
	)
	require.NoError(t, err)
	assert.InDelta(t, 111194.93, dist, 0.5)
}

func TestCalculator_Measure_DefaultsToWGS84Ellipsoid(t *testing.T) {
	calc := newTestCalculator()

	dist, err := calc.Measure(context.Background(),
		entity.Vertex{X: 0, Y: 0}, entity.Vertex{X: 1, Y: 0},
		entity.CRSWGS84, entity.Ellipsoid{},
	)
	require.NoError(t, err)
	assert.InDelta(t, 111319.49, dist, 0.5)
}

func TestCalculator_Measure_ProjectedCoordinates(t *testing.T) {
	calc := newTestCalculator()

	// The same equatorial degree expressed in Web Mercator meters must come
	// out identical after the internal transform to geographic coordinates.
	dist, err := calc.Measure(context.Background(),
		entity.Vertex{X: 0, Y: 0}, entity.Vertex{X: 111319.49079327358, Y: 0},
		entity.CRSWebMercator, entity.EllipsoidWGS84,
	)
	require.NoError(t, err)
	assert.InDelta(t, 111319.49, dist, 0.5)
}
