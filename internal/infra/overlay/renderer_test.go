package overlay

import (
	"testing"

	"measure/internal/domain/entity"
	"measure/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ReplaceAndLine(t *testing.T) {
	r := NewRenderer()

	require.NoError(t, r.Replace(service.OverlayCommitted, []entity.Vertex{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0},
	}))

	assert.Equal(t, orb.LineString{{0, 0}, {1, 1}, {2, 0}}, r.Line(service.OverlayCommitted))
	assert.Nil(t, r.Line(service.OverlayPreview))
}

func TestRenderer_Replace_ShortLineClearsSlot(t *testing.T) {
	r := NewRenderer()

	require.NoError(t, r.Replace(service.OverlayPreview, []entity.Vertex{{X: 0, Y: 0}, {X: 1, Y: 1}}))
	require.NotNil(t, r.Line(service.OverlayPreview))

	require.NoError(t, r.Replace(service.OverlayPreview, []entity.Vertex{{X: 5, Y: 5}}))
	assert.Nil(t, r.Line(service.OverlayPreview))
}

func TestRenderer_Clear(t *testing.T) {
	r := NewRenderer()

	require.NoError(t, r.Replace(service.OverlayCommitted, []entity.Vertex{{X: 0, Y: 0}, {X: 1, Y: 1}}))
	require.NoError(t, r.Clear(service.OverlayCommitted))
	assert.Nil(t, r.Line(service.OverlayCommitted))
}

func TestRenderer_Snapshot(t *testing.T) {
	r := NewRenderer()

	require.NoError(t, r.Replace(service.OverlayCommitted, []entity.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}}))
	require.NoError(t, r.Replace(service.OverlayPreview, []entity.Vertex{{X: 1, Y: 0}, {X: 2, Y: 2}}))

	fc := r.Snapshot()
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "committed", fc.Features[0].Properties["slot"])
	assert.Equal(t, "preview", fc.Features[1].Properties["slot"])
	assert.Equal(t, orb.LineString{{0, 0}, {1, 0}}, fc.Features[0].Geometry)
}

func TestRenderer_Snapshot_Empty(t *testing.T) {
	r := NewRenderer()

	fc := r.Snapshot()
	assert.Empty(t, fc.Features)
}
