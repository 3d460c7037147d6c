// Package overlay is the rendering adapter for the session's transient
// shapes. It keeps the current state of both slots and serves it as GeoJSON
// for whatever canvas front end consumes it.
package overlay

import (
	"sync"

	"measure/internal/domain/entity"
	"measure/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Renderer implements service.OverlayRenderer. Shapes are fully replaced on
// every update, never patched.
type Renderer struct {
	mu     sync.RWMutex
	shapes map[service.OverlaySlot]orb.LineString
}

// NewRenderer creates a new overlay renderer with both slots empty
func NewRenderer() *Renderer {
	return &Renderer{
		shapes: make(map[service.OverlaySlot]orb.LineString),
	}
}

// Replace swaps the slot's shape for the given polyline. A polyline with
// fewer than two vertices clears the slot.
func (r *Renderer) Replace(slot service.OverlaySlot, line []entity.Vertex) error {
	if len(line) < 2 {
		return r.Clear(slot)
	}

	shape := make(orb.LineString, 0, len(line))
	for _, vertex := range line {
		shape = append(shape, orb.Point{vertex.X, vertex.Y})
	}

	r.mu.Lock()
	r.shapes[slot] = shape
	r.mu.Unlock()

	return nil
}

// Clear empties the slot.
func (r *Renderer) Clear(slot service.OverlaySlot) error {
	r.mu.Lock()
	delete(r.shapes, slot)
	r.mu.Unlock()

	return nil
}

// Line returns the slot's current polyline, or nil when the slot is empty.
func (r *Renderer) Line(slot service.OverlaySlot) orb.LineString {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shape, ok := r.shapes[slot]
	if !ok {
		return nil
	}

	return append(orb.LineString{}, shape...)
}

// Snapshot renders the non-empty slots as a GeoJSON feature collection, one
// feature per slot with a "slot" property.
func (r *Renderer) Snapshot() *geojson.FeatureCollection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fc := geojson.NewFeatureCollection()
	for _, slot := range []service.OverlaySlot{service.OverlayCommitted, service.OverlayPreview} {
		shape, ok := r.shapes[slot]
		if !ok {
			continue
		}

		feature := geojson.NewFeature(append(orb.LineString{}, shape...))
		feature.Properties["slot"] = string(slot)
		fc.Append(feature)
	}

	return fc
}
