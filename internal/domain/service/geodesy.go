// Package service defines the capability interfaces the measurement session
// depends on. Implementations live under internal/infra.
package service

import (
	"context"

	"measure/internal/domain/entity"
)

// DistanceCalculator measures true surface distance on a reference ellipsoid.
type DistanceCalculator interface {
	// Measure returns the geodesic length in meters between start and end,
	// both expressed in crs. Implementations must not cache reference-system
	// state between calls; the canvas CRS may change at any time.
	Measure(ctx context.Context, start, end entity.Vertex, crs entity.ReferenceSystem, ellipsoid entity.Ellipsoid) (float64, error)
}
