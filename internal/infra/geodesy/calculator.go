// Package geodesy implements ellipsoidal surface-distance computation.
package geodesy

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"measure/internal/domain/entity"
	"measure/internal/domain/service"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	vincentyMaxIterations = 200
	vincentyTolerance     = 1e-12
)

// calculator implements service.DistanceCalculator. Projected coordinates are
// re-expressed geographically before measuring; nothing is cached between
// calls, so a reference-system change on the canvas takes effect immediately.
type calculator struct {
	transformer service.CoordinateTransformer
	logger      *slog.Logger
}

// Params holds dependencies for the distance calculator
type Params struct {
	fx.In

	Transformer service.CoordinateTransformer
	Logger      *slog.Logger
}

// NewCalculator creates a new geodesic distance calculator
func NewCalculator(params Params) service.DistanceCalculator {
	return &calculator{
		transformer: params.Transformer,
		logger:      params.Logger,
	}
}

// Measure returns the geodesic length in meters between start and end.
func (c *calculator) Measure(_ context.Context, start, end entity.Vertex, crs entity.ReferenceSystem, ellipsoid entity.Ellipsoid) (float64, error) {
	if !crs.Geographic {
		var err error
		start, err = c.transformer.Transform(start, crs, entity.CRSWGS84)
		if err != nil {
			return 0, fmt.Errorf("failed to transform start vertex: %w", err)
		}
		end, err = c.transformer.Transform(end, crs, entity.CRSWGS84)
		if err != nil {
			return 0, fmt.Errorf("failed to transform end vertex: %w", err)
		}
	}

	if ellipsoid.SemiMajorM == 0 {
		ellipsoid = entity.EllipsoidWGS84
	}

	p1 := orb.Point{start.X, start.Y}
	p2 := orb.Point{end.X, end.Y}

	if ellipsoid.InverseFlattening == 0 {
		// A sphere; the iterative formula degenerates, use haversine directly.
		return haversineDistance(p1, p2, ellipsoid.SemiMajorM), nil
	}

	dist, ok := vincentyInverse(p1, p2, ellipsoid)
	if !ok {
		// Near-antipodal pairs can fail to converge; fall back to the
		// spherical great-circle distance.
		c.logger.Debug("vincenty iteration did not converge, using spherical fallback",
			slog.Float64("lon1", p1[0]), slog.Float64("lat1", p1[1]),
			slog.Float64("lon2", p2[0]), slog.Float64("lat2", p2[1]),
		)

		return haversineDistance(p1, p2, meanRadius(ellipsoid)), nil
	}

	return dist, nil
}

// vincentyInverse solves the inverse geodesic problem on an ellipsoid.
// Points are lon/lat in degrees. Returns ok=false when the lambda iteration
// fails to converge.
func vincentyInverse(p1, p2 orb.Point, ellipsoid entity.Ellipsoid) (float64, bool) {
	a := ellipsoid.SemiMajorM
	f := 1 / ellipsoid.InverseFlattening
	b := a * (1 - f)

	lat1 := p1[1] * math.Pi / 180
	lat2 := p2[1] * math.Pi / 180
	deltaLon := (p2[0] - p1[0]) * math.Pi / 180

	u1 := math.Atan((1 - f) * math.Tan(lat1))
	u2 := math.Atan((1 - f) * math.Tan(lat2))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := deltaLon
	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64

	for i := 0; i < vincentyMaxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)

		sinSigma = math.Sqrt(math.Pow(cosU2*sinLambda, 2) +
			math.Pow(cosU1*sinU2-sinU1*cosU2*cosLambda, 2))
		if sinSigma == 0 {
			// Coincident points.
			return 0, true
		}

		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha

		if cosSqAlpha == 0 {
			// Equatorial line.
			cos2SigmaM = 0
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		capC := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		prevLambda := lambda
		lambda = deltaLon + (1-capC)*f*sinAlpha*
			(sigma+capC*sinSigma*(cos2SigmaM+capC*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prevLambda) < vincentyTolerance {
			uSq := cosSqAlpha * (a*a - b*b) / (b * b)
			capA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
			capB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
			deltaSigma := capB * sinSigma * (cos2SigmaM + capB/4*
				(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
					capB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

			return b * capA * (sigma - deltaSigma), true
		}
	}

	return 0, false
}

// haversineDistance calculates the great circle distance between two points
// on a sphere of the given radius, in meters.
func haversineDistance(p1, p2 orb.Point, radiusM float64) float64 {
	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := p2[1] * math.Pi / 180
	lng2Rad := p2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radiusM * c
}

// meanRadius is the IUGG mean radius (2a+b)/3 of the ellipsoid.
func meanRadius(ellipsoid entity.Ellipsoid) float64 {
	a := ellipsoid.SemiMajorM
	b := a * (1 - 1/ellipsoid.InverseFlattening)

	return (2*a + b) / 3
}
