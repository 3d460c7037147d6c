// Package projection implements coordinate reference system transformation
// between the canvas reference systems supported by the tool.
package projection

import (
	"measure/internal/domain/entity"
	"measure/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/pkg/errors"
)

// ErrUnsupportedTransform is returned for reference-system pairs the
// transformer has no projection for.
var ErrUnsupportedTransform = errors.New("unsupported reference system transformation")

type transformer struct{}

// NewTransformer creates a new coordinate transformer
func NewTransformer() service.CoordinateTransformer {
	return &transformer{}
}

// Transform re-expresses point from one reference system in another.
func (t *transformer) Transform(point entity.Vertex, from, to entity.ReferenceSystem) (entity.Vertex, error) {
	if from.AuthID == to.AuthID {
		return point, nil
	}

	p := orb.Point{point.X, point.Y}

	switch {
	case from.AuthID == entity.CRSWGS84.AuthID && to.AuthID == entity.CRSWebMercator.AuthID:
		p = project.WGS84.ToMercator(p)
	case from.AuthID == entity.CRSWebMercator.AuthID && to.AuthID == entity.CRSWGS84.AuthID:
		p = project.Mercator.ToWGS84(p)
	default:
		return entity.Vertex{}, errors.Wrapf(ErrUnsupportedTransform, "%s -> %s", from.AuthID, to.AuthID)
	}

	return entity.Vertex{X: p[0], Y: p[1]}, nil
}
