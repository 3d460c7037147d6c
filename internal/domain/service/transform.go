package service

import "measure/internal/domain/entity"

// CoordinateTransformer re-expresses a point from one reference system in
// another. Transforming between identical systems is the identity.
type CoordinateTransformer interface {
	Transform(point entity.Vertex, from, to entity.ReferenceSystem) (entity.Vertex, error)
}
