package service

import "measure/internal/domain/entity"

// CanvasState exposes the map canvas state the session has to re-resolve at
// the time of every length or transform operation. The user may switch the
// working reference system between clicks, so none of this may be cached.
type CanvasState interface {
	CRS() entity.ReferenceSystem
	Ellipsoid() entity.Ellipsoid
}
