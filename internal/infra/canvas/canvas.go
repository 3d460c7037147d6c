// Package canvas holds the mutable map-canvas state the session resolves its
// reference system and ellipsoid from.
package canvas

import (
	"sync"

	"measure/config"
	"measure/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUnknownReferenceSystem is returned for authority IDs the canvas does not know.
var ErrUnknownReferenceSystem = errors.New("unknown reference system")

// Canvas is the working reference-system state of the map canvas. The user
// may change it at any point during a session; readers always see the value
// current at call time.
type Canvas struct {
	mu        sync.RWMutex
	crs       entity.ReferenceSystem
	ellipsoid entity.Ellipsoid
}

// New seeds the canvas from configuration. The ellipsoid defaults to WGS84
// when the project defines none.
func New(cfg *config.Config) (*Canvas, error) {
	canvasCfg := cfg.Canvas
	if canvasCfg == nil {
		canvasCfg = &config.CanvasConfig{}
	}

	crs := entity.CRSWGS84
	if canvasCfg.CRS != "" {
		resolved, ok := entity.ReferenceSystemByAuthID(canvasCfg.CRS)
		if !ok {
			return nil, errors.Wrap(ErrUnknownReferenceSystem, canvasCfg.CRS)
		}
		crs = resolved
	}

	ellipsoid := entity.EllipsoidWGS84
	if canvasCfg.Ellipsoid != "" {
		resolved, ok := entity.EllipsoidByName(canvasCfg.Ellipsoid)
		if !ok {
			return nil, errors.Errorf("unknown ellipsoid: %s", canvasCfg.Ellipsoid)
		}
		ellipsoid = resolved
	}

	return &Canvas{crs: crs, ellipsoid: ellipsoid}, nil
}

// CRS returns the working reference system.
func (c *Canvas) CRS() entity.ReferenceSystem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.crs
}

// Ellipsoid returns the ellipsoid used for geodesic computation.
func (c *Canvas) Ellipsoid() entity.Ellipsoid {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.ellipsoid
}

// SetCRS switches the working reference system mid-session.
func (c *Canvas) SetCRS(authID string) error {
	crs, ok := entity.ReferenceSystemByAuthID(authID)
	if !ok {
		return errors.Wrap(ErrUnknownReferenceSystem, authID)
	}

	c.mu.Lock()
	c.crs = crs
	c.mu.Unlock()

	return nil
}
