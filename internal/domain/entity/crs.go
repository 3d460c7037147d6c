package entity

// ReferenceSystem identifies a coordinate reference system by authority ID.
type ReferenceSystem struct {
	AuthID     string // e.g. "EPSG:4326"
	Geographic bool   // true when axes are longitude/latitude degrees
}

// Well-known reference systems supported by the canvas.
var (
	CRSWGS84       = ReferenceSystem{AuthID: "EPSG:4326", Geographic: true}
	CRSWebMercator = ReferenceSystem{AuthID: "EPSG:3857"}
)

// ReferenceSystemByAuthID resolves a known reference system.
func ReferenceSystemByAuthID(authID string) (ReferenceSystem, bool) {
	switch authID {
	case CRSWGS84.AuthID:
		return CRSWGS84, true
	case CRSWebMercator.AuthID:
		return CRSWebMercator, true
	default:
		return ReferenceSystem{}, false
	}
}

// Ellipsoid is the reference system's model of the planet surface used for
// geodesic length computation.
type Ellipsoid struct {
	Name              string
	SemiMajorM        float64 // equatorial radius in meters
	InverseFlattening float64 // 1/f; zero means a perfect sphere
}

// EllipsoidWGS84 is the default ellipsoid when the canvas defines none.
var EllipsoidWGS84 = Ellipsoid{Name: "WGS84", SemiMajorM: 6378137.0, InverseFlattening: 298.257223563}

// EllipsoidGRS80 is provided for projects pinned to the GRS 1980 datum.
var EllipsoidGRS80 = Ellipsoid{Name: "GRS80", SemiMajorM: 6378137.0, InverseFlattening: 298.257222101}

// EllipsoidByName resolves a known ellipsoid definition.
func EllipsoidByName(name string) (Ellipsoid, bool) {
	switch name {
	case EllipsoidWGS84.Name:
		return EllipsoidWGS84, true
	case EllipsoidGRS80.Name:
		return EllipsoidGRS80, true
	default:
		return Ellipsoid{}, false
	}
}
