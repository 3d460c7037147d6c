package entity

import (
	"time"

	"github.com/google/uuid"
)

// SegmentRecord is one persisted feature of a finalized measurement. The
// textual Start/Stop columns are always geographic ("lat, lon" at 4 decimal
// places); the geometry endpoints stay in the working reference system.
type SegmentRecord struct {
	LineID      int     `json:"line_id"`
	Start       string  `json:"start"`
	Stop        string  `json:"stop"`
	LengthM     float64 `json:"length_m"`
	LengthNM    float64 `json:"length_nm"`
	CumLengthM  float64 `json:"cum_length_m"`
	CumLengthNM float64 `json:"cum_length_nm"`

	StartVertex Vertex `json:"start_vertex"`
	StopVertex  Vertex `json:"stop_vertex"`
}

// MeasurementCollection is the feature collection produced by finalizing a
// measurement session, one record per complete segment in click order.
type MeasurementCollection struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"` // e.g. "Measurement_20260829_142310"
	CRS       string          `json:"crs"`  // reference system of the record geometries
	CreatedAt time.Time       `json:"created_at"`
	Records   []SegmentRecord `json:"records"`
}
