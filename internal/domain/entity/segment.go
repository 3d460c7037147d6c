package entity

// Segment is one row of the measurement session table. A segment is opened by
// a click and completed by the next one; the last segment of an active session
// is always open.
type Segment struct {
	ID    int     // 1-based, strictly increasing, assigned per accepted click, never reused
	Start Vertex  // first endpoint, captured at click time
	End   *Vertex // nil while the segment awaits its terminating click

	LengthM     float64 // geodesic length in meters, rounded to 1 decimal place
	LengthNM    float64 // nautical miles, rounded to 2 decimal places
	CumLengthM  float64 // running total in meters, rounded to 1 decimal place
	CumLengthNM float64 // running total in nautical miles, rounded to 2 decimal places

	// RawLengthM is the unrounded length. It never leaves the session; it is
	// retained so the cumulative accumulator can be corrected when the
	// segment is undone.
	RawLengthM float64
}

// Complete reports whether the segment has both endpoints.
func (s *Segment) Complete() bool {
	return s.End != nil
}
