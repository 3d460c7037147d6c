// Package entity contains the core business objects of the project.
package entity

import "math"

const captureScale = 1e6 // vertex coordinates keep 6 decimal places

// Vertex is a map-coordinate point captured from a pointer click, expressed
// in the canvas reference system that was current at capture time.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CaptureVertex rounds raw pointer coordinates to 6 decimal places.
// Rounding happens once, at click time; every later computation uses the
// captured values as-is.
func CaptureVertex(x, y float64) Vertex {
	return Vertex{
		X: math.Round(x*captureScale) / captureScale,
		Y: math.Round(y*captureScale) / captureScale,
	}
}
