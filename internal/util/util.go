package util

import (
	"fmt"
	"math"
	"time"
)

// RoundTo rounds a value to the given number of decimal places, half away
// from zero. Rounded lengths are a storage-time policy, not display trimming.
func RoundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))

	return math.Round(value*scale) / scale
}

// FormatLatLon renders geographic coordinates as "lat, lon" at 4 decimal
// places, the textual form used by the Start/Stop feature columns.
func FormatLatLon(lat, lon float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lon)
}

// CollectionName builds a timestamped collection name, unique across
// repeated sessions at second granularity.
func CollectionName(prefix string, at time.Time) string {
	return fmt.Sprintf("%s_%s", prefix, at.Format("20060102_150405"))
}
