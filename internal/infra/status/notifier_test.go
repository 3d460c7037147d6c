package status

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PushAndLast(t *testing.T) {
	n := NewNotifier(slog.New(slog.DiscardHandler))

	_, ok := n.Last()
	assert.False(t, ok)

	n.Push("Measure", "Segment: 1000.0 m (0.54 nm) | Total: 1000.0 m (0.54 nm)")
	n.Push("Measure", "Measurement cancelled")

	last, ok := n.Last()
	require.True(t, ok)
	assert.Equal(t, "Measure", last.Title)
	assert.Equal(t, "Measurement cancelled", last.Text)
	assert.False(t, last.At.IsZero())
}
