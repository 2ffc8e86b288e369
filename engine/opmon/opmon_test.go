package opmon

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bmizerany/assert"
)

func TestOperation(t *testing.T) {
	m := NewMonitor()
	for i := 0; i < 3; i++ {
		op := m.StartOperation("tick")
		assert.T(t, !op.Finish(time.Hour), "fast operation should not be slow")
	}
	op := m.StartOperation("slow")
	time.Sleep(time.Millisecond * 2)
	assert.T(t, op.Finish(time.Millisecond), "operation should be slow")

	assert.Equal(t, uint64(3), m.Count("tick"))
	assert.Equal(t, uint64(1), m.Count("slow"))
	assert.Equal(t, uint64(0), m.Count("nothing"))

	var buf bytes.Buffer
	m.Dump(&buf)
	out := buf.String()
	assert.T(t, strings.Contains(out, "tick"), out)
	assert.T(t, strings.Index(out, "slow") < strings.Index(out, "tick"), out)
	assert.Equal(t, uint64(0), m.Count("tick"))
}

func TestZeroThreshold(t *testing.T) {
	m := NewMonitor()
	assert.T(t, !m.StartOperation("op").Finish(0))
}
