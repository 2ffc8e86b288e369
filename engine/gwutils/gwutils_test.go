package gwutils

import (
	"fmt"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/pkg/errors"
)

func TestRunPanicless(t *testing.T) {
	assert.T(t, RunPanicless(func() {
		panic(1)
	}))
	assert.T(t, RunPanicless(func() {
		panic(fmt.Errorf("bad"))
	}))
	assert.T(t, !RunPanicless(func() {}))
}

func TestCatchPanic(t *testing.T) {
	err := CatchPanic(func() error {
		panic("boom")
	})
	pe, ok := err.(*PanicError)
	assert.T(t, ok, "should be a PanicError")
	assert.Equal(t, "boom", pe.Value)
	assert.Equal(t, "panic: boom", err.Error())
	assert.T(t, len(pe.Stack) > 0)

	want := errors.New("init failed")
	assert.Equal(t, want, CatchPanic(func() error { return want }))
	assert.Equal(t, nil, CatchPanic(func() error { return nil }))
}
