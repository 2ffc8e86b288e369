// Package sigbridge turns OS termination signals into a Shutdown of the one
// server bound to the process.
package sigbridge

import (
	"os"
	"os/signal"

	"github.com/xiaonanln/gameserver/engine/gwlog"
	"go.uber.org/atomic"
)

// Target is what a signal shuts down, normally a *lifecycle.Server
type Target interface {
	Shutdown()
	Post(f func())
	IsRunning() bool
}

type boundTarget struct {
	Target
}

var current atomic.Pointer[boundTarget]

// Bind makes t the target of termination signals. Call it before Install.
func Bind(t Target) {
	current.Store(&boundTarget{t})
}

// Unbind clears the target, later signals are ignored
func Unbind() {
	current.Store(nil)
}

// Bound returns the current target or nil
func Bound() Target {
	if bt := current.Load(); bt != nil {
		return bt.Target
	}
	return nil
}

// Deliver handles a termination signal.
//
// It only requests a shutdown of the bound target and leaves the logging to the
// target's own loop. Nothing happens when no target is bound, and a target that
// is not running yet ignores the signal.
func Deliver(sig os.Signal) {
	bt := current.Load()
	if bt == nil {
		return
	}
	if !bt.IsRunning() {
		gwlog.Warnf("Received signal: %s, ignored since the server is not running", sig)
		return
	}
	bt.Post(func() {
		gwlog.Infof("Received signal: %s", sig)
	})
	bt.Shutdown()
}

// Install starts forwarding termination signals to Deliver. The returned stop
// function restores the default signal behavior.
func Install() (stop func()) {
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, terminationSignals...)

	go func() {
		for {
			select {
			case sig := <-sigChan:
				Deliver(sig)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
