//go:build !windows
// +build !windows

package sigbridge

import (
	"os"

	"golang.org/x/sys/unix"
)

// interrupt (Ctrl+C), terminate, and hang-up when the terminal goes away
var terminationSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}
