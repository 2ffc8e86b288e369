//go:build windows
// +build windows

package sigbridge

import (
	"os"
	"syscall"
)

// os.Interrupt covers both Ctrl+C and Ctrl+Break, SIGTERM covers console close/logoff/shutdown
var terminationSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
