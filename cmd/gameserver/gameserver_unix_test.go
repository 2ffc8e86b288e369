//go:build !windows
// +build !windows

package main

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/xiaonanln/gameserver/components/roles"
	"github.com/xiaonanln/gameserver/engine/consts"
	"github.com/xiaonanln/gameserver/engine/lifecycle"
	"github.com/xiaonanln/gameserver/engine/role"
	"golang.org/x/sys/unix"
)

func TestSIGINTExitsZero(t *testing.T) {
	var stderr syncBuffer
	done := runAsync([]string{"db"}, &stderr, roles.CreateProcess)
	s := waitBoundServerRunning(t)
	assert.Equal(t, role.DB, s.Role())

	assert.Equal(t, nil, unix.Kill(unix.Getpid(), unix.SIGINT))
	assert.Equal(t, consts.EXIT_OK, waitExit(t, done))
	assert.Equal(t, lifecycle.StateStopped, s.State())
}
