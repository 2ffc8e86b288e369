package roles

import (
	"strings"
	"testing"
	"time"

	"github.com/bmizerany/assert"
	"github.com/xiaonanln/gameserver/engine/lifecycle"
	"github.com/xiaonanln/gameserver/engine/role"
)

func TestEntryPoints(t *testing.T) {
	ctors := map[role.Role]func() *lifecycle.Server{
		role.Master: NewMasterServer,
		role.World:  NewWorldServer,
		role.Gate:   NewGateServer,
		role.DB:     NewDBServer,
		role.Login:  NewLoginServer,
		role.Game:   NewGameServer,
	}
	assert.Equal(t, len(role.All()), len(ctors))
	for r, ctor := range ctors {
		s := ctor()
		assert.Equal(t, r, s.Role())
		assert.Equal(t, lifecycle.StateConstructed, s.State())
	}
}

func TestAllRolesRunAndStop(t *testing.T) {
	for _, r := range role.All() {
		s := CreateProcess(r)
		s.SetTickInterval(time.Millisecond * 2)
		s.SetStatusInterval(0)
		assert.Equal(t, nil, s.Initialize())
		assert.Equal(t, lifecycle.StateInitialized, s.State())

		done := make(chan error, 1)
		go func() {
			done <- s.Run()
		}()
		for s.Ticks() < 3 {
			time.Sleep(time.Millisecond)
		}
		s.Shutdown()
		assert.Equal(t, nil, <-done)
		assert.Equal(t, lifecycle.StateStopped, s.State())
	}
}

func TestHooksFor(t *testing.T) {
	for _, r := range role.All() {
		h := HooksFor(r)
		assert.Tf(t, h.Init != nil && h.Update != nil && h.Teardown != nil, "%s hooks incomplete", r)
	}
	h := HooksFor(role.Role(100))
	assert.T(t, h.Init == nil)
}

func TestUsage(t *testing.T) {
	usage := Usage()
	for _, r := range role.All() {
		assert.Tf(t, strings.Contains(usage, r.Token()), "usage misses %s", r.Token())
	}
	assert.T(t, strings.Contains(usage, "Database server process"))
}
