package roles

import (
	"github.com/xiaonanln/gameserver/engine/gwlog"
	"github.com/xiaonanln/gameserver/engine/lifecycle"
	"github.com/xiaonanln/gameserver/engine/role"
)

var roleHooks = map[role.Role]lifecycle.Hooks{
	role.Master: {Init: initMaster, Update: updateMaster, Teardown: teardownMaster},
	role.World:  {Init: initWorld, Update: updateWorld, Teardown: teardownWorld},
	role.Gate:   {Init: initGate, Update: updateGate, Teardown: teardownGate},
	role.DB:     {Init: initDB, Update: updateDB, Teardown: teardownDB},
	role.Login:  {Init: initLogin, Update: updateLogin, Teardown: teardownLogin},
	role.Game:   {Init: initGame, Update: updateGame, Teardown: teardownGame},
}

// HooksFor returns the lifecycle hooks of a role. Unknown roles get no-op hooks.
func HooksFor(r role.Role) lifecycle.Hooks {
	return roleHooks[r]
}

// Master will supervise the other processes of the fleet.
func initMaster(s *lifecycle.Server) error {
	gwlog.Debugf("%s: no managed processes configured", s)
	return nil
}

func updateMaster(s *lifecycle.Server) {}

func teardownMaster(s *lifecycle.Server) {
	gwlog.Debugf("%s: teardown", s)
}

// World will run the world simulation.
func initWorld(s *lifecycle.Server) error {
	gwlog.Debugf("%s: world simulation not loaded", s)
	return nil
}

func updateWorld(s *lifecycle.Server) {}

func teardownWorld(s *lifecycle.Server) {
	gwlog.Debugf("%s: teardown", s)
}

// Gate will own the client facing listener.
func initGate(s *lifecycle.Server) error {
	gwlog.Debugf("%s: client listener not configured", s)
	return nil
}

func updateGate(s *lifecycle.Server) {}

func teardownGate(s *lifecycle.Server) {
	gwlog.Debugf("%s: teardown", s)
}

// DB will serve storage reads and writes.
func initDB(s *lifecycle.Server) error {
	gwlog.Debugf("%s: storage backend not configured", s)
	return nil
}

func updateDB(s *lifecycle.Server) {}

func teardownDB(s *lifecycle.Server) {
	gwlog.Debugf("%s: teardown", s)
}

// Login will check credentials.
func initLogin(s *lifecycle.Server) error {
	gwlog.Debugf("%s: credential checker not configured", s)
	return nil
}

func updateLogin(s *lifecycle.Server) {}

func teardownLogin(s *lifecycle.Server) {
	gwlog.Debugf("%s: teardown", s)
}

// Game will run scenes.
func initGame(s *lifecycle.Server) error {
	gwlog.Debugf("%s: no scenes loaded", s)
	return nil
}

func updateGame(s *lifecycle.Server) {}

func teardownGame(s *lifecycle.Server) {
	gwlog.Debugf("%s: teardown", s)
}
