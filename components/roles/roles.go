// Package roles binds each process role to its lifecycle hooks and provides the
// named constructors used by the gameserver executable.
package roles

import (
	"github.com/xiaonanln/gameserver/engine/lifecycle"
	"github.com/xiaonanln/gameserver/engine/role"
)

// CreateProcess creates the server of the specified role with its registered hooks
func CreateProcess(r role.Role) *lifecycle.Server {
	return lifecycle.New(r, HooksFor(r))
}

// NewMasterServer creates a Master server
func NewMasterServer() *lifecycle.Server {
	return CreateProcess(role.Master)
}

// NewWorldServer creates a World server
func NewWorldServer() *lifecycle.Server {
	return CreateProcess(role.World)
}

// NewGateServer creates a Gate server
func NewGateServer() *lifecycle.Server {
	return CreateProcess(role.Gate)
}

// NewDBServer creates a DB server
func NewDBServer() *lifecycle.Server {
	return CreateProcess(role.DB)
}

// NewLoginServer creates a Login server
func NewLoginServer() *lifecycle.Server {
	return CreateProcess(role.Login)
}

// NewGameServer creates a Game server
func NewGameServer() *lifecycle.Server {
	return CreateProcess(role.Game)
}
