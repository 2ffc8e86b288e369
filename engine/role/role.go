// Package role defines the process roles of a gameserver fleet.
//
// The role of a process is chosen once at startup and never changes.
package role

// Role is the operational identity of a server process
type Role int

const (
	// Master manages the other processes
	Master Role = iota
	// World runs the game world logic
	World
	// Gate accepts client connections
	Gate
	// DB persists game data
	DB
	// Login verifies accounts
	Login
	// Game runs scenes
	Game
)

var (
	displayNames = [...]string{"Master", "World", "Gate", "Database", "Login", "Game"}
	tokens       = [...]string{"master", "world", "gate", "db", "login", "game"}
)

// All returns all roles in declaration order
func All() []Role {
	return []Role{Master, World, Gate, DB, Login, Game}
}

// IsValid returns true if r is one of the declared roles
func (r Role) IsValid() bool {
	return r >= Master && r <= Game
}

// String returns the display name used in diagnostics, e.g. "Database"
func (r Role) String() string {
	if !r.IsValid() {
		return "Unknown"
	}
	return displayNames[r]
}

// Token returns the command line token of the role, e.g. "db"
func (r Role) Token() string {
	if !r.IsValid() {
		return "unknown"
	}
	return tokens[r]
}

// ParseRole maps a command line token to a Role.
//
// Matching is exact and case-sensitive. Unknown tokens, including the empty
// string, resolve to Master with ok=false so the caller can report it.
func ParseRole(token string) (r Role, ok bool) {
	for i, t := range tokens {
		if t == token {
			return Role(i), true
		}
	}
	return Master, false
}
