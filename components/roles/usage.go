package roles

import (
	"bytes"
	"fmt"

	"github.com/xiaonanln/gameserver/engine/role"
)

var roleDescriptions = map[role.Role]string{
	role.Master: "Master server process",
	role.World:  "World server process",
	role.Gate:   "Gate server process",
	role.DB:     "Database server process",
	role.Login:  "Login server process",
	role.Game:   "Game server process",
}

// Usage returns the description of all process types for command line help
func Usage() string {
	var buf bytes.Buffer
	buf.WriteString("Process types:\n")
	for _, r := range role.All() {
		fmt.Fprintf(&buf, "  %-7s - %s\n", r.Token(), roleDescriptions[r])
	}
	buf.WriteString("Unknown or missing process types start a master process.\n")
	return buf.String()
}
