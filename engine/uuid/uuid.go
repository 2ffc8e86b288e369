package uuid

import (
	"encoding/binary"

	guuid "github.com/google/uuid"
)

// GenProcessID generates a random nonzero 32-bit process identifier.
//
// The id is only meant for logs and diagnostics. Nothing coordinates ids
// across processes, so two servers of a fleet may collide.
func GenProcessID() uint32 {
	for {
		u := guuid.New() // version 4, crypto/rand backed
		// the first 6 bytes of a v4 UUID are fully random
		if id := binary.BigEndian.Uint32(u[:4]); id != 0 {
			return id
		}
	}
}
