package uuid

import "testing"

func TestGenProcessID(t *testing.T) {
	seen := map[uint32]bool{}
	for i := 0; i < 1000; i++ {
		id := GenProcessID()
		if id == 0 {
			t.Fatalf("GenProcessID returns 0")
		}
		if seen[id] {
			t.Fatalf("GenProcessID returns duplicate id %d", id)
		}
		seen[id] = true
	}
}

func BenchmarkGenProcessID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenProcessID()
	}
}
