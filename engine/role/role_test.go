package role

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"master": Master,
		"world":  World,
		"gate":   Gate,
		"db":     DB,
		"login":  Login,
		"game":   Game,
	}
	for token, want := range cases {
		r, ok := ParseRole(token)
		assert.Tf(t, ok, "%s should be recognized", token)
		assert.Equal(t, want, r)
	}
}

func TestParseRoleDefaultsToMaster(t *testing.T) {
	for _, token := range []string{"bogus", "", "World", "DB", " game", "gate "} {
		r, ok := ParseRole(token)
		assert.Tf(t, !ok, "%q should not be recognized", token)
		assert.Equal(t, Master, r)
	}
}

func TestRoleNames(t *testing.T) {
	assert.Equal(t, "Database", DB.String())
	assert.Equal(t, "db", DB.Token())
	assert.Equal(t, "Game", Game.String())
	assert.Equal(t, "Unknown", Role(42).String())
	assert.Equal(t, 6, len(All()))
	for _, r := range All() {
		parsed, ok := ParseRole(r.Token())
		assert.T(t, ok)
		assert.Equal(t, r, parsed)
	}
}
