package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAtlas(t *testing.T) {
	a, err := DefaultAtlas()
	require.NoError(t, err)

	town := a.Get("town")
	assert.Equal(t, 18, town.Width)
	assert.True(t, town.IsDoor(16, 2))
	_, ok := town.Spawn("bankDoor")
	assert.True(t, ok)

	bank := a.Get("bank")
	assert.Equal(t, 10, bank.Width)
	p, ok := bank.PortalAt(5, 6)
	require.True(t, ok)
	assert.Equal(t, "bankDoor", p.To.Spawn)

	assert.Same(t, town, a.Get("nowhere"))
}

func TestLoadAtlasFallsBackPerRole(t *testing.T) {
	fb := DefaultFallbacks()
	a, err := LoadAtlas([]byte(`
town:
  tiles: ["gg", "g"]
bank:
  tiles: ["BB", "BD"]
`), fb)
	require.NoError(t, err)

	assert.Same(t, fb.Town, a.Get("town"))
	assert.NotSame(t, fb.Bank, a.Get("bank"))
	assert.True(t, a.Get("bank").IsDoor(1, 1))
}

func TestLoadAtlasBadYAML(t *testing.T) {
	fb := DefaultFallbacks()
	a, err := LoadAtlas([]byte("town: [unclosed"), fb)
	assert.Error(t, err)
	assert.Same(t, fb.Town, a.Get("town"))
	assert.Same(t, fb.Bank, a.Get("bank"))
}
