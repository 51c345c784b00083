package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "moneymoves/pkg/engine/world"
)

func TestNormalizeRejectsMalformedGeometry(t *testing.T) {
	fb := DefaultFallbacks()

	tests := []struct {
		name string
		raw  map[string]any
		role Role
	}{
		{"nil input", nil, RoleTown},
		{"missing tiles", map[string]any{"width": 3, "height": 2}, RoleTown},
		{"tiles not a list", map[string]any{"tiles": "ggg"}, RoleBank},
		{"empty tiles", map[string]any{"tiles": []any{}}, RoleTown},
		{"empty row", map[string]any{"tiles": []any{""}}, RoleTown},
		{"row not a list", map[string]any{"tiles": []any{42}}, RoleBank},
		{"non-rectangular", map[string]any{"tiles": []any{"ggg", "gg"}}, RoleTown},
		{"width disagrees", map[string]any{"width": 5, "tiles": []any{"ggg", "ggg"}}, RoleTown},
		{"height disagrees", map[string]any{"height": 9, "tiles": []any{"ggg"}}, RoleBank},
		{"width not numeric", map[string]any{"width": "3", "tiles": []any{"ggg"}}, RoleTown},
		{"fractional width", map[string]any{"width": 2.5, "tiles": []any{"gg"}}, RoleTown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, tt.role, fb)
			require.NotNil(t, got)
			assert.Same(t, fb.For(tt.role), got)
			assert.NotNil(t, got.Grid)
		})
	}
}

func TestNormalizeAcceptsStringAndListRows(t *testing.T) {
	fb := DefaultFallbacks()

	w := Normalize(map[string]any{
		"id": "pier",
		"tiles": []any{
			"gDg",
			[]any{"X", "s", "?"},
		},
		"width":  3,
		"height": 2.0,
	}, RoleTown, fb)

	require.NotSame(t, fb.Town, w)
	assert.Equal(t, "pier", w.ID)
	assert.Equal(t, 3, w.Width)
	assert.Equal(t, 2, w.Height)
	assert.True(t, w.IsDoor(1, 0))
	assert.Equal(t, engine.Wall, w.Tile(0, 1))
	assert.Equal(t, engine.Grass, w.Tile(2, 1), "unknown characters become grass")
}

func TestNormalizeInfersDimensionsAndDefaultsDecoration(t *testing.T) {
	w := Normalize(map[string]any{
		"tiles":   []any{"ggg", "ggg"},
		"labels":  "nope",
		"portals": []any{map[string]any{"from": map[string]any{"x": 1}}},
	}, RoleBank, DefaultFallbacks())

	assert.Equal(t, "bank", w.ID)
	assert.Equal(t, 3, w.Width)
	assert.Equal(t, 2, w.Height)
	assert.NotNil(t, w.Labels)
	assert.Empty(t, w.Labels)
	assert.Empty(t, w.Portals)
	assert.Empty(t, w.Spawns)
}

func TestNormalizeSkipsMalformedEntries(t *testing.T) {
	w := Normalize(map[string]any{
		"tiles": []any{"gggg", "gggD"},
		"labels": []any{
			map[string]any{"x": 1, "y": 0, "text": "Ok"},
			map[string]any{"x": 1, "text": "no y"},
			"garbage",
		},
		"portals": []any{
			map[string]any{
				"from": map[string]any{"x": 3, "y": 1},
				"to":   map[string]any{"world": "bank", "spawn": "lobby"},
			},
			map[string]any{"from": map[string]any{"x": 0, "y": 0}, "to": map[string]any{}},
		},
		"spawns": map[string]any{
			"zeta":  map[string]any{"x": 1, "y": 1},
			"alpha": map[string]any{"x": 0, "y": 0},
			"bad":   "x",
		},
	}, RoleTown, DefaultFallbacks())

	require.Len(t, w.Labels, 1)
	assert.Equal(t, "Ok", w.Labels[0].Text)

	require.Len(t, w.Portals, 1)
	p, ok := w.PortalAt(3, 1)
	require.True(t, ok)
	assert.Equal(t, PortalTarget{World: "bank", Spawn: "lobby"}, p.To)

	require.Len(t, w.Spawns, 2)
	assert.Equal(t, "alpha", w.Spawns[0].Name)
	assert.Equal(t, "zeta", w.Spawns[1].Name)
}

func TestSpawnTileDefaults(t *testing.T) {
	town := DefaultFallbacks().Town

	assert.Equal(t, Point{X: 2, Y: 2}, town.SpawnTile("start"))
	assert.Equal(t, Point{X: 2, Y: 2}, town.SpawnTile("missing"))
	assert.Equal(t, Point{X: 2, Y: 2}, town.SpawnTile(""))

	bank := DefaultFallbacks().Bank
	assert.Equal(t, Point{X: 2, Y: 3}, bank.SpawnTile("lobby"))
}

func TestFallbackWorlds(t *testing.T) {
	fb := DefaultFallbacks()

	town := fb.For(RoleTown)
	assert.Equal(t, 18, town.Width)
	assert.Equal(t, 12, town.Height)
	assert.True(t, town.IsDoor(16, 2))
	assert.Equal(t, engine.Wood, town.Tile(7, 5))
	assert.Equal(t, engine.Path, town.Tile(5, 3))
	assert.Equal(t, engine.Path, town.Tile(12, 4))
	assert.Equal(t, engine.Grass, town.Tile(0, 0))

	bank := fb.For(RoleBank)
	assert.Equal(t, 10, bank.Width)
	assert.Equal(t, 7, bank.Height)
	assert.True(t, bank.IsDoor(5, 6))
	p, ok := bank.PortalAt(5, 6)
	require.True(t, ok)
	assert.Equal(t, "town", p.To.World)

	assert.Same(t, fb.Town, fb.For(Role("moon")))
}
