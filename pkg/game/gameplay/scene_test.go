package gameplay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneymoves/pkg/engine/input"
	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/labels"
	"moneymoves/pkg/game/world"
)

const frame = 16 * time.Millisecond

// openWorld is a grass field with one door, built through the normalizer
func openWorld(t *testing.T, rows ...string) *world.World {
	t.Helper()
	tiles := make([]any, len(rows))
	for i, r := range rows {
		tiles[i] = r
	}
	w := world.Normalize(map[string]any{
		"id":     "test",
		"tiles":  tiles,
		"spawns": []any{map[string]any{"name": "here", "x": 3, "y": 3}},
	}, world.RoleTown, world.DefaultFallbacks())
	require.Equal(t, "test", w.ID)
	return w
}

func field() []string {
	return []string{
		"gggggggggg",
		"gggggggggg",
		"gggggggggg",
		"gggggggggg",
		"gggggggggg",
		"gggggggggg",
		"gggggggggg",
		"gggggggggg",
	}
}

func hold(c input.Controls) input.Controls {
	c.Choice = -1
	return c
}

func TestSpawnPlacement(t *testing.T) {
	w := openWorld(t, field()...)

	s := NewScene(SceneConfig{World: w, SpawnName: "here"})
	x, y := s.PlayerTile()
	assert.Equal(t, 3, x)
	assert.Equal(t, 3, y)

	s = NewScene(SceneConfig{World: w, SpawnName: "nowhere"})
	x, y = s.PlayerTile()
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)
}

func TestMovementClampsToWorld(t *testing.T) {
	w := openWorld(t, field()...)
	s := NewScene(SceneConfig{World: w})

	for i := 0; i < 500; i++ {
		s.Update(hold(input.Controls{Left: true, Up: true}), frame)
	}
	assert.Equal(t, labels.Point{X: PX / 2, Y: PX / 2}, s.Player())

	for i := 0; i < 1000; i++ {
		s.Update(hold(input.Controls{Right: true, Down: true}), frame)
	}
	pw, ph := s.Size()
	assert.Equal(t, labels.Point{X: pw - PX/2, Y: ph - PX/2}, s.Player())
	x, y := s.PlayerTile()
	assert.Equal(t, 9, x)
	assert.Equal(t, 7, y)
}

func TestMovementPriority(t *testing.T) {
	w := openWorld(t, field()...)
	s := NewScene(SceneConfig{World: w})
	start := s.Player()

	s.Update(hold(input.Controls{Left: true, Right: true, Up: true, Down: true}), frame)
	assert.InDelta(t, start.X-Speed, s.Player().X, 1e-9, "left wins over right")
	assert.InDelta(t, start.Y-Speed, s.Player().Y, 1e-9, "up wins over down")
}

func TestNearestNPCStableTies(t *testing.T) {
	npcs := []entities.NPC{
		{ID: "first", X: 4, Y: 3},
		{ID: "second", X: 2, Y: 3},
		{ID: "far", X: 9, Y: 9},
	}
	assert.Equal(t, 0, NearestNPC(npcs, 3, 3), "equal distance goes to the earlier entry")

	npcs = []entities.NPC{
		{ID: "two", X: 5, Y: 3},
		{ID: "one", X: 3, Y: 4},
	}
	assert.Equal(t, 1, NearestNPC(npcs, 3, 3), "strictly closer wins regardless of order")

	assert.Equal(t, -1, NearestNPC([]entities.NPC{{ID: "x", X: 6, Y: 3}}, 3, 3), "distance 3 is out of range")
	assert.Equal(t, 0, NearestNPC([]entities.NPC{{ID: "x", X: 4, Y: 4}}, 3, 3), "distance 2 is in range")
}

func TestDoorProbeOrder(t *testing.T) {
	rows := field()
	rows[3] = "gggDgDgggg" // west (3,3) and east (5,3) of (4,3)
	rows[4] = "ggggDggggg" // south (4,4)
	w := openWorld(t, rows...)

	p, ok := DoorNear(w, 4, 3)
	require.True(t, ok)
	assert.Equal(t, world.Point{X: 5, Y: 3}, p, "east is probed before west and south")

	p, ok = DoorNear(w, 3, 3)
	require.True(t, ok)
	assert.Equal(t, world.Point{X: 3, Y: 3}, p, "standing on a door wins")

	_, ok = DoorNear(w, 8, 7)
	assert.False(t, ok)

	// out of bounds neighbours are ignored
	_, ok = DoorNear(w, 0, 0)
	assert.False(t, ok)
}

func TestDoorNearFollowsGridEdges(t *testing.T) {
	rows := field()
	rows[4] = "Dggggggggg"
	w := openWorld(t, rows...)

	p, ok := DoorNear(w, 0, 3)
	require.True(t, ok)
	assert.Equal(t, world.Point{X: 0, Y: 4}, p)

	p, ok = DoorNear(w, 1, 4)
	require.True(t, ok)
	assert.Equal(t, world.Point{X: 0, Y: 4}, p)

	_, ok = DoorNear(w, 9, 3)
	assert.False(t, ok, "east of the last column does not wrap to the next row")

	_, ok = DoorNear(w, -1, 4)
	assert.False(t, ok, "a tile outside the world has no neighbours")
}

func TestNPCBeatsDoor(t *testing.T) {
	rows := field()
	rows[2] = "ggDggggggg"
	w := openWorld(t, rows...)
	npcs := []entities.NPC{{ID: "ava", DisplayName: "Ava", X: 4, Y: 2}}

	target := ResolveTarget(w, npcs, 2, 2)
	assert.Equal(t, TargetNPC, target.Kind)
	assert.Equal(t, "ava", target.NPC.ID)

	target = ResolveTarget(w, nil, 2, 2)
	assert.Equal(t, TargetDoor, target.Kind)

	target = ResolveTarget(w, nil, 8, 7)
	assert.Equal(t, TargetNone, target.Kind)
}

func TestInteractDispatch(t *testing.T) {
	rows := field()
	rows[2] = "gggDgggggg"
	w := openWorld(t, rows...)

	var talked []string
	var portals []world.Point
	s := NewScene(SceneConfig{
		World: w,
		NPCs:  []entities.NPC{{ID: "john", DisplayName: "John", X: 7, Y: 6}},
		OnTalk: func(n entities.NPC) {
			talked = append(talked, n.ID)
		},
		OnPortal: func(x, y int) {
			portals = append(portals, world.Point{X: x, Y: y})
		},
	})

	// spawn (2,2): door at (3,2) is east
	f := s.Update(hold(input.Controls{Interact: true}), frame)
	assert.Equal(t, TargetDoor, f.Target.Kind)
	assert.Equal(t, "Press E to enter", f.Hint.Text)
	assert.Equal(t, []world.Point{{X: 3, Y: 2}}, portals)
	assert.Empty(t, talked)

	// walk to (6,6), next to John
	for i := 0; i < 200; i++ {
		s.Update(hold(input.Controls{Right: true, Down: true}), frame)
		if x, y := s.PlayerTile(); x == 6 && y == 6 {
			break
		}
	}
	f = s.Update(hold(input.Controls{Interact: true}), frame)
	assert.Equal(t, TargetNPC, f.Target.Kind)
	assert.Equal(t, "John — press E", f.Hint.Text)
	assert.Equal(t, []string{"john"}, talked)
}

func TestInteractWithoutTargetIsNoop(t *testing.T) {
	w := openWorld(t, field()...)
	called := false
	s := NewScene(SceneConfig{
		World:    w,
		OnTalk:   func(entities.NPC) { called = true },
		OnPortal: func(int, int) { called = true },
	})

	f := s.Update(hold(input.Controls{Interact: true}), frame)
	assert.Equal(t, TargetNone, f.Target.Kind)
	assert.False(t, f.Hint.Visible)
	assert.False(t, called)
}

func TestBobIsCosmetic(t *testing.T) {
	w := openWorld(t, field()...)
	npcs := []entities.NPC{
		{ID: "near", DisplayName: "Near", X: 3, Y: 2},
		{ID: "far", DisplayName: "Far", X: 9, Y: 7},
	}
	s := NewScene(SceneConfig{World: w, NPCs: npcs})

	// 785ms puts sin(t/500) near its peak
	f := s.Update(hold(input.Controls{}), 785*time.Millisecond)

	near := TileCenter(3, 2)
	assert.InDelta(t, near.Y+2*0.99999, f.Sprites[0].Pos.Y, 0.01)
	assert.True(t, f.Sprites[0].InRange)
	assert.Equal(t, TileCenter(9, 7), f.Sprites[1].Pos, "out of range NPCs do not bob")

	assert.Equal(t, TargetNPC, f.Target.Kind)
	assert.Equal(t, "near", f.Target.NPC.ID)
}

func TestLabelOrderIsStable(t *testing.T) {
	w := world.DefaultFallbacks().Town
	s := NewScene(SceneConfig{
		World: w,
		NPCs:  entities.DefaultRoster().InWorld("town"),
	})

	f := s.Update(hold(input.Controls{}), frame)

	var owners []string
	for _, l := range f.Labels {
		owners = append(owners, l.Owner)
	}
	assert.Equal(t, []string{"npc:ava", "npc:john", "world:Home", "world:Garden", "world:Bank"}, owners)
}

func TestSceneIDsAreUnique(t *testing.T) {
	w := openWorld(t, field()...)
	a := NewScene(SceneConfig{World: w})
	b := NewScene(SceneConfig{World: w})
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.ID(), a.LastFrame().SceneID)
}
