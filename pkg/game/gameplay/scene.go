// Package gameplay runs the per-frame world interaction: player movement,
// proximity to NPCs and doors, the single active hint, and label layout.
//
// A Scene is one mounted instance of a world. It is rebuilt, with a new
// instance ID, whenever the world changes or the game restarts.
package gameplay

import (
	"time"

	"github.com/google/uuid"

	"moneymoves/pkg/engine/input"
	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/labels"
	"moneymoves/pkg/game/world"
)

// Geometry and tuning
const (
	TileSize = 32.0
	Scale    = 1.8
	// PX is the on-screen size of one tile in world pixels
	PX = TileSize * Scale

	// Speed is the player's movement per tick, in world pixels
	Speed = 2.45

	// ProximityRadius is the Manhattan distance at which an NPC can be talked to
	ProximityRadius = 2

	BobAmplitude = 2.0
	BobPeriod    = 500 * time.Millisecond
)

// SceneConfig describes what a scene shows and who to call back
type SceneConfig struct {
	World     *world.World
	NPCs      []entities.NPC
	SpawnName string
	Measurer  labels.Measurer

	OnTalk   func(npc entities.NPC)
	OnPortal func(x, y int)
}

// Scene is the interactive state of one mounted world
type Scene struct {
	id       uuid.UUID
	world    *world.World
	npcs     []entities.NPC
	measurer labels.Measurer
	onTalk   func(npc entities.NPC)
	onPortal func(x, y int)

	player  labels.Point
	elapsed time.Duration
	bob     []float64
	labels  []*labels.Label
	frame   Frame
}

// NewScene places the player at the named spawn and builds the label set
func NewScene(cfg SceneConfig) *Scene {
	s := &Scene{
		id:       uuid.New(),
		world:    cfg.World,
		npcs:     append([]entities.NPC(nil), cfg.NPCs...),
		measurer: cfg.Measurer,
		onTalk:   cfg.OnTalk,
		onPortal: cfg.OnPortal,
	}
	if s.measurer == nil {
		s.measurer = labels.MeasureFunc(approximateMeasure)
	}
	s.bob = make([]float64, len(s.npcs))

	start := cfg.World.SpawnTile(cfg.SpawnName)
	s.player = TileCenter(start.X, start.Y)
	s.buildLabels()
	s.frame = s.snapshot(input.NoControls())
	return s
}

// ID is the scene's instance token
func (s *Scene) ID() uuid.UUID {
	return s.id
}

// World returns the world the scene shows
func (s *Scene) World() *world.World {
	return s.world
}

// NPCs returns the NPCs visible in this scene, in roster order
func (s *Scene) NPCs() []entities.NPC {
	return s.npcs
}

// Player returns the player's pixel position
func (s *Scene) Player() labels.Point {
	return s.player
}

// LastFrame returns the most recent frame snapshot
func (s *Scene) LastFrame() Frame {
	return s.frame
}

// Size returns the world size in pixels
func (s *Scene) Size() (w, h float64) {
	return float64(s.world.Width) * PX, float64(s.world.Height) * PX
}

// TileCenter returns the pixel centre of a tile
func TileCenter(x, y int) labels.Point {
	return labels.Point{X: float64(x)*PX + PX/2, Y: float64(y)*PX + PX/2}
}

// approximateMeasure is used when no renderer supplies text metrics
func approximateMeasure(text string) (float64, float64) {
	return float64(len([]rune(text))) * 7, 14
}

// Update advances one tick and dispatches an interact edge to the active
// target. Callbacks run after the frame is computed.
func (s *Scene) Update(controls input.Controls, dt time.Duration) Frame {
	s.move(controls)
	s.elapsed += dt

	s.frame = s.snapshot(controls)

	if controls.Interact {
		s.dispatch(s.frame.Target)
	}
	return s.frame
}
