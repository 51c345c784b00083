package progression

import (
	"github.com/leonelquinteros/gotext"

	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/level"
	"moneymoves/pkg/game/scenario"
	"moneymoves/pkg/game/state"
	"moneymoves/pkg/game/world"
)

// HUD is the heads-up display content
type HUD struct {
	LevelName string
	Progress  string
	NetWorth  int
	Credit    int
	Happiness int
	Debt      int
}

// Mode returns the current state
func (m *Machine) Mode() state.Mode {
	return m.mode
}

// Generation changes whenever the world view must be rebuilt
func (m *Machine) Generation() int {
	return m.generation
}

// Stats returns the player's statistics
func (m *Machine) Stats() state.Stats {
	return m.stats
}

// Progress returns the run progression
func (m *Machine) Progress() state.Progress {
	return m.progress
}

// WorldID returns the id of the world the player is in
func (m *Machine) WorldID() string {
	return m.worldID
}

// SpawnName returns the spawn the player entered the world at
func (m *Machine) SpawnName() string {
	return m.spawnName
}

// World returns the normalized current world
func (m *Machine) World() *world.World {
	return m.atlas.Get(m.worldID)
}

// VisibleNPCs returns the NPCs in the current world, in roster order
func (m *Machine) VisibleNPCs() []entities.NPC {
	return m.roster.InWorld(m.worldID)
}

// Required is the number of NPCs to answer per level
func (m *Machine) Required() int {
	return m.roster.Len()
}

// Level returns the current level
func (m *Machine) Level() level.Level {
	return m.levels.At(m.progress.LevelIndex)
}

// Dialog returns the conversation on screen, if any
func (m *Machine) Dialog() (Dialog, bool) {
	return m.dialog, m.mode == state.ModeDialog
}

// Scenario returns the open scenario during Scenario and Feedback
func (m *Machine) Scenario() (*scenario.Scenario, bool) {
	return m.active, m.active != nil
}

// Feedback returns the result text shown during the dwell
func (m *Machine) Feedback() string {
	return m.feedback
}

// HUD returns the heads-up display content
func (m *Machine) HUD() HUD {
	lvl := m.Level()
	return HUD{
		LevelName: m.levels.DisplayName(m.progress.LevelIndex),
		Progress:  gotext.Get("Talk to all %d • Correct: %d/%d", m.Required(), m.progress.CorrectCount, lvl.NeedCorrect),
		NetWorth:  m.stats.Money,
		Credit:    m.stats.Credit,
		Happiness: m.stats.Happiness(),
		Debt:      m.stats.Debt,
	}
}
