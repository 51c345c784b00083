// Package progression is the run's state machine: conversations, scenario
// choices, the feedback dwell, level advancement, game over and restart.
//
// All methods are called from the frame loop; the machine is not safe for
// concurrent use.
package progression

import (
	"log/slog"
	"time"

	"github.com/leonelquinteros/gotext"

	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/level"
	"moneymoves/pkg/game/scenario"
	"moneymoves/pkg/game/state"
	"moneymoves/pkg/game/storage"
	"moneymoves/pkg/game/world"
)

// FeedbackDwell is how long a choice's result stays on screen
const FeedbackDwell = 900 * time.Millisecond

// Deps are the machine's collaborators. All of them are required except
// Store and Logger.
type Deps struct {
	Generator *scenario.Generator
	Roster    *entities.Roster
	Levels    level.Table
	Atlas     *world.Atlas
	Store     storage.Store
	Logger    *slog.Logger
}

// Dialog is the conversation currently on screen
type Dialog struct {
	NPC    entities.NPC
	Lines  []string
	Cursor int
}

// Line returns the line under the cursor
func (d Dialog) Line() string {
	if d.Cursor < 0 || d.Cursor >= len(d.Lines) {
		return ""
	}
	return d.Lines[d.Cursor]
}

// Last reports whether the cursor is on the final line
func (d Dialog) Last() bool {
	return d.Cursor >= len(d.Lines)-1
}

// Machine drives one run of the game
type Machine struct {
	gen    *scenario.Generator
	roster *entities.Roster
	levels level.Table
	atlas  *world.Atlas
	store  storage.Store
	logger *slog.Logger

	stats     state.Stats
	progress  state.Progress
	mode      state.Mode
	worldID   string
	spawnName string

	dialog   Dialog
	pending  *scenario.Scenario
	active   *scenario.Scenario
	feedback string
	dwell    time.Duration

	generation int
}

// New creates a machine and restores any saved run from the store
func New(deps Deps) *Machine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := &Machine{
		gen:    deps.Generator,
		roster: deps.Roster,
		levels: deps.Levels,
		atlas:  deps.Atlas,
		store:  deps.Store,
		logger: logger.With("component", "progression"),
	}
	m.reset()
	m.restore()
	return m
}

func (m *Machine) reset() {
	m.stats = state.InitialStats()
	m.progress = state.NewProgress()
	m.mode = state.ModeIdle
	m.worldID = string(world.RoleTown)
	m.spawnName = ""
	m.clearEncounter()
}

func (m *Machine) clearEncounter() {
	m.dialog = Dialog{}
	m.pending = nil
	m.active = nil
	m.feedback = ""
	m.dwell = 0
}

// Talk opens the conversation with an NPC. It is ignored outside Idle and
// for NPCs already answered this level. The scenario is built now and
// bound to the conversation.
func (m *Machine) Talk(npc entities.NPC) bool {
	if m.mode != state.ModeIdle || m.progress.IsCompleted(npc.ID) {
		return false
	}

	sc := m.gen.Build(npc.ID, m.progress.LevelIndex)
	m.pending = &sc
	m.dialog = Dialog{NPC: npc, Lines: m.gen.Pack().Conversation(npc.ID)}
	m.mode = state.ModeDialog
	if len(m.dialog.Lines) == 0 {
		m.openScenario()
	}

	m.logger.Debug("conversation started", "npc", npc.ID, "level", m.progress.LevelIndex)
	return true
}

// AdvanceDialog moves to the next line; advancing past the last line opens
// the bound scenario.
func (m *Machine) AdvanceDialog() {
	if m.mode != state.ModeDialog {
		return
	}
	m.dialog.Cursor++
	if m.dialog.Cursor >= len(m.dialog.Lines) {
		m.openScenario()
	}
}

// CloseDialog skips the rest of the conversation and opens the scenario
func (m *Machine) CloseDialog() {
	if m.mode != state.ModeDialog {
		return
	}
	m.openScenario()
}

func (m *Machine) openScenario() {
	if m.pending == nil {
		m.clearEncounter()
		m.mode = state.ModeIdle
		return
	}
	m.active = m.pending
	m.pending = nil
	m.mode = state.ModeScenario
}

// Choose answers the active scenario with the choice at index i. Out of
// range indexes and calls outside the Scenario mode are ignored.
func (m *Machine) Choose(i int) bool {
	if m.mode != state.ModeScenario || m.active == nil {
		return false
	}
	if i < 0 || i >= len(m.active.Choices) {
		return false
	}

	sc := m.active
	choice := sc.Choices[i]
	correct := scenario.IsCorrect(choice)

	m.stats = m.stats.Apply(choice.Effects)
	m.progress.History = append(m.progress.History, state.ChoiceRecord{
		Level:         m.progress.LevelIndex,
		EntityID:      sc.NPC,
		ScenarioTitle: sc.Title,
		ChoiceText:    choice.Text,
		Correct:       correct,
		Result:        choice.Result,
		Effects:       choice.Effects,
	})
	if !correct {
		m.progress.Lessons = append(m.progress.Lessons, state.LessonRecord{
			Scenario: sc.Title,
			Text:     m.gen.LessonFor(sc.NPC, choice),
		})
	}
	m.progress.MarkCompleted(sc.NPC, correct)

	m.feedback = choice.Result
	if m.feedback == "" {
		if correct {
			m.feedback = gotext.Get("Nice — that strengthens your position.")
		} else {
			m.feedback = gotext.Get("Tough choice. Here's the smart take:")
		}
	}
	m.dwell = FeedbackDwell
	m.mode = state.ModeFeedback

	m.logger.Info("choice made",
		"npc", sc.NPC,
		"level", m.progress.LevelIndex,
		"correct", correct,
		"correct_count", m.progress.CorrectCount,
	)
	m.save()
	return true
}

// Tick counts down the feedback dwell. When it expires the scenario is
// cleared and the level completion check runs.
func (m *Machine) Tick(dt time.Duration) {
	if m.mode != state.ModeFeedback {
		return
	}
	m.dwell -= dt
	if m.dwell > 0 {
		return
	}

	m.clearEncounter()
	m.mode = state.ModeIdle
	m.settle()
	m.save()
}

// settle evaluates the level once every NPC has been answered
func (m *Machine) settle() {
	if m.progress.GameOver || m.progress.Completed.Size() < m.Required() {
		return
	}

	need := m.levels.At(m.progress.LevelIndex).NeedCorrect
	pass := m.progress.CorrectCount >= need

	if next, ok := m.levels.Next(m.progress.LevelIndex); ok {
		if pass {
			m.progress.LevelIndex = next
			m.progress.ResetLevel()
			m.worldID = string(world.RoleTown)
			m.spawnName = ""
			m.generation++
			m.logger.Info("level advanced", "level", next)
			return
		}
		m.progress.PassedAll = false
	} else {
		m.progress.PassedAll = pass
	}

	m.progress.GameOver = true
	m.mode = state.ModeGameOver
	m.logger.Info("game over", "level", m.progress.LevelIndex, "passed_all", m.progress.PassedAll)
}

// Portal follows the portal on the current world's door at x,y
func (m *Machine) Portal(x, y int) bool {
	if m.mode != state.ModeIdle {
		return false
	}
	p, ok := m.World().PortalAt(x, y)
	if !ok {
		return false
	}

	m.worldID = p.To.World
	if !m.atlas.Has(m.worldID) {
		m.worldID = string(world.RoleTown)
	}
	m.spawnName = p.To.Spawn
	m.generation++

	m.logger.Debug("portal", "world", m.worldID, "spawn", m.spawnName)
	m.save()
	return true
}

// Restart throws the run away and starts over. The saved run is deleted
// and the generation moves on so the presentation remounts.
func (m *Machine) Restart() {
	m.reset()
	m.generation++
	m.clear()
	m.logger.Info("game restarted")
}
