// Package session glues the world scene to the progression machine. It is
// the driver a presentation surface runs every frame.
package session

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"moneymoves/pkg/engine/input"
	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/gameplay"
	"moneymoves/pkg/game/labels"
	"moneymoves/pkg/game/progression"
	"moneymoves/pkg/game/scenario"
	"moneymoves/pkg/game/state"
	"moneymoves/pkg/game/summary"
	"moneymoves/pkg/game/world"
)

// DialogView is the conversation panel
type DialogView struct {
	Speaker string
	Line    string
	Last    bool
}

// View is everything a surface draws for one frame
type View struct {
	Scene    uuid.UUID
	Mode     state.Mode
	World    *world.World
	Frame    gameplay.Frame
	Player   entities.Theme
	HUD      progression.HUD
	Dialog   *DialogView
	Scenario *scenario.Scenario
	Feedback string
	Summary  *summary.Report
}

// Session owns the machine and the currently mounted scene
type Session struct {
	machine    *progression.Machine
	measurer   labels.Measurer
	logger     *slog.Logger
	scene      *gameplay.Scene
	generation int
	exportPath string
}

// DefaultExportPath is where Export writes unless told otherwise
const DefaultExportPath = "moneymoves-summary.pdf"

// New mounts the machine's current world
func New(m *progression.Machine, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		machine:    m,
		logger:     logger.With("component", "session"),
		exportPath: DefaultExportPath,
	}
	s.mount()
	return s
}

// Machine returns the progression machine
func (s *Session) Machine() *progression.Machine {
	return s.machine
}

// Scene returns the mounted scene
func (s *Session) Scene() *gameplay.Scene {
	return s.scene
}

// SetMeasurer installs the surface's text metrics and remounts the scene
func (s *Session) SetMeasurer(m labels.Measurer) {
	s.measurer = m
	s.mount()
}

func (s *Session) mount() {
	s.generation = s.machine.Generation()
	s.scene = gameplay.NewScene(gameplay.SceneConfig{
		World:     s.machine.World(),
		NPCs:      s.machine.VisibleNPCs(),
		SpawnName: s.machine.SpawnName(),
		Measurer:  s.measurer,
		OnTalk: func(npc entities.NPC) {
			s.machine.Talk(npc)
		},
		OnPortal: func(x, y int) {
			s.machine.Portal(x, y)
		},
	})
	s.logger.Debug("scene mounted",
		"scene", s.scene.ID(),
		"world", s.machine.WorldID(),
		"spawn", s.machine.SpawnName(),
	)
}

// Update runs one frame: input for the current mode, the scene tick, the
// feedback dwell, then a remount if the machine asked for one.
func (s *Session) Update(controls input.Controls, dt time.Duration) View {
	if controls.Restart {
		s.machine.Restart()
	}

	// the world keeps ticking behind panels, without input
	sceneControls := input.NoControls()

	switch s.machine.Mode() {
	case state.ModeIdle:
		sceneControls = controls
	case state.ModeDialog:
		switch {
		case controls.Close:
			s.machine.CloseDialog()
		case controls.Advance || controls.Interact:
			s.machine.AdvanceDialog()
		}
	case state.ModeScenario:
		if controls.Choice >= 0 {
			s.machine.Choose(controls.Choice)
		}
	case state.ModeFeedback:
		s.machine.Tick(dt)
	}

	if s.machine.Mode() != state.ModeGameOver {
		s.scene.Update(sceneControls, dt)
	}

	if s.machine.Generation() != s.generation {
		s.mount()
	}
	return s.View()
}

// View describes the current frame without advancing anything
func (s *Session) View() View {
	m := s.machine
	v := View{
		Scene:  s.scene.ID(),
		Mode:   m.Mode(),
		World:  s.scene.World(),
		Frame:  s.scene.LastFrame(),
		Player: entities.PlayerTheme(),
		HUD:    m.HUD(),
	}

	if d, ok := m.Dialog(); ok {
		v.Dialog = &DialogView{Speaker: d.NPC.DisplayName, Line: d.Line(), Last: d.Last()}
	}
	if sc, ok := m.Scenario(); ok {
		v.Scenario = sc
		if m.Mode() == state.ModeFeedback {
			v.Feedback = m.Feedback()
		}
	}
	if m.Mode() == state.ModeGameOver {
		r := s.Report()
		v.Summary = &r
	}
	return v
}

// SetExportPath changes where Export writes the summary
func (s *Session) SetExportPath(path string) {
	if path != "" {
		s.exportPath = path
	}
}

// Report builds the summary of the run so far
func (s *Session) Report() summary.Report {
	p := s.machine.Progress()
	return summary.Build(s.machine.Stats(), p.History, p.PassedAll)
}

// Export writes the summary of the run so far as a PDF
func (s *Session) Export() (string, error) {
	f, err := os.Create(s.exportPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", s.exportPath, err)
	}
	if err := s.Report().WritePDF(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", s.exportPath, err)
	}
	s.logger.Info("summary exported", "path", s.exportPath)
	return s.exportPath, nil
}
