// Package tui is the terminal surface. Every tile is two characters wide
// and one row tall; the world, name tags and the hint are drawn into a
// character canvas each tick.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"moneymoves/pkg/engine/input"
	"moneymoves/pkg/game/gameplay"
	"moneymoves/pkg/game/labels"
	"moneymoves/pkg/game/renderer"
)

// Terminals only report key presses. A direction counts as held for this
// long after its last press, which key repeat keeps refreshing.
const holdWindow = 180 * time.Millisecond

// Character cell size in world pixels
const (
	cellW = gameplay.PX / 2
	cellH = gameplay.PX
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorGrass   color.Style
	colorPath    color.Style
	colorFloor   color.Style
	colorWood    color.Style
	colorDoor    color.Style
	colorWall    color.Style
	colorPlayer  color.Style
	colorLabel   color.Style
	colorHint    color.Style
	colorAction  color.Style
	colorSubtle  color.Style
	colorDenied  color.Style
	colorHeading color.Style

	out io.Writer

	held    map[input.Action]time.Time
	pending input.Controls

	// per-scene cache, dropped when the scene changes
	sceneID    uuid.UUID
	background [][]cell

	status string
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{
		out:     os.Stdout,
		held:    map[input.Action]time.Time{},
		pending: input.NoControls(),
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorGrass = color.Style{color.FgGreen}
	t.colorPath = color.Style{color.FgYellow}
	t.colorFloor = color.Style{color.FgGray}
	t.colorWood = color.Style{color.FgYellow, color.OpBold}
	t.colorDoor = color.Style{color.FgMagenta, color.OpBold}
	t.colorWall = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorLabel = color.Style{color.FgWhite, color.OpBold}
	t.colorHint = color.Style{color.FgBlack, color.BgYellow}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorHeading = color.Style{color.FgCyan, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// measure sizes text in world pixels, one character per cell
func (t *TUIRenderer) measure(text string) (float64, float64) {
	return float64(utf8.RuneCountInString(text)) * cellW, cellH * 0.4
}

// Run puts the terminal in raw mode and drives the game at the frame rate
// until quit or ctx is cancelled.
func (t *TUIRenderer) Run(ctx context.Context, d renderer.Driver) error {
	t.Init()

	reader, err := input.NewTerminalReader()
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer reader.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	keys := reader.Stream(ctx)

	d.SetMeasurer(labels.MeasureFunc(t.measure))

	t.Clear()
	fmt.Fprint(t.out, "\x1b[?25l")
	defer fmt.Fprint(t.out, "\x1b[?25h\x1b[0m\r\n")

	ticker := time.NewTicker(renderer.FrameTime)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-keys:
			if !ok {
				return nil
			}
			t.press(raw)
		case now := <-ticker.C:
			controls := t.controls(now)
			dt := now.Sub(last)
			last = now

			view := d.Update(controls, dt)
			if controls.Quit {
				return nil
			}
			if controls.Export {
				t.export(d)
			}
			t.draw(view)
		}
	}
}

func (t *TUIRenderer) export(d renderer.Driver) {
	path, err := d.Export()
	if err != nil {
		t.status = t.colorDenied.Sprint(err.Error())
		return
	}
	t.status = t.colorAction.Sprint(gotext.Get("Summary saved to %s", path))
}

// press records one key. Directions are held for a window, everything else
// is an edge for the next tick.
func (t *TUIRenderer) press(raw input.RawInput) {
	in := input.MapToIntent(input.NewDebouncedInput(raw))
	switch in.Action {
	case input.ActionNone:
		return
	case input.ActionMoveNorth, input.ActionMoveSouth, input.ActionMoveWest, input.ActionMoveEast:
		t.held[in.Action] = raw.Timestamp
	default:
		t.pending.Apply(in)
	}
}

// controls builds this tick's snapshot and clears the edges
func (t *TUIRenderer) controls(now time.Time) input.Controls {
	c := t.pending
	t.pending = input.NoControls()

	for action, at := range t.held {
		if now.Sub(at) > holdWindow {
			delete(t.held, action)
			continue
		}
		c.Apply(input.Intent{Action: action})
	}
	return c
}

// size returns the terminal width, with a fallback when not a terminal
func (t *TUIRenderer) size() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80, 24
	}
	return w, h
}
