package tui

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/muesli/reflow/wordwrap"

	engine "moneymoves/pkg/engine/world"
	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/gameplay"
	"moneymoves/pkg/game/labels"
	"moneymoves/pkg/game/menu"
	"moneymoves/pkg/game/session"
	"moneymoves/pkg/game/state"
	"moneymoves/pkg/game/summary"
	"moneymoves/pkg/game/world"
)

// cell is one character of the canvas, already styled
type cell string

// tileGlyphs are two characters per tile kind
var tileGlyphs = map[engine.TileKind]string{
	engine.Grass: "''",
	engine.Path:  "··",
	engine.Floor: "  ",
	engine.Wood:  "==",
	engine.Door:  "[]",
	engine.Wall:  "██",
}

func (t *TUIRenderer) tileStyle(k engine.TileKind) color.Style {
	switch k {
	case engine.Path:
		return t.colorPath
	case engine.Floor:
		return t.colorFloor
	case engine.Wood:
		return t.colorWood
	case engine.Door:
		return t.colorDoor
	case engine.Wall:
		return t.colorWall
	default:
		return t.colorGrass
	}
}

// buildBackground renders the static tiles of a world once per scene
func (t *TUIRenderer) buildBackground(w *world.World) [][]cell {
	rows := make([][]cell, w.Height)
	for y := 0; y < w.Height; y++ {
		rows[y] = make([]cell, w.Width*2)
		for x := 0; x < w.Width; x++ {
			k := w.Tile(x, y)
			style := t.tileStyle(k)
			for i, r := range []rune(tileGlyphs[k]) {
				rows[y][x*2+i] = cell(style.Sprint(string(r)))
			}
		}
	}
	return rows
}

// canvas returns a fresh copy of the scene background, rebuilding the
// cache when the scene changed
func (t *TUIRenderer) canvas(v session.View) [][]cell {
	if v.Scene != t.sceneID || t.background == nil {
		t.sceneID = v.Scene
		t.background = t.buildBackground(v.World)
	}
	out := make([][]cell, len(t.background))
	for i, row := range t.background {
		out[i] = append([]cell(nil), row...)
	}
	return out
}

// put writes plain text into the canvas at a world pixel position, clipped
func put(c [][]cell, p labels.Point, text string, style color.Style) {
	row := int(p.Y / cellH)
	col := int(p.X / cellW)
	if row < 0 || row >= len(c) {
		return
	}
	for _, r := range text {
		if col >= 0 && col < len(c[row]) {
			c[row][col] = cell(style.Sprint(string(r)))
		}
		col++
	}
}

// figure returns the two characters drawn for a character theme
func figure(initial string, th entities.Theme) string {
	switch th.Kind {
	case entities.ThemeHat:
		return initial + "^"
	case entities.ThemeEmoji:
		return initial + "*"
	case entities.ThemeOutline:
		return "[" + initial + "]"
	default:
		return initial + " "
	}
}

func rgb(c interface{ RGBA() (r, g, b, a uint32) }) color.RGBColor {
	r, g, b, _ := c.RGBA()
	return color.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func (t *TUIRenderer) drawWorld(v session.View) []string {
	c := t.canvas(v)
	f := v.Frame

	for _, s := range f.Sprites {
		name := s.NPC.DisplayName
		if name == "" {
			name = s.NPC.ID
		}
		initial := "?"
		if name != "" {
			initial = strings.ToUpper(string([]rune(name)[:1]))
		}
		style := color.Style{color.OpBold}
		if s.InRange {
			style = color.Style{color.OpBold, color.OpUnderscore}
		}
		glyph := figure(initial, s.NPC.Theme)
		shirt := rgb(s.NPC.Theme.Shirt)
		row := int(s.Pos.Y / cellH)
		col := int((s.Pos.X - cellW) / cellW)
		if row < 0 || row >= len(c) {
			continue
		}
		for _, r := range glyph {
			if col >= 0 && col < len(c[row]) {
				c[row][col] = cell(shirt.Sprint(style.Sprint(string(r))))
			}
			col++
		}
	}

	put(c, labels.Point{X: f.Player.X - cellW, Y: f.Player.Y}, "@@", t.colorPlayer)

	for _, l := range f.Labels {
		put(c, l.Position, l.Text, t.colorLabel)
	}
	if f.Hint.Visible {
		put(c, labels.Point{X: f.Hint.Box.X + labels.PadX, Y: f.Hint.Box.Y + labels.PadY}, f.Hint.Text, t.colorHint)
	}

	lines := make([]string, len(c))
	for i, row := range c {
		var b strings.Builder
		for _, ch := range row {
			b.WriteString(string(ch))
		}
		lines[i] = b.String()
	}
	return lines
}

func (t *TUIRenderer) hud(v session.View) []string {
	h := v.HUD
	return []string{
		t.colorHeading.Sprint(h.LevelName) + " — " + h.Progress,
		fmt.Sprintf("%s %s   %s %d   %s %d%%   %s %s",
			gotext.Get("Net Worth:"), summary.Money(h.NetWorth),
			gotext.Get("Credit:"), h.Credit,
			gotext.Get("Happiness:"), h.Happiness,
			gotext.Get("Debt:"), summary.Money(h.Debt),
		),
	}
}

func wrap(text string, width int) []string {
	return strings.Split(wordwrap.String(text, width), "\n")
}

func (t *TUIRenderer) panel(v session.View, width int) []string {
	var out []string
	switch {
	case v.Dialog != nil:
		out = append(out, t.colorHeading.Sprint(v.Dialog.Speaker))
		out = append(out, wrap(v.Dialog.Line, width)...)
		if v.Dialog.Last {
			out = append(out, t.colorAction.Sprint("[space] "+gotext.Get("Close")))
		} else {
			out = append(out, t.colorAction.Sprint("[space] "+gotext.Get("Next")+"   [tab] "+gotext.Get("Close")))
		}
	case v.Scenario != nil:
		sc := v.Scenario
		out = append(out, t.colorHeading.Sprint(v.HUD.LevelName+" · "+sc.Title))
		out = append(out, wrap(sc.Description, width)...)
		out = append(out, "")
		if v.Mode == state.ModeFeedback {
			out = append(out, wrap(v.Feedback, width)...)
			break
		}
		for i, ch := range sc.Choices {
			out = append(out, wrap(fmt.Sprintf("%s %s", t.colorAction.Sprintf("%d)", i+1), ch.Text), width)...)
		}
		out = append(out, t.colorSubtle.Sprint(gotext.Get("Press a number to choose")))
	}
	return out
}

// draw repaints the whole screen in place
func (t *TUIRenderer) draw(v session.View) {
	width, _ := t.size()
	panelWidth := width - 2
	if panelWidth > 78 {
		panelWidth = 78
	}

	var lines []string
	if v.Summary != nil {
		lines = strings.Split(v.Summary.Render(panelWidth), "\n")
		lines = append(lines, t.colorSubtle.Sprint(gotext.Get("Press R to play again")))
		lines = append(lines, t.colorSubtle.Sprint(menu.FooterLine(v.Mode)))
	} else {
		lines = append(lines, t.hud(v)...)
		lines = append(lines, "")
		lines = append(lines, t.drawWorld(v)...)
		lines = append(lines, "")
		lines = append(lines, t.panel(v, panelWidth)...)
		lines = append(lines, t.colorSubtle.Sprint(menu.FooterLine(v.Mode)))
	}
	if t.status != "" {
		lines = append(lines, t.status)
	}

	var b strings.Builder
	b.WriteString("\x1b[H")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\x1b[K\r\n")
	}
	b.WriteString("\x1b[J")
	fmt.Fprint(t.out, b.String())
}
