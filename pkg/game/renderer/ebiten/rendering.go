package ebiten

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"moneymoves/pkg/game/gameplay"
	"moneymoves/pkg/game/labels"
	"moneymoves/pkg/game/menu"
	"moneymoves/pkg/game/renderer"
	"moneymoves/pkg/game/session"
	"moneymoves/pkg/game/state"
	"moneymoves/pkg/game/summary"
)

// Draw renders the last view (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	v := e.view

	switch {
	case v.Summary != nil:
		e.drawSummary(screen, *v.Summary)
	case v.World != nil:
		e.ensureScene(v)
		e.drawWorldImage(v, time.Now())
		e.drawWorldOnScreen(screen, v)
		e.drawHUD(screen, v)
		e.drawConversation(screen, v)
	}

	e.drawFooter(screen, v)
	e.drawCallouts(screen)
}

// ensureScene rebuilds the per-scene images when the scene changed
func (e *EbitenRenderer) ensureScene(v session.View) {
	if v.Scene == e.sceneID && e.background != nil {
		return
	}
	e.releaseScene()
	e.sceneID = v.Scene
	e.background = buildBackground(v.World)
	b := e.background.Bounds()
	e.worldImage = ebiten.NewImage(b.Dx(), b.Dy())
}

// drawWorldImage composes tiles, characters, labels and the hint in world pixels
func (e *EbitenRenderer) drawWorldImage(v session.View, now time.Time) {
	img := e.worldImage
	img.Clear()
	img.DrawImage(e.background, nil)

	f := v.Frame
	focus := getPulsingFocusColor(now)

	if f.Target.Kind == gameplay.TargetDoor {
		x := float32(float64(f.Target.Door.X) * gameplay.PX)
		y := float32(float64(f.Target.Door.Y) * gameplay.PX)
		vector.StrokeRect(img, x+2, y+2, gameplay.PX-4, gameplay.PX-4, 3, focus, false)
	}

	for _, s := range f.Sprites {
		if s.InRange {
			if f.Target.Kind == gameplay.TargetNPC && f.Target.NPC.ID == s.NPC.ID {
				drawFocusRing(img, s.Pos, focus, 3)
			} else {
				drawFocusRing(img, s.Pos, applyAlpha(colorFocus, 0.35), 1.5)
			}
		}
		drawFigure(img, s.Pos, s.NPC.Theme)
	}
	drawFigure(img, f.Player, v.Player)

	for _, l := range f.Labels {
		e.drawLabel(img, l)
	}
	if f.Hint.Visible {
		e.drawHint(img, f.Hint)
	}
}

func (e *EbitenRenderer) drawLabel(dst *ebiten.Image, l *labels.Label) {
	b := l.Bounds
	fillRoundedRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 6, colorLabelBackground)
	e.drawColoredTextWithFace(dst, l.Text, l.Position.X, l.Position.Y, colorLabelText, e.getLabelFace())
}

func (e *EbitenRenderer) drawHint(dst *ebiten.Image, h gameplay.Hint) {
	b := h.Box
	drawRoundedRectWithShadow(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 8, 1.5, colorHintBackground, colorFocus, 0.6)

	// tail pointing down at the target
	var path vector.Path
	cx := float32(b.X + b.W/2)
	bottom := float32(b.Y + b.H)
	path.MoveTo(cx-6, bottom-1)
	path.LineTo(cx+6, bottom-1)
	path.LineTo(cx, bottom+7)
	path.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(colorHintBackground)
	vector.FillPath(dst, &path, nil, op)

	e.drawColoredTextWithFace(dst, h.Text, b.X+labels.PadX, b.Y+labels.PadY, colorHintText, e.getLabelFace())
}

// zoom is the world to screen scale factor
func (e *EbitenRenderer) zoom() float64 {
	return e.tileSize / gameplay.PX
}

func (e *EbitenRenderer) drawWorldOnScreen(screen *ebiten.Image, v session.View) {
	z := e.zoom()
	b := e.worldImage.Bounds()
	viewW := float64(e.windowWidth)
	viewH := float64(e.windowHeight - hudHeight - footerHeight)
	ox, oy := renderer.Camera(float64(b.Dx())*z, float64(b.Dy())*z, viewW, viewH, v.Frame.Player.X*z, v.Frame.Player.Y*z)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(z, z)
	op.GeoM.Translate(ox, oy+hudHeight)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(e.worldImage, op)
}

// drawHUD is the top bar: level, progress and the four stats
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, v session.View) {
	h := v.HUD
	w := float64(e.windowWidth)
	vector.DrawFilledRect(screen, 0, 0, float32(w), hudHeight, colorPanelBackground, false)
	vector.StrokeLine(screen, 0, hudHeight, float32(w), hudHeight, 2, colorPanelBorder, false)

	bold := e.getSansBoldFontFace()
	face := e.getSansFontFace()
	e.drawColoredTextWithFace(screen, h.LevelName, 16, 8, colorHeading, bold)
	e.drawColoredTextWithFace(screen, h.Progress, 16+e.getTextWidthWithFace(h.LevelName, bold)+16, 8, colorText, face)

	stats := []textSegment{
		{gotext.Get("Net Worth:") + " ", colorSubtle}, {summary.Money(h.NetWorth) + "    ", colorText},
		{gotext.Get("Credit:") + " ", colorSubtle}, {fmt.Sprintf("%d    ", h.Credit), colorText},
		{gotext.Get("Happiness:") + " ", colorSubtle}, {fmt.Sprintf("%d%%    ", h.Happiness), colorText},
		{gotext.Get("Debt:") + " ", colorSubtle}, {summary.Money(h.Debt), debtColor(h.Debt)},
	}
	e.drawColoredTextSegmentsWithFace(screen, stats, 16, 8+lineHeight(bold), face)
}

func debtColor(debt int) color.Color {
	if debt > 0 {
		return colorDenied
	}
	return colorText
}

// drawConversation draws the dialog, scenario or feedback panel
func (e *EbitenRenderer) drawConversation(screen *ebiten.Image, v session.View) {
	if v.Dialog == nil && v.Scenario == nil {
		return
	}

	face := e.getSansFontFace()
	title := e.getTitleFontFace()
	mono := e.getMonoUIFontFace()

	w := float64(e.windowWidth) - panelMargin*2
	if w > panelMaxWidth {
		w = panelMaxWidth
	}
	inner := w - panelPadding*2

	type line struct {
		text string
		col  color.Color
		face *text.GoTextFace
	}
	var lines []line
	add := func(s string, col color.Color, f *text.GoTextFace) {
		for _, l := range e.wrapWithFace(s, inner, f) {
			lines = append(lines, line{l, col, f})
		}
	}

	switch {
	case v.Dialog != nil:
		add(v.Dialog.Speaker, colorHeading, title)
		add(v.Dialog.Line, colorText, face)
		if v.Dialog.Last {
			add("[space] "+gotext.Get("Close"), colorAction, mono)
		} else {
			add("[space] "+gotext.Get("Next")+"   [tab] "+gotext.Get("Close"), colorAction, mono)
		}
	case v.Scenario != nil:
		sc := v.Scenario
		add(sc.Title, colorHeading, title)
		add(sc.Description, colorText, face)
		add("", colorText, face)
		if v.Mode == state.ModeFeedback {
			add(v.Feedback, colorCorrect, face)
			break
		}
		for i, ch := range sc.Choices {
			add(fmt.Sprintf("%d) %s", i+1, ch.Text), colorText, face)
		}
		add(gotext.Get("Press a number to choose"), colorSubtle, mono)
	}

	h := panelPadding * 2.0
	for _, l := range lines {
		h += lineHeight(l.face)
	}
	x := (float64(e.windowWidth) - w) / 2
	y := float64(e.windowHeight) - footerHeight - panelMargin - h
	if y < hudHeight+8 {
		y = hudHeight + 8
	}

	drawPanel(screen, x, y, w, h)
	cy := y + panelPadding
	for _, l := range lines {
		e.drawColoredTextWithFace(screen, l.text, x+panelPadding, cy, l.col, l.face)
		cy += lineHeight(l.face)
	}
}

func (e *EbitenRenderer) drawFooter(screen *ebiten.Image, v session.View) {
	y := float64(e.windowHeight - footerHeight)
	vector.DrawFilledRect(screen, 0, float32(y), float32(e.windowWidth), footerHeight, colorPanelBackground, false)

	help := menu.FooterLine(v.Mode) + " · [+/-] " + gotext.Get("Zoom")
	if v.Mode == state.ModeGameOver {
		help = gotext.Get("Press R to play again") + " · " + menu.FooterLine(v.Mode)
	}
	e.drawColoredTextWithFace(screen, help, 12, y+6, colorSubtle, e.getMonoUIFontFace())
}

// drawSummary is the end of game reflection screen
func (e *EbitenRenderer) drawSummary(screen *ebiten.Image, r summary.Report) {
	face := e.getSansFontFace()
	bold := e.getSansBoldFontFace()
	title := e.getTitleFontFace()

	w := float64(e.windowWidth) - panelMargin*2
	if w > panelMaxWidth {
		w = panelMaxWidth
	}
	x := (float64(e.windowWidth) - w) / 2
	y := float64(panelMargin)
	h := float64(e.windowHeight) - footerHeight - panelMargin*2
	drawPanel(screen, x, y, w, h)

	inner := w - panelPadding*2
	bottom := y + h - panelPadding
	cy := y + panelPadding
	put := func(s string, col color.Color, f *text.GoTextFace) bool {
		for _, l := range e.wrapWithFace(s, inner, f) {
			if cy+lineHeight(f) > bottom {
				return false
			}
			e.drawColoredTextWithFace(screen, l, x+panelPadding, cy, col, f)
			cy += lineHeight(f)
		}
		return true
	}

	headingColor := colorCorrect
	if !r.PassedAll {
		headingColor = colorDenied
	}
	put(r.Heading(), headingColor, title)
	put(gotext.Get("Your money moves, at a glance."), colorSubtle, face)
	cy += 6
	put(r.StatLine(), colorText, bold)
	cy += 10

	put(gotext.Get("Choices Timeline"), colorHeading, bold)
	for _, s := range r.Steps {
		col := colorCorrect
		if !s.Correct {
			col = colorDenied
		}
		if !put(fmt.Sprintf("%d. %s", s.Number, s.Title), col, bold) {
			return
		}
		if !put("    "+gotext.Get("You chose: ")+s.ChoiceText, colorText, face) {
			return
		}
		if s.Effects != "" && !put("    "+gotext.Get("Effects: ")+s.Effects, colorSubtle, face) {
			return
		}
	}
	cy += 10

	if len(r.Lessons) > 0 {
		put(gotext.Get("What to take with you"), colorHeading, bold)
		for _, l := range r.Lessons {
			if !put("• "+l.Title+": "+l.Text, colorText, face) {
				return
			}
		}
		cy += 10
	}
	put(r.Rule, colorAction, bold)
}
