package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"moneymoves/pkg/game/labels"
)

// Hint is the speech bubble shown above the active target
type Hint struct {
	Visible bool
	Text    string
	Box     labels.Rect
}

// hintText returns the prompt for a target
func hintText(t Target) string {
	switch t.Kind {
	case TargetNPC:
		name := t.NPC.DisplayName
		if name == "" {
			name = gotext.Get("Talk")
		}
		return gotext.Get("%s — press E", name)
	case TargetDoor:
		return gotext.Get("Press E to enter")
	default:
		return ""
	}
}

// hintFor sizes and positions the bubble, centred over the target.
// NPC bubbles follow the bobbing sprite.
func (s *Scene) hintFor(t Target, npcPos map[string]labels.Point) Hint {
	if t.Kind == TargetNone {
		return Hint{}
	}

	text := hintText(t)
	tw, th := s.measurer.Measure(text)
	w := tw + labels.PadX*2
	h := th + labels.PadY*2

	var x, y float64
	switch t.Kind {
	case TargetNPC:
		p := npcPos[t.NPC.ID]
		x = p.X - w/2
		y = p.Y - PX*0.95
	case TargetDoor:
		x = float64(t.Door.X)*PX + PX/2 - w/2
		y = float64(t.Door.Y)*PX - PX*0.75
	}

	return Hint{Visible: true, Text: text, Box: labels.Rect{X: x, Y: y, W: w, H: h}}
}
