// Package labels places name tags and world labels every frame so that
// they stay near their owners, inside the world and clear of each other.
//
// Placement is greedy and order dependent: earlier labels claim space first.
// Callers must keep the label order stable between frames.
package labels

// Padding around the measured text, in pixels
const (
	PadX = 8.0
	PadY = 5.0
)

// Point is a world-space pixel position
type Point struct {
	X float64
	Y float64
}

// Add returns p offset by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Rect is an axis-aligned box
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Overlaps reports whether two boxes touch. Boxes overlap unless one lies
// strictly to the left, right, above or below the other.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.X+r.W < o.X || o.X+o.W < r.X || r.Y+r.H < o.Y || o.Y+o.H < r.Y)
}

// Within reports whether the box lies entirely inside [0,w]x[0,h]
func (r Rect) Within(w, h float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= w && r.Y+r.H <= h
}

// Measurer returns the rendered size of a string
type Measurer interface {
	Measure(text string) (w, h float64)
}

// MeasureFunc adapts a function to Measurer
type MeasureFunc func(text string) (w, h float64)

// Measure calls f
func (f MeasureFunc) Measure(text string) (w, h float64) {
	return f(text)
}

// Label is a transient per-frame text tag.
// Position is the top-left of the text; Bounds includes padding.
type Label struct {
	Owner    string
	Text     string
	Anchor   func() Point
	Position Point
	Bounds   Rect
}

// Offsets are the candidate placements relative to the anchor, in priority
// order: right, above, left, below, then the diagonals.
var Offsets = [8]Point{
	{X: 22, Y: 0},
	{X: 0, Y: -18},
	{X: -22, Y: 0},
	{X: 0, Y: 18},
	{X: 22, Y: -18},
	{X: -22, Y: -18},
	{X: 22, Y: 18},
	{X: -22, Y: 18},
}

// Fallback is used unconditionally when no candidate fits
var Fallback = Point{X: 0, Y: -18}

// moveTo positions the label text at p and recomputes its box
func (l *Label) moveTo(p Point, m Measurer) {
	w, h := m.Measure(l.Text)
	l.Position = p
	l.Bounds = Rect{
		X: p.X - PadX,
		Y: p.Y - PadY,
		W: w + PadX*2,
		H: h + PadY*2,
	}
}

// Layout places every label in order within a world of the given pixel
// size. It returns the placed labels; no label is ever dropped.
func Layout(all []*Label, worldW, worldH float64, m Measurer) []*Label {
	placed := make([]*Label, 0, len(all))

	for _, l := range all {
		anchor := l.Anchor()
		ok := false
		for _, off := range Offsets {
			l.moveTo(anchor.Add(off), m)
			if fits(l.Bounds, placed, worldW, worldH) {
				ok = true
				break
			}
		}
		if !ok {
			l.moveTo(anchor.Add(Fallback), m)
		}
		placed = append(placed, l)
	}

	return placed
}

func fits(b Rect, placed []*Label, worldW, worldH float64) bool {
	if !b.Within(worldW, worldH) {
		return false
	}
	for _, o := range placed {
		if b.Overlaps(o.Bounds) {
			return false
		}
	}
	return true
}

// Fixed returns an anchor that never moves
func Fixed(p Point) func() Point {
	return func() Point { return p }
}
