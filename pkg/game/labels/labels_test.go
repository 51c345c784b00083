package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monospace measures 7px per byte and 12px of line height
var monospace = MeasureFunc(func(text string) (float64, float64) {
	return float64(len(text)) * 7, 12
})

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", a, true},
		{"strictly right", Rect{X: 11, Y: 0, W: 5, H: 5}, false},
		{"strictly below", Rect{X: 0, Y: 11, W: 5, H: 5}, false},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, true},
		{"strictly left", Rect{X: -6, Y: 0, W: 5, H: 5}, false},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Overlaps(tt.b), tt.name)
		assert.Equal(t, tt.want, tt.b.Overlaps(a), tt.name+" (symmetric)")
	}
}

func TestFarApartLabelsUseRightOffset(t *testing.T) {
	l1 := &Label{Owner: "a", Text: "Ava", Anchor: Fixed(Point{X: 100, Y: 100})}
	l2 := &Label{Owner: "b", Text: "John", Anchor: Fixed(Point{X: 600, Y: 500})}

	Layout([]*Label{l1, l2}, 1000, 700, monospace)

	assert.Equal(t, Point{X: 122, Y: 100}, l1.Position)
	assert.Equal(t, Point{X: 622, Y: 500}, l2.Position)
	assert.Equal(t, Rect{X: 114, Y: 95, W: 21 + 16, H: 22}, l1.Bounds)
}

func TestSecondLabelMovesLeftWhenRightAndAboveAreTaken(t *testing.T) {
	first := &Label{Owner: "first", Text: "Bank", Anchor: Fixed(Point{X: 200, Y: 200})}
	second := &Label{Owner: "second", Text: "Ava", Anchor: Fixed(Point{X: 200, Y: 200})}

	Layout([]*Label{first, second}, 1000, 1000, monospace)

	assert.Equal(t, Point{X: 222, Y: 200}, first.Position)
	assert.False(t, second.Bounds.Overlaps(first.Bounds))
	// above (0,-18) still touches the first box, so left wins
	assert.Equal(t, Point{X: 178, Y: 200}, second.Position)
}

func TestRightEdgeMovesAbove(t *testing.T) {
	l := &Label{Text: "Banker", Anchor: Fixed(Point{X: 230, Y: 100})}

	Layout([]*Label{l}, 300, 300, monospace)

	require.True(t, l.Bounds.Within(300, 300))
	assert.Equal(t, Point{X: 230, Y: 82}, l.Position, "right would leave the world, above fits")
}

func TestPlacementStaysInBoundsWhenPossible(t *testing.T) {
	worldW, worldH := 400.0, 300.0
	var all []*Label
	for i, p := range []Point{{10, 10}, {390, 10}, {10, 290}, {390, 290}, {200, 150}} {
		all = append(all, &Label{Owner: string(rune('a' + i)), Text: "Tag", Anchor: Fixed(p)})
	}

	Layout(all, worldW, worldH, monospace)

	for _, l := range all {
		if fitsSomewhere(l, worldW, worldH) {
			assert.True(t, l.Bounds.Within(worldW, worldH), "label %s out of bounds: %+v", l.Owner, l.Bounds)
		}
	}
}

func fitsSomewhere(l *Label, w, h float64) bool {
	probe := &Label{Text: l.Text}
	for _, off := range Offsets {
		probe.moveTo(l.Anchor().Add(off), monospace)
		if probe.Bounds.Within(w, h) {
			return true
		}
	}
	return false
}

func TestNoCandidateUsesFallback(t *testing.T) {
	l := &Label{Text: "A very long label that cannot fit", Anchor: Fixed(Point{X: 20, Y: 20})}

	out := Layout([]*Label{l}, 50, 50, monospace)

	require.Len(t, out, 1, "labels are never dropped")
	assert.Equal(t, Point{X: 20, Y: 2}, l.Position)
}

func TestLayoutPreservesOrder(t *testing.T) {
	var all []*Label
	for _, name := range []string{"Ava", "John", "Home", "Garden", "Bank"} {
		all = append(all, &Label{Owner: name, Text: name, Anchor: Fixed(Point{X: 300, Y: 300})})
	}

	out := Layout(all, 1000, 1000, monospace)

	var owners []string
	for _, l := range out {
		owners = append(owners, l.Owner)
	}
	assert.Equal(t, []string{"Ava", "John", "Home", "Garden", "Bank"}, owners)
}

func TestLayoutIsDeterministic(t *testing.T) {
	build := func() []*Label {
		return []*Label{
			{Owner: "a", Text: "Ava", Anchor: Fixed(Point{X: 420, Y: 480})},
			{Owner: "b", Text: "John", Anchor: Fixed(Point{X: 430, Y: 480})},
			{Owner: "c", Text: "Home", Anchor: Fixed(Point{X: 440, Y: 490})},
		}
	}
	a := Layout(build(), 1000, 700, monospace)
	b := Layout(build(), 1000, 700, monospace)
	for i := range a {
		assert.Equal(t, a[i].Bounds, b[i].Bounds)
	}
}
