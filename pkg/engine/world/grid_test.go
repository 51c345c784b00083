package world

import "testing"

func TestNewGridFromKinds(t *testing.T) {
	g := NewGridFromKinds([][]TileKind{
		{Grass, Path, Door},
		{Wall, Floor, Wood},
	})

	if k := g.Kinds(); len(k) != 2 || len(k[0]) != 3 {
		t.Fatalf("dimensions = %dx%d, want 2x3", len(k), len(k[0]))
	}
	if got := g.KindAt(0, 2); got != Door {
		t.Errorf("KindAt(0,2) = %v, want door", got)
	}
	if got := g.KindAt(5, 5); got != Grass {
		t.Errorf("KindAt out of bounds = %v, want grass", got)
	}
	if g.GetCell(-1, 0) != nil {
		t.Error("GetCell(-1,0) should be nil")
	}
}

func linkedNeighbors(c *Cell) int {
	n := 0
	for _, dir := range AllDirections() {
		if c.GetNeighbor(dir) != nil {
			n++
		}
	}
	return n
}

func TestGridNeighborsAreLinked(t *testing.T) {
	g := NewGrid(3, 3)
	center := g.GetCell(1, 1)

	if got := linkedNeighbors(center); got != 4 {
		t.Errorf("center neighbors = %d, want 4", got)
	}
	for _, dir := range AllDirections() {
		dr, dc := dir.Delta()
		if center.GetNeighbor(dir) != g.GetCell(1+dr, 1+dc) {
			t.Errorf("%v neighbor not linked", dir)
		}
		if center.GetNeighbor(dir).GetNeighbor(dir.Opposite()) != center {
			t.Errorf("%v link should be bidirectional", dir)
		}
	}

	if got := linkedNeighbors(g.GetCell(0, 0)); got != 2 {
		t.Errorf("corner neighbors = %d, want 2", got)
	}
	if g.GetCell(0, 2).GetNeighbor(East) != nil {
		t.Error("edge cells must not wrap")
	}
}

func TestNilCellHasNoNeighbors(t *testing.T) {
	var c *Cell
	if c.GetNeighbor(North) != nil || c.IsDoor() {
		t.Error("nil cell should read as empty")
	}
}

func TestTileKindFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want TileKind
	}{
		{'g', Grass},
		{'G', Grass},
		{'s', Path},
		{'.', Path},
		{'B', Floor},
		{'d', Wood},
		{'D', Door},
		{'X', Wall},
		{'W', Wall},
		{'?', Grass},
	}
	for _, tt := range tests {
		if got := TileKindFromRune(tt.r); got != tt.want {
			t.Errorf("TileKindFromRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestKindsReturnsCopy(t *testing.T) {
	g := NewGrid(1, 2)
	k := g.Kinds()
	k[0][0] = Wall
	if g.KindAt(0, 0) != Grass {
		t.Error("Kinds should not alias grid storage")
	}
}

func TestProbeOrder(t *testing.T) {
	want := []Direction{East, West, South, North}
	got := ProbeOrder()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ProbeOrder()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
