package level

import "testing"

func TestDefaultTable(t *testing.T) {
	tbl := DefaultTable()

	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
	for i := 0; i < tbl.Len(); i++ {
		if tbl.At(i).NeedCorrect != 3 {
			t.Errorf("level %d NeedCorrect = %d, want 3", i, tbl.At(i).NeedCorrect)
		}
	}
}

func TestIsFinalAndNext(t *testing.T) {
	tbl := DefaultTable()

	tests := []struct {
		index  int
		final  bool
		next   int
		nextOK bool
	}{
		{0, false, 1, true},
		{1, false, 2, true},
		{2, true, 0, false},
		{-1, false, 0, false},
	}

	for _, tt := range tests {
		if got := tbl.IsFinal(tt.index); got != tt.final {
			t.Errorf("IsFinal(%d) = %v, want %v", tt.index, got, tt.final)
		}
		next, ok := tbl.Next(tt.index)
		if next != tt.next || ok != tt.nextOK {
			t.Errorf("Next(%d) = (%d, %v), want (%d, %v)", tt.index, next, ok, tt.next, tt.nextOK)
		}
	}
}

func TestAtClamps(t *testing.T) {
	tbl := DefaultTable()
	if tbl.At(-5).ID != 0 {
		t.Errorf("At(-5).ID = %d, want 0", tbl.At(-5).ID)
	}
	if tbl.At(99).ID != 2 {
		t.Errorf("At(99).ID = %d, want 2", tbl.At(99).ID)
	}
	if (Table{}).At(0) != (Level{}) {
		t.Error("empty table should return zero level")
	}
}

func TestDisplayNameWithoutCatalog(t *testing.T) {
	tbl := DefaultTable()
	// No catalog loaded: gotext returns the message id.
	if got := tbl.DisplayName(1); got != "Level 2 — Credit & Tradeoffs" {
		t.Errorf("DisplayName(1) = %q", got)
	}
}

func TestDisplayNameCustomLevel(t *testing.T) {
	tbl := NewTable(Level{ID: 0, Name: "Bonus", NeedCorrect: 1})
	if got := tbl.DisplayName(0); got != "Bonus" {
		t.Errorf("DisplayName(0) = %q, want Bonus", got)
	}
}
