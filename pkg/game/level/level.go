// Package level defines the fixed progression tiers. The table is built once
// at start-up and handed to the progression machine; nothing here is mutable.
package level

import (
	"github.com/leonelquinteros/gotext"
)

// Level is one progression tier
type Level struct {
	ID          int    // 0-based level index
	Name        string // Untranslated display name
	NeedCorrect int    // Correct choices required to pass
}

// Table is the ordered, immutable list of levels
type Table struct {
	levels []Level
}

// NewTable copies the given levels into a table
func NewTable(levels ...Level) Table {
	return Table{levels: append([]Level(nil), levels...)}
}

// DefaultTable returns the three levels of the game
func DefaultTable() Table {
	return NewTable(
		Level{ID: 0, Name: "Level 1 — Foundations", NeedCorrect: 3},
		Level{ID: 1, Name: "Level 2 — Credit & Tradeoffs", NeedCorrect: 3},
		Level{ID: 2, Name: "Level 3 — Emergencies & Debt", NeedCorrect: 3},
	)
}

// Len returns the number of levels
func (t Table) Len() int {
	return len(t.levels)
}

// At returns the level at index i, clamped into range
func (t Table) At(i int) Level {
	if len(t.levels) == 0 {
		return Level{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.levels) {
		i = len(t.levels) - 1
	}
	return t.levels[i]
}

// IsFinal returns true if index i is the last level
func (t Table) IsFinal(i int) bool {
	return i >= len(t.levels)-1
}

// Next returns the index after i and true, or 0 and false if i is final
func (t Table) Next(i int) (int, bool) {
	if i < 0 || t.IsFinal(i) {
		return 0, false
	}
	return i + 1, true
}

// DisplayName returns the translated name for the level at index i.
// Uses gotext.Get with constant keys to satisfy vet.
func (t Table) DisplayName(i int) string {
	lvl := t.At(i)
	switch lvl.Name {
	case "Level 1 — Foundations":
		return gotext.Get("Level 1 — Foundations")
	case "Level 2 — Credit & Tradeoffs":
		return gotext.Get("Level 2 — Credit & Tradeoffs")
	case "Level 3 — Emergencies & Debt":
		return gotext.Get("Level 3 — Emergencies & Debt")
	default:
		return lvl.Name
	}
}
