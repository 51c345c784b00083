package scenario

import "strings"

// Category is a keyword class a choice's text can fall into
type Category int

const (
	// Risky choices spend everything or borrow expensively
	Risky Category = iota
	// Prudent choices save, budget or research first
	Prudent
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case Risky:
		return "risky"
	case Prudent:
		return "prudent"
	default:
		return "unknown"
	}
}

type rule struct {
	category Category
	keywords []string
}

// rules are evaluated in order; a text can match several categories.
// Matching is case-insensitive substring, so "all" also matches "small".
var rules = []rule{
	{Risky, []string{"spend", "payday", "high-interest", "all"}},
	{Prudent, []string{"save", "budget", "secured", "research", "emergency", "in full"}},
}

// Classify returns every category whose vocabulary appears in text,
// in rule order.
func Classify(text string) []Category {
	lower := strings.ToLower(text)
	var out []Category
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, r.category)
				break
			}
		}
	}
	return out
}

// Adjustment is the hard-mode rewrite applied to a matching choice
type Adjustment struct {
	Deltas       map[string]int
	ResultSuffix string
}

// HardMode maps each category to its hard-mode adjustment
var HardMode = map[Category]Adjustment{
	Risky: {
		Deltas:       map[string]int{"debt": 200, "knowledge": -2, "happiness": -2},
		ResultSuffix: " (Hard-mode costs made this worse.)",
	},
	Prudent: {
		Deltas: map[string]int{"knowledge": 2, "savings": 2},
	},
}
