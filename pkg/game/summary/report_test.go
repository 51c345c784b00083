package summary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneymoves/pkg/game/state"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,100", Money(1100))
	assert.Equal(t, "$0", Money(0))
	assert.Equal(t, "$1,234,567", Money(1234567))
}

func TestEffectList(t *testing.T) {
	assert.Equal(t, "debt: +200 · knowledge: -2 · savings: +0",
		EffectList(map[string]int{"savings": 0, "knowledge": -2, "debt": 200}))
	assert.Equal(t, "", EffectList(nil))
}

func TestLessonLine(t *testing.T) {
	tests := []struct {
		choice string
		want   string
	}{
		{"Short-term high-interest loan to keep savings untouched.", "High-interest debt and fees compound fast. Compare APRs, avoid fees, and plan a quick payoff."},
		{"Premium rewards card ($75 fee)", "High-interest debt and fees compound fast. Compare APRs, avoid fees, and plan a quick payoff."},
		{"Buy it on the card", "Use credit on-time and in-full with low utilization (<30%) to build score without interest."},
		{"Take the bus for a month and save", "Automate saving and budget first; it turns intentions into progress."},
		{"Skip the repair", "Emergency funds turn crises into inconveniences. Start with $500–$1,000 and grow from there."},
		{"Spend the entire $500", "Make a plan, avoid high-interest traps, and let small consistent moves compound."},
	}

	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			assert.Equal(t, tt.want, LessonLine(tt.choice))
		})
	}
}

func history() []state.ChoiceRecord {
	return []state.ChoiceRecord{
		{Level: 0, EntityID: "ava", ScenarioTitle: "You Got Your First Job!", ChoiceText: "Save $300, spend $200 on essentials", Correct: true, Result: "Nice balance!", Effects: map[string]int{"savings": 300}},
		{Level: 0, EntityID: "john", ScenarioTitle: "Credit Card Temptation", ChoiceText: "Buy it! I’ll pay it off over time", Correct: false, Effects: map[string]int{"debt": 900}},
	}
}

func TestBuild(t *testing.T) {
	stats := state.InitialStats()
	stats.Stress = 45
	stats.Debt = 900

	r := Build(stats, history(), false)

	assert.Equal(t, 1100, r.NetWorth)
	assert.Equal(t, 55, r.Happiness)
	assert.Equal(t, 900, r.Debt)
	require.Len(t, r.Steps, 2)
	assert.Equal(t, 2, r.Steps[1].Number)
	assert.Equal(t, "debt: +900", r.Steps[1].Effects)
	require.Len(t, r.Lessons, 1)
	assert.Equal(t, "Credit Card Temptation", r.Lessons[0].Title)
	assert.Contains(t, r.Rule, "Rule of thumb")
}

func TestBuildCleanRound(t *testing.T) {
	h := history()[:1]
	r := Build(state.InitialStats(), h, true)

	assert.Empty(t, r.Lessons)
	assert.Contains(t, r.Rule, "Clean round")
	assert.Equal(t, "You passed every level!", r.Heading())
}

func TestRender(t *testing.T) {
	r := Build(state.InitialStats(), history(), false)
	out := r.Render(80)

	assert.Contains(t, out, "Choices Timeline")
	assert.Contains(t, out, "Credit Card Temptation")
	assert.Contains(t, out, "$1,100")
	assert.Contains(t, out, "debt: +900")
}

func TestWritePDF(t *testing.T) {
	r := Build(state.InitialStats(), history(), false)

	var buf bytes.Buffer
	require.NoError(t, r.WritePDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
