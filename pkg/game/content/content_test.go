package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	require.Len(t, p.Scenarios, 3)
	assert.Equal(t, "You Got Your First Job!", p.ScenarioFor("ava").Title)
	assert.Equal(t, "Credit Card Temptation", p.ScenarioFor("john").Title)
	assert.Equal(t, "Emergency Fund Moment", p.ScenarioFor("banker").Title)
	assert.Equal(t, "Emergency Fund Moment", p.ScenarioFor("stranger").Title)

	assert.Equal(t, " — Tradeoffs", p.Tiers[1].TitleSuffix)
	assert.Equal(t, " — Hard Mode", p.Tiers[2].TitleSuffix)

	for _, id := range []string{"ava", "john", "banker"} {
		assert.Len(t, p.Conversation(id), 3, id)
		require.NotNil(t, p.Balanced[id].Correct, id)
		assert.True(t, *p.Balanced[id].Correct, id)
		require.NotNil(t, p.Tempting[id].Correct, id)
		assert.False(t, *p.Tempting[id].Correct, id)
	}
	assert.Len(t, p.Lessons, 4)
}

func TestEffectDeltasFallsBackToImpact(t *testing.T) {
	p := MustDefault()
	c := p.ScenarioFor("john").Choices[2]

	assert.Nil(t, c.Effects)
	assert.Equal(t, map[string]int{"savings": -300, "debt": 600}, c.EffectDeltas())
	assert.Empty(t, ChoiceDef{}.EffectDeltas())
}

func TestConversationIsACopy(t *testing.T) {
	p := MustDefault()
	lines := p.Conversation("ava")
	lines[0] = "changed"
	assert.Equal(t, "Ava: Congrats on the paycheck!", p.Conversation("ava")[0])
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := Parse([]byte("lessons: {}"))
	assert.Error(t, err)

	_, err = Parse([]byte("scenarios: [oops"))
	assert.Error(t, err)
}
