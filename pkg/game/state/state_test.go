package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyClampsEveryField(t *testing.T) {
	tests := []struct {
		name    string
		effects map[string]int
		check   func(t *testing.T, s Stats)
	}{
		{"stress over 100", map[string]int{"stress": 1000}, func(t *testing.T, s Stats) {
			assert.Equal(t, 100, s.Stress)
		}},
		{"stress below 0", map[string]int{"stress": -1000}, func(t *testing.T, s Stats) {
			assert.Equal(t, 0, s.Stress)
		}},
		{"money below 0", map[string]int{"money": -5000}, func(t *testing.T, s Stats) {
			assert.Equal(t, 0, s.Money)
		}},
		{"credit below 0", map[string]int{"credit": -651}, func(t *testing.T, s Stats) {
			assert.Equal(t, 0, s.Credit)
		}},
		{"debt below 0", map[string]int{"debt": -1}, func(t *testing.T, s Stats) {
			assert.Equal(t, 0, s.Debt)
		}},
		{"debt grows", map[string]int{"debt": 600}, func(t *testing.T, s Stats) {
			assert.Equal(t, 600, s.Debt)
		}},
		{"side ledger clamps", map[string]int{"savings": -250, "knowledge": 4}, func(t *testing.T, s Stats) {
			assert.Equal(t, 0, s.Get("savings"))
			assert.Equal(t, 4, s.Get("knowledge"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, InitialStats().Apply(tt.effects))
		})
	}
}

func TestApplyInvariantHoldsForManyDeltas(t *testing.T) {
	s := InitialStats()
	for i := -3000; i <= 3000; i += 137 {
		s = s.Apply(map[string]int{"money": i, "credit": -i, "stress": i / 7, "debt": -i})
		assert.GreaterOrEqual(t, s.Money, 0)
		assert.GreaterOrEqual(t, s.Credit, 0)
		assert.GreaterOrEqual(t, s.Debt, 0)
		assert.GreaterOrEqual(t, s.Stress, 0)
		assert.LessOrEqual(t, s.Stress, 100)
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	s := InitialStats().Apply(map[string]int{"savings": 10})
	_ = s.Apply(map[string]int{"savings": 5, "money": -100})
	assert.Equal(t, 10, s.Get("savings"))
	assert.Equal(t, 1100, s.Money)
}

func TestHappiness(t *testing.T) {
	assert.Equal(t, 70, InitialStats().Happiness())
	assert.Equal(t, 0, Stats{Stress: 100}.Happiness())
}

func TestStatsJSONIsFlat(t *testing.T) {
	s := InitialStats().Apply(map[string]int{"savings": 5})
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"money":1100,"credit":650,"stress":30,"debt":0,"savings":5}`, string(data))

	var back Stats
	require.NoError(t, json.Unmarshal([]byte(`{"money":-4,"stress":140,"knowledge":3}`), &back))
	assert.Equal(t, 0, back.Money)
	assert.Equal(t, 650, back.Credit)
	assert.Equal(t, 100, back.Stress)
	assert.Equal(t, 3, back.Get("knowledge"))
}

func TestProgressMarkCompleted(t *testing.T) {
	p := NewProgress()
	p.MarkCompleted("john", true)
	p.MarkCompleted("ava", false)

	assert.True(t, p.IsCompleted("ava"))
	assert.False(t, p.IsCompleted("banker"))
	assert.Equal(t, 1, p.CorrectCount)
	assert.Equal(t, []string{"ava", "john"}, p.CompletedIDs())

	p.ResetLevel()
	assert.Empty(t, p.CompletedIDs())
	assert.Equal(t, 0, p.CorrectCount)
}

func TestChoiceRecordUsesEntityIDKey(t *testing.T) {
	data, err := json.Marshal(ChoiceRecord{Level: 1, EntityID: "banker", Correct: true})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entityId":"banker"`)
	assert.NotContains(t, string(data), "npcId")

	var back ChoiceRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "banker", back.EntityID)
	assert.Equal(t, 1, back.Level)
	assert.True(t, back.Correct)
}

func TestChoiceRecordReadsOlderNPCIDKey(t *testing.T) {
	var c ChoiceRecord
	require.NoError(t, json.Unmarshal([]byte(`{"level":2,"npcId":"ava","choiceText":"Save it"}`), &c))
	assert.Equal(t, "ava", c.EntityID)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, "Save it", c.ChoiceText)

	require.NoError(t, json.Unmarshal([]byte(`{"entityId":"john","npcId":"ava"}`), &c))
	assert.Equal(t, "john", c.EntityID, "entityId wins")
}
