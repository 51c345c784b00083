// Package scenario builds the decision prompt an advisor presents, layered
// for the current level, and judges the player's choice.
package scenario

import (
	"strings"

	"moneymoves/pkg/game/content"
)

// Choice is one option in a scenario
type Choice struct {
	Text    string         `json:"text"`
	Effects map[string]int `json:"effects"`
	Correct *bool          `json:"correct,omitempty"`
	Result  string         `json:"result"`
}

// Scenario is a generated decision prompt
type Scenario struct {
	NPC         string   `json:"npc"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// Generator builds scenarios from a content pack. The pack is never mutated.
type Generator struct {
	pack *content.Pack
}

// NewGenerator creates a generator over the given content
func NewGenerator(pack *content.Pack) *Generator {
	return &Generator{pack: pack}
}

// Pack returns the content the generator reads from
func (g *Generator) Pack() *content.Pack {
	return g.pack
}

func choiceFromDef(d content.ChoiceDef) Choice {
	c := Choice{
		Text:    d.Text,
		Effects: copyEffects(d.EffectDeltas()),
		Result:  d.Result,
	}
	if d.Correct != nil {
		v := *d.Correct
		c.Correct = &v
	}
	return c
}

func copyEffects(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Build returns a fresh scenario for the NPC at the given 0-based level.
//
// Level 1 appends the NPC's balanced choice. Level 2 rewrites every base
// choice by keyword class and then appends the NPC's tempting choice.
func (g *Generator) Build(npcID string, levelIndex int) Scenario {
	base := g.pack.ScenarioFor(npcID)

	sc := Scenario{
		NPC:         npcID,
		Title:       base.Title,
		Description: base.Description,
	}
	if sc.Title == "" {
		sc.Title = "Scenario"
	}
	for _, d := range base.Choices {
		sc.Choices = append(sc.Choices, choiceFromDef(d))
	}

	tier, hasTier := g.pack.Tiers[levelIndex]
	if hasTier {
		sc.Title += tier.TitleSuffix
		sc.Description += tier.DescriptionSuffix
	}

	switch levelIndex {
	case 1:
		if d, ok := g.pack.Balanced[npcID]; ok {
			sc.Choices = append(sc.Choices, choiceFromDef(d))
		}
	case 2:
		for i := range sc.Choices {
			applyHardMode(&sc.Choices[i])
		}
		if d, ok := g.pack.Tempting[npcID]; ok {
			sc.Choices = append(sc.Choices, choiceFromDef(d))
		}
	}

	return sc
}

func applyHardMode(c *Choice) {
	for _, cat := range Classify(c.Text) {
		adj := HardMode[cat]
		for k, d := range adj.Deltas {
			c.Effects[k] += d
		}
		c.Result += adj.ResultSuffix
	}
}

// Score is the weighted fallback used when a choice has no explicit flag
func Score(effects map[string]int) float64 {
	return float64(effects["savings"]) +
		float64(effects["knowledge"]) +
		float64(effects["happiness"])*0.25 -
		float64(effects["debt"])*0.001
}

// IsCorrect resolves a choice's correctness: the explicit flag wins,
// otherwise a score of at least 0.5 is correct.
func IsCorrect(c Choice) bool {
	if c.Correct != nil {
		return *c.Correct
	}
	return Score(c.Effects) >= 0.5
}

// LessonFor returns the lesson an incorrect choice teaches
func (g *Generator) LessonFor(npcID string, c Choice) string {
	rule, ok := g.pack.LessonRules[npcID]
	if !ok {
		rule = g.pack.LessonRules["banker"]
	}

	topic := rule.Topic
	if topic == "" {
		topic = rule.Otherwise
		if rule.Contains != "" && strings.Contains(strings.ToLower(c.Text), strings.ToLower(rule.Contains)) {
			topic = rule.Then
		}
	}
	return g.pack.Lessons[topic]
}
