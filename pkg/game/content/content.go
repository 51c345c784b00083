// Package content loads the scenario text shipped with the game: base
// scenarios, per-level additions, conversations and lesson copy.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// ChoiceDef is one authored choice
type ChoiceDef struct {
	Text    string         `yaml:"text"`
	Effects map[string]int `yaml:"effects"`
	Impact  map[string]int `yaml:"impact"`
	Correct *bool          `yaml:"correct"`
	Result  string         `yaml:"result"`
}

// EffectDeltas returns the effects, falling back to the legacy impact key
func (c ChoiceDef) EffectDeltas() map[string]int {
	if c.Effects != nil {
		return c.Effects
	}
	if c.Impact != nil {
		return c.Impact
	}
	return map[string]int{}
}

// ScenarioDef is a base scenario bound to one NPC
type ScenarioDef struct {
	NPC         string      `yaml:"npc"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Choices     []ChoiceDef `yaml:"choices"`
}

// Tier is the text layered onto a scenario at a given level index
type Tier struct {
	TitleSuffix       string `yaml:"title_suffix"`
	DescriptionSuffix string `yaml:"description_suffix"`
}

// LessonRule picks a lesson topic for an NPC
type LessonRule struct {
	Topic     string `yaml:"topic"`
	Contains  string `yaml:"contains"`
	Then      string `yaml:"then"`
	Otherwise string `yaml:"otherwise"`
}

// Pack is the whole content document
type Pack struct {
	Scenarios     []ScenarioDef         `yaml:"scenarios"`
	Tiers         map[int]Tier          `yaml:"tiers"`
	Balanced      map[string]ChoiceDef  `yaml:"balanced"`
	Tempting      map[string]ChoiceDef  `yaml:"tempting"`
	Conversations map[string][]string   `yaml:"conversations"`
	Lessons       map[string]string     `yaml:"lessons"`
	LessonRules   map[string]LessonRule `yaml:"lesson_rules"`
}

// Parse decodes a content document
func Parse(data []byte) (*Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if len(p.Scenarios) == 0 {
		return nil, fmt.Errorf("content has no scenarios")
	}
	return &p, nil
}

// Default returns the content shipped with the game
func Default() (*Pack, error) {
	return Parse(defaultContent)
}

// MustDefault returns the shipped content and panics if it is broken.
// The document is embedded, so a failure is a build defect.
func MustDefault() *Pack {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}

// ScenarioFor returns the base scenario for an NPC. NPCs without their own
// scenario use the last one in the pool.
func (p *Pack) ScenarioFor(npcID string) ScenarioDef {
	for _, s := range p.Scenarios {
		if s.NPC == npcID {
			return s
		}
	}
	return p.Scenarios[len(p.Scenarios)-1]
}

// Conversation returns the dialog lines for an NPC.
// NPCs without their own conversation use the banker's.
func (p *Pack) Conversation(npcID string) []string {
	if lines, ok := p.Conversations[npcID]; ok {
		return append([]string(nil), lines...)
	}
	return append([]string(nil), p.Conversations["banker"]...)
}
