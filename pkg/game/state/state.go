// Package state holds the player's statistics and run progression: the
// bundle that is saved and restored between sessions.
package state

import (
	"encoding/json"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Mode is the progression machine's resting state
type Mode int

const (
	ModeIdle Mode = iota
	ModeDialog
	ModeScenario
	ModeFeedback
	ModeGameOver
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDialog:
		return "dialog"
	case ModeScenario:
		return "scenario"
	case ModeFeedback:
		return "feedback"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ChoiceRecord is one answered scenario
type ChoiceRecord struct {
	Level         int            `json:"level"`
	EntityID      string         `json:"entityId"`
	ScenarioTitle string         `json:"scenarioTitle"`
	ChoiceText    string         `json:"choiceText"`
	Correct       bool           `json:"correct"`
	Result        string         `json:"result"`
	Effects       map[string]int `json:"effects"`
}

// UnmarshalJSON also reads the older npcId key
func (c *ChoiceRecord) UnmarshalJSON(data []byte) error {
	type plain ChoiceRecord
	var aux struct {
		plain
		NPCID string `json:"npcId"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = ChoiceRecord(aux.plain)
	if c.EntityID == "" {
		c.EntityID = aux.NPCID
	}
	return nil
}

// LessonRecord is the guidance recorded after an incorrect choice
type LessonRecord struct {
	Scenario string `json:"scenario"`
	Text     string `json:"text"`
}

// Progress is the run's level state. History and Lessons survive level
// transitions; everything else is per level.
type Progress struct {
	LevelIndex   int
	Completed    mapset.Set[string]
	CorrectCount int
	History      []ChoiceRecord
	Lessons      []LessonRecord
	GameOver     bool
	PassedAll    bool
}

// NewProgress returns the progression of a brand new run
func NewProgress() Progress {
	return Progress{
		Completed: mapset.New[string](),
		History:   []ChoiceRecord{},
		Lessons:   []LessonRecord{},
	}
}

// ResetLevel clears the per-level state
func (p *Progress) ResetLevel() {
	p.Completed = mapset.New[string]()
	p.CorrectCount = 0
}

// MarkCompleted records an answered NPC and its outcome together, so the
// completion set and the correct count never disagree.
func (p *Progress) MarkCompleted(entityID string, correct bool) {
	p.Completed.Put(entityID)
	if correct {
		p.CorrectCount++
	}
}

// IsCompleted reports whether the NPC was answered this level
func (p *Progress) IsCompleted(entityID string) bool {
	return p.Completed.Has(entityID)
}

// CompletedIDs returns the completed NPC ids in sorted order
func (p *Progress) CompletedIDs() []string {
	ids := make([]string, 0, p.Completed.Size())
	p.Completed.Each(func(id string) {
		ids = append(ids, id)
	})
	sort.Strings(ids)
	return ids
}

// AnyIncorrect reports whether any recorded choice was wrong
func (p *Progress) AnyIncorrect() bool {
	for _, h := range p.History {
		if !h.Correct {
			return true
		}
	}
	return false
}
