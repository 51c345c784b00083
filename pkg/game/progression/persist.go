package progression

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"

	"moneymoves/pkg/game/state"
	"moneymoves/pkg/game/world"
)

// Save slot and schema
const (
	StorageKey    = "mm-levels-v6"
	SchemaVersion = 6
)

const storeTimeout = 2 * time.Second

// Record is the saved run
type Record struct {
	Version            int                  `json:"version"`
	Stats              state.Stats          `json:"stats"`
	History            []state.ChoiceRecord `json:"history"`
	WorldID            string               `json:"worldId"`
	SpawnName          string               `json:"spawnName"`
	LevelIndex         int                  `json:"levelIndex"`
	CompletedThisLevel map[string]bool      `json:"completedThisLevel"`
	CorrectCount       int                  `json:"correctCount"`
	Lessons            []state.LessonRecord `json:"lessons"`
	GameOver           bool                 `json:"gameOver"`
	PassedAll          bool                 `json:"passedAll"`
}

// Snapshot captures the machine's persistent state
func (m *Machine) Snapshot() Record {
	completed := make(map[string]bool, m.progress.Completed.Size())
	m.progress.Completed.Each(func(id string) {
		completed[id] = true
	})
	return Record{
		Version:            SchemaVersion,
		Stats:              m.stats,
		History:            m.progress.History,
		WorldID:            m.worldID,
		SpawnName:          m.spawnName,
		LevelIndex:         m.progress.LevelIndex,
		CompletedThisLevel: completed,
		CorrectCount:       m.progress.CorrectCount,
		Lessons:            m.progress.Lessons,
		GameOver:           m.progress.GameOver,
		PassedAll:          m.progress.PassedAll,
	}
}

// DecodeRecord parses a saved run. Records of another schema version are
// rejected.
func DecodeRecord(raw string) (Record, error) {
	var r Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return Record{}, fmt.Errorf("failed to decode saved run: %w", err)
	}
	if r.Version != SchemaVersion {
		return Record{}, fmt.Errorf("saved run has version %d, want %d", r.Version, SchemaVersion)
	}
	return r, nil
}

// apply loads a decoded record, repairing anything out of range
func (m *Machine) apply(r Record) {
	m.stats = r.Stats
	if m.stats.Other == nil {
		m.stats = state.InitialStats()
	}

	p := state.NewProgress()
	p.LevelIndex = r.LevelIndex
	if p.LevelIndex < 0 || p.LevelIndex >= m.levels.Len() {
		p.LevelIndex = 0
	}
	p.Completed = mapset.New[string]()
	for id, done := range r.CompletedThisLevel {
		if _, known := m.roster.Get(id); done && known {
			p.Completed.Put(id)
		}
	}
	p.CorrectCount = r.CorrectCount
	if p.CorrectCount < 0 {
		p.CorrectCount = 0
	}
	if p.CorrectCount > p.Completed.Size() {
		p.CorrectCount = p.Completed.Size()
	}
	if r.History != nil {
		p.History = r.History
	}
	if r.Lessons != nil {
		p.Lessons = r.Lessons
	}
	p.GameOver = r.GameOver
	p.PassedAll = r.PassedAll
	m.progress = p

	m.worldID = r.WorldID
	if !m.atlas.Has(m.worldID) {
		m.worldID = string(world.RoleTown)
	}
	m.spawnName = r.SpawnName

	m.mode = state.ModeIdle
	if p.GameOver {
		m.mode = state.ModeGameOver
	}
}

// restore loads the saved run, if any. Anything unreadable starts fresh.
func (m *Machine) restore() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, err := m.store.Get(ctx, StorageKey)
	if err != nil {
		m.logger.Warn("failed to read saved run", "error", err)
		return
	}
	if raw == "" {
		return
	}

	r, err := DecodeRecord(raw)
	if err != nil {
		m.logger.Warn("discarding saved run", "error", err)
		return
	}
	m.apply(r)
	// a run saved during the feedback dwell still owes its level check
	m.settle()
	m.logger.Info("restored saved run",
		"level", m.progress.LevelIndex,
		"world", m.worldID,
		"choices", len(m.progress.History),
	)
}

// save writes the run, best effort
func (m *Machine) save() {
	if m.store == nil {
		return
	}
	data, err := json.Marshal(m.Snapshot())
	if err != nil {
		m.logger.Error("failed to encode run", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := m.store.Set(ctx, StorageKey, string(data)); err != nil {
		m.logger.Warn("failed to save run", "error", err)
	}
}

// clear deletes the saved run, best effort
func (m *Machine) clear() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := m.store.Delete(ctx, StorageKey); err != nil {
		m.logger.Warn("failed to delete saved run", "error", err)
	}
}
