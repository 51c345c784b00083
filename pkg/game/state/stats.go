package state

import (
	"encoding/json"
	"sort"
)

// Core statistic keys
const (
	KeyMoney  = "money"
	KeyCredit = "credit"
	KeyStress = "stress"
	KeyDebt   = "debt"
)

// Stats are the player's statistics.
// Stress stays within [0,100]; every other value stays at or above 0.
// Effect keys beyond the four core ones (savings, knowledge, ...) are kept
// in Other.
type Stats struct {
	Money  int
	Credit int
	Stress int
	Debt   int
	Other  map[string]int
}

// InitialStats returns the statistics of a new run
func InitialStats() Stats {
	return Stats{Money: 1100, Credit: 650, Stress: 30, Debt: 0, Other: map[string]int{}}
}

// Get returns any statistic by key
func (s Stats) Get(key string) int {
	switch key {
	case KeyMoney:
		return s.Money
	case KeyCredit:
		return s.Credit
	case KeyStress:
		return s.Stress
	case KeyDebt:
		return s.Debt
	default:
		return s.Other[key]
	}
}

func (s *Stats) set(key string, v int) {
	switch key {
	case KeyMoney:
		s.Money = v
	case KeyCredit:
		s.Credit = v
	case KeyStress:
		s.Stress = v
	case KeyDebt:
		s.Debt = v
	default:
		if s.Other == nil {
			s.Other = map[string]int{}
		}
		s.Other[key] = v
	}
}

func clamp(key string, v int) int {
	if v < 0 {
		return 0
	}
	if key == KeyStress && v > 100 {
		return 100
	}
	return v
}

// Apply returns a copy of the stats with the effect deltas added and clamped
func (s Stats) Apply(effects map[string]int) Stats {
	next := s
	next.Other = make(map[string]int, len(s.Other))
	for k, v := range s.Other {
		next.Other[k] = v
	}
	for k, d := range effects {
		next.set(k, clamp(k, next.Get(k)+d))
	}
	return next
}

// Happiness is derived from stress
func (s Stats) Happiness() int {
	h := 100 - s.Stress
	if h < 0 {
		return 0
	}
	return h
}

// Keys returns every key with a value, core keys first then the rest sorted
func (s Stats) Keys() []string {
	keys := []string{KeyMoney, KeyCredit, KeyStress, KeyDebt}
	var other []string
	for k := range s.Other {
		other = append(other, k)
	}
	sort.Strings(other)
	return append(keys, other...)
}

// MarshalJSON writes the stats as one flat object
func (s Stats) MarshalJSON() ([]byte, error) {
	flat := make(map[string]int, 4+len(s.Other))
	for _, k := range s.Keys() {
		flat[k] = s.Get(k)
	}
	return json.Marshal(flat)
}

// UnmarshalJSON reads a flat object, clamping every value.
// Missing core keys keep their initial values.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var flat map[string]int
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	next := InitialStats()
	for k, v := range flat {
		next.set(k, clamp(k, v))
	}
	*s = next
	return nil
}
