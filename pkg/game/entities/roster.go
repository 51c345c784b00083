package entities

// Roster is the fixed, ordered list of NPCs.
// Order matters: it breaks proximity ties and orders name labels.
type Roster struct {
	npcs []NPC
}

// NewRoster copies the given entries into a roster
func NewRoster(npcs ...NPC) *Roster {
	return &Roster{npcs: append([]NPC(nil), npcs...)}
}

// DefaultRoster returns the three advisors
func DefaultRoster() *Roster {
	return NewRoster(
		NPC{ID: "ava", World: "town", X: 7, Y: 9, DisplayName: "Ava", Theme: HatTheme(0xffe0bd, 0xff7f50).WithClothes(0xf97316, 0x374151)},
		NPC{ID: "john", World: "town", X: 13, Y: 9, DisplayName: "John", Theme: EmojiTheme(0xffd1a4, "🧢").WithClothes(0x60a5fa, 0x374151)},
		NPC{ID: "banker", World: "bank", X: 4, Y: 2, DisplayName: "Banker", Theme: OutlineTheme(0xf7d7c6, 0x123a8c).WithClothes(0x334155, 0x1f2937)},
	)
}

// Len returns the number of NPCs
func (r *Roster) Len() int {
	return len(r.npcs)
}

// All returns a copy of every NPC in roster order
func (r *Roster) All() []NPC {
	return append([]NPC(nil), r.npcs...)
}

// Get finds an NPC by id
func (r *Roster) Get(id string) (NPC, bool) {
	for _, n := range r.npcs {
		if n.ID == id {
			return n, true
		}
	}
	return NPC{}, false
}

// InWorld returns the NPCs bound to a world, in roster order
func (r *Roster) InWorld(worldID string) []NPC {
	var out []NPC
	for _, n := range r.npcs {
		if n.World == worldID {
			out = append(out, n)
		}
	}
	return out
}

// IDs returns every NPC id in roster order
func (r *Roster) IDs() []string {
	ids := make([]string, len(r.npcs))
	for i, n := range r.npcs {
		ids[i] = n.ID
	}
	return ids
}
