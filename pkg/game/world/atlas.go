package world

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed worlds.yaml
var defaultWorlds []byte

// Atlas holds the normalized world for every role
type Atlas struct {
	worlds    map[string]*World
	fallbacks FallbackTable
}

// Get returns the world with the given id, or the town when unknown
func (a *Atlas) Get(id string) *World {
	if w, ok := a.worlds[id]; ok {
		return w
	}
	return a.fallbacks.For(RoleTown)
}

// FallbackAtlas contains only the built-in worlds
func FallbackAtlas(fallbacks FallbackTable) *Atlas {
	return &Atlas{
		worlds: map[string]*World{
			string(RoleTown): fallbacks.For(RoleTown),
			string(RoleBank): fallbacks.For(RoleBank),
		},
		fallbacks: fallbacks,
	}
}

// LoadAtlas parses a YAML document keyed by role and normalizes each world.
// A document that cannot be parsed yields the fallback atlas and an error.
func LoadAtlas(data []byte, fallbacks FallbackTable) (*Atlas, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return FallbackAtlas(fallbacks), fmt.Errorf("failed to parse worlds: %w", err)
	}

	a := &Atlas{worlds: map[string]*World{}, fallbacks: fallbacks}
	for _, role := range []Role{RoleTown, RoleBank} {
		raw, _ := doc[string(role)].(map[string]any)
		a.worlds[string(role)] = Normalize(raw, role, fallbacks)
	}
	return a, nil
}

// DefaultAtlas loads the worlds shipped with the game
func DefaultAtlas() (*Atlas, error) {
	return LoadAtlas(defaultWorlds, DefaultFallbacks())
}

// Has reports whether the atlas knows a world id
func (a *Atlas) Has(id string) bool {
	_, ok := a.worlds[id]
	return ok
}
