package world

import (
	"math"
	"sort"

	engine "moneymoves/pkg/engine/world"
)

// Normalize turns a loosely typed world definition into a canonical World.
//
// Geometry is validated strictly: tiles must be a non-empty list of equally
// long rows, and explicit width/height must agree with the grid. Any failure
// returns the role's fallback whole. Labels, portals and spawns are lenient:
// malformed entries are skipped and missing lists become empty.
func Normalize(raw map[string]any, role Role, fallbacks FallbackTable) *World {
	if raw == nil {
		return fallbacks.For(role)
	}

	kinds, ok := parseTiles(raw["tiles"])
	if !ok {
		return fallbacks.For(role)
	}

	height := len(kinds)
	width := len(kinds[0])
	if w, present := raw["width"]; present {
		n, ok := toInt(w)
		if !ok || n != width {
			return fallbacks.For(role)
		}
	}
	if h, present := raw["height"]; present {
		n, ok := toInt(h)
		if !ok || n != height {
			return fallbacks.For(role)
		}
	}

	id, _ := raw["id"].(string)
	if id == "" {
		id = string(role)
	}

	return &World{
		ID:      id,
		Width:   width,
		Height:  height,
		Grid:    engine.NewGridFromKinds(kinds),
		Labels:  parseLabels(raw["labels"]),
		Portals: parsePortals(raw["portals"]),
		Spawns:  parseSpawns(raw["spawns"]),
	}
}

// parseTiles accepts rows written as strings or as lists of single
// character scalars. The result is rectangular and non-empty.
func parseTiles(v any) ([][]engine.TileKind, bool) {
	var rows []any
	switch t := v.(type) {
	case []any:
		rows = t
	case []string:
		for _, s := range t {
			rows = append(rows, s)
		}
	case [][]string:
		for _, r := range t {
			row := make([]any, len(r))
			for i, s := range r {
				row[i] = s
			}
			rows = append(rows, row)
		}
	default:
		return nil, false
	}
	if len(rows) == 0 {
		return nil, false
	}

	out := make([][]engine.TileKind, 0, len(rows))
	for _, r := range rows {
		row, ok := parseRow(r)
		if !ok || len(row) == 0 {
			return nil, false
		}
		if len(out) > 0 && len(row) != len(out[0]) {
			return nil, false
		}
		out = append(out, row)
	}
	return out, true
}

func parseRow(v any) ([]engine.TileKind, bool) {
	switch r := v.(type) {
	case string:
		row := make([]engine.TileKind, 0, len(r))
		for _, ch := range r {
			row = append(row, engine.TileKindFromRune(ch))
		}
		return row, true
	case []any:
		row := make([]engine.TileKind, 0, len(r))
		for _, cell := range r {
			row = append(row, kindFromScalar(cell))
		}
		return row, true
	default:
		return nil, false
	}
}

func kindFromScalar(v any) engine.TileKind {
	s, ok := v.(string)
	if !ok || s == "" {
		return engine.Grass
	}
	return engine.TileKindFromRune([]rune(s)[0])
}

func parseLabels(v any) []Label {
	items, _ := v.([]any)
	out := []Label{}
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		x, okX := toInt(m["x"])
		y, okY := toInt(m["y"])
		text, okT := m["text"].(string)
		if !okX || !okY || !okT {
			continue
		}
		out = append(out, Label{X: x, Y: y, Text: text})
	}
	return out
}

func parsePortals(v any) []Portal {
	items, _ := v.([]any)
	out := []Portal{}
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		from, ok := parsePoint(m["from"])
		if !ok {
			continue
		}
		to, ok := m["to"].(map[string]any)
		if !ok {
			continue
		}
		target, _ := to["world"].(string)
		if target == "" {
			continue
		}
		spawn, _ := to["spawn"].(string)
		out = append(out, Portal{From: from, To: PortalTarget{World: target, Spawn: spawn}})
	}
	return out
}

// parseSpawns accepts a list of {name,x,y} or a map of name -> {x,y}.
func parseSpawns(v any) []Spawn {
	out := []Spawn{}
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			name, _ := m["name"].(string)
			p, ok := parsePoint(m)
			if name == "" || !ok {
				continue
			}
			out = append(out, Spawn{Name: name, X: p.X, Y: p.Y})
		}
	case map[string]any:
		names := make([]string, 0, len(t))
		for name := range t {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if p, ok := parsePoint(t[name]); ok {
				out = append(out, Spawn{Name: name, X: p.X, Y: p.Y})
			}
		}
	}
	return out
}

func parsePoint(v any) (Point, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Point{}, false
	}
	x, okX := toInt(m["x"])
	y, okY := toInt(m["y"])
	if !okX || !okY {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// toInt accepts the numeric shapes YAML and JSON decoders produce
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
