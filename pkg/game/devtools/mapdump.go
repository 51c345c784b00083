// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	engine "moneymoves/pkg/engine/world"
	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/session"
	"moneymoves/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile kind
func tileSymbol(k engine.TileKind) rune {
	switch k {
	case engine.Wall:
		return '#'
	case engine.Door:
		return 'D'
	case engine.Path:
		return ':'
	case engine.Floor:
		return '.'
	case engine.Wood:
		return '='
	default:
		return '"'
	}
}

// npcSymbol is the NPC's initial, or N when it has no name
func npcSymbol(n entities.NPC) rune {
	for _, r := range strings.ToUpper(n.DisplayName) {
		return r
	}
	return 'N'
}

// writeMapGrid writes the world with NPC and player overlays
func writeMapGrid(out io.Writer, w *world.World, npcs []entities.NPC, playerX, playerY int) {
	at := make(map[world.Point]rune, len(npcs))
	for _, n := range npcs {
		at[world.Point{X: n.X, Y: n.Y}] = npcSymbol(n)
	}
	for y := 0; y < w.Height; y++ {
		var b strings.Builder
		for x := 0; x < w.Width; x++ {
			switch r, ok := at[world.Point{X: x, Y: y}]; {
			case x == playerX && y == playerY:
				b.WriteRune('@')
			case ok:
				b.WriteRune(r)
			default:
				b.WriteRune(tileSymbol(w.Tile(x, y)))
			}
		}
		fmt.Fprintln(out, b.String())
	}
}

// WriteMapDump writes a debug dump of the session: metadata, legend, the
// mounted world, NPCs, portals and spawns. Format is plain key: value
// sections so it stays readable in diffs.
func WriteMapDump(out io.Writer, s *session.Session) error {
	m := s.Machine()
	w := m.World()
	if w == nil {
		return fmt.Errorf("no world mounted")
	}
	px, py := s.Scene().PlayerTile()
	p := m.Progress()
	st := m.Stats()

	fmt.Fprintln(out, "=== MAP DUMP DEBUG (world layout, characters, progression) ===")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "--- Metadata ---")
	fmt.Fprintf(out, "world: %s\n", w.ID)
	fmt.Fprintf(out, "spawn: %q\n", m.SpawnName())
	fmt.Fprintf(out, "mode: %s\n", m.Mode())
	fmt.Fprintf(out, "level: %d (%s)\n", p.LevelIndex, m.Level().Name)
	fmt.Fprintf(out, "completed: %d/%d %v\n", len(p.CompletedIDs()), m.Required(), p.CompletedIDs())
	fmt.Fprintf(out, "correct: %d\n", p.CorrectCount)
	fmt.Fprintf(out, "grid_cols: %d\n", w.Width)
	fmt.Fprintf(out, "grid_rows: %d\n", w.Height)
	fmt.Fprintf(out, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(out, "player_tile: %d,%d\n", px, py)
	for _, k := range st.Keys() {
		fmt.Fprintf(out, "stat_%s: %d\n", k, st.Get(k))
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Legend (tile symbols) ---")
	fmt.Fprintln(out, "\" = grass  : = path  . = floor  = = wood  D = door  # = wall  @ = player  A-Z = NPC initial")
	fmt.Fprintln(out, "")

	npcs := m.VisibleNPCs()
	fmt.Fprintln(out, "--- Map ---")
	writeMapGrid(out, w, npcs, px, py)
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- NPCs ---")
	for _, n := range npcs {
		fmt.Fprintf(out, "  id: %s name: %q x: %d y: %d completed: %v\n", n.ID, n.DisplayName, n.X, n.Y, p.IsCompleted(n.ID))
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Portals ---")
	for _, pt := range w.Portals {
		fmt.Fprintf(out, "  from: %d,%d to_world: %s to_spawn: %q\n", pt.From.X, pt.From.Y, pt.To.World, pt.To.Spawn)
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, "--- Spawns ---")
	for _, sp := range w.Spawns {
		fmt.Fprintf(out, "  name: %s x: %d y: %d\n", sp.Name, sp.X, sp.Y)
	}
	return nil
}

// DumpMapToFile writes WriteMapDump to map.txt in dir and returns its path
func DumpMapToFile(s *session.Session, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, s); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
