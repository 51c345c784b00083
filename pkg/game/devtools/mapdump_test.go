package devtools

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "moneymoves/pkg/engine/world"
	"moneymoves/pkg/game/content"
	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/level"
	"moneymoves/pkg/game/progression"
	"moneymoves/pkg/game/scenario"
	"moneymoves/pkg/game/session"
	"moneymoves/pkg/game/storage"
	"moneymoves/pkg/game/world"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	pack, err := content.Default()
	require.NoError(t, err)
	atlas, err := world.DefaultAtlas()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m := progression.New(progression.Deps{
		Generator: scenario.NewGenerator(pack),
		Roster:    entities.DefaultRoster(),
		Levels:    level.DefaultTable(),
		Atlas:     atlas,
		Store:     storage.NewMemoryStore(),
		Logger:    logger,
	})
	return session.New(m, logger)
}

func TestTileSymbols(t *testing.T) {
	assert.Equal(t, '#', tileSymbol(engine.Wall))
	assert.Equal(t, 'D', tileSymbol(engine.Door))
	assert.Equal(t, '"', tileSymbol(engine.Grass))
}

func TestNPCSymbol(t *testing.T) {
	assert.Equal(t, 'A', npcSymbol(entities.NPC{DisplayName: "ava"}))
	assert.Equal(t, 'N', npcSymbol(entities.NPC{}))
}

func TestWriteMapDump(t *testing.T) {
	s := newSession(t)
	var buf bytes.Buffer
	require.NoError(t, WriteMapDump(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "world: "+s.Machine().World().ID)
	assert.Contains(t, out, "--- Map ---")
	for _, n := range s.Machine().VisibleNPCs() {
		assert.Contains(t, out, "id: "+n.ID)
	}

	w := s.Machine().World()
	section := out[strings.Index(out, "--- Map ---\n")+len("--- Map ---\n"):]
	rows := strings.Split(section, "\n")[:w.Height]
	assert.Equal(t, 1, strings.Count(strings.Join(rows, "\n"), "@"))
	for _, r := range rows {
		assert.Len(t, []rune(r), w.Width)
	}
}

func TestDumpMapToFile(t *testing.T) {
	s := newSession(t)
	path, err := DumpMapToFile(s, t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "=== MAP DUMP DEBUG"))
}
