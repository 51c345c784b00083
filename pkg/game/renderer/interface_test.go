package renderer

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := SurfaceLogger(slog.New(slog.NewTextHandler(&buf, nil)), "ebiten")

	l.Info("Main window opened", "width", 1280)
	assert.Contains(t, buf.String(), "component=ebiten")
	assert.Contains(t, buf.String(), "width=1280")
}

func TestSurfaceLoggerNilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	SurfaceLogger(nil, "tui").Info("started")
	assert.Contains(t, buf.String(), "component=tui")
}
