// Package renderer defines the contract between the game and a presentation
// surface. Implementations live in the ebiten and tui subpackages.
package renderer

import (
	"context"
	"log/slog"
	"time"

	"moneymoves/pkg/engine/input"
	"moneymoves/pkg/game/labels"
	"moneymoves/pkg/game/session"
)

// Version is shown by surfaces that have room for it
var Version = "dev"

// FrameRate is the logic tick rate every surface drives the game at
const FrameRate = 60

// FrameTime is the duration of one tick
const FrameTime = time.Second / FrameRate

// Driver is the game as seen by a surface. The surface calls Update exactly
// once per tick from a single goroutine.
type Driver interface {
	// Update advances one tick with this frame's input
	Update(controls input.Controls, dt time.Duration) session.View

	// View returns the last state without advancing
	View() session.View

	// SetMeasurer installs the surface's text metrics for label layout
	SetMeasurer(m labels.Measurer)

	// Export writes the end of game summary and returns where it went
	Export() (string, error)
}

// Surface presents a driver until the player quits or ctx is cancelled.
// When the scene ID in the view changes, a surface must drop everything it
// cached for the previous scene.
type Surface interface {
	Run(ctx context.Context, d Driver) error
}

// SurfaceLogger tags logger with the surface name, using slog.Default()
// when logger is nil
func SurfaceLogger(logger *slog.Logger, surface string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", surface)
}
