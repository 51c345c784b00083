// Package ebiten provides the Ebiten-based 2D graphical renderer.
// Ebiten is a 2D game library for Go: https://ebiten.org/
//
// The world is drawn at its native pixel size into an offscreen image and
// scaled onto the window with a camera that follows the player. The HUD,
// conversation panels and summary are drawn in screen space on top.
package ebiten

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"moneymoves/pkg/game/config"
	"moneymoves/pkg/game/labels"
	"moneymoves/pkg/game/renderer"
	"moneymoves/pkg/game/session"
)

// EbitenRenderer implements renderer.Surface and ebiten.Game
type EbitenRenderer struct {
	ctx    context.Context
	driver renderer.Driver
	view   session.View
	logger *slog.Logger

	// windowWidth and windowHeight track the outside size from Layout
	windowWidth  int
	windowHeight int

	// tileSize is the on-screen size of one tile, changed by zoom
	tileSize float64

	windowOpenedLogged bool

	monoFontSource     *text.GoTextFaceSource // name tags and key hints
	sansFontSource     *text.GoTextFaceSource // UI text
	sansBoldFontSource *text.GoTextFaceSource // headings

	cachedLabelFace     *text.GoTextFace
	cachedSansFace      *text.GoTextFace
	cachedSansBoldFace  *text.GoTextFace
	cachedTitleFace     *text.GoTextFace
	cachedMonoUIFace    *text.GoTextFace
	cachedUIFontSize    float64
	cachedTitleFontSize float64

	// per-scene cache, released when the scene ID changes
	sceneID    uuid.UUID
	background *ebiten.Image
	worldImage *ebiten.Image

	callouts []callout
}

// New creates a new Ebiten renderer. A nil logger uses slog.Default().
func New(logger *slog.Logger) *EbitenRenderer {
	return &EbitenRenderer{
		logger:       renderer.SurfaceLogger(logger, "ebiten"),
		windowWidth:  1280,
		windowHeight: 800,
		tileSize:     clampTileSize(config.Current().TileSize),
	}
}

// Init loads the font sources
func (e *EbitenRenderer) Init() error {
	var err error
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("failed to load regular font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("failed to load bold font: %w", err)
	}
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("failed to load mono font: %w", err)
	}
	return nil
}

// Run opens the window and drives the game until the player quits, the
// window closes or ctx is cancelled.
func (e *EbitenRenderer) Run(ctx context.Context, d renderer.Driver) error {
	if err := e.Init(); err != nil {
		return err
	}
	e.ctx = ctx
	e.driver = d
	d.SetMeasurer(labels.MeasureFunc(e.measureLabel))
	e.view = d.View()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Money Moves"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(renderer.FrameRate)

	e.logger.Info("Starting Ebiten renderer",
		"version", renderer.Version,
		"width", e.windowWidth,
		"height", e.windowHeight,
		"tile_px", e.tileSize,
	)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update advances the game one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.logger.Info("Main window opened", "width", w, "height", h)
	}

	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}

	e.handleZoom()

	controls := e.controls()
	e.view = e.driver.Update(controls, renderer.FrameTime)
	if controls.Quit {
		return ebiten.Termination
	}
	if controls.Export {
		e.export()
	}

	e.expireCallouts(time.Now())
	return nil
}

// Layout follows the window size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
	}
	return e.windowWidth, e.windowHeight
}

func (e *EbitenRenderer) export() {
	path, err := e.driver.Export()
	if err != nil {
		e.logger.Error("Export failed", "error", err)
		e.AddCallout(err.Error(), ColorCalloutDanger, 4000)
		return
	}
	e.AddCallout(gotext.Get("Summary saved to %s", path), ColorCalloutSuccess, 3000)
}

// releaseScene drops the images cached for the previous scene
func (e *EbitenRenderer) releaseScene() {
	if e.background != nil {
		e.background.Deallocate()
		e.background = nil
	}
	if e.worldImage != nil {
		e.worldImage.Deallocate()
		e.worldImage = nil
	}
}
