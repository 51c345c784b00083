package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"moneymoves/pkg/game/config"
	"moneymoves/pkg/game/content"
	"moneymoves/pkg/game/devtools"
	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/level"
	"moneymoves/pkg/game/locale"
	"moneymoves/pkg/game/logger"
	"moneymoves/pkg/game/progression"
	"moneymoves/pkg/game/renderer"
	ebitenrenderer "moneymoves/pkg/game/renderer/ebiten"
	"moneymoves/pkg/game/renderer/tui"
	"moneymoves/pkg/game/scenario"
	"moneymoves/pkg/game/session"
	"moneymoves/pkg/game/storage"
	"moneymoves/pkg/game/world"
)

func main() {
	useTUI := flag.Bool("tui", false, "play in the terminal instead of a window")
	reset := flag.Bool("reset", false, "discard the saved run before starting")
	report := flag.String("report", "", "write the current run's summary PDF to this file and exit")
	dumpMap := flag.Bool("dump-map", false, "write a debug dump of the current world to map.txt and exit")
	lang := flag.String("lang", "", "interface language (overrides MM_LOCALE)")
	flag.Parse()

	cfg := config.Load()
	terminal := *useTUI || cfg.Renderer == "tui"
	log := logger.Setup(cfg)

	closeLog := func() error { return nil }
	if terminal {
		// the terminal surface owns stderr while it runs
		l, closeFile, err := logger.SetupForTerminal(cfg)
		if err != nil {
			logger.WithError(log, err).Error("Money Moves stopped", "log_file", cfg.LogFile)
			os.Exit(1)
		}
		log, closeLog = l, closeFile
	}

	if *lang != "" {
		cfg.Locale = *lang
	}
	if err := locale.Load(cfg.Locale); err != nil {
		logger.WithError(log, err).Warn("Falling back to English", "locale", cfg.Locale)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, cfg, log, options{tui: terminal, reset: *reset, report: *report, dumpMap: *dumpMap})
	stop()
	if err != nil {
		logger.WithError(log, err).Error("Money Moves stopped")
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// options are the command line switches
type options struct {
	tui     bool
	reset   bool
	report  string
	dumpMap bool
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger, opts options) error {
	store, err := storage.Open(ctx, cfg.Store, log)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Kind, err)
	}
	defer store.Close()

	if opts.reset {
		if err := store.Delete(ctx, progression.StorageKey); err != nil {
			return fmt.Errorf("failed to reset saved run: %w", err)
		}
		log.Info("Saved run discarded")
	}

	pack, err := content.Default()
	if err != nil {
		return fmt.Errorf("failed to load scenario content: %w", err)
	}
	atlas, err := world.DefaultAtlas()
	if err != nil {
		// the returned atlas holds the built-in worlds
		logger.WithError(log, err).Warn("Using fallback worlds")
	}

	machine := progression.New(progression.Deps{
		Generator: scenario.NewGenerator(pack),
		Roster:    entities.DefaultRoster(),
		Levels:    level.DefaultTable(),
		Atlas:     atlas,
		Store:     store,
		Logger:    log,
	})
	sess := session.New(machine, log)

	if opts.dumpMap {
		path, err := devtools.DumpMapToFile(sess, ".")
		if err != nil {
			return fmt.Errorf("failed to dump map: %w", err)
		}
		fmt.Println(path)
		return nil
	}

	if opts.report != "" {
		sess.SetExportPath(opts.report)
		path, err := sess.Export()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	var surface renderer.Surface
	if opts.tui {
		surface = tui.New()
	} else {
		surface = ebitenrenderer.New(log)
	}

	log.Info("Starting Money Moves",
		"version", renderer.Version,
		"renderer", fmt.Sprintf("%T", surface),
		"store", cfg.Store.Kind,
		"locale", cfg.Locale,
	)
	return surface.Run(ctx, sess)
}
