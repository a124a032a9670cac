package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/marauder/internal/catalog"
	"github.com/five82/marauder/internal/config"
	"github.com/five82/marauder/internal/logging"
	"github.com/five82/marauder/internal/prefs"
	"github.com/five82/marauder/internal/present"
	"github.com/five82/marauder/internal/ui"
)

// Options configure the marauder application.
type Options struct {
	ConfigPath string // empty uses ~/.config/marauder/config.toml
	PrefsPath  string // empty uses ~/.config/marauder/prefs.toml
	Overrides  config.Overrides
}

// Run boots the catalog browser until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.Apply(opts.Overrides)

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	loader, err := catalog.NewLoader(cfg.Catalog, catalog.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("init catalog loader: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger.Info("starting",
		zap.String("catalog", loader.Source()),
		zap.String("locale", cfg.Locale),
		zap.String("theme", userPrefs.Theme),
	)

	uiOpts := ui.Options{
		Context:   ctx,
		Fetcher:   newOnceLoader(loader, logger.Named("catalog"), loader.Source()),
		Labels:    present.LabelsFor(cfg.Locale),
		Logger:    logger.Named("ui"),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogFile,
	}
	if err := ui.Run(uiOpts); err != nil {
		logger.Error("ui exited with error", zap.Error(err))
		return err
	}
	logger.Info("exiting")
	return nil
}
