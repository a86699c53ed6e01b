// Package cli wires the miniworld command-line tools.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/miniworld/internal/application/usecase"
	"github.com/bnema/miniworld/internal/cli/styles"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/infrastructure/config"
	"github.com/bnema/miniworld/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/miniworld/internal/logging"
	"github.com/bnema/miniworld/internal/ui/popup"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	db         *sqlite.LazyDB

	// Use cases
	ZoomUC         *usecase.ManageZoomUseCase
	AutofillUC     *usecase.ManageAutofillUseCase
	HomepageUC     *usecase.ManageHomepageUseCase
	ConfigSchemaUC *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx      context.Context
	logClose io.Closer
}

// NewApp creates the CLI application. configFile overrides the XDG config
// location when non-empty. Storage is opened on first use.
func NewApp(configFile string) (*App, error) {
	cfg, path, loadErr := loadConfig(configFile)

	logger, logClose := newLogger(cfg)
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	zoomRepo := sqlite.NewLazyZoomRepository(db)
	addressRepo := sqlite.NewLazyAddressRepository(db)
	cardRepo := sqlite.NewLazyCreditCardRepository(db, config.CardKeyFile(cfg.Database.Path))
	settingsRepo := sqlite.NewLazySettingsRepository(db)

	return &App{
		Config:         cfg,
		ConfigFile:     path,
		Theme:          styles.NewTheme(cfg),
		db:             db,
		ZoomUC:         usecase.NewManageZoomUseCase(zoomRepo, cfg.DefaultWebpageZoom),
		AutofillUC:     usecase.NewManageAutofillUseCase(addressRepo, cardRepo),
		HomepageUC:     usecase.NewManageHomepageUseCase(settingsRepo, cfg.Homepage),
		ConfigSchemaUC: usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:            ctx,
		logClose:       logClose,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logClose != nil {
		_ = a.logClose.Close()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// PopupOptions maps the popup section of the configuration to controller
// options.
func (a *App) PopupOptions() popup.Options {
	return PopupOptions(a.Config)
}

// PopupOptions maps cfg to popup controller options.
func PopupOptions(cfg *config.Config) popup.Options {
	opts := popup.DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.DefaultSize = entity.Size{Width: cfg.Popup.DefaultWidth, Height: cfg.Popup.DefaultHeight}
	opts.Scale = cfg.DefaultUIScale
	opts.UserAgentToken = cfg.Popup.UserAgentToken
	opts.ContextMenus = cfg.Popup.ContextMenus
	opts.AutoClose = cfg.Popup.AutoClose.AutoClosePolicy()
	return opts
}

// loadConfig loads configuration, falling back to defaults when the file
// cannot be read or is invalid.
func loadConfig(configFile string) (*config.Config, string, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return fallbackConfig(), configFile, err
	}
	if err := mgr.Load(); err != nil {
		return fallbackConfig(), mgr.GetConfigFile(), err
	}
	return mgr.Get(), mgr.GetConfigFile(), nil
}

func fallbackConfig() *config.Config {
	cfg := config.DefaultConfig()
	if dbPath, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = dbPath
	}
	return cfg
}

// newLogger logs to stderr, and to a rotated file when enabled. Without a
// log file only warnings reach the terminal unless MINIWORLD_LOG_LEVEL asks
// for more.
func newLogger(cfg *config.Config) (zerolog.Logger, io.Closer) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	}

	if !cfg.Logging.EnableFileLog {
		if _, set := os.LookupEnv(config.EnvPrefix + "_LOG_LEVEL"); !set && logCfg.Level < zerolog.WarnLevel {
			logCfg.Level = zerolog.WarnLevel
		}
		return logging.New(logCfg), nil
	}

	dir := cfg.Logging.LogDir
	if dir == "" {
		var err error
		if dir, err = config.GetLogDir(); err != nil {
			return logging.New(logCfg), nil
		}
	}

	logger, closer, err := logging.NewWithFile(logCfg, logging.RotatorConfig{
		Dir:        dir,
		MaxAgeDays: cfg.Logging.MaxAge,
		Compress:   true,
	})
	if err != nil {
		fallback := logging.New(logCfg)
		fallback.Warn().Err(err).Str("dir", dir).Msg("file logging disabled")
		return fallback, nil
	}
	return logger, closer
}
