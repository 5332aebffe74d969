package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"stagewiki/data"
	"stagewiki/internal/config"
	"stagewiki/internal/domain"
	"stagewiki/internal/eventbus"
	"stagewiki/internal/i18n"
	"stagewiki/internal/loader"
	"stagewiki/internal/logging"
	"stagewiki/internal/logic"
)

// app holds everything a command needs after startup
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	bus    eventbus.EventBus
	msgs   *i18n.Messages
	engine *logic.Engine
}

// newApp loads the config, applies flag overrides and builds the logger
// and event bus
func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Debug: cfg.Debug})
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		bus:    eventbus.New(logger),
		msgs:   i18n.New(cfg.LanguageTag()),
		engine: logic.NewEngine(cfg.LanguageTag()),
	}
	a.logEvents()
	a.bus.Publish(eventbus.ConfigLoadedEvent{Path: cfg.Path(), Sources: append([]string(nil), cfg.Sources...)})

	return a, nil
}

func loadConfig() (*config.Config, error) {
	svc := config.NewConfigService()

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = svc.LoadFromPath(configPath)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, err
	}

	if baseFlag != "" {
		cfg.Base = baseFlag
	}
	if langFlag != "" {
		cfg.Language = langFlag
	}
	switch logFile {
	case "":
	case "-":
		cfg.LogFile = ""
	default:
		cfg.LogFile = logFile
	}
	if debug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// logEvents records bus traffic at debug level
func (a *app) logEvents() {
	types := []eventbus.EventType{
		eventbus.EventConfigLoaded,
		eventbus.EventCatalogLoaded,
		eventbus.EventFilterChanged,
		eventbus.EventExportFinished,
	}
	for _, t := range types {
		a.bus.Subscribe(t, func(e eventbus.DomainEvent) {
			a.logger.Debug("event", zap.String("type", string(e.Type())))
		})
	}
}

func (a *app) loader() *loader.Loader {
	return loader.New(a.cfg.Sources,
		loader.WithBase(a.cfg.BaseLocation()),
		loader.WithBundled(data.FS),
		loader.WithHTTPTimeout(a.cfg.Timeout()),
		loader.WithBus(a.bus),
		loader.WithLogger(a.logger),
		loader.WithLanguage(a.cfg.LanguageTag()),
	)
}

// load fetches the catalog from every configured source
func (a *app) load(ctx context.Context) ([]domain.Term, loader.Report) {
	return a.loader().Load(ctx)
}

func (a *app) close() {
	a.bus.Close()
	_ = a.logger.Sync()
}

// filterFlags are shared by list and export
type filterFlags struct {
	category    string
	subcategory string
	search      string
}

func (f filterFlags) state() (domain.FilterState, error) {
	var state domain.FilterState
	if f.subcategory != "" && f.category == "" {
		return state, errors.New("--subcategory requires --category")
	}
	state.SelectCategory(f.category)
	if f.subcategory != "" {
		state.SelectSubcategory(f.subcategory, f.category)
	}
	state.SetSearch(f.search)
	return state, nil
}
