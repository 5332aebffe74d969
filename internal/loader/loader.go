// Package loader fetches the glossary data sources and merges them into one
// term collection. A failing source never fails the whole load.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"stagewiki/internal/domain"
	"stagewiki/internal/eventbus"
	"stagewiki/internal/logic"
)

// SourceResult is the outcome of loading one source
type SourceResult struct {
	Source   string // identifier as configured
	Location string // resolved path or URL
	Terms    int
	Err      error
}

// Report summarizes a load
type Report struct {
	Results []SourceResult
}

// Failed returns how many sources could not be fetched. Malformed sources
// count as empty contributions, not failures.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil && !errors.Is(res.Err, ErrMalformed) {
			n++
		}
	}
	return n
}

// Malformed returns how many sources were fetched but could not be parsed
func (r Report) Malformed() int {
	n := 0
	for _, res := range r.Results {
		if errors.Is(res.Err, ErrMalformed) {
			n++
		}
	}
	return n
}

// Total returns the number of terms merged from all sources
func (r Report) Total() int {
	n := 0
	for _, res := range r.Results {
		n += res.Terms
	}
	return n
}

// Loader fetches and merges term sources
type Loader struct {
	sources []string
	base    string
	fetcher Fetcher
	bundled fs.FS
	bus     eventbus.EventBus
	logger  *zap.Logger
	lang    language.Tag
}

// Option configures a Loader
type Option func(*Loader)

// WithBase sets the directory or URL relative sources resolve against
func WithBase(base string) Option {
	return func(l *Loader) { l.base = base }
}

// WithFetcher replaces the default filesystem/HTTP fetcher
func WithFetcher(f Fetcher) Option {
	return func(l *Loader) { l.fetcher = f }
}

// WithBundled reads relative sources from fsys when they are missing on
// disk. Without a base they are read from fsys only.
func WithBundled(fsys fs.FS) Option {
	return func(l *Loader) { l.bundled = fsys }
}

// WithHTTPTimeout uses a dedicated HTTP client with the given timeout
func WithHTTPTimeout(d time.Duration) Option {
	return func(l *Loader) { l.fetcher = NewFetcher(&http.Client{Timeout: d}) }
}

// WithBus publishes per-source and completion events
func WithBus(bus eventbus.EventBus) Option {
	return func(l *Loader) { l.bus = bus }
}

// WithLogger sets the logger for load warnings
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithLanguage sets the collation language for the initial title sort
func WithLanguage(tag language.Tag) Option {
	return func(l *Loader) { l.lang = tag }
}

// New creates a loader for the given source identifiers
func New(sources []string, opts ...Option) *Loader {
	l := &Loader{
		sources: append([]string(nil), sources...),
		fetcher: NewFetcher(nil),
		logger:  zap.NewNop(),
		lang:    language.English,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.Named("loader")
	return l
}

// Load fetches every source concurrently and merges the results in source
// order, then sorts the collection by title. Failed or malformed sources
// are logged and contribute no terms; Load itself never fails.
func (l *Loader) Load(ctx context.Context) ([]domain.Term, Report) {
	l.publish(eventbus.LoadStartedEvent{Sources: append([]string(nil), l.sources...)})

	perSource := make([][]domain.Term, len(l.sources))
	report := Report{Results: make([]SourceResult, len(l.sources))}

	var g errgroup.Group
	for i, source := range l.sources {
		g.Go(func() error {
			perSource[i], report.Results[i] = l.loadSource(ctx, source)
			return nil
		})
	}
	_ = g.Wait()

	terms := make([]domain.Term, 0, report.Total())
	for _, batch := range perSource {
		terms = append(terms, batch...)
	}
	logic.NewEngine(l.lang).SortByTitle(terms)

	l.logger.Info("catalog loaded",
		zap.Int("terms", len(terms)),
		zap.Int("sources", len(l.sources)),
		zap.Int("failed", report.Failed()),
		zap.Int("malformed", report.Malformed()))
	l.publish(eventbus.CatalogLoadedEvent{
		Terms:   append([]domain.Term(nil), terms...),
		Sources: len(l.sources),
		Failed:  report.Failed(),
	})

	return terms, report
}

func (l *Loader) loadSource(ctx context.Context, source string) ([]domain.Term, SourceResult) {
	result := SourceResult{Source: source}

	location, err := Resolve(l.base, source)
	if err != nil {
		return nil, l.fail(result, err)
	}
	result.Location = location

	data, err := l.fetch(ctx, source, location)
	if err != nil {
		return nil, l.fail(result, err)
	}

	terms, hasList, err := parseTerms(source, data)
	if err != nil {
		result.Err = err
		l.warn(result)
		l.publish(eventbus.SourceLoadedEvent{Source: source})
		return nil, result
	}
	if !hasList {
		l.logger.Debug("source has no terms array", zap.String("source", source))
	}

	result.Terms = len(terms)
	l.logger.Debug("source loaded", zap.String("source", source), zap.Int("terms", len(terms)))
	l.publish(eventbus.SourceLoadedEvent{Source: source, Terms: len(terms)})
	return terms, result
}

func (l *Loader) fetch(ctx context.Context, source, location string) ([]byte, error) {
	if l.bundled == nil || isRemote(source) || filepath.IsAbs(source) {
		return l.fetcher.Fetch(ctx, location)
	}
	if l.base != "" {
		data, err := l.fetcher.Fetch(ctx, location)
		if !errors.Is(err, fs.ErrNotExist) {
			return data, err
		}
	}

	name := path.Clean(filepath.ToSlash(source))
	data, err := fs.ReadFile(l.bundled, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled %s: %w", name, err)
	}
	l.logger.Debug("source read from bundled data", zap.String("source", source))
	return data, nil
}

func (l *Loader) fail(result SourceResult, err error) SourceResult {
	result.Err = err
	l.warn(result)
	l.publish(eventbus.SourceFailedEvent{Source: result.Source, Err: err})
	return result
}

func (l *Loader) warn(result SourceResult) {
	l.logger.Warn("data source load failed",
		zap.String("source", result.Source),
		zap.String("location", result.Location),
		zap.Error(result.Err))
}

func (l *Loader) publish(event eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(event)
	}
}
