package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// FileName is the config file looked up in the working directory
const FileName = "stagewiki.toml"

// EnvPrefix is prepended to every environment override
const EnvPrefix = "STAGEWIKI_"

// DefaultAccent is the badge color for categories without a configured color
const DefaultAccent = "#38bdf8"

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	Title       string     `toml:"title" env:"TITLE"`
	Base        string     `toml:"base" env:"BASE"`         // directory or http(s) URL sources are relative to
	Sources     []string   `toml:"sources" env:"SOURCES"`   // data files, relative to Base
	Language    string     `toml:"language" env:"LANGUAGE"` // BCP 47 tag for sorting and messages
	HTTPTimeout string     `toml:"http_timeout" env:"HTTP_TIMEOUT"`
	LogFile     string     `toml:"log_file" env:"LOG_FILE"`
	Debug       bool       `toml:"debug" env:"DEBUG"`
	Categories  []Category `toml:"categories"`
	UI          UISettings `toml:"ui" envPrefix:"UI_"`

	path string // file the config was read from, "" for defaults
}

// Category is one entry of the category bar
type Category struct {
	Name  string `toml:"name"`
	Color string `toml:"color"` // hex color used for badges and card borders
}

// UISettings represents UI-related configuration
type UISettings struct {
	Compact  bool   `toml:"compact" env:"COMPACT"`     // hide descriptions in the card list
	ShowHelp bool   `toml:"show_help" env:"SHOW_HELP"` // show the key hint line
	Accent   string `toml:"accent" env:"ACCENT"`       // color for categories without one
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath    string
	environment map[string]string // nil reads the process environment
}

// NewConfigService creates a config service reading FileName from the
// working directory
func NewConfigService() ConfigService {
	return &configService{
		filePath: FileName,
	}
}

// Load loads the configuration from the default file. A missing file yields
// the defaults; environment overrides apply in both cases.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.applyEnv(cfg); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid environment override: %w", err)
		}
		return cfg, nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Sources = nil
	cfg.Categories = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Sources == nil {
		cfg.Sources = DefaultSources()
	}
	if cfg.Categories == nil {
		cfg.Categories = DefaultCategories()
	}
	if abs, err := filepath.Abs(path); err == nil {
		cfg.path = abs
	} else {
		cfg.path = path
	}

	if err := cs.applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) applyEnv(cfg *Config) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: cs.environment}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("failed to apply environment: %w", err)
	}
	return nil
}

// Validate checks values that cannot be repaired silently
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("language %q: %w", c.Language, err)
	}
	if c.HTTPTimeout != "" {
		if _, err := time.ParseDuration(c.HTTPTimeout); err != nil {
			return fmt.Errorf("http_timeout %q: %w", c.HTTPTimeout, err)
		}
	}
	seen := make(map[string]bool)
	for _, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return errors.New("category name cannot be blank")
		}
		if seen[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
	}
	return nil
}

// Path returns the file the config was loaded from, or "" for defaults
func (c *Config) Path() string {
	return c.path
}

// BaseLocation returns the location relative sources resolve against. An
// explicit Base wins, otherwise the config file's directory. Without either
// it returns "" and relative sources come from the bundled data.
func (c *Config) BaseLocation() string {
	if c.Base != "" {
		if isURL(c.Base) || filepath.IsAbs(c.Base) || c.path == "" {
			return c.Base
		}
		return filepath.Join(filepath.Dir(c.path), c.Base)
	}
	if c.path != "" {
		return filepath.Dir(c.path)
	}
	return ""
}

// LanguageTag returns the parsed language, falling back to English
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// Timeout returns the HTTP timeout for remote sources
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// CategoryNames returns the configured category names in display order
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// CategoryColors returns the category -> color map used by the renderers
func (c *Config) CategoryColors() map[string]string {
	colors := make(map[string]string, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Color != "" {
			colors[cat.Name] = cat.Color
		}
	}
	return colors
}

// DefaultSources returns the bundled data files in load order
func DefaultSources() []string {
	return []string{
		"data/general.json",
		"data/stage.json",
		"data/power.json",
		"data/sound.json",
		"data/light.json",
		"data/video.json",
		"data/network.json",
	}
}

// DefaultCategories returns the built-in category bar
func DefaultCategories() []Category {
	return []Category{
		{Name: "General", Color: "#94a3b8"},
		{Name: "Stage", Color: "#a78bfa"},
		{Name: "Power", Color: "#facc15"},
		{Name: "Sound", Color: "#f87171"},
		{Name: "Light", Color: "#fbbf24"},
		{Name: "Video", Color: "#60a5fa"},
		{Name: "Network", Color: "#34d399"},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Title:       "Stage Wiki",
		Sources:     DefaultSources(),
		Language:    "en",
		HTTPTimeout: "10s",
		LogFile:     "stagewiki.log",
		Categories:  DefaultCategories(),
		UI: UISettings{
			ShowHelp: true,
			Accent:   DefaultAccent,
		},
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
