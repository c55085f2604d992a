// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Render   RenderConfig   `toml:"render"`
	Cache    CacheConfig    `toml:"cache"`
	Manifest ManifestConfig `toml:"manifest"`
}

// RenderConfig holds Formatter defaults (spec.md §4.5, §6 "Formatter public
// surface").
type RenderConfig struct {
	// SyntaxTheme names a chroma theme. Defaults to "github-dark". It is
	// loaded from the file and SNIPPETFMT_SYNTAX_THEME, but nothing in the
	// render path reads it: internal/lexsource derives highlight styles
	// from token categories, not from a theme.
	SyntaxTheme string `toml:"syntax_theme"`

	// MarginColor names a style.Color for the line-number gutter. It is
	// loaded but not read by cmd/snippetfmt, which draws the gutter with no
	// color (style.NoColor).
	MarginColor string `toml:"margin_color"`

	// ViewboxRadius, when > 0, enables elision with that radius (spec.md
	// §4.5 step 4). 0 means "show all lines".
	ViewboxRadius int `toml:"viewbox_radius"`

	// ShowLineNumbers toggles the line-number gutter. Defaults to true.
	ShowLineNumbers *bool `toml:"show_line_numbers"`

	// Shortcut toggles the line-beginning shortcut (spec.md §4.4, §4.6).
	// Defaults to true.
	Shortcut *bool `toml:"shortcut"`

	// LabelSearchCap bounds the downward label-placement search (spec.md
	// §7, §9). Defaults to 256.
	LabelSearchCap int `toml:"label_search_cap"`
}

// ShowLineNumbersOrDefault returns the configured toggle, defaulting to true.
func (r RenderConfig) ShowLineNumbersOrDefault() bool {
	if r.ShowLineNumbers == nil {
		return true
	}
	return *r.ShowLineNumbers
}

// ShortcutOrDefault returns the configured toggle, defaulting to true.
func (r RenderConfig) ShortcutOrDefault() bool {
	if r.Shortcut == nil {
		return true
	}
	return *r.Shortcut
}

// SyntaxThemeOrDefault returns the configured chroma theme or "github-dark"
// if unset.
func (r RenderConfig) SyntaxThemeOrDefault() string {
	if r.SyntaxTheme == "" {
		return "github-dark"
	}
	return r.SyntaxTheme
}

// LabelSearchCapOrDefault returns the configured cap or 256 if unset.
func (r RenderConfig) LabelSearchCapOrDefault() int {
	if r.LabelSearchCap <= 0 {
		return 256
	}
	return r.LabelSearchCap
}

// CacheConfig holds render-cache settings (internal/rendercache).
type CacheConfig struct {
	// SQLitePath is the path to the on-disk render cache database.
	// Defaults to "<data dir>/rendercache.db".
	SQLitePath string `toml:"sqlite_path"`

	// MemoryEntries bounds the in-process LRU tier. Defaults to 256.
	MemoryEntries int `toml:"memory_entries"`

	TTLHours int `toml:"ttl_hours"`
}

// CacheTTLOrDefault returns the configured TTL or 24 hours if unset.
func (c CacheConfig) CacheTTLOrDefault() int {
	if c.TTLHours <= 0 {
		return 24
	}
	return c.TTLHours
}

// MemoryEntriesOrDefault returns the configured LRU size or 256 if unset.
func (c CacheConfig) MemoryEntriesOrDefault() int {
	if c.MemoryEntries <= 0 {
		return 256
	}
	return c.MemoryEntries
}

// ManifestConfig holds declarative highlight-manifest settings
// (internal/manifest).
type ManifestConfig struct {
	// SchemaStrict is loaded but not read: manifest.Load validates every
	// manifest against the same generated schema whatever its value.
	SchemaStrict bool `toml:"schema_strict"`
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. An empty path yields the zero-value defaults (plus environment
// overrides) rather than an error — unlike an LLM client, a renderer has a
// useful default configuration. A non-empty path that does not exist is an
// error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		applyEnvOverrides(cfg)
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Render.ViewboxRadius < 0 {
		errs = append(errs, errors.New("render.viewbox_radius must not be negative"))
	}
	if c.Cache.MemoryEntries < 0 {
		errs = append(errs, errors.New("cache.memory_entries must not be negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"SNIPPETFMT_SYNTAX_THEME", func(v string) {
			if v != "" {
				cfg.Render.SyntaxTheme = v
			}
		}},
		{"SNIPPETFMT_CACHE_PATH", func(v string) {
			if v != "" {
				cfg.Cache.SQLitePath = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the snippetfmt data directory
// (~/.config/snippetfmt).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "snippetfmt"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
