package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/suryansh-23/piiscan/internal/pii"
	"github.com/suryansh-23/piiscan/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigVersion = 1
	defaultConfigRelPath = "piiscan/config.yaml"
	defaultWorkers       = 4
	defaultCacheEntries  = 1024
	maxWorkers           = 256
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration schema.
type Config struct {
	Version int `yaml:"version"`

	Categories     []types.Category `yaml:"categories"`
	StreetSuffixes []string         `yaml:"street_suffixes"`

	Records   Records   `yaml:"records"`
	Scan      Scan      `yaml:"scan"`
	Allowlist Allowlist `yaml:"allowlist"`
	Metrics   Metrics   `yaml:"metrics"`

	Debug Debug `yaml:"debug"`
}

// Debug controls diagnostic logging.
type Debug struct {
	Enabled bool `yaml:"enabled"`
}

// Records controls how input sources are split into records.
type Records struct {
	SkipBlank bool `yaml:"skip_blank"`
	StripANSI bool `yaml:"strip_ansi"`
}

// Scan configures batch classification.
type Scan struct {
	Workers      int                `yaml:"workers"`
	CacheEntries int                `yaml:"cache_entries"`
	FailOnPII    bool               `yaml:"fail_on_pii"`
	Format       types.OutputFormat `yaml:"format"`
}

// Allowlist configures records that are never reported.
type Allowlist struct {
	Enabled bool     `yaml:"enabled"`
	Records []string `yaml:"records,omitempty"`
}

// Metrics configures the prometheus textfile export.
type Metrics struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() Config {
	return Config{
		Version:        DefaultConfigVersion,
		Categories:     types.AllCategories(),
		StreetSuffixes: pii.DefaultStreetSuffixes(),
		Records: Records{
			SkipBlank: true,
			StripANSI: true,
		},
		Scan: Scan{
			Workers:      defaultWorkers,
			CacheEntries: defaultCacheEntries,
			FailOnPII:    false,
			Format:       types.FormatText,
		},
		Allowlist: Allowlist{
			Enabled: false,
			Records: nil,
		},
		Debug: Debug{
			Enabled: false,
		},
	}
}

// CategoryEnabled reports whether a category is active.
func (c Config) CategoryEnabled(category types.Category) bool {
	for _, enabled := range c.Categories {
		if enabled == category {
			return true
		}
	}
	return false
}

// DefaultPath returns the default config path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, defaultConfigRelPath), nil
	}
	return filepath.Join(home, ".config", defaultConfigRelPath), nil
}

// Parse parses YAML config content, applying defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads config from disk, applying defaults when missing.
// The boolean return indicates whether a config file was found.
func Load(pathOverride string) (Config, bool, error) {
	path := strings.TrimSpace(pathOverride)
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, false, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			if err := cfg.Validate(); err != nil {
				return Config{}, false, err
			}
			return cfg, false, nil
		}
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Validate enforces the supported configuration schema.
func (c Config) Validate() error {
	var errs []string
	if c.Version != DefaultConfigVersion {
		errs = append(errs, fmt.Sprintf("version must be %d", DefaultConfigVersion))
	}
	seen := make(map[types.Category]struct{}, len(c.Categories))
	for i, category := range c.Categories {
		if !category.Valid() {
			errs = append(errs, fmt.Sprintf("categories[%d] must be one of: %s", i, strings.Join(validCategories(), ", ")))
			continue
		}
		if _, ok := seen[category]; ok {
			errs = append(errs, fmt.Sprintf("categories[%d] duplicates %q", i, category))
		}
		seen[category] = struct{}{}
	}
	if c.CategoryEnabled(types.CategoryStreetAddress) && len(c.StreetSuffixes) == 0 {
		errs = append(errs, "street_suffixes is required when street_address is enabled")
	}
	for i, suffix := range c.StreetSuffixes {
		if err := pii.ValidateSuffix(suffix); err != nil {
			errs = append(errs, fmt.Sprintf("street_suffixes[%d] must be a capitalized alphabetic word", i))
		}
	}
	if c.Scan.Workers < 1 || c.Scan.Workers > maxWorkers {
		errs = append(errs, fmt.Sprintf("scan.workers must be between 1 and %d", maxWorkers))
	}
	if c.Scan.CacheEntries < 0 {
		errs = append(errs, "scan.cache_entries must be >= 0")
	}
	if !validFormat(c.Scan.Format) {
		errs = append(errs, "scan.format must be text or json")
	}
	for i, entry := range c.Allowlist.Records {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			errs = append(errs, fmt.Sprintf("allowlist.records[%d] must not be empty", i))
			continue
		}
		if _, err := path.Match(trimmed, "dummy"); err != nil {
			errs = append(errs, fmt.Sprintf("allowlist.records[%d] has invalid pattern: %v", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

func validCategories() []string {
	all := types.AllCategories()
	out := make([]string, len(all))
	for i, category := range all {
		out[i] = string(category)
	}
	return out
}

func validFormat(format types.OutputFormat) bool {
	switch format {
	case types.FormatText, types.FormatJSON:
		return true
	default:
		return false
	}
}
