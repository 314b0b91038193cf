// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cronexpr/lib/cron"
	"github.com/bureau-foundation/cronexpr/lib/cron/field"
)

// EnvironmentVariable names the configuration file read by Load.
const EnvironmentVariable = "CRONEXPR_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the cronexpr configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment" json:"environment"`

	// Location is the IANA time zone used when a time to match carries
	// no zone of its own, and for "now". "Local" and "UTC" are
	// accepted. Default: Local
	Location string `yaml:"location" json:"location"`

	// DefaultToken is given to fields that are not supplied when
	// building from named values. Default: *
	DefaultToken string `yaml:"default_token" json:"default_token"`

	// Keywords adds reserved keywords to the built-in table, or
	// replaces built-in expansions with the same name.
	Keywords map[string]string `yaml:"keywords" json:"keywords"`

	// Per-environment overrides, applied after the base config is
	// loaded.
	Development *Overrides `yaml:"development,omitempty" json:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty" json:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty" json:"production,omitempty"`
}

// Overrides contains the fields that can be overridden per environment.
type Overrides struct {
	Location string            `yaml:"location,omitempty" json:"location,omitempty"`
	Keywords map[string]string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Environment:  Development,
		Location:     "Local",
		DefaultToken: field.DefaultToken,
	}
}

// Load loads configuration from the file named by CRONEXPR_CONFIG.
//
// There is no fallback: if the variable is not set, Load fails. Callers
// that want built-in defaults use Default.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your cronexpr config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads and validates configuration from a specific file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data, formatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Format is a configuration file syntax.
type Format int

const (
	YAML Format = iota
	JSONC
)

func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return JSONC
	default:
		return YAML
	}
}

// Parse decodes configuration data on top of Default, applies the
// environment overrides, expands variables and validates the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()

	if err := cfg.decode(data, format); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode merges data into c. Unknown keys are errors.
func (c *Config) decode(data []byte, format Format) error {
	switch format {
	case JSONC:
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(c); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		// An empty YAML document decodes as io.EOF; it means "all
		// defaults".
		if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	return nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: wall-clock matching in UTC.
		if overrides == nil {
			overrides = &Overrides{Location: "UTC"}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Location != "" {
		c.Location = overrides.Location
	}
	if len(overrides.Keywords) > 0 {
		if c.Keywords == nil {
			c.Keywords = make(map[string]string, len(overrides.Keywords))
		}
		maps.Copy(c.Keywords, overrides.Keywords)
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// location.
func (c *Config) expandVariables() {
	c.Location = expandVars(c.Location)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. Every problem is
// reported, joined with errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %q", c.Environment))
	}

	if _, err := c.TimeLocation(); err != nil {
		errs = append(errs, err)
	}

	if c.DefaultToken != "" {
		for _, name := range field.Names() {
			if _, err := field.Parse(name, c.DefaultToken); err != nil {
				errs = append(errs, fmt.Errorf("default_token: %w", err))
				break
			}
		}
	}

	// Expansions are parsed with keywords disabled: a keyword cannot
	// expand to another keyword.
	literal := cron.Config{Keywords: map[string]string{}}
	for _, keyword := range slices.Sorted(maps.Keys(c.Keywords)) {
		expansion := c.Keywords[keyword]
		switch {
		case !strings.HasPrefix(keyword, "@"):
			errs = append(errs, fmt.Errorf("keyword %q: must start with @", keyword))
		case keyword == cron.RebootKeyword:
			errs = append(errs, fmt.Errorf("keyword %q: reserved for run-once-at-startup expressions", keyword))
		case strings.ContainsFunc(keyword, isSpace):
			errs = append(errs, fmt.Errorf("keyword %q: must not contain whitespace", keyword))
		default:
			parsed, err := literal.Parse(expansion)
			if err != nil {
				errs = append(errs, fmt.Errorf("keyword %q: %w", keyword, err))
			} else if parsed.IsReboot() {
				errs = append(errs, fmt.Errorf("keyword %q: cannot expand to %s", keyword, cron.RebootKeyword))
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

// TimeLocation resolves Location. An empty location means Local.
func (c *Config) TimeLocation() (*time.Location, error) {
	switch c.Location {
	case "", "Local":
		return time.Local, nil
	}
	location, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", c.Location, err)
	}
	return location, nil
}

// CronConfig returns the parser configuration: the built-in keyword
// table with c.Keywords layered on top, and c's default token.
func (c *Config) CronConfig() cron.Config {
	keywords := cron.Keywords()
	maps.Copy(keywords, c.Keywords)
	return cron.Config{
		Keywords:     keywords,
		DefaultToken: c.DefaultToken,
	}
}
