// Package config loads nwalign CLI settings from an optional TOML file.
//
// Example file:
//
//	[scoring]
//	match       = 1
//	mismatch    = -1
//	gap         = -1
//	placeholder = "*"
//
//	[limits]
//	max_cells = 67108864
//	workers   = 4
//
//	[merge]
//	wildcard = "*"
//
// Every key is optional; missing keys keep the values of Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/katalvlaran/nwalign/nw"
)

// Scoring defaults.
const (
	DefaultMatch       = 1
	DefaultMismatch    = -1
	DefaultGap         = nw.DefaultGapPenalty
	DefaultPlaceholder = "*"
	DefaultWildcard    = "*"
)

var (
	// ErrInvalid marks every validation failure. A Validate error may wrap
	// several of them; errors.Is matches any.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey indicates a key in the file that no field consumes.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the full CLI configuration.
type Config struct {
	Scoring Scoring     `toml:"scoring"`
	Limits  Limits      `toml:"limits"`
	Merge   MergeConfig `toml:"merge"`
}

// Scoring controls the character scoring used by the align command.
type Scoring struct {
	Match       int    `toml:"match"`
	Mismatch    int    `toml:"mismatch"`
	Gap         int    `toml:"gap"`
	Placeholder string `toml:"placeholder"`
}

// Limits bounds resource use.
type Limits struct {
	MaxCells int `toml:"max_cells"`
	Workers  int `toml:"workers"`
}

// MergeConfig controls the merge command.
type MergeConfig struct {
	Wildcard string `toml:"wildcard"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scoring: Scoring{
			Match:       DefaultMatch,
			Mismatch:    DefaultMismatch,
			Gap:         DefaultGap,
			Placeholder: DefaultPlaceholder,
		},
		Limits: Limits{
			MaxCells: nw.DefaultMaxCells,
			Workers:  runtime.GOMAXPROCS(0),
		},
		Merge: MergeConfig{Wildcard: DefaultWildcard},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.Scoring.Gap >= 0 || c.Scoring.Gap < nw.MinGapPenalty {
		err = multierr.Append(err, fmt.Errorf("%w: scoring.gap must be in [%d, -1], got %d",
			ErrInvalid, nw.MinGapPenalty, c.Scoring.Gap))
	}
	if c.Scoring.Match <= c.Scoring.Mismatch {
		err = multierr.Append(err, fmt.Errorf("%w: scoring.match (%d) must exceed scoring.mismatch (%d)",
			ErrInvalid, c.Scoring.Match, c.Scoring.Mismatch))
	}
	if utf8.RuneCountInString(c.Scoring.Placeholder) != 1 {
		err = multierr.Append(err, fmt.Errorf("%w: scoring.placeholder must be one character, got %q", ErrInvalid, c.Scoring.Placeholder))
	}
	if utf8.RuneCountInString(c.Merge.Wildcard) != 1 {
		err = multierr.Append(err, fmt.Errorf("%w: merge.wildcard must be one character, got %q", ErrInvalid, c.Merge.Wildcard))
	}
	if c.Limits.MaxCells <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: limits.max_cells must be positive, got %d", ErrInvalid, c.Limits.MaxCells))
	}
	if c.Limits.Workers <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: limits.workers must be positive, got %d", ErrInvalid, c.Limits.Workers))
	}

	return err
}

// PlaceholderRune returns the placeholder as a rune. Valid only after
// Validate succeeded.
func (c Config) PlaceholderRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Scoring.Placeholder)

	return r
}

// WildcardRune returns the merge wildcard as a rune. Valid only after
// Validate succeeded.
func (c Config) WildcardRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Merge.Wildcard)

	return r
}

// AlignerOptions maps the config onto nw options.
func (c Config) AlignerOptions() []nw.Option {
	return []nw.Option{
		nw.WithGapPenalty(c.Scoring.Gap),
		nw.WithMaxCells(c.Limits.MaxCells),
	}
}
