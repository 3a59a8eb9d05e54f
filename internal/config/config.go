// Package config loads the YAML configuration of the gameutil command.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"deedles.dev/gameutil/heuristic"
	"deedles.dev/gameutil/xcolor"
	"deedles.dev/gameutil/xstrings"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrUnknownMode is returned for a text mode other than simple, lerp,
// or advanced.
var ErrUnknownMode = errors.New("unknown text mode")

// Config holds all of the command's settings.
type Config struct {
	Heuristic HeuristicConfig `yaml:"heuristic"`
	ID        IDConfig        `yaml:"id"`
	Text      TextConfig      `yaml:"text"`
}

// HeuristicConfig selects the distance function used by default.
type HeuristicConfig struct {
	Kind         string  `yaml:"kind"`
	MinkowskiP   float64 `yaml:"minkowski_p"`
	StraightCost float64 `yaml:"straight_cost"`
	DiagonalCost float64 `yaml:"diagonal_cost"`
}

// IDConfig controls generated IDs.
type IDConfig struct {
	Length  int  `yaml:"length"`
	Numbers bool `yaml:"numbers"`
	Lower   bool `yaml:"lower"`
	Upper   bool `yaml:"upper"`
}

// TextConfig controls how text colors are picked for a background.
type TextConfig struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
	Mode  string `yaml:"mode"` // simple, lerp, or advanced
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(fmt.Errorf("parse embedded defaults: %w", err))
	}
	return cfg
}

// Load loads the configuration. Values missing from the file keep
// their defaults.
// Search order: customPath -> user config dir -> embedded defaults.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path := UserPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	return cfg, nil
}

// UserPath returns the location of the per-user config file, or an
// empty string if there is no user config directory.
func UserPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gameutil", "config.yaml")
}

// Metric converts the heuristic section into a heuristic.Metric.
func (c Config) Metric() (heuristic.Metric, error) {
	h, err := heuristic.Parse(c.Heuristic.Kind)
	if err != nil {
		return heuristic.Metric{}, fmt.Errorf("heuristic.kind: %w", err)
	}

	return heuristic.Metric{
		Heuristic:    h,
		P:            c.Heuristic.MinkowskiP,
		StraightCost: c.Heuristic.StraightCost,
		DiagonalCost: c.Heuristic.DiagonalCost,
	}, nil
}

// IDClasses returns the character classes enabled in the id section.
func (c Config) IDClasses() (classes xstrings.CharClass) {
	if c.ID.Numbers {
		classes |= xstrings.Numbers
	}
	if c.ID.Lower {
		classes |= xstrings.Lower
	}
	if c.ID.Upper {
		classes |= xstrings.Upper
	}
	return classes
}

// TextColorFunc is the signature shared by the xcolor text color
// pickers.
type TextColorFunc func(bg, light, dark xcolor.Color) xcolor.Color

// TextColors parses the text section, returning the light and dark
// colors along with the picker selected by mode.
func (c Config) TextColors() (light, dark xcolor.Color, pick TextColorFunc, err error) {
	light, err = xcolor.ParseHex(c.Text.Light)
	if err != nil {
		return light, dark, nil, fmt.Errorf("text.light: %w", err)
	}
	dark, err = xcolor.ParseHex(c.Text.Dark)
	if err != nil {
		return light, dark, nil, fmt.Errorf("text.dark: %w", err)
	}

	switch c.Text.Mode {
	case "simple":
		pick = xcolor.TextColor
	case "lerp":
		pick = xcolor.TextColorLerp
	case "advanced", "":
		pick = xcolor.TextColorAdvanced
	default:
		return light, dark, nil, fmt.Errorf("text.mode %q: %w", c.Text.Mode, ErrUnknownMode)
	}
	return light, dark, pick, nil
}
