// Package config loads effortcal settings from defaults, an optional YAML
// file and EFFORTCAL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/effortcal/internal/domain"
	"github.com/alexanderramin/effortcal/internal/palette"
)

// CategoryConfig describes how one category is recognized and drawn.
type CategoryConfig struct {
	Label      string `koanf:"label"`
	MinProject int    `koanf:"min_project"`
	MaxProject int    `koanf:"max_project"`
	Palette    string `koanf:"palette"`
}

// Categories holds the two category settings.
type Categories struct {
	A CategoryConfig `koanf:"a"`
	B CategoryConfig `koanf:"b"`
}

// Config contains process configuration.
type Config struct {
	// DB is the SQLite file holding time records.
	DB string `koanf:"db"`

	// Out is the output path; "{year}" is replaced by the rendered year.
	Out string `koanf:"out"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Width and Height are the raster size in pixels.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`

	// Title is a format string receiving the year.
	Title string `koanf:"title"`

	// MetricsTextfile, when set, receives Prometheus metrics after each render.
	MetricsTextfile string `koanf:"metrics_textfile"`

	Categories Categories `koanf:"categories"`
}

// New returns the defaults.
func New() *Config {
	rules := domain.DefaultCategoryRules()
	return &Config{
		Out:      "effortcal-{year}.png",
		LogLevel: "warn",
		Width:    4800,
		Height:   3000,
		Title:    "Daily Writing Effort for %d",
		Categories: Categories{
			A: categoryFromRule(rules[0]),
			B: categoryFromRule(rules[1]),
		},
	}
}

func categoryFromRule(r domain.CategoryRule) CategoryConfig {
	return CategoryConfig{Label: r.Label, MinProject: r.MinProject, MaxProject: r.MaxProject, Palette: r.Palette}
}

// DefaultDBPath is ~/.effortcal/effortcal.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".effortcal", "effortcal.db"), nil
}

// Rules converts the category settings into domain rules.
func (c *Config) Rules() domain.CategoryRules {
	return domain.CategoryRules{
		{Category: domain.CategoryA, Label: c.Categories.A.Label, MinProject: c.Categories.A.MinProject, MaxProject: c.Categories.A.MaxProject, Palette: c.Categories.A.Palette},
		{Category: domain.CategoryB, Label: c.Categories.B.Label, MinProject: c.Categories.B.MinProject, MaxProject: c.Categories.B.MaxProject, Palette: c.Categories.B.Palette},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.DB == "" {
		errs = append(errs, errors.New("db must not be empty"))
	}
	if c.Out == "" {
		errs = append(errs, errors.New("out must not be empty"))
	}
	if c.Width < minSide || c.Height < minSide {
		errs = append(errs, fmt.Errorf("figure size %dx%d: both sides must be at least %d", c.Width, c.Height, minSide))
	}
	if !strings.Contains(c.Title, "%d") {
		errs = append(errs, fmt.Errorf("title %q must contain %%d for the year", c.Title))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}

	for name, cat := range map[string]CategoryConfig{"a": c.Categories.A, "b": c.Categories.B} {
		if cat.Label == "" {
			errs = append(errs, fmt.Errorf("category %s: label must not be empty", name))
		}
		if cat.MinProject > cat.MaxProject {
			errs = append(errs, fmt.Errorf("category %s: min_project %d > max_project %d", name, cat.MinProject, cat.MaxProject))
		}
		if _, err := palette.ByName(cat.Palette); err != nil {
			errs = append(errs, fmt.Errorf("category %s: %w", name, err))
		}
	}
	a, b := c.Categories.A, c.Categories.B
	if a.MinProject <= b.MaxProject && b.MinProject <= a.MaxProject {
		errs = append(errs, fmt.Errorf("category project ranges overlap: %d-%d and %d-%d",
			a.MinProject, a.MaxProject, b.MinProject, b.MaxProject))
	}

	return errors.Join(errs...)
}

const minSide = 240
