// seehuhn.de/go/ellipses - practice sheets for drawing ellipses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings of the ellipses service and command
// line tool.
//
// Settings are taken from built-in defaults, an optional TOML file, a
// .env file and the process environment, with later sources overriding
// earlier ones.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"seehuhn.de/go/ellipses/ellipse"
	"seehuhn.de/go/ellipses/errors"
	"seehuhn.de/go/ellipses/sheet"
)

// EnvConfigFile names the environment variable which can point to a TOML
// configuration file.
const EnvConfigFile = "ELLIPSES_CONFIG"

const environmentProduction = "production"

// Config holds the application configuration.
type Config struct {
	Environment string `toml:"environment"`
	Addr        string `toml:"addr"` // listen address of the HTTP server
	LogLevel    string `toml:"log_level"`
	SentryDSN   string `toml:"sentry_dsn"` // error reporting is off if empty

	Canvas    CanvasConfig    `toml:"canvas"`
	Generator GeneratorConfig `toml:"generator"`
	Render    RenderConfig    `toml:"render"`
}

// CanvasConfig is the size of the drawing area.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// GeneratorConfig controls the random ellipses.
type GeneratorConfig struct {
	MinMajor float64 `toml:"min_major"`
	MaxMajor float64 `toml:"max_major"`
	MaxAngle float64 `toml:"max_angle"`
	Margin   float64 `toml:"margin"`

	DefaultCount int `toml:"default_count"`

	// MinCount and MaxCount bound the number of ellipses per request.
	MinCount int `toml:"min_count"`
	MaxCount int `toml:"max_count"`
}

// RenderConfig controls the output of the renderer.
type RenderConfig struct {
	DPI float64 `toml:"dpi"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Environment: "development",
		Addr:        ":8080",
		LogLevel:    "info",
		Canvas: CanvasConfig{
			Width:  ellipse.DefaultWidth,
			Height: ellipse.DefaultHeight,
		},
		Generator: GeneratorConfig{
			MinMajor:     ellipse.DefaultMinMajor,
			MaxMajor:     ellipse.DefaultMaxMajor,
			MaxAngle:     ellipse.DefaultMaxAngle,
			Margin:       0,
			DefaultCount: ellipse.DefaultCount,
			MinCount:     1,
			MaxCount:     20,
		},
		Render: RenderConfig{
			DPI: sheet.DefaultDPI,
		},
	}
}

// Load reads the configuration.  If path is empty, the file named by
// $ELLIPSES_CONFIG is used, if set.  A .env file in the working directory
// is read when present; variables set in the process environment take
// precedence over it.
func Load(path string) (*Config, error) {
	return load(path, ".env")
}

func load(path, dotenv string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidParameter, err, "cannot read config file")
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidParameter, err, "cannot parse config file %s", path)
		}
	}

	fileEnv, err := godotenv.Read(dotenv)
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, err, "cannot read %s", dotenv)
	}
	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value := fileEnv[key]; value != "" {
			return value
		}
		return defaultValue
	}

	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	if port := getEnv("PORT", ""); port != "" {
		cfg.Addr = ":" + port
	}
	cfg.Addr = getEnv("ADDR", cfg.Addr)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.SentryDSN = getEnv("SENTRY_DSN", cfg.SentryDSN)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := c.SheetCanvas().Validate(); err != nil {
		return err
	}
	g := c.Generator
	if g.MinCount < 1 || g.MaxCount < g.MinCount {
		return errors.New(errors.ErrCodeInvalidParameter,
			"invalid ellipse count range [%d, %d]", g.MinCount, g.MaxCount)
	}
	if g.DefaultCount < g.MinCount || g.DefaultCount > g.MaxCount {
		return errors.New(errors.ErrCodeInvalidParameter,
			"default count %d outside [%d, %d]", g.DefaultCount, g.MinCount, g.MaxCount)
	}
	if c.Render.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "resolution must be positive, got %g", c.Render.DPI)
	}
	return c.Params(g.DefaultCount).Validate()
}

// Params returns the generation parameters for n ellipses.
func (c *Config) Params(n int) ellipse.Params {
	return ellipse.Params{
		Count:    n,
		Width:    c.Canvas.Width,
		Height:   c.Canvas.Height,
		MinMajor: c.Generator.MinMajor,
		MaxMajor: c.Generator.MaxMajor,
		MaxAngle: c.Generator.MaxAngle,
		Margin:   c.Generator.Margin,
	}
}

// SheetCanvas returns the canvas used for rendering.
func (c *Config) SheetCanvas() sheet.Canvas {
	return sheet.Canvas{Width: c.Canvas.Width, Height: c.Canvas.Height}
}

// Level returns the parsed log level.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidParameter, err, "invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == environmentProduction
}
