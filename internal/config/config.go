// Package config loads the drawall configuration file.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"Drawall/internal/board"
	"Drawall/internal/logx"
	"Drawall/internal/render"
)

type Config struct {
	Surface Surface `toml:"surface"`
	Tap     Tap     `toml:"tap"`
	Log     Log     `toml:"log"`
}

// Surface configures the drawing window and board.
type Surface struct {
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	Guides bool `toml:"guides"`
	// Touch forces touch or pointer input; unset means platform detection.
	Touch        *bool   `toml:"touch"`
	Color        string  `toml:"color"`
	MaxLineWidth float64 `toml:"max_line_width"`
}

// Tap configures the diagnostic event feed. An empty Listen disables it.
type Tap struct {
	Listen    string `toml:"listen"`
	Advertise bool   `toml:"advertise"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Surface: Surface{
			Width:        1024,
			Height:       768,
			Color:        board.DefaultColor,
			MaxLineWidth: render.MaxLineWidth,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Parse decodes a TOML document over the defaults and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: surface size %dx%d must be positive", c.Surface.Width, c.Surface.Height))
	}
	if _, ok := render.ParseColor(c.Surface.Color); !ok {
		errs = append(errs, fmt.Errorf("config: unknown color %q", c.Surface.Color))
	}
	if c.Surface.MaxLineWidth < 0 {
		errs = append(errs, fmt.Errorf("config: max_line_width %v is negative", c.Surface.MaxLineWidth))
	}
	if _, ok := logx.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, fmt.Errorf("config: unknown log level %q", c.Log.Level))
	}
	if c.Tap.Advertise && c.Tap.Listen == "" {
		errs = append(errs, errors.New("config: tap.advertise needs tap.listen"))
	}
	return errors.Join(errs...)
}

// BoardOptions returns the board construction options for this config.
func (c Config) BoardOptions() board.Options {
	return board.Options{
		UseTouchMode: c.Surface.Touch,
		ShowGuides:   c.Surface.Guides,
		Color:        c.Surface.Color,
		MaxLineWidth: c.Surface.MaxLineWidth,
	}
}
