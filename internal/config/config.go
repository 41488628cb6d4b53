// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"vvforecast-core/bioprocess"
	"vvforecast/internal/params"
)

// Config is a forecast preset. Fields missing from a file keep their defaults.
type Config struct {
	Inputs Inputs        `yaml:"inputs"`
	Window Window        `yaml:"window"`
	Ranges params.Ranges `yaml:"ranges"`
	Clamp  bool          `yaml:"clamp"` // move inputs into Ranges before evaluation
	Server ServerConfig  `yaml:"server"`
}

// Inputs mirrors bioprocess.Inputs with file tags.
type Inputs struct {
	Lambda            float64 `yaml:"lambda"`
	DoublingTimeHours float64 `yaml:"doubling_time_hours"`
	SeedDensity       float64 `yaml:"seed_density"`
	BurstSize         float64 `yaml:"burst_size"`
}

// Window mirrors bioprocess.Window with file tags.
type Window struct {
	InfectionHour float64 `yaml:"infection_hour"`
	EndHour       float64 `yaml:"end_hour"`
	StepHours     float64 `yaml:"step_hours"`
}

// ServerConfig configures `vvforecast serve`.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	CacheSize       int           `yaml:"cache_size"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the built-in preset.
func Default() Config {
	in := bioprocess.DefaultInputs()
	w := bioprocess.DefaultWindow()
	return Config{
		Inputs: Inputs{
			Lambda:            in.Lambda,
			DoublingTimeHours: in.DoublingTimeHours,
			SeedDensity:       in.SeedDensity,
			BurstSize:         in.BurstSize,
		},
		Window: Window{InfectionHour: w.InfectionHour, EndHour: w.EndHour, StepHours: w.StepHours},
		Ranges: params.DefaultRanges(),
		Clamp:  true,
		Server: ServerConfig{Addr: ":8080", CacheSize: 1024, ShutdownTimeout: 15 * time.Second},
	}
}

// LoadFile reads a YAML preset on top of Default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML preset on top of Default. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks ranges, window and server settings. Model inputs are not
// validated here; undefined results are the model's concern.
func (c *Config) Validate() error {
	if err := c.Ranges.Validate(); err != nil {
		return err
	}
	if err := c.ModelWindow().Validate(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if c.Server.CacheSize < 0 {
		return errors.New("server.cache_size must be ≥ 0")
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.New("server.shutdown_timeout must be ≥ 0")
	}
	return nil
}

// ModelInputs converts the preset inputs for the engine.
func (c *Config) ModelInputs() bioprocess.Inputs {
	return bioprocess.Inputs{
		Lambda:            c.Inputs.Lambda,
		DoublingTimeHours: c.Inputs.DoublingTimeHours,
		SeedDensity:       c.Inputs.SeedDensity,
		BurstSize:         c.Inputs.BurstSize,
	}
}

// ModelWindow converts the preset window for the engine.
func (c *Config) ModelWindow() bioprocess.Window {
	return bioprocess.Window{
		InfectionHour: c.Window.InfectionHour,
		EndHour:       c.Window.EndHour,
		StepHours:     c.Window.StepHours,
	}
}
