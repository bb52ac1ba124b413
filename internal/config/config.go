// Package config loads analysis settings from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 0.01
	DefaultSteps      = 2000
	DefaultFlowWidth  = 60
	DefaultPlotWidth  = 70
	DefaultPlotHeight = 16
)

// DefaultStarts are the initial conditions plotted when none are
// configured.
var DefaultStarts = []float64{0.1, 0.3, 0.5, 0.7, 0.9}

type Config struct {
	Dt         float64    `yaml:"dt"`
	Steps      int        `yaml:"steps"`
	Integrator string     `yaml:"integrator"`
	Starts     []float64  `yaml:"starts"`
	Plot       PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	FlowWidth int `yaml:"flow_width"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
}

func Default() *Config {
	return &Config{
		Dt:         DefaultDt,
		Steps:      DefaultSteps,
		Integrator: "euler",
		Starts:     append([]float64(nil), DefaultStarts...),
		Plot: PlotConfig{
			FlowWidth: DefaultFlowWidth,
			Width:     DefaultPlotWidth,
			Height:    DefaultPlotHeight,
		},
	}
}

// Load reads path into a Config, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	switch c.Integrator {
	case "euler", "rk4":
	default:
		return fmt.Errorf("unknown integrator: %s", c.Integrator)
	}
	if len(c.Starts) == 0 {
		return fmt.Errorf("at least one start is required")
	}
	for _, x0 := range c.Starts {
		if x0 < 0 || x0 > 1 {
			return fmt.Errorf("start %f outside [0,1]", x0)
		}
	}
	if c.Plot.FlowWidth < 10 || c.Plot.Width < 10 || c.Plot.Height < 4 {
		return fmt.Errorf("plot geometry too small: %+v", c.Plot)
	}
	return nil
}
