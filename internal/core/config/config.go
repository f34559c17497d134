package config

import (
	"fmt"

	"github.com/skirmish/skirmish/internal/core/fsm"
	"github.com/skirmish/skirmish/internal/core/strategy"
)

// Config is the full tuning document for a simulation: the character
// controller, the AI selector and the driver loop.
type Config struct {
	Character fsm.Params      `json:"character" yaml:"character"`
	AI        strategy.Params `json:"ai" yaml:"ai"`
	Sim       SimConfig       `json:"sim" yaml:"sim"`
}

// SimConfig tunes the demo driver loop.
type SimConfig struct {
	Tick     float64 `json:"tick" yaml:"tick"`
	Steps    int     `json:"steps" yaml:"steps"`
	Enemies  int     `json:"enemies" yaml:"enemies"`
	LogLevel string  `json:"log_level" yaml:"log_level"`
}

// Default returns the configuration matching the legacy demo: a ~60 steps per
// time-unit tick and a small enemy squad.
func Default() Config {
	return Config{
		Character: fsm.DefaultParams(),
		AI:        strategy.DefaultParams(),
		Sim: SimConfig{
			Tick:     0.016,
			Steps:    600,
			Enemies:  3,
			LogLevel: "info",
		},
	}
}

// Validate validates the whole document.
func (c Config) Validate() error {
	if err := c.Character.Validate(); err != nil {
		return fmt.Errorf("character config: %w", err)
	}
	if err := c.AI.Validate(); err != nil {
		return fmt.Errorf("ai config: %w", err)
	}
	if c.Sim.Tick <= 0 {
		return fmt.Errorf("sim config: tick must be positive, got %v", c.Sim.Tick)
	}
	if c.Sim.Steps <= 0 {
		return fmt.Errorf("sim config: steps must be positive, got %d", c.Sim.Steps)
	}
	if c.Sim.Enemies < 0 {
		return fmt.Errorf("sim config: enemies must not be negative, got %d", c.Sim.Enemies)
	}
	return nil
}
