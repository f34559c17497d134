package strategy

import (
	"fmt"

	"github.com/skirmish/skirmish/internal/core/geometry"
)

// Params is the tuning surface of the behavior selector.
type Params struct {
	EvalInterval float64 `json:"eval_interval" yaml:"eval_interval"`

	AttackCooldown float64 `json:"attack_cooldown" yaml:"attack_cooldown"`
	DefendDuration float64 `json:"defend_duration" yaml:"defend_duration"`

	FleeSpeedFactor    float64 `json:"flee_speed_factor" yaml:"flee_speed_factor"`
	BerserkSpeedFactor float64 `json:"berserk_speed_factor" yaml:"berserk_speed_factor"`
	DefendSpeedFactor  float64 `json:"defend_speed_factor" yaml:"defend_speed_factor"`

	FleeThreshold       float64 `json:"flee_threshold" yaml:"flee_threshold"`
	BerserkThreshold    float64 `json:"berserk_threshold" yaml:"berserk_threshold"`
	DefendLowThreshold  float64 `json:"defend_low_threshold" yaml:"defend_low_threshold"`
	DefendHighThreshold float64 `json:"defend_high_threshold" yaml:"defend_high_threshold"`

	ArrivalRadius float64         `json:"arrival_radius" yaml:"arrival_radius"`
	Waypoints     []geometry.Vec2 `json:"waypoints" yaml:"waypoints"`
}

// DefaultParams returns the legacy selector's tuning, including its square
// patrol route.
func DefaultParams() Params {
	return Params{
		EvalInterval:        1.0,
		AttackCooldown:      1.0,
		DefendDuration:      2.0,
		FleeSpeedFactor:     1.5,
		BerserkSpeedFactor:  1.5,
		DefendSpeedFactor:   0.5,
		FleeThreshold:       0.3,
		BerserkThreshold:    0.2,
		DefendLowThreshold:  0.3,
		DefendHighThreshold: 0.6,
		ArrivalRadius:       5.0,
		Waypoints: []geometry.Vec2{
			{X: 0, Y: 0},
			{X: 100, Y: 0},
			{X: 100, Y: 100},
			{X: 0, Y: 100},
		},
	}
}

// Validate validates the selector tuning.
func (p Params) Validate() error {
	if p.EvalInterval <= 0 {
		return fmt.Errorf("eval_interval must be positive, got %v", p.EvalInterval)
	}
	if p.AttackCooldown <= 0 {
		return fmt.Errorf("attack_cooldown must be positive, got %v", p.AttackCooldown)
	}
	if p.DefendDuration <= 0 {
		return fmt.Errorf("defend_duration must be positive, got %v", p.DefendDuration)
	}
	if p.FleeSpeedFactor <= 0 || p.BerserkSpeedFactor <= 0 || p.DefendSpeedFactor <= 0 {
		return fmt.Errorf("speed factors must be positive")
	}
	if p.FleeThreshold <= 0 || p.FleeThreshold > 1 {
		return fmt.Errorf("flee_threshold must be in (0, 1], got %v", p.FleeThreshold)
	}
	if p.BerserkThreshold <= 0 || p.BerserkThreshold > 1 {
		return fmt.Errorf("berserk_threshold must be in (0, 1], got %v", p.BerserkThreshold)
	}
	if p.DefendLowThreshold > p.DefendHighThreshold {
		return fmt.Errorf("defend_low_threshold %v exceeds defend_high_threshold %v",
			p.DefendLowThreshold, p.DefendHighThreshold)
	}
	if p.ArrivalRadius <= 0 {
		return fmt.Errorf("arrival_radius must be positive, got %v", p.ArrivalRadius)
	}
	return nil
}
