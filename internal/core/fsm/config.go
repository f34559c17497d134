package fsm

import "fmt"

// Params is the tuning surface of the character controller. Zero values are
// invalid; load through DefaultParams or the config package.
type Params struct {
	WalkSpeed       float64 `json:"walk_speed" yaml:"walk_speed"`
	AirControlSpeed float64 `json:"air_control_speed" yaml:"air_control_speed"`
	InputStep       float64 `json:"input_step" yaml:"input_step"`

	JumpForce float64 `json:"jump_force" yaml:"jump_force"`
	Gravity   float64 `json:"gravity" yaml:"gravity"`

	AttackDuration float64 `json:"attack_duration" yaml:"attack_duration"`
	CastDuration   float64 `json:"cast_duration" yaml:"cast_duration"`

	ManaCost      int     `json:"mana_cost" yaml:"mana_cost"`
	ManaRegenRate float64 `json:"mana_regen_rate" yaml:"mana_regen_rate"`
}

// DefaultParams returns the legacy controller's tuning.
func DefaultParams() Params {
	return Params{
		WalkSpeed:       100.0,
		AirControlSpeed: 50.0,
		InputStep:       0.016,
		JumpForce:       300.0,
		Gravity:         -500.0,
		AttackDuration:  0.5,
		CastDuration:    1.0,
		ManaCost:        10,
		ManaRegenRate:   5.0,
	}
}

// Validate validates the controller tuning.
func (p Params) Validate() error {
	if p.WalkSpeed <= 0 {
		return fmt.Errorf("walk_speed must be positive, got %v", p.WalkSpeed)
	}
	if p.AirControlSpeed <= 0 {
		return fmt.Errorf("air_control_speed must be positive, got %v", p.AirControlSpeed)
	}
	if p.InputStep <= 0 {
		return fmt.Errorf("input_step must be positive, got %v", p.InputStep)
	}
	if p.JumpForce <= 0 {
		return fmt.Errorf("jump_force must be positive, got %v", p.JumpForce)
	}
	if p.Gravity >= 0 {
		return fmt.Errorf("gravity must be negative, got %v", p.Gravity)
	}
	if p.AttackDuration <= 0 {
		return fmt.Errorf("attack_duration must be positive, got %v", p.AttackDuration)
	}
	if p.CastDuration <= 0 {
		return fmt.Errorf("cast_duration must be positive, got %v", p.CastDuration)
	}
	if p.ManaCost <= 0 {
		return fmt.Errorf("mana_cost must be positive, got %d", p.ManaCost)
	}
	if p.ManaRegenRate < 0 {
		return fmt.Errorf("mana_regen_rate must not be negative, got %v", p.ManaRegenRate)
	}
	return nil
}
