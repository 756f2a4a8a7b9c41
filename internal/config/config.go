// Package config provides YAML-based game configuration loading and
// difficulty presets for the arkanoid simulation.
package config

import (
	"errors"
	"fmt"
)

// ArkanoidConfig contains every tunable of the simulation. It is passed by
// value into the engine and never mutated there.
type ArkanoidConfig struct {
	Sizes    ArkanoidSizes    `yaml:"sizes"`
	Physics  ArkanoidPhysics  `yaml:"physics"`
	Gameplay ArkanoidGameplay `yaml:"gameplay"`
	Layout   ArkanoidLayout   `yaml:"layout"`
	Render   ArkanoidRender   `yaml:"render"`
}

// Size is a width/height pair in play-field pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArkanoidSizes defines entity dimensions.
type ArkanoidSizes struct {
	Ball   Size `yaml:"ball"`
	Paddle Size `yaml:"paddle"`
	Bonus  Size `yaml:"bonus"`
	Brick  Size `yaml:"brick"`
	Bullet Size `yaml:"bullet"`
}

// ArkanoidPhysics defines velocities (pixels per tick) and angles (degrees).
type ArkanoidPhysics struct {
	BallVelocity   float64 `yaml:"ball_velocity"`
	PaddleVelocity float64 `yaml:"paddle_velocity"`
	BonusVelocity  float64 `yaml:"bonus_velocity"`
	BulletVelocity float64 `yaml:"bullet_velocity"`
	LaunchAngle    float64 `yaml:"launch_angle"`   // Initial ball heading, -45 = up and right
	SpeedUpFactor  float64 `yaml:"speed_up"`       // Fast-ball multiplier over the base velocity
	BounceDivisor  float64 `yaml:"bounce_divisor"` // Paddle deflection range is pi/divisor
}

// ArkanoidGameplay defines scoring, lives and bonus parameters.
type ArkanoidGameplay struct {
	Lives       int     `yaml:"lives"`
	BrickPoints int     `yaml:"brick_points"`
	LevelBonus  int     `yaml:"level_bonus"` // Multiplied by the cleared level index
	AmmoGrant   int     `yaml:"ammo_grant"`
	ShotCost    int     `yaml:"shot_cost"`
	BonusChance float64 `yaml:"bonus_chance"` // Probability per destroyed brick
}

// ArkanoidLayout defines brick grid spacing.
type ArkanoidLayout struct {
	GapX float64 `yaml:"gap_x"`
	GapY float64 `yaml:"gap_y"`
}

// ArkanoidRender defines how the terminal shell maps the field to cells.
type ArkanoidRender struct {
	CellWidth      float64 `yaml:"cell_width"`       // Field pixels per terminal column
	CellHeight     float64 `yaml:"cell_height"`      // Field pixels per terminal row
	SteerHoldTicks int     `yaml:"steer_hold_ticks"` // Ticks a single key press keeps steering
}

// Validate reports configuration values the simulation cannot run with.
func (c ArkanoidConfig) Validate() error {
	var errs []error

	sizes := map[string]Size{
		"ball":   c.Sizes.Ball,
		"paddle": c.Sizes.Paddle,
		"bonus":  c.Sizes.Bonus,
		"brick":  c.Sizes.Brick,
		"bullet": c.Sizes.Bullet,
	}
	for _, name := range []string{"ball", "paddle", "bonus", "brick", "bullet"} {
		s := sizes[name]
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("sizes.%s must be positive, got %vx%v", name, s.Width, s.Height))
		}
	}

	if c.Physics.BallVelocity <= 0 || c.Physics.PaddleVelocity <= 0 ||
		c.Physics.BonusVelocity <= 0 || c.Physics.BulletVelocity <= 0 {
		errs = append(errs, errors.New("physics velocities must be positive"))
	}
	if c.Physics.BounceDivisor < 2 {
		errs = append(errs, fmt.Errorf("physics.bounce_divisor must be at least 2, got %v", c.Physics.BounceDivisor))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.ShotCost <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.shot_cost must be positive, got %d", c.Gameplay.ShotCost))
	}
	if c.Gameplay.BonusChance < 0 || c.Gameplay.BonusChance > 1 {
		errs = append(errs, fmt.Errorf("gameplay.bonus_chance must be within [0, 1], got %v", c.Gameplay.BonusChance))
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		errs = append(errs, errors.New("render cell size must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid arkanoid config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
