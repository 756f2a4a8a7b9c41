package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default Arkanoid configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Sizes: ArkanoidSizes{
			Ball:   Size{Width: 32, Height: 32},
			Paddle: Size{Width: 190, Height: 30},
			Bonus:  Size{Width: 25, Height: 25},
			Brick:  Size{Width: 90, Height: 20},
			Bullet: Size{Width: 10, Height: 18},
		},
		Physics: ArkanoidPhysics{
			BallVelocity:   15,
			PaddleVelocity: 30,
			BonusVelocity:  15,
			BulletVelocity: 20,
			LaunchAngle:    -45,
			SpeedUpFactor:  1.5,
			BounceDivisor:  2.75,
		},
		Gameplay: ArkanoidGameplay{
			Lives:       3,
			BrickPoints: 30,
			LevelBonus:  1000,
			AmmoGrant:   12,
			ShotCost:    2,
			BonusChance: 0.25,
		},
		Render: ArkanoidRender{
			CellWidth:      12.5,
			CellHeight:     20,
			SteerHoldTicks: 6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "arkanoid":
		return defaultArkanoidYAML
	default:
		return nil
	}
}
