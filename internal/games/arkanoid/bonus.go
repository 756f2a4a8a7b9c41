package arkanoid

import (
	"math/rand/v2"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// BonusKind represents the falling pickup variants.
type BonusKind int

const (
	BonusShrink    BonusKind = iota // Narrow paddle
	BonusExpand                     // Widen paddle
	BonusAmmo                       // Grant bullets
	BonusFireBall                   // Ball burns through bricks
	BonusFastBall                   // Ball speeds up
	BonusLife                       // Extra life
	BonusDeath                      // Lose a life
	BonusKindCount                  // Sentinel for counting kinds
)

// Glyph returns the display character for a bonus kind.
func (k BonusKind) Glyph() rune {
	switch k {
	case BonusShrink:
		return 'S'
	case BonusExpand:
		return 'E'
	case BonusAmmo:
		return 'A'
	case BonusFireBall:
		return 'F'
	case BonusFastBall:
		return '+'
	case BonusLife:
		return '♥'
	case BonusDeath:
		return '☠'
	default:
		return '?'
	}
}

// Color returns the display color for a bonus kind.
func (k BonusKind) Color() core.Color {
	switch k {
	case BonusShrink, BonusDeath:
		return core.ColorBrightRed
	case BonusExpand, BonusLife:
		return core.ColorBrightGreen
	case BonusAmmo:
		return core.ColorBrightYellow
	case BonusFireBall:
		return core.ColorOrange
	case BonusFastBall:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

// String returns the name of the bonus kind.
func (k BonusKind) String() string {
	switch k {
	case BonusShrink:
		return "Shrink"
	case BonusExpand:
		return "Expand"
	case BonusAmmo:
		return "Ammo"
	case BonusFireBall:
		return "FireBall"
	case BonusFastBall:
		return "FastBall"
	case BonusLife:
		return "Life"
	case BonusDeath:
		return "Death"
	default:
		return "?"
	}
}

// bonusEffects maps every kind to the one mutation it applies on pickup.
var bonusEffects = [BonusKindCount]func(e *Engine){
	BonusShrink: func(e *Engine) {
		e.paddle.Narrow()
	},
	BonusExpand: func(e *Engine) {
		e.paddle.Expand(e.field.W)
		if dx := e.steer(0); !e.ball.InFlight() {
			e.ball.Follow(dx)
		}
	},
	BonusAmmo: func(e *Engine) {
		e.paddle.GrantAmmo(e.cfg.Gameplay.AmmoGrant)
	},
	BonusFireBall: func(e *Engine) {
		e.ball.Ignite()
	},
	BonusFastBall: func(e *Engine) {
		e.ball.Accelerate(e.cfg.Physics.BallVelocity, e.cfg.Physics.SpeedUpFactor)
	},
	BonusLife: func(e *Engine) {
		e.lives++
	},
	BonusDeath: func(e *Engine) {
		e.loseLife()
	},
}

// rollBonus decides whether a destroyed brick drops a bonus and which one.
// A drop happens when the roll lands in the top chance fraction of [0, 1).
func rollBonus(rng *rand.Rand, chance float64) (BonusKind, bool) {
	if rng.Float64() <= 1-chance {
		return 0, false
	}
	return BonusKind(rng.IntN(int(BonusKindCount))), true
}

// newBonus creates a falling bonus centered on (cx, cy).
func newBonus(kind BonusKind, cx, cy float64, size config.Size, velocity float64) *Bonus {
	return &Bonus{
		Body: Body{
			Rect:      core.NewRect(cx-size.Width/2, cy-size.Height/2, size.Width, size.Height),
			Velocity:  velocity,
			Direction: core.Vec{X: 0, Y: 1},
		},
		Type: kind,
	}
}
