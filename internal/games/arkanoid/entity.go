package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Kind discriminates entity variants for rendering.
type Kind int

const (
	KindPaddle Kind = iota
	KindBall
	KindBrick
	KindBullet
	KindBonus
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindBrick:
		return "brick"
	case KindBullet:
		return "bullet"
	case KindBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Entity is anything the presentation layer can draw.
type Entity interface {
	Bounds() core.Rect
	Kind() Kind
}

// Body is a rectangle moving along a direction at a fixed velocity.
type Body struct {
	Rect      core.Rect
	Velocity  float64  // Pixels per tick
	Direction core.Vec // Unit heading
}

// Bounds returns the current rectangle.
func (b *Body) Bounds() core.Rect {
	return b.Rect
}

// Move advances the body by direction*velocity*scale. Each component is
// truncated toward zero so movement happens in whole pixels.
func (b *Body) Move(scale float64) {
	d := b.Direction.Scale(b.Velocity * scale)
	b.Rect = b.Rect.Relocate(math.Trunc(d.X), math.Trunc(d.Y))
}

// Paddle is the player's ship.
type Paddle struct {
	Body
	Ammo int
}

// Kind implements Entity.
func (p *Paddle) Kind() Kind { return KindPaddle }

// Expand grows the paddle by half its width, keeping it centered.
// The width never exceeds maxW.
func (p *Paddle) Expand(maxW float64) {
	grow := min(p.Rect.W/2, maxW-p.Rect.W)
	if grow <= 0 {
		return
	}
	p.Rect = p.Rect.Transform(-grow/2, 0, grow, 0)
}

// Narrow shrinks the paddle by half its width, keeping it centered.
func (p *Paddle) Narrow() {
	half := p.Rect.W / 2
	p.Rect = p.Rect.Transform(half/2, 0, -half, 0)
}

// GrantAmmo adds bullets to the magazine.
func (p *Paddle) GrantAmmo(n int) {
	p.Ammo += n
}

// TakeShot spends cost ammo. It fails without spending when the magazine
// holds less than cost.
func (p *Paddle) TakeShot(cost int) bool {
	if p.Ammo < cost {
		return false
	}
	p.Ammo -= cost
	return true
}

// BallState is the ball's flight mode.
type BallState int

const (
	BallCaught BallState = iota // Riding on the paddle
	BallFree                    // Normal flight, bounces off bricks
	BallFiery                   // Flies through bricks, destroying them
)

// String returns the name of the ball state.
func (s BallState) String() string {
	switch s {
	case BallCaught:
		return "caught"
	case BallFree:
		return "free"
	case BallFiery:
		return "fiery"
	default:
		return "unknown"
	}
}

// Ball is the single ball in play.
type Ball struct {
	Body
	State BallState
}

// Kind implements Entity.
func (b *Ball) Kind() Kind { return KindBall }

// InFlight reports whether the ball moves on its own.
func (b Ball) InFlight() bool {
	return b.State != BallCaught
}

// Follow shifts a caught ball horizontally along with the paddle.
func (b *Ball) Follow(dx float64) {
	b.Rect = b.Rect.Relocate(dx, 0)
}

// Release frees a caught ball. Reports whether the state changed.
func (b *Ball) Release() bool {
	if b.State != BallCaught {
		return false
	}
	b.State = BallFree
	return true
}

// Ignite turns a flying ball fiery. A caught ball stays on the paddle.
func (b *Ball) Ignite() {
	if b.InFlight() {
		b.State = BallFiery
	}
}

// Accelerate sets the velocity to factor times the base velocity.
// Repeated calls do not compound.
func (b *Ball) Accelerate(base, factor float64) {
	b.Velocity = base * factor
}

// BounceX inverts the horizontal heading.
func (b *Ball) BounceX() {
	b.Direction.X = -b.Direction.X
}

// BounceY inverts the vertical heading.
func (b *Ball) BounceY() {
	b.Direction.Y = -b.Direction.Y
}

// Brick is a static target.
type Brick struct {
	Rect  core.Rect
	Color core.Color
}

// Bounds implements Entity.
func (b *Brick) Bounds() core.Rect { return b.Rect }

// Kind implements Entity.
func (b *Brick) Kind() Kind { return KindBrick }

// Bullet flies straight up from the paddle.
type Bullet struct {
	Body
}

// Kind implements Entity.
func (b *Bullet) Kind() Kind { return KindBullet }

// Bonus falls straight down from a destroyed brick.
type Bonus struct {
	Body
	Type BonusKind
}

// Kind implements Entity.
func (b *Bonus) Kind() Kind { return KindBonus }
