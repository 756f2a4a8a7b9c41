package arkanoid

import (
	"iter"
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Engine owns one play session. It has no timer of its own: the caller
// drives it by calling Advance once per frame from a single goroutine.
type Engine struct {
	cfg   config.ArkanoidConfig
	field core.Rect
	seed  int64
	rng   *rand.Rand

	catalog    *Catalog
	level      *Level
	levelIndex int

	paddle  *Paddle
	ball    *Ball
	bullets *Arena[*Bullet]
	bonuses *Arena[*Bonus]

	score  int
	lives  int
	phase  Phase
	tick   uint64
	round  int // Bumped by every paddle and ball reset
	deadly float64

	events []Event // Raised since the last snapshot
}

// NewEngine creates a session on a fieldW x fieldH play field. The same
// config, field and seed always produce the same session.
func NewEngine(cfg config.ArkanoidConfig, fieldW, fieldH float64, seed int64) *Engine {
	e := &Engine{
		cfg:     cfg,
		field:   core.NewRect(0, 0, fieldW, fieldH),
		seed:    seed,
		rng:     newRNG(seed),
		bullets: NewArena[*Bullet](16),
		bonuses: NewArena[*Bonus](8),
	}
	e.Restart()

	// The paddle rests on the field bottom, so the line sits half a paddle
	// above the bottom edge.
	e.deadly = e.paddle.Rect.Bottom() - e.paddle.Rect.H/2

	return e
}

func newRNG(seed int64) *rand.Rand {
	s := uint64(seed) //#nosec G115 -- seed bits are reinterpreted, sign is irrelevant
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Restart begins a new session on the same field. The random stream
// continues, so successive sessions see different bonus drops.
func (e *Engine) Restart() {
	e.catalog = NewCatalog(e.field.W, e.cfg)
	e.levelIndex = 1
	e.level, _ = e.catalog.Level(e.levelIndex)

	e.score = 0
	e.lives = e.cfg.Gameplay.Lives
	e.phase = PhasePlaying
	e.tick = 0
	e.events = nil

	e.resetRound()
}

// Advance runs one simulation tick with the given steering (-1 left,
// 0 none, +1 right; larger magnitudes are clamped) and returns the
// resulting state. Once the session is won or over it changes nothing.
func (e *Engine) Advance(steer int) Snapshot {
	if e.phase.Terminal() {
		return e.snapshot()
	}
	e.tick++

	dx := e.steer(core.Clamp(steer, -1, 1))
	if e.ball.InFlight() {
		e.ball.Move(1)
	} else {
		e.ball.Follow(dx)
	}
	e.reflectWalls()

	if e.ball.InFlight() && e.ball.Rect.Middle() > e.deadly {
		e.loseLife()
		if e.phase.Terminal() {
			return e.snapshot()
		}
	}

	if e.level.Cleared() {
		e.clearLevel()
		if e.phase.Terminal() {
			return e.snapshot()
		}
	}

	e.collideBricks()

	e.updateBonuses()
	if e.phase.Terminal() {
		return e.snapshot()
	}

	e.updateBullets()
	e.bouncePaddle()

	return e.snapshot()
}

// ReleaseBall launches a caught ball. Reports whether the ball was caught.
func (e *Engine) ReleaseBall() bool {
	if e.phase.Terminal() {
		return false
	}
	return e.ball.Release()
}

// Fire shoots a pair of bullets from the paddle edges. Nothing happens
// when the magazine holds less than one shot.
func (e *Engine) Fire() bool {
	if e.phase.Terminal() || !e.paddle.TakeShot(e.cfg.Gameplay.ShotCost) {
		return false
	}

	size := e.cfg.Sizes.Bullet
	top := e.paddle.Rect.Top() - size.Height
	for _, x := range []float64{e.paddle.Rect.Left(), e.paddle.Rect.Right() - size.Width} {
		e.bullets.Insert(&Bullet{Body: Body{
			Rect:      core.NewRect(x, top, size.Width, size.Height),
			Velocity:  e.cfg.Physics.BulletVelocity,
			Direction: core.Vec{X: 0, Y: -1},
		}})
	}

	e.emit(Event{Type: EventShot, Rect: e.paddle.Rect, Level: e.levelIndex})
	return true
}

// Entities yields every live entity: paddle, ball, bricks, bullets, bonuses.
// Each call starts a fresh pass over the current state.
func (e *Engine) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if !yield(e.paddle) || !yield(e.ball) {
			return
		}
		for b := range e.level.Bricks.Values() {
			if !yield(b) {
				return
			}
		}
		for b := range e.bullets.Values() {
			if !yield(b) {
				return
			}
		}
		for b := range e.bonuses.Values() {
			if !yield(b) {
				return
			}
		}
	}
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Level returns the 1-based index of the level in play.
func (e *Engine) Level() int { return e.levelIndex }

// LevelName returns the display name of the level in play.
func (e *Engine) LevelName() string { return e.level.Name }

// LevelCount returns how many levels the session has.
func (e *Engine) LevelCount() int { return e.catalog.Count() }

// BricksLeft returns how many bricks remain in the level.
func (e *Engine) BricksLeft() int { return e.level.Remaining() }

// Ammo returns the paddle's bullet count.
func (e *Engine) Ammo() int { return e.paddle.Ammo }

// Phase returns the session state.
func (e *Engine) Phase() Phase { return e.phase }

// GameOver reports whether every life was lost.
func (e *Engine) GameOver() bool { return e.phase == PhaseGameOver }

// Won reports whether the last level was cleared.
func (e *Engine) Won() bool { return e.phase == PhaseWon }

// Seed returns the seed the random stream was created with.
func (e *Engine) Seed() int64 { return e.seed }

// Tick returns the number of ticks simulated since the session began.
func (e *Engine) Tick() uint64 { return e.tick }

// DeadlyHeight returns the y below which a ball's midpoint counts as lost.
func (e *Engine) DeadlyHeight() float64 { return e.deadly }

// Field returns the play field rectangle.
func (e *Engine) Field() core.Rect { return e.field }

// Ball returns a copy of the ball.
func (e *Engine) Ball() Ball { return *e.ball }

// Paddle returns a copy of the paddle.
func (e *Engine) Paddle() Paddle { return *e.paddle }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.ArkanoidConfig { return e.cfg }

// Snapshot returns the current state without advancing. Pending events are
// not consumed.
func (e *Engine) Snapshot() Snapshot {
	snap := e.state()
	snap.Events = append([]Event(nil), e.events...)
	return snap
}

// snapshot captures the state and hands over the pending events.
func (e *Engine) snapshot() Snapshot {
	snap := e.state()
	snap.Events = e.events
	e.events = nil
	return snap
}

func (e *Engine) state() Snapshot {
	return Snapshot{
		Tick:      e.tick,
		Phase:     e.phase,
		Score:     e.score,
		Lives:     e.lives,
		Level:     e.levelIndex,
		Ammo:      e.paddle.Ammo,
		Paddle:    e.paddle.Rect,
		Ball:      e.ball.Rect,
		BallDir:   e.ball.Direction,
		BallState: e.ball.State,
		Bricks:    e.level.Remaining(),
		Bullets:   e.bullets.Len(),
		Bonuses:   e.bonuses.Len(),
	}
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// steer moves the paddle and keeps it inside the field. Returns the actual
// horizontal displacement.
func (e *Engine) steer(steer int) float64 {
	oldX := e.paddle.Rect.X
	e.paddle.Move(float64(steer))
	e.paddle.Rect = e.paddle.Rect.MoveTo(
		core.ClampF(e.paddle.Rect.X, e.field.Left(), max(e.field.Left(), e.field.Right()-e.paddle.Rect.W)),
		e.paddle.Rect.Y,
	)
	return e.paddle.Rect.X - oldX
}

// reflectWalls bounces the ball off the side and top edges when it is
// heading into them. The bottom edge is open.
func (e *Engine) reflectWalls() {
	if !e.ball.InFlight() {
		return
	}
	r := e.ball.Rect
	d := e.ball.Direction

	if (r.Left() <= e.field.Left() && d.X < 0) || (r.Right() >= e.field.Right() && d.X > 0) {
		e.ball.BounceX()
	}
	if r.Top() <= e.field.Top() && d.Y < 0 {
		e.ball.BounceY()
	}
}

// loseLife takes a life and puts a fresh paddle and ball in play, or ends
// the session when none are left.
func (e *Engine) loseLife() {
	e.lives--
	e.emit(Event{Type: EventLifeLost, Rect: e.ball.Rect, Level: e.levelIndex})
	e.resetRound()

	if e.lives <= 0 {
		e.lives = 0
		e.phase = PhaseGameOver
		e.emit(Event{Type: EventGameOver, Level: e.levelIndex})
	}
}

// clearLevel awards the level bonus and moves to the next level, or wins
// the session after the last one.
func (e *Engine) clearLevel() {
	points := e.cfg.Gameplay.LevelBonus * e.levelIndex
	e.score += points
	e.emit(Event{Type: EventLevelCleared, Points: points, Level: e.levelIndex})

	next, ok := e.catalog.Level(e.levelIndex + 1)
	if !ok {
		e.phase = PhaseWon
		e.emit(Event{Type: EventWon, Level: e.levelIndex})
		return
	}

	e.levelIndex++
	e.level = next
	e.resetRound()
}

// collideBricks destroys every brick the ball touches and reflects the
// ball off the first of them unless it is fiery.
func (e *Engine) collideBricks() {
	if !e.ball.InFlight() {
		return
	}

	ball := e.ball.Rect
	var hit []*Brick
	e.level.Bricks.RemoveFunc(func(_ Handle, b *Brick) bool {
		if !b.Rect.Intersects(ball) {
			return false
		}
		hit = append(hit, b)
		return true
	})
	if len(hit) == 0 {
		return
	}

	if e.ball.State != BallFiery {
		e.reflectOffBrick(hit[0])
	}

	for _, b := range hit {
		e.score += e.cfg.Gameplay.BrickPoints
		e.emit(Event{
			Type:   EventBrickDestroyed,
			Rect:   b.Rect,
			Points: e.cfg.Gameplay.BrickPoints,
			Level:  e.levelIndex,
		})
		e.maybeDropBonus(b)
	}
}

// reflectOffBrick decides between a top/bottom and a side hit. The ball's
// travel this tick is subtracted from its distance to the brick center: if
// what remains is within the brick's half-width the hit came from above or
// below.
func (e *Engine) reflectOffBrick(b *Brick) {
	reach := b.Rect.W/2 + math.Abs(e.ball.Direction.X)*e.ball.Velocity
	if math.Abs(e.ball.Rect.CenterX()-b.Rect.CenterX()) <= reach {
		e.ball.BounceY()
	} else {
		e.ball.BounceX()
	}
}

func (e *Engine) maybeDropBonus(b *Brick) {
	kind, ok := rollBonus(e.rng, e.cfg.Gameplay.BonusChance)
	if !ok {
		return
	}
	bonus := newBonus(kind, b.Rect.CenterX(), b.Rect.CenterY(), e.cfg.Sizes.Bonus, e.cfg.Physics.BonusVelocity)
	e.bonuses.Insert(bonus)
	e.emit(Event{Type: EventBonusSpawned, Rect: bonus.Rect, Bonus: kind, Level: e.levelIndex})
}

// updateBonuses drops bonuses that left the field, moves the rest and
// applies the ones the paddle caught.
func (e *Engine) updateBonuses() {
	e.bonuses.RemoveFunc(func(_ Handle, b *Bonus) bool {
		return !b.Rect.Intersects(e.field)
	})
	for b := range e.bonuses.Values() {
		b.Move(1)
	}

	var caught []*Bonus
	e.bonuses.RemoveFunc(func(_ Handle, b *Bonus) bool {
		if !b.Rect.Intersects(e.paddle.Rect) {
			return false
		}
		caught = append(caught, b)
		return true
	})

	round := e.round
	for _, b := range caught {
		e.emit(Event{Type: EventBonusCollected, Rect: b.Rect, Bonus: b.Type, Level: e.levelIndex})
		bonusEffects[b.Type](e)

		// A death bonus resets the round; the rest of this tick's
		// pickups went with the old paddle.
		if e.phase.Terminal() || e.round != round {
			return
		}
	}
}

// updateBullets drops bullets that left the field, moves the rest and
// trades each bullet that hits bricks for those bricks.
func (e *Engine) updateBullets() {
	e.bullets.RemoveFunc(func(_ Handle, b *Bullet) bool {
		return !b.Rect.Intersects(e.field)
	})
	for b := range e.bullets.Values() {
		b.Move(1)
	}

	hit := make(map[Handle]struct{})
	e.bullets.RemoveFunc(func(_ Handle, bullet *Bullet) bool {
		spent := false
		for h, brick := range e.level.Bricks.All() {
			if brick.Rect.Intersects(bullet.Rect) {
				hit[h] = struct{}{}
				spent = true
			}
		}
		return spent
	})
	if len(hit) == 0 {
		return
	}

	e.level.Bricks.RemoveFunc(func(h Handle, b *Brick) bool {
		if _, ok := hit[h]; !ok {
			return false
		}
		e.emit(Event{Type: EventBrickDestroyed, Rect: b.Rect, Level: e.levelIndex, ByBullet: true})
		return true
	})
}

// bouncePaddle sends a ball touching the paddle back up at an angle set by
// where it landed: straight up at the center, steeper toward the edges.
func (e *Engine) bouncePaddle() {
	if !e.ball.InFlight() || !e.ball.Rect.Intersects(e.paddle.Rect) {
		return
	}
	half := e.paddle.Rect.W / 2
	offset := core.ClampF((e.ball.Rect.CenterX()-e.paddle.Rect.CenterX())/half, -1, 1)
	e.ball.Direction = core.VecFromAngle(BounceAngle(offset, e.cfg.Physics.BounceDivisor))
}

// BounceAngle maps a landing offset in [-1, 1] across the paddle to a
// heading in radians. Zero is straight up (-pi/2); the edges tilt by
// pi/divisor.
func BounceAngle(offset, divisor float64) float64 {
	return -math.Pi/2 + (math.Pi/divisor)*offset
}

// resetRound clears projectiles and pickups and puts a new paddle at rest
// with the ball caught on top of it.
func (e *Engine) resetRound() {
	e.bullets.Clear()
	e.bonuses.Clear()
	e.paddle = e.newPaddle()
	e.ball = e.newBall(e.paddle)
	e.round++
}

func (e *Engine) newPaddle() *Paddle {
	size := e.cfg.Sizes.Paddle
	return &Paddle{Body: Body{
		Rect: core.NewRect(
			math.Trunc((e.field.W-size.Width)/2),
			e.field.Bottom()-size.Height,
			size.Width,
			size.Height,
		),
		Velocity:  e.cfg.Physics.PaddleVelocity,
		Direction: core.Vec{X: 1, Y: 0},
	}}
}

func (e *Engine) newBall(p *Paddle) *Ball {
	size := e.cfg.Sizes.Ball
	return &Ball{
		Body: Body{
			Rect: core.NewRect(
				p.Rect.X+math.Trunc((p.Rect.W-size.Width)/2),
				p.Rect.Top()-size.Height,
				size.Width,
				size.Height,
			),
			Velocity:  e.cfg.Physics.BallVelocity,
			Direction: core.VecFromAngle(e.cfg.Physics.LaunchAngle * math.Pi / 180),
		},
		State: BallCaught,
	}
}
