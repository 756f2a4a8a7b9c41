package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Phase is the session state machine position.
type Phase int

const (
	PhasePlaying  Phase = iota // Ticks advance the simulation
	PhaseWon                   // Last level cleared, terminal
	PhaseGameOver              // No lives left, terminal
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Terminal reports whether further ticks are no-ops.
func (p Phase) Terminal() bool {
	return p != PhasePlaying
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventBrickDestroyed EventType = iota
	EventBonusSpawned
	EventBonusCollected
	EventLifeLost
	EventLevelCleared
	EventWon
	EventGameOver
	EventShot
)

// String returns the name of the event type.
func (t EventType) String() string {
	switch t {
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventBonusSpawned:
		return "bonus_spawned"
	case EventBonusCollected:
		return "bonus_collected"
	case EventLifeLost:
		return "life_lost"
	case EventLevelCleared:
		return "level_cleared"
	case EventWon:
		return "won"
	case EventGameOver:
		return "gameover"
	case EventShot:
		return "shot"
	default:
		return "unknown"
	}
}

// Event is one state transition reported by Advance.
type Event struct {
	Type     EventType
	Rect     core.Rect // Where it happened, zero for session-wide events
	Bonus    BonusKind // Spawned or collected kind
	Points   int       // Score awarded by this event
	Level    int       // Level index the event refers to
	ByBullet bool      // Brick destroyed by a bullet rather than the ball
}

// Snapshot is the read-only session state after a tick.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Lives     int
	Level     int
	Ammo      int
	Paddle    core.Rect
	Ball      core.Rect
	BallDir   core.Vec
	BallState BallState
	Bricks    int
	Bullets   int
	Bonuses   int
	Events    []Event
}

// Has reports whether an event of type t happened during the tick.
func (snap *Snapshot) Has(t EventType) bool {
	for _, ev := range snap.Events {
		if ev.Type == t {
			return true
		}
	}
	return false
}

// Count returns how many events of type t happened during the tick.
func (snap *Snapshot) Count(t EventType) int {
	n := 0
	for _, ev := range snap.Events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ammo)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallState) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bricks)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bullets)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bonuses)   //#nosec G115 -- hash computation

	for _, r := range []core.Rect{snap.Paddle, snap.Ball} {
		h = h*31 + math.Float64bits(r.X)
		h = h*31 + math.Float64bits(r.Y)
		h = h*31 + math.Float64bits(r.W)
		h = h*31 + math.Float64bits(r.H)
	}
	h = h*31 + math.Float64bits(snap.BallDir.X)
	h = h*31 + math.Float64bits(snap.BallDir.Y)

	for _, ev := range snap.Events {
		h = h*31 + uint64(ev.Type)  //#nosec G115 -- hash computation
		h = h*31 + uint64(ev.Bonus) //#nosec G115 -- hash computation
	}

	return h
}
