package arkanoid

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events. Discarded unless the CLI installs one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger for session events.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game adapts the Engine to the platform: it turns input frames into
// steering and commands, and draws the engine state into a screen.
type Game struct {
	engine *Engine
	last   Snapshot

	runtime core.RuntimeConfig
	cfg     config.ArkanoidConfig

	paused    bool
	steer     int // Direction of the last steering key
	steerHold int // Ticks the last steering key keeps applying

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Arkanoid game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arkanoid"
}

// Reset loads the configuration and starts a new session sized to the
// screen. Row 0 is the HUD; the rest of the screen is the play field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadArkanoid(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
	}
	if difficultyPreset != "" {
		config.ApplyArkanoidPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.minScreenW = int(math.Ceil(MinFieldWidth(cfg) / cfg.Render.CellWidth))
	g.minScreenH = 1 + int(math.Ceil(MinFieldHeight(cfg)/cfg.Render.CellHeight))
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	fieldW := float64(runtime.ScreenW) * cfg.Render.CellWidth
	fieldH := float64(runtime.ScreenH-1) * cfg.Render.CellHeight
	g.engine = NewEngine(cfg, fieldW, fieldH, runtime.Seed)
	g.last = g.engine.Snapshot()

	g.paused = false
	g.steer = 0
	g.steerHold = 0

	logger.Debug("session started",
		"field", g.engine.Field(),
		"seed", runtime.Seed,
		"difficulty", difficultyPreset,
		"too_small", g.screenTooSmall,
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.engine.Phase().Terminal() {
		g.engine.Restart()
		g.last = g.engine.Snapshot()
		g.paused = false
		g.steerHold = 0
		logger.Info("session restarted")
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.engine.Phase().Terminal() {
		g.paused = !g.paused
	}

	if g.paused || g.engine.Phase().Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Terminals report key presses but not releases, so a press steers
	// for a few ticks and repeats extend it.
	if s := in.Steering(); s != 0 {
		g.steer = s
		g.steerHold = g.cfg.Render.SteerHoldTicks
	}
	steer := 0
	if g.steerHold > 0 {
		steer = g.steer
		g.steerHold--
	}

	if in.Has(core.ActionLaunch) {
		g.engine.ReleaseBall()
	}
	if in.Has(core.ActionFire) {
		g.engine.Fire()
	}

	g.last = g.engine.Advance(steer)
	g.logEvents(g.last)

	return core.StepResult{State: g.State()}
}

// logEvents reports session milestones; per-brick noise stays at debug.
func (g *Game) logEvents(snap Snapshot) {
	for _, ev := range snap.Events {
		switch ev.Type {
		case EventLevelCleared:
			logger.Info("level cleared", "level", ev.Level, "bonus", ev.Points, "score", snap.Score)
		case EventLifeLost:
			logger.Info("life lost", "level", ev.Level, "lives", snap.Lives)
		case EventGameOver:
			logger.Info("game over", "level", ev.Level, "score", snap.Score)
		case EventWon:
			logger.Info("all levels cleared", "score", snap.Score)
		case EventBonusCollected:
			logger.Debug("bonus collected", "kind", ev.Bonus, "tick", snap.Tick)
		case EventBrickDestroyed:
			logger.Debug("brick destroyed", "by_bullet", ev.ByBullet, "left", snap.Bricks)
		default:
			logger.Debug(ev.Type.String(), "tick", snap.Tick)
		}
	}
}

// Engine returns the simulation behind the game.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Phase().Terminal(),
		Won:      g.engine.Won(),
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
}
