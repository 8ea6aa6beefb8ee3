// Package runner implements Neon Rush, a three-lane endless runner.
// Blocks stream toward the player, who switches lanes, jumps over blocks
// and grabs coins.
package runner

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
	"github.com/vovakirdan/neon-arcade/internal/games/scene"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/state"
)

// ID is the registry identifier.
const ID = "runner"

// Game implements the endless runner on top of the shared engine.
type Game struct {
	*engine.Engine
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Neon Rush",
		Description: "Dodge blocks across three lanes, jump and grab coins.",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(opts)
	})
}

// New loads the runner config and builds a game.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Difficulty != "" {
		config.ApplyRunnerPreset(&cfg, opts.Difficulty)
	}
	return NewWithConfig(cfg, opts.Store, opts.Seed), nil
}

// NewWithConfig builds a game from an explicit config.
func NewWithConfig(cfg config.RunnerConfig, store *state.Store, seed int64) *Game {
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	return &Game{
		Engine:     engine.New(EngineConfig(cfg, difficulty), store, seed),
		cfg:        cfg,
		difficulty: difficulty,
		runtime:    core.DefaultConfig(),
	}
}

// EngineConfig maps the runner config onto the engine.
func EngineConfig(cfg config.RunnerConfig, curve engine.SpeedCurve) engine.Config {
	player := scene.Lanes(cfg.Lanes)
	player.Jump = true
	player.JumpImpulse = cfg.Jump.Impulse
	player.Gravity = cfg.Jump.Gravity

	return engine.Config{
		Game:       ID,
		Mode:       engine.ModeTrack,
		BaseSpeed:  cfg.Track.BaseSpeed,
		Curve:      curve,
		Kinematics: scene.Kinematics(cfg.Track, engine.MotionScroll),
		Pool:       scene.PoolConfig(cfg.Spawn, engine.LaneSlots(cfg.Lanes.Min, cfg.Lanes.Max, cfg.Lanes.Width)),
		Player:     player,
		Collision:  scene.Collision(cfg.Collision, cfg.Scoring, false),
		Scoring:    scene.Scoring(cfg.Scoring),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Rush"
}

// Description returns the hub blurb.
func (g *Game) Description() string {
	return "Dodge blocks across three lanes, jump and grab coins."
}

// Setup stores the screen size used by Render.
func (g *Game) Setup(cfg core.RuntimeConfig) {
	g.runtime = cfg
}

// Visual characters for rendering
var (
	blockNear = []string{"▄███▄", "█████"}
	blockMid  = []string{"▄█▄", "███"}
	blockFar  = []string{"▪"}
	coinNear  = []string{"(◉)"}
	coinFar   = []string{"o"}
	playerRun = []string{" O ", "/█\\", "/ \\"}
	playerAir = []string{"\\O/", " █ ", "/ \\"}
)

// Render draws the road, entities, player and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	half := g.cfg.Lanes.Width * (float64(g.cfg.Lanes.Max-g.cfg.Lanes.Min) + 1) / 2
	view := scene.NewView(dst.Width(), dst.Height(), half)

	dividers := make([]float64, 0, g.cfg.Lanes.Max-g.cfg.Lanes.Min)
	for lane := g.cfg.Lanes.Min; lane < g.cfg.Lanes.Max; lane++ {
		dividers = append(dividers, (float64(lane)+0.5)*g.cfg.Lanes.Width)
	}
	view.DrawRoad(dst, dividers, g.Elapsed()*snap.Speed/2, core.ColorBrightMagenta)

	// Far entities first so near ones overdraw them.
	for i := len(snap.Entities) - 1; i >= 0; i-- {
		g.drawEntity(dst, view, snap.Entities[i])
	}

	g.drawPlayer(dst, view, snap.Player)

	scene.DrawHUD(dst, "NEON RUSH", g.State(), fmt.Sprintf(" Spd: %.1f ", snap.Speed))
	scene.DrawOverlay(dst, "NEON RUSH", g.State(), "←/→ change lane  Space jump")
}

func (g *Game) drawEntity(dst *core.Screen, view scene.View, e core.EntityPose) {
	if !e.Visible {
		return
	}
	row, ok := view.Row(e.Depth)
	if !ok {
		return
	}
	col := view.Column(e.Lateral, row)
	scale := view.Scale(row)

	if e.Kind == core.KindCollectible {
		sprite := coinFar
		if scale > 0.5 {
			sprite = coinNear
		}
		scene.DrawSprite(dst, col, row, sprite, core.ColorBrightYellow)
		return
	}

	sprite := blockFar
	switch {
	case scale > 0.6:
		sprite = blockNear
	case scale > 0.25:
		sprite = blockMid
	}
	scene.DrawSprite(dst, col, row, sprite, core.ColorBrightRed)
}

func (g *Game) drawPlayer(dst *core.Screen, view scene.View, p core.PlayerPose) {
	col := view.Column(p.Lateral, view.Bottom)
	lift := int(p.Vertical * 2)

	sprite := playerRun
	if p.Airborne {
		sprite = playerAir
		dst.SetColored(col, view.Bottom, '_', core.ColorGray)
	}
	scene.DrawSprite(dst, col, view.Bottom-lift, sprite, core.ColorBrightCyan)
}
