// Package racer implements Night Racer, a lane-dodge racer. The player
// controls the throttle and weaves through traffic that moves relative to
// the player's own speed.
package racer

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
const ID = "racer"

// Game implements the racer on top of the shared engine.
type Game struct {
	*engine.Engine
	cfg     config.RacerConfig
	runtime core.RuntimeConfig
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Night Racer",
		Description: "Throttle up and weave through night traffic.",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(opts)
	})
}

// New loads the racer config and builds a game.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadRacer(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Difficulty != "" {
		config.ApplyRacerPreset(&cfg, opts.Difficulty)
	}
	return NewWithConfig(cfg, opts.Store, opts.Seed), nil
}

// NewWithConfig builds a game from an explicit config.
func NewWithConfig(cfg config.RacerConfig, store *state.Store, seed int64) *Game {
	return &Game{
		Engine:  engine.New(EngineConfig(cfg), store, seed),
		cfg:     cfg,
		runtime: core.DefaultConfig(),
	}
}

// EngineConfig maps the racer config onto the engine.
func EngineConfig(cfg config.RacerConfig) engine.Config {
	player := scene.Lanes(cfg.Lanes)
	player.Throttle = true
	player.ThrottleStep = cfg.Throttle.Step
	player.MaxSpeed = cfg.Throttle.MaxSpeed

	return engine.Config{
		Game:       ID,
		Mode:       engine.ModeTrack,
		BaseSpeed:  cfg.Track.BaseSpeed,
		Kinematics: scene.Kinematics(cfg.Track, engine.MotionRelative),
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
	return "Night Racer"
}

// Description returns the hub blurb.
func (g *Game) Description() string {
	return "Throttle up and weave through night traffic."
}

// Setup stores the screen size used by Render.
func (g *Game) Setup(cfg core.RuntimeConfig) {
	g.runtime = cfg
}

var (
	carNear   = []string{"▄▀▀▄", "█▄▄█"}
	carMid    = []string{"▄▄", "██"}
	carFar    = []string{"▪"}
	playerCar = []string{"╔╦╗", "╚═╝"}
)

// Render draws the road, traffic, the player's car and the speedometer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	half := g.cfg.Lanes.Width * (float64(g.cfg.Lanes.Max-g.cfg.Lanes.Min) + 1) / 2
	view := scene.NewView(dst.Width(), dst.Height(), half)

	dividers := make([]float64, 0, g.cfg.Lanes.Max-g.cfg.Lanes.Min)
	for lane := g.cfg.Lanes.Min; lane < g.cfg.Lanes.Max; lane++ {
		dividers = append(dividers, (float64(lane)+0.5)*g.cfg.Lanes.Width)
	}
	view.DrawRoad(dst, dividers, g.Elapsed()*snap.Player.Speed/2, core.ColorBrightBlue)

	for i := len(snap.Entities) - 1; i >= 0; i-- {
		g.drawCar(dst, view, snap.Entities[i])
	}

	col := view.Column(snap.Player.Lateral, view.Bottom)
	scene.DrawSprite(dst, col, view.Bottom, playerCar, core.ColorBrightCyan)

	scene.DrawHUD(dst, "NIGHT RACER", g.State(), g.speedometer(snap.Player.Speed))
	scene.DrawOverlay(dst, "NIGHT RACER", g.State(), "↑/↓ throttle  ←/→ change lane")
}

func (g *Game) drawCar(dst *core.Screen, view scene.View, e core.EntityPose) {
	if !e.Visible {
		return
	}
	row, ok := view.Row(e.Depth)
	if !ok {
		return
	}

	sprite := carFar
	switch scale := view.Scale(row); {
	case scale > 0.6:
		sprite = carNear
	case scale > 0.25:
		sprite = carMid
	}
	scene.DrawSprite(dst, view.Column(e.Lateral, row), row, sprite, core.ColorOrange)
}

// speedometer renders the throttle as a bar, e.g. " [#####-----] 25 ".
func (g *Game) speedometer(speed float64) string {
	const slots = 10
	filled := 0
	if g.cfg.Throttle.MaxSpeed > 0 {
		filled = core.Clamp(int(speed/g.cfg.Throttle.MaxSpeed*slots+0.5), 0, slots)
	}
	bar := make([]rune, slots)
	for i := range bar {
		bar[i] = '-'
		if i < filled {
			bar[i] = '#'
		}
	}
	return fmt.Sprintf(" [%s] %.0f ", string(bar), speed)
}
