// Package tunnel implements Warp Tunnel. The ship flies down a tube and
// rotates around its wall to dodge spikes; the view is the tube unrolled,
// with angle across and depth down the screen.
package tunnel

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
	"github.com/vovakirdan/neon-arcade/internal/games/scene"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/state"
)

// ID is the registry identifier.
const ID = "tunnel"

// Game implements the tunnel dodger on top of the shared engine.
type Game struct {
	*engine.Engine
	cfg        config.TunnelConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Warp Tunnel",
		Description: "Spin around the tube to dodge spikes at warp speed.",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(opts)
	})
}

// New loads the tunnel config and builds a game.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadTunnel(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Difficulty != "" {
		config.ApplyTunnelPreset(&cfg, opts.Difficulty)
	}
	return NewWithConfig(cfg, opts.Store, opts.Seed), nil
}

// NewWithConfig builds a game from an explicit config.
func NewWithConfig(cfg config.TunnelConfig, store *state.Store, seed int64) *Game {
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	return &Game{
		Engine:     engine.New(EngineConfig(cfg, difficulty), store, seed),
		cfg:        cfg,
		difficulty: difficulty,
		runtime:    core.DefaultConfig(),
	}
}

// EngineConfig maps the tunnel config onto the engine.
func EngineConfig(cfg config.TunnelConfig, curve engine.SpeedCurve) engine.Config {
	return engine.Config{
		Game:       ID,
		Mode:       engine.ModeTrack,
		BaseSpeed:  cfg.Track.BaseSpeed,
		Curve:      curve,
		Kinematics: scene.Kinematics(cfg.Track, engine.MotionScroll),
		Pool:       scene.PoolConfig(cfg.Spawn, engine.AngleSlots(cfg.Rotation.Segments)),
		Player: engine.PlayerConfig{
			Model:          engine.LateralAngle,
			RotationSpeed:  cfg.Rotation.Speed,
			Responsiveness: cfg.Rotation.Responsiveness,
		},
		Collision: scene.Collision(cfg.Collision, cfg.Scoring, true),
		Scoring:   scene.Scoring(cfg.Scoring),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Warp Tunnel"
}

// Description returns the hub blurb.
func (g *Game) Description() string {
	return "Spin around the tube to dodge spikes at warp speed."
}

// Setup stores the screen size used by Render.
func (g *Game) Setup(cfg core.RuntimeConfig) {
	g.runtime = cfg
}

// Visual characters for rendering
const (
	SpikeChar = '▲'
	CoinChar  = '◉'
	RingChar  = '·'
	ShipChar  = 'A'
)

// Render draws the unrolled tube, spikes, coins and the ship.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	view := scene.NewView(dst.Width(), dst.Height(), 0)
	left, right := 2, dst.Width()-3

	// Rings scroll toward the ship.
	phase := g.Elapsed() * snap.Speed
	for ring := 0; ring < 12; ring++ {
		depth := -math.Mod(float64(ring)*8-phase, 96)
		if depth > 0 {
			depth -= 96
		}
		row, ok := view.Row(depth)
		if !ok {
			continue
		}
		for x := left; x <= right; x += 2 {
			dst.SetColored(x, row, RingChar, core.ColorBlue)
		}
	}
	dst.DrawVLine(left-1, view.Horizon, view.Bottom-view.Horizon+1, '│')
	dst.DrawVLine(right+1, view.Horizon, view.Bottom-view.Horizon+1, '│')

	for i := len(snap.Entities) - 1; i >= 0; i-- {
		e := snap.Entities[i]
		if !e.Visible {
			continue
		}
		row, ok := view.Row(e.Depth)
		if !ok {
			continue
		}
		col := angleColumn(e.Lateral, left, right)
		if e.Kind == core.KindCollectible {
			dst.SetColored(col, row, CoinChar, core.ColorBrightYellow)
		} else {
			dst.SetColored(col, row, SpikeChar, core.ColorBrightRed)
		}
	}

	ship := angleColumn(snap.Player.Lateral, left, right)
	dst.SetColored(ship, view.Bottom, ShipChar, core.ColorBrightCyan)
	dst.SetColored(ship-1, view.Bottom, '/', core.ColorCyan)
	dst.SetColored(ship+1, view.Bottom, '\\', core.ColorCyan)

	scene.DrawHUD(dst, "WARP TUNNEL", g.State(), fmt.Sprintf(" Warp: %.1f ", snap.Speed))
	scene.DrawOverlay(dst, "WARP TUNNEL", g.State(), "hold ←/→ to rotate")
}

// angleColumn maps an angle onto the unrolled tube, with angle 0 in the
// middle and ±π at the edges. Positive angles are to the left.
func angleColumn(angle float64, left, right int) int {
	a := core.WrapAngle(angle)
	frac := (math.Pi - a) / (2 * math.Pi)
	return left + int(math.Round(frac*float64(right-left)))
}
