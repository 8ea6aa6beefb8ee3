// Package stack implements Tower Stack. A block swings back and forth above
// the tower; dropping it slices off the overhang, and missing the tower
// entirely ends the run.
package stack

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/state"
)

// ID is the registry identifier.
const ID = "stack"

// Game implements the tower builder on top of the shared engine.
type Game struct {
	*engine.Engine
	cfg     config.StackConfig
	runtime core.RuntimeConfig
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Tower Stack",
		Description: "Drop swinging blocks to build the tallest tower.",
	}, func(opts registry.Options) (registry.Game, error) {
		return New(opts)
	})
}

// New loads the stack config and builds a game.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadStack(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Difficulty != "" {
		config.ApplyStackPreset(&cfg, opts.Difficulty)
	}
	return NewWithConfig(cfg, opts.Store, opts.Seed), nil
}

// NewWithConfig builds a game from an explicit config.
func NewWithConfig(cfg config.StackConfig, store *state.Store, seed int64) *Game {
	return &Game{
		Engine:  engine.New(EngineConfig(cfg), store, seed),
		cfg:     cfg,
		runtime: core.DefaultConfig(),
	}
}

// EngineConfig maps the stack config onto the engine.
func EngineConfig(cfg config.StackConfig) engine.Config {
	t := cfg.Tower
	return engine.Config{
		Game: ID,
		Mode: engine.ModeTower,
		Tower: engine.TowerConfig{
			BaseSize:      t.BaseSize,
			SwingLimit:    t.SwingLimit,
			StartRate:     t.StartRate,
			RateStep:      t.RateStep,
			BaseHue:       t.BaseHue,
			HueStep:       t.HueStep,
			DebrisGravity: t.DebrisGravity,
			DebrisFloor:   t.DebrisFloor,
		},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tower Stack"
}

// Description returns the hub blurb.
func (g *Game) Description() string {
	return "Drop swinging blocks to build the tallest tower."
}

// Setup stores the screen size used by Render.
func (g *Game) Setup(cfg core.RuntimeConfig) {
	g.runtime = cfg
}

// pane is one side elevation of the tower: the x pane looks along z and
// shows block widths, the z pane looks along x and shows depths.
type pane struct {
	left, width int
	bottom      int
	axis        string
	unit        float64 // columns per world unit
	baseLevel   int     // level drawn on the bottom row
}

func (p pane) column(pos float64) int {
	return p.left + p.width/2 + int(math.Round(pos*p.unit))
}

func (p pane) row(level int, drop float64) int {
	return p.bottom - (level - p.baseLevel) + int(drop)
}

func (p pane) drawBlock(dst *core.Screen, b core.BlockPose, drop float64, fill rune) {
	center, size := b.X, b.W
	if p.axis == "z" {
		center, size = b.Z, b.D
	}
	y := p.row(b.Level, drop)
	if y < 2 || y > p.bottom {
		return
	}

	x0 := p.column(center - size/2)
	x1 := p.column(center + size/2)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	c := core.HueColor(b.Hue)
	for x := max(x0, p.left); x < min(x1, p.left+p.width); x++ {
		dst.SetColored(x, y, fill, c)
	}
}

// Render draws both elevations, the swinging block and falling debris.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	half := dst.Width() / 2
	reach := g.cfg.Tower.SwingLimit + g.cfg.Tower.BaseSize/2 + 0.5
	bottom := dst.Height() - 2

	// Keep the active block about two thirds up the screen.
	visible := bottom - 2
	baseLevel := 0
	if len(snap.Blocks) > visible*2/3 {
		baseLevel = len(snap.Blocks) - visible*2/3
	}

	panes := []pane{
		{left: 1, width: half - 2, bottom: bottom, axis: "x", baseLevel: baseLevel},
		{left: half + 1, width: half - 2, bottom: bottom, axis: "z", baseLevel: baseLevel},
	}

	for i := range panes {
		p := &panes[i]
		p.unit = float64(p.width) / (2 * reach)

		label := fmt.Sprintf(" side %s ", p.axis)
		if snap.Axis == p.axis && snap.Phase == core.PhasePlaying {
			label = fmt.Sprintf(" side %s ◄ swing ", p.axis)
		}
		dst.DrawText(p.left, 1, label)
		dst.DrawHLine(p.left, bottom+1, p.width, '▔')

		for _, b := range snap.Blocks {
			p.drawBlock(dst, b, 0, '█')
		}
		for _, d := range snap.Debris {
			p.drawBlock(dst, d, d.Drop, '▒')
		}
		if snap.Active != nil && snap.Phase == core.PhasePlaying {
			p.drawBlock(dst, *snap.Active, 0, '█')
		}
	}
	dst.DrawVLine(half, 1, bottom+1, '│')

	st := g.State()
	dst.DrawTextColored(2, 0, "TOWER STACK", core.ColorBrightMagenta)
	dst.DrawText(15, 0, fmt.Sprintf(" Height: %d  Best: %d ", st.Score, st.HighScore))

	switch st.Phase {
	case core.PhaseIdle:
		dst.DrawMessageBox("TOWER STACK", "Space drops the block", "Press Enter to start")
	case core.PhaseGameOver:
		dst.DrawMessageBox("TOWER FELL",
			fmt.Sprintf("Height: %d  |  Best: %d", st.Score, st.HighScore),
			"R restart  |  B back to hub")
	}
}
