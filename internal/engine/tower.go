package engine

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Axis is the horizontal axis the active block swings along.
type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

func (a Axis) String() string {
	if a == AxisZ {
		return "z"
	}
	return "x"
}

func (a Axis) flip() Axis {
	if a == AxisX {
		return AxisZ
	}
	return AxisX
}

// Block is one placed slab of the tower.
type Block struct {
	X, Z float64 // center
	W, D float64 // size along x and z
	Hue  int
}

func (b Block) along(a Axis) (center, size float64) {
	if a == AxisZ {
		return b.Z, b.D
	}
	return b.X, b.W
}

func (b Block) with(a Axis, center, size float64) Block {
	if a == AxisZ {
		b.Z, b.D = center, size
	} else {
		b.X, b.W = center, size
	}
	return b
}

// Fragment is a sliced-off piece falling away from the tower.
type Fragment struct {
	Block
	Level    int
	Drop     float64
	velocity float64
}

// TowerConfig parameterizes the stacking game.
type TowerConfig struct {
	BaseSize      float64
	SwingLimit    float64
	StartRate     float64
	RateStep      float64
	BaseHue       int
	HueStep       int
	DebrisGravity float64
	DebrisFloor   float64 // fragments are dropped after falling this far
}

// Placement describes the outcome of one drop.
type Placement struct {
	Offset  float64
	Overlap float64
	Block   Block
	Debris  *Fragment
}

// Tower holds the placed blocks, the swinging block's clock and falling debris.
type Tower struct {
	cfg    TowerConfig
	blocks []Block
	debris []Fragment
	axis   Axis
	rate   float64
	clock  float64
	phase  float64
}

// NewTower returns a tower holding only its base block.
func NewTower(cfg TowerConfig) *Tower {
	t := &Tower{cfg: cfg}
	t.Reset()
	return t
}

// Reset restores the length-1 stack.
func (t *Tower) Reset() {
	t.blocks = append(t.blocks[:0], Block{
		W:   t.cfg.BaseSize,
		D:   t.cfg.BaseSize,
		Hue: t.cfg.BaseHue,
	})
	t.debris = t.debris[:0]
	t.axis = AxisX
	t.rate = t.cfg.StartRate
	t.clock = 0
	t.phase = 0
}

// Advance moves the swing clock and lets debris fall.
func (t *Tower) Advance(dt float64) {
	t.clock += dt

	kept := t.debris[:0]
	for _, f := range t.debris {
		f.velocity += t.cfg.DebrisGravity * dt
		f.Drop += f.velocity * dt
		if f.Drop < t.cfg.DebrisFloor {
			kept = append(kept, f)
		}
	}
	t.debris = kept
}

// Top returns the highest placed block.
func (t *Tower) Top() Block {
	return t.blocks[len(t.blocks)-1]
}

// Height returns the number of placed blocks, base included.
func (t *Tower) Height() int {
	return len(t.blocks)
}

// Axis returns the current swing axis.
func (t *Tower) Axis() Axis {
	return t.axis
}

// Rate returns the swing rate in rad/s.
func (t *Tower) Rate() float64 {
	return t.rate
}

// Swing returns the active block's offset from the origin along the swing axis.
func (t *Tower) Swing() float64 {
	return math.Sin(t.clock*t.rate+t.phase) * t.cfg.SwingLimit
}

// Active returns the swinging block: the top block's footprint and center on
// the fixed axis, the swing position on the moving one.
func (t *Tower) Active() Block {
	top := t.Top()
	_, size := top.along(t.axis)
	b := top.with(t.axis, t.Swing(), size)
	b.Hue = t.nextHue()
	return b
}

func (t *Tower) nextHue() int {
	return (len(t.blocks) * t.cfg.HueStep) % 360
}

// Place drops the active block at its current position. It returns false,
// leaving the tower unchanged, when the block misses the top entirely.
func (t *Tower) Place() (Placement, bool) {
	return t.PlaceAt(t.Swing())
}

// PlaceAt drops the active block with its center at pos on the swing axis.
func (t *Tower) PlaceAt(pos float64) (Placement, bool) {
	top := t.Top()
	topCenter, topSize := top.along(t.axis)

	cut := Slice(topCenter, topSize, pos)
	result := Placement{Offset: cut.Offset, Overlap: cut.Overlap}
	if cut.Overlap <= 0 {
		return result, false
	}

	block := top.with(t.axis, cut.Center, cut.Overlap)
	block.Hue = t.nextHue()
	result.Block = block

	if cut.DebrisSize > 0 {
		frag := Fragment{
			Block: top.with(t.axis, cut.DebrisCenter, cut.DebrisSize),
			Level: len(t.blocks),
		}
		frag.Hue = block.Hue
		t.debris = append(t.debris, frag)
		result.Debris = &frag
	}

	t.blocks = append(t.blocks, block)
	t.axis = t.axis.flip()
	t.speedUp()

	return result, true
}

// speedUp raises the swing rate while keeping the swing phase continuous.
func (t *Tower) speedUp() {
	now := t.clock*t.rate + t.phase
	t.rate += t.cfg.RateStep
	t.phase = now - t.clock*t.rate
}

// Cut is the geometry of slicing a block against the one beneath it.
type Cut struct {
	Offset       float64
	Overlap      float64
	Center       float64
	DebrisCenter float64
	DebrisSize   float64
}

// Slice cuts a block of size topSize centered at pos against the top block at
// topCenter. A non-positive Overlap means the block missed.
func Slice(topCenter, topSize, pos float64) Cut {
	offset := pos - topCenter
	overlap := topSize - math.Abs(offset)
	c := Cut{Offset: offset, Overlap: overlap}
	if overlap <= 0 {
		return c
	}

	c.Center = topCenter + offset/2
	c.DebrisSize = math.Abs(offset)
	sign := 1.0
	if offset < 0 {
		sign = -1
	}
	c.DebrisCenter = topCenter + sign*(topSize/2+c.DebrisSize/2)
	return c
}

// Blocks copies the placed blocks as poses.
func (t *Tower) Blocks() []core.BlockPose {
	out := make([]core.BlockPose, len(t.blocks))
	for i, b := range t.blocks {
		out[i] = blockPose(b, i, 0)
	}
	return out
}

// Debris copies the falling fragments as poses.
func (t *Tower) Debris() []core.BlockPose {
	out := make([]core.BlockPose, len(t.debris))
	for i, f := range t.debris {
		out[i] = blockPose(f.Block, f.Level, f.Drop)
	}
	return out
}

func blockPose(b Block, level int, drop float64) core.BlockPose {
	return core.BlockPose{X: b.X, Z: b.Z, W: b.W, D: b.D, Level: level, Drop: drop, Hue: b.Hue}
}
