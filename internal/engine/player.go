package engine

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// LateralModel selects how left/right input moves the player.
type LateralModel int

const (
	// LateralLanes snaps the target to discrete lanes on each key press.
	LateralLanes LateralModel = iota
	// LateralAngle rotates the target continuously while a key is held.
	LateralAngle
)

// PlayerConfig parameterizes the controller for one game.
type PlayerConfig struct {
	Model          LateralModel
	MinLane        int
	MaxLane        int
	LaneWidth      float64
	RotationSpeed  float64 // rad/s while held, angle model only
	Responsiveness float64 // smoothing rate k

	Jump        bool
	JumpImpulse float64
	Gravity     float64

	Throttle     bool
	ThrottleStep float64
	MaxSpeed     float64
}

// Player owns the player's lateral, vertical and forward state.
type Player struct {
	cfg PlayerConfig

	lane    int
	target  float64
	lateral float64

	vertical float64
	velocity float64
	airborne bool

	speed float64

	holdLeft  bool
	holdRight bool
}

// NewPlayer returns a player in the center lane, grounded and stopped.
func NewPlayer(cfg PlayerConfig) *Player {
	p := &Player{cfg: cfg}
	p.Reset()
	return p
}

// Reset restores the starting pose.
func (p *Player) Reset() {
	*p = Player{cfg: p.cfg}
	p.lane = core.Clamp(0, p.cfg.MinLane, p.cfg.MaxLane)
	if p.cfg.Model == LateralLanes {
		p.target = float64(p.lane) * p.cfg.LaneWidth
		p.lateral = p.target
	}
}

// Handle applies one input edge. Actions the model does not use are ignored.
func (p *Player) Handle(ev core.InputEvent) {
	down := ev.Edge == core.EdgeDown

	switch ev.Action {
	case core.ActionMoveLeft:
		if p.cfg.Model == LateralAngle {
			p.holdLeft = down
		} else if down {
			p.shiftLane(-1)
		}
	case core.ActionMoveRight:
		if p.cfg.Model == LateralAngle {
			p.holdRight = down
		} else if down {
			p.shiftLane(1)
		}
	case core.ActionJump:
		if down && p.cfg.Jump && !p.airborne {
			p.velocity = p.cfg.JumpImpulse
			p.airborne = true
		}
	case core.ActionAccelerate:
		if down && p.cfg.Throttle {
			p.speed = math.Min(p.cfg.MaxSpeed, p.speed+p.cfg.ThrottleStep)
		}
	case core.ActionBrake:
		if down && p.cfg.Throttle {
			p.speed = math.Max(0, p.speed-p.cfg.ThrottleStep)
		}
	}
}

func (p *Player) shiftLane(delta int) {
	p.lane = core.Clamp(p.lane+delta, p.cfg.MinLane, p.cfg.MaxLane)
	p.target = float64(p.lane) * p.cfg.LaneWidth
}

// Update integrates one frame: rotation while held, smoothing toward the
// target, and the jump arc.
func (p *Player) Update(dt float64) {
	if p.cfg.Model == LateralAngle {
		if p.holdLeft {
			p.target += p.cfg.RotationSpeed * dt
		}
		if p.holdRight {
			p.target -= p.cfg.RotationSpeed * dt
		}
		p.renormalize()
	}

	p.lateral = core.Damp(p.lateral, p.target, p.cfg.Responsiveness, dt)

	if p.airborne {
		p.vertical += p.velocity * dt
		p.velocity -= p.cfg.Gravity * dt
		if p.vertical <= 0 {
			p.vertical = 0
			p.velocity = 0
			p.airborne = false
		}
	}
}

// renormalize keeps the target angle in (-pi, pi], shifting the smoothed
// angle by the same amount so the remaining distance is unchanged.
func (p *Player) renormalize() {
	if p.target <= math.Pi && p.target > -math.Pi {
		return
	}
	wrapped := core.WrapAngle(p.target)
	shift := p.target - wrapped
	p.target = wrapped
	p.lateral -= shift
}

// Lane returns the current lane index (lane model).
func (p *Player) Lane() int { return p.lane }

// Target returns the lateral target.
func (p *Player) Target() float64 { return p.target }

// Lateral returns the smoothed lateral position.
func (p *Player) Lateral() float64 { return p.lateral }

// Vertical returns the height above the ground.
func (p *Player) Vertical() float64 { return p.vertical }

// Airborne reports whether a jump is in progress.
func (p *Player) Airborne() bool { return p.airborne }

// Speed returns the throttle-controlled forward speed.
func (p *Player) Speed() float64 { return p.speed }

// Pose copies the player state for the judge and renderers.
func (p *Player) Pose() core.PlayerPose {
	return core.PlayerPose{
		Lane:     p.lane,
		Target:   p.target,
		Lateral:  p.lateral,
		Vertical: p.vertical,
		Airborne: p.airborne,
		Speed:    p.speed,
	}
}
