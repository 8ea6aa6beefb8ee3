package engine

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Referee receives the outcome of a collision check.
// state.Store satisfies it.
type Referee interface {
	AddScore(points int)
	End() bool
}

// CollisionConfig holds per-axis hit tolerances. A hit needs every checked
// axis strictly inside its tolerance.
type CollisionConfig struct {
	LateralTol  float64
	DepthTol    float64
	VerticalTol float64 // zero skips the vertical axis
	Angular     bool    // lateral is an angle; compare the wrapped difference
	PlayerDepth float64

	CollectReward int
}

// Verdict summarizes one frame of collision checks.
type Verdict struct {
	Collected int
	Reward    int
	Crashed   bool
}

// Judge decides hits between the player and pooled entities.
type Judge struct {
	cfg CollisionConfig
}

// NewJudge returns a judge for cfg.
func NewJudge(cfg CollisionConfig) Judge {
	return Judge{cfg: cfg}
}

// Hit reports whether e overlaps the player.
func (j Judge) Hit(player core.PlayerPose, e *Entity) bool {
	dl := e.Lateral - player.Lateral
	if j.cfg.Angular {
		dl = core.WrapAngle(dl)
	}
	if math.Abs(dl) >= j.cfg.LateralTol {
		return false
	}

	if math.Abs(e.Depth-j.cfg.PlayerDepth) >= j.cfg.DepthTol {
		return false
	}

	if j.cfg.VerticalTol > 0 && math.Abs(player.Vertical) >= j.cfg.VerticalTol {
		return false
	}

	return true
}

// Judge checks every active, visible entity against the player. Collectibles
// are consumed at most once and hidden; their rewards are credited before the
// run is ended by any obstacle hit in the same frame.
func (j Judge) Judge(player core.PlayerPose, entities []Entity, ref Referee) Verdict {
	var v Verdict

	for i := range entities {
		e := &entities[i]
		if !e.Active || !e.Visible || !j.Hit(player, e) {
			continue
		}

		switch e.Kind {
		case core.KindCollectible:
			if e.Consumed {
				continue
			}
			e.Consumed = true
			e.Visible = false
			v.Collected++
			v.Reward += j.cfg.CollectReward
		default:
			v.Crashed = true
		}
	}

	if v.Reward > 0 {
		ref.AddScore(v.Reward)
	}
	if v.Crashed {
		ref.End()
	}

	return v
}
