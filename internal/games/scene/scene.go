// Package scene holds what the track games share: mapping YAML config onto
// engine settings and a pseudo-perspective view for drawing depth on a
// character grid.
package scene

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// PoolConfig maps spawn settings onto an engine pool with the given lateral slots.
func PoolConfig(s config.SpawnConfig, slots []float64) engine.PoolConfig {
	return engine.PoolConfig{
		Capacity:                 s.Capacity,
		FirstSpawn:               s.FirstSpawn,
		Stagger:                  s.Stagger,
		RespawnDepth:             s.RespawnDepth,
		RespawnJitter:            s.RespawnJitter,
		Slots:                    slots,
		CollectibleChance:        s.CollectibleChance,
		InitialCollectibleChance: s.InitialCollectibleChance,
		MinSpeed:                 s.MinSpeed,
		MaxSpeed:                 s.MaxSpeed,
	}
}

// Kinematics maps track boundaries onto engine kinematics.
func Kinematics(t config.TrackConfig, motion engine.Motion) engine.Kinematics {
	return engine.Kinematics{
		Motion:      motion,
		DespawnNear: t.DespawnNear,
		DespawnFar:  t.DespawnFar,
	}
}

// Collision maps hitbox tolerances and the coin reward onto the judge config.
func Collision(h config.HitboxConfig, s config.ScoringConfig, angular bool) engine.CollisionConfig {
	return engine.CollisionConfig{
		LateralTol:    h.Lateral,
		DepthTol:      h.Depth,
		VerticalTol:   h.Vertical,
		Angular:       angular,
		CollectReward: s.CollectReward,
	}
}

// Scoring maps periodic scoring rules.
func Scoring(s config.ScoringConfig) engine.ScoringConfig {
	return engine.ScoringConfig{
		PassReward:       s.PassReward,
		PassLine:         s.PassLine,
		TickInterval:     s.TickInterval,
		TickReward:       s.TickReward,
		DistancePerPoint: s.DistancePerPoint,
	}
}

// Lanes maps the lane model onto a player config.
func Lanes(l config.LaneConfig) engine.PlayerConfig {
	return engine.PlayerConfig{
		Model:          engine.LateralLanes,
		MinLane:        l.Min,
		MaxLane:        l.Max,
		LaneWidth:      l.Width,
		Responsiveness: l.Responsiveness,
	}
}
