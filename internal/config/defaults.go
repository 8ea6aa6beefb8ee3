package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

//go:embed defaults/tunnel.yaml
var defaultTunnelYAML []byte

//go:embed defaults/stack.yaml
var defaultStackYAML []byte

// DefaultRunnerConfig returns the default endless runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			BaseSpeed:   20,
			DespawnNear: 20,
		},
		Spawn: SpawnConfig{
			Capacity:                 25,
			FirstSpawn:               -120,
			Stagger:                  15,
			RespawnDepth:             -120,
			RespawnJitter:            20,
			CollectibleChance:        0.2,
			InitialCollectibleChance: 0.3,
		},
		Lanes: LaneConfig{
			Min:            -1,
			Max:            1,
			Width:          3,
			Responsiveness: 15,
		},
		Jump: JumpConfig{
			Impulse: 8,
			Gravity: 20,
		},
		Collision: HitboxConfig{
			Lateral:  1.0,
			Depth:    1.2,
			Vertical: 1.0,
		},
		Scoring: ScoringConfig{
			PassReward:    10,
			PassLine:      2,
			CollectReward: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				Acceleration:    0.1,
				MaxSpeed:        60,
			},
		},
	}
}

// DefaultRacerConfig returns the default lane-dodge racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Track: TrackConfig{
			DespawnNear: 20,
			DespawnFar:  -400,
		},
		Spawn: SpawnConfig{
			Capacity:      10,
			FirstSpawn:    -100,
			Stagger:       30,
			RespawnDepth:  -200,
			RespawnJitter: 100,
			MinSpeed:      10,
			MaxSpeed:      30,
		},
		Lanes: LaneConfig{
			Min:            -1,
			Max:            1,
			Width:          3,
			Responsiveness: 5,
		},
		Throttle: ThrottleConfig{
			Step:     5,
			MaxSpeed: 50,
		},
		Collision: HitboxConfig{
			Lateral: 1.5,
			Depth:   2,
		},
		Scoring: ScoringConfig{
			DistancePerPoint: 10,
		},
	}
}

// DefaultTunnelConfig returns the default tunnel dodger configuration.
func DefaultTunnelConfig() TunnelConfig {
	return TunnelConfig{
		Track: TrackConfig{
			BaseSpeed:   15,
			DespawnNear: 10,
		},
		Spawn: SpawnConfig{
			Capacity:          20,
			FirstSpawn:        -100,
			Stagger:           8,
			RespawnDepth:      -100,
			RespawnJitter:     20,
			CollectibleChance: 0.2,
		},
		Rotation: RotationConfig{
			Segments:       16,
			Speed:          3,
			Responsiveness: 20,
		},
		Collision: HitboxConfig{
			Lateral: 0.3,
			Depth:   1,
		},
		Scoring: ScoringConfig{
			CollectReward: 50,
			TickInterval:  1.0 / 6,
			TickReward:    1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 180,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				Acceleration:    0.1,
				MaxSpeed:        50,
			},
		},
	}
}

// DefaultStackConfig returns the default tower builder configuration.
func DefaultStackConfig() StackConfig {
	return StackConfig{
		Tower: TowerConfig{
			BaseSize:      3,
			SwingLimit:    4,
			StartRate:     3,
			RateStep:      0.1,
			BaseHue:       200,
			HueStep:       15,
			DebrisGravity: 9.8,
			DebrisFloor:   12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	case "racer":
		return defaultRacerYAML
	case "tunnel":
		return defaultTunnelYAML
	case "stack":
		return defaultStackYAML
	default:
		return nil
	}
}
