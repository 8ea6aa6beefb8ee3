// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "fmt"

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Track      TrackConfig      `yaml:"track"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Lanes      LaneConfig       `yaml:"lanes"`
	Jump       JumpConfig       `yaml:"jump"`
	Collision  HitboxConfig     `yaml:"collision"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RacerConfig contains all configuration for the lane-dodge racer.
// Traffic moves relative to the player, so there is no scroll curve.
type RacerConfig struct {
	Track     TrackConfig    `yaml:"track"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Lanes     LaneConfig     `yaml:"lanes"`
	Throttle  ThrottleConfig `yaml:"throttle"`
	Collision HitboxConfig   `yaml:"collision"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// TunnelConfig contains all configuration for the rotating tunnel dodger.
type TunnelConfig struct {
	Track      TrackConfig      `yaml:"track"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Collision  HitboxConfig     `yaml:"collision"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// StackConfig contains all configuration for the tower builder.
type StackConfig struct {
	Tower TowerConfig `yaml:"tower"`
}

// TrackConfig defines scroll speed and despawn boundaries.
type TrackConfig struct {
	BaseSpeed   float64 `yaml:"base_speed"`
	DespawnNear float64 `yaml:"despawn_near"` // depth behind the camera
	DespawnFar  float64 `yaml:"despawn_far"`  // 0 disables
}

// SpawnConfig defines the entity pool.
type SpawnConfig struct {
	Capacity                 int     `yaml:"capacity"`
	FirstSpawn               float64 `yaml:"first_spawn"`
	Stagger                  float64 `yaml:"stagger"`
	RespawnDepth             float64 `yaml:"respawn_depth"`
	RespawnJitter            float64 `yaml:"respawn_jitter"`
	CollectibleChance        float64 `yaml:"collectible_chance"`
	InitialCollectibleChance float64 `yaml:"initial_collectible_chance"`
	MinSpeed                 float64 `yaml:"min_speed"`
	MaxSpeed                 float64 `yaml:"max_speed"`
}

// LaneConfig defines the discrete lane model.
type LaneConfig struct {
	Min            int     `yaml:"min"`
	Max            int     `yaml:"max"`
	Width          float64 `yaml:"width"`
	Responsiveness float64 `yaml:"responsiveness"`
}

// JumpConfig defines the jump arc.
type JumpConfig struct {
	Impulse float64 `yaml:"impulse"`
	Gravity float64 `yaml:"gravity"`
}

// ThrottleConfig defines the racer's speed control.
type ThrottleConfig struct {
	Step     float64 `yaml:"step"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// RotationConfig defines the continuous angle model.
type RotationConfig struct {
	Segments       int     `yaml:"segments"`
	Speed          float64 `yaml:"speed"` // rad/s while held
	Responsiveness float64 `yaml:"responsiveness"`
}

// HitboxConfig defines per-axis collision tolerances. Vertical 0 skips the axis.
type HitboxConfig struct {
	Lateral  float64 `yaml:"lateral"`
	Depth    float64 `yaml:"depth"`
	Vertical float64 `yaml:"vertical"`
}

// ScoringConfig defines how points are earned.
type ScoringConfig struct {
	PassReward       int     `yaml:"pass_reward"`
	PassLine         float64 `yaml:"pass_line"`
	CollectReward    int     `yaml:"collect_reward"`
	TickInterval     float64 `yaml:"tick_interval"` // seconds
	TickReward       int     `yaml:"tick_reward"`
	DistancePerPoint float64 `yaml:"distance_per_point"`
}

// TowerConfig defines the stacking game.
type TowerConfig struct {
	BaseSize      float64 `yaml:"base_size"`
	SwingLimit    float64 `yaml:"swing_limit"`
	StartRate     float64 `yaml:"start_rate"`
	RateStep      float64 `yaml:"rate_step"`
	BaseHue       int     `yaml:"base_hue"`
	HueStep       int     `yaml:"hue_step"`
	DebrisGravity float64 `yaml:"debris_gravity"`
	DebrisFloor   float64 `yaml:"debris_floor"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	Acceleration    float64 `yaml:"acceleration"`     // Speed gained per second survived
	MaxSpeed        float64 `yaml:"max_speed"`        // 0 = uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyTunnelPreset modifies the config based on a difficulty preset.
func ApplyTunnelPreset(cfg *TunnelConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyRacerPreset adjusts traffic density for a difficulty preset.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Capacity = 7
	case DifficultyHard:
		cfg.Spawn.Capacity = 14
	}
}

// ApplyStackPreset adjusts the swing rate ramp for a difficulty preset.
func ApplyStackPreset(cfg *StackConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Tower.StartRate = 2.5
		cfg.Tower.RateStep = 0.05
	case DifficultyHard:
		cfg.Tower.StartRate = 3.5
		cfg.Tower.RateStep = 0.15
	case DifficultyFixed:
		cfg.Tower.RateStep = 0
	}
}
