package config

import "fmt"

// fieldError names the offending YAML key.
type fieldError struct {
	field string
	rule  string
}

func (e fieldError) Error() string {
	return e.field + " " + e.rule
}

func atLeastOne(field string, v int) error {
	if v < 1 {
		return fieldError{field, fmt.Sprintf("must be at least 1, got %d", v)}
	}
	return nil
}

func positive(field string, v float64) error {
	if v <= 0 {
		return fieldError{field, fmt.Sprintf("must be positive, got %g", v)}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return fieldError{field, fmt.Sprintf("must not be negative, got %g", v)}
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (c SpawnConfig) validate() error {
	return firstErr(
		atLeastOne("spawn.capacity", c.Capacity),
		nonNegative("spawn.stagger", c.Stagger),
		nonNegative("spawn.respawn_jitter", c.RespawnJitter),
		chance("spawn.collectible_chance", c.CollectibleChance),
		chance("spawn.initial_collectible_chance", c.InitialCollectibleChance),
		speedRange(c.MinSpeed, c.MaxSpeed),
	)
}

func chance(field string, v float64) error {
	if v < 0 || v > 1 {
		return fieldError{field, fmt.Sprintf("must be within [0, 1], got %g", v)}
	}
	return nil
}

func speedRange(lo, hi float64) error {
	if lo < 0 {
		return fieldError{"spawn.min_speed", fmt.Sprintf("must not be negative, got %g", lo)}
	}
	if hi < lo {
		return fieldError{"spawn.max_speed", fmt.Sprintf("must not be below min_speed %g, got %g", lo, hi)}
	}
	return nil
}

func (c LaneConfig) validate() error {
	if c.Min > c.Max {
		return fieldError{"lanes.min", fmt.Sprintf("must not exceed lanes.max %d, got %d", c.Max, c.Min)}
	}
	return firstErr(
		positive("lanes.width", c.Width),
		positive("lanes.responsiveness", c.Responsiveness),
	)
}

func (c HitboxConfig) validate() error {
	return firstErr(
		positive("collision.lateral", c.Lateral),
		positive("collision.depth", c.Depth),
		nonNegative("collision.vertical", c.Vertical),
	)
}

func (c ScoringConfig) validate() error {
	return firstErr(
		nonNegative("scoring.tick_interval", c.TickInterval),
		nonNegative("scoring.distance_per_point", c.DistancePerPoint),
	)
}

func (c TrackConfig) validate() error {
	return nonNegative("track.base_speed", c.BaseSpeed)
}

// Validate rejects values the runner engine cannot run with.
func (c RunnerConfig) Validate() error {
	return firstErr(
		c.Track.validate(),
		c.Spawn.validate(),
		c.Lanes.validate(),
		nonNegative("jump.gravity", c.Jump.Gravity),
		c.Collision.validate(),
		c.Scoring.validate(),
	)
}

// Validate rejects values the racer engine cannot run with.
func (c RacerConfig) Validate() error {
	return firstErr(
		c.Track.validate(),
		c.Spawn.validate(),
		c.Lanes.validate(),
		nonNegative("throttle.step", c.Throttle.Step),
		nonNegative("throttle.max_speed", c.Throttle.MaxSpeed),
		c.Collision.validate(),
		c.Scoring.validate(),
	)
}

// Validate rejects values the tunnel engine cannot run with.
func (c TunnelConfig) Validate() error {
	return firstErr(
		c.Track.validate(),
		c.Spawn.validate(),
		atLeastOne("rotation.segments", c.Rotation.Segments),
		nonNegative("rotation.speed", c.Rotation.Speed),
		positive("rotation.responsiveness", c.Rotation.Responsiveness),
		c.Collision.validate(),
		c.Scoring.validate(),
	)
}

// Validate rejects values the tower cannot be built with.
func (c StackConfig) Validate() error {
	return firstErr(
		positive("tower.base_size", c.Tower.BaseSize),
		positive("tower.swing_limit", c.Tower.SwingLimit),
		nonNegative("tower.start_rate", c.Tower.StartRate),
		nonNegative("tower.rate_step", c.Tower.RateStep),
	)
}
