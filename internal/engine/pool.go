// Package engine is the simulation core shared by every game: a fixed object
// pool of moving entities, the kinematics that advance and recycle them, the
// player controller, the collision judge and the tower placement rule.
//
// One Engine is configured per game; nothing in this package knows how the
// world is drawn.
package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Entity is a recyclable pool member: an obstacle, coin or traffic car.
type Entity struct {
	ID       int
	Lateral  float64 // lane offset in world units, or angle in radians
	Depth    float64 // distance along the track; player sits at 0, spawn is negative
	Kind     core.EntityKind
	Speed    float64 // own forward speed, used by relative motion
	Active   bool
	Visible  bool
	Consumed bool
	Passed   bool // obstacle already scored as avoided
}

// PoolConfig describes how a pool is seeded and how entities are re-rolled.
type PoolConfig struct {
	Capacity      int
	FirstSpawn    float64 // depth of entity 0
	Stagger       float64 // depth gap between consecutive seeded entities
	RespawnDepth  float64 // recycled entities reappear at RespawnDepth - U*RespawnJitter
	RespawnJitter float64
	Slots         []float64 // lateral positions an entity may occupy

	CollectibleChance        float64 // probability of a collectible on recycle
	InitialCollectibleChance float64 // probability at seeding; 0 uses CollectibleChance

	MinSpeed float64
	MaxSpeed float64
}

// Pool is a fixed-capacity set of entities reused in place.
type Pool struct {
	cfg      PoolConfig
	rng      *rand.Rand
	entities []Entity
}

// NewPool allocates the pool once and seeds it.
func NewPool(cfg PoolConfig, rng *rand.Rand) *Pool {
	p := &Pool{
		cfg:      cfg,
		rng:      rng,
		entities: make([]Entity, cfg.Capacity),
	}
	p.Seed()
	return p
}

// Seed places every entity at its staggered starting depth with fresh
// lateral position, kind and speed.
func (p *Pool) Seed() {
	chance := p.cfg.InitialCollectibleChance
	if chance == 0 {
		chance = p.cfg.CollectibleChance
	}

	for i := range p.entities {
		p.entities[i] = Entity{
			ID:      i,
			Depth:   p.cfg.FirstSpawn - float64(i)*p.cfg.Stagger,
			Active:  true,
			Visible: true,
		}
		p.roll(&p.entities[i], chance)
	}
}

// Recycle respawns an entity in place far from the player.
func (p *Pool) Recycle(e *Entity) {
	e.Depth = p.cfg.RespawnDepth - p.rng.Float64()*p.cfg.RespawnJitter
	e.Active = true
	e.Visible = true
	e.Consumed = false
	e.Passed = false
	p.roll(e, p.cfg.CollectibleChance)
}

func (p *Pool) roll(e *Entity, collectibleChance float64) {
	if n := len(p.cfg.Slots); n > 0 {
		e.Lateral = p.cfg.Slots[p.rng.Intn(n)]
	}

	e.Kind = core.KindObstacle
	if p.rng.Float64() < collectibleChance {
		e.Kind = core.KindCollectible
	}

	e.Speed = p.cfg.MinSpeed
	if p.cfg.MaxSpeed > p.cfg.MinSpeed {
		e.Speed += p.rng.Float64() * (p.cfg.MaxSpeed - p.cfg.MinSpeed)
	}
}

// Len returns the fixed capacity.
func (p *Pool) Len() int {
	return len(p.entities)
}

// Entities returns the live backing slice. Callers inside the frame may
// mutate flags through it; renderers should use Poses instead.
func (p *Pool) Entities() []Entity {
	return p.entities
}

// Poses copies the active entities into renderer-facing values.
func (p *Pool) Poses() []core.EntityPose {
	out := make([]core.EntityPose, 0, len(p.entities))
	for _, e := range p.entities {
		if !e.Active {
			continue
		}
		out = append(out, core.EntityPose{
			ID:      e.ID,
			Lateral: e.Lateral,
			Depth:   e.Depth,
			Kind:    e.Kind,
			Visible: e.Visible,
		})
	}
	return out
}

// FarBound is the deepest depth seeding or recycling can produce.
func (p *Pool) FarBound() float64 {
	deepest := p.cfg.FirstSpawn - float64(max(p.cfg.Capacity-1, 0))*p.cfg.Stagger
	return min(deepest, p.cfg.RespawnDepth-p.cfg.RespawnJitter)
}

// LaneSlots returns evenly spaced lateral positions for lanes minLane..maxLane.
func LaneSlots(minLane, maxLane int, width float64) []float64 {
	slots := make([]float64, 0, maxLane-minLane+1)
	for lane := minLane; lane <= maxLane; lane++ {
		slots = append(slots, float64(lane)*width)
	}
	return slots
}

// AngleSlots returns n evenly spaced angles around a circle, starting at 0.
func AngleSlots(n int) []float64 {
	slots := make([]float64, n)
	for i := range slots {
		slots[i] = core.WrapAngle(float64(i) * 2 * math.Pi / float64(n))
	}
	return slots
}
