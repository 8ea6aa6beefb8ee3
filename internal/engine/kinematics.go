package engine

// Motion selects how an entity's depth changes each frame.
type Motion int

const (
	// MotionScroll moves every entity toward the player at the global scroll speed.
	MotionScroll Motion = iota
	// MotionRelative moves an entity by playerSpeed - entity.Speed, so slower
	// traffic approaches and faster traffic recedes.
	MotionRelative
)

// Kinematics advances pooled entities and recycles those that leave the track.
type Kinematics struct {
	Motion      Motion
	DespawnNear float64 // recycle once depth exceeds this (behind the camera)
	DespawnFar  float64 // recycle once depth drops below this; zero disables
}

// RelativeSpeed is the rate at which an entity's depth grows.
func (k Kinematics) RelativeSpeed(e *Entity, speed float64) float64 {
	if k.Motion == MotionRelative {
		return speed - e.Speed
	}
	return speed
}

// Advance moves every active entity by its relative speed. visit, when not
// nil, sees each moved entity before the despawn check. Entities past a
// boundary are recycled exactly once. Returns the number recycled.
func (k Kinematics) Advance(p *Pool, speed, dt float64, visit func(*Entity)) int {
	recycled := 0
	for i := range p.entities {
		e := &p.entities[i]
		if !e.Active {
			continue
		}

		e.Depth += k.RelativeSpeed(e, speed) * dt
		if visit != nil {
			visit(e)
		}

		if k.outside(e.Depth) {
			p.Recycle(e)
			recycled++
		}
	}
	return recycled
}

func (k Kinematics) outside(depth float64) bool {
	if depth > k.DespawnNear {
		return true
	}
	return k.DespawnFar < 0 && depth < k.DespawnFar
}

// Bounds returns the depth interval every entity of p stays within between frames.
func (k Kinematics) Bounds(p *Pool) (far, near float64) {
	far = p.FarBound()
	if k.DespawnFar < 0 {
		far = min(far, k.DespawnFar)
	}
	return far, k.DespawnNear
}
