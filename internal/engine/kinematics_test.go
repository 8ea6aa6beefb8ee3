package engine

import (
	"math/rand"
	"testing"
)

func TestKinematicsBoundsHold(t *testing.T) {
	tests := []struct {
		name  string
		kin   Kinematics
		pool  PoolConfig
		speed float64
	}{
		{
			name: "scroll",
			kin:  Kinematics{Motion: MotionScroll, DespawnNear: 20},
			pool: PoolConfig{
				Capacity: 25, FirstSpawn: -120, Stagger: 15,
				RespawnDepth: -120, RespawnJitter: 20,
				Slots: LaneSlots(-1, 1, 3),
			},
			speed: 35,
		},
		{
			name: "relative receding",
			kin:  Kinematics{Motion: MotionRelative, DespawnNear: 20, DespawnFar: -400},
			pool: PoolConfig{
				Capacity: 10, FirstSpawn: -100, Stagger: 30,
				RespawnDepth: -200, RespawnJitter: 100,
				Slots:    LaneSlots(-1, 1, 3),
				MinSpeed: 10, MaxSpeed: 30,
			},
			speed: 0,
		},
		{
			name: "relative overtaking",
			kin:  Kinematics{Motion: MotionRelative, DespawnNear: 20, DespawnFar: -400},
			pool: PoolConfig{
				Capacity: 10, FirstSpawn: -100, Stagger: 30,
				RespawnDepth: -200, RespawnJitter: 100,
				Slots:    LaneSlots(-1, 1, 3),
				MinSpeed: 10, MaxSpeed: 30,
			},
			speed: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(tt.pool, rand.New(rand.NewSource(11)))
			far, near := tt.kin.Bounds(p)

			recycled := 0
			for frame := 0; frame < 3000; frame++ {
				recycled += tt.kin.Advance(p, tt.speed, 1.0/60, nil)
				for _, e := range p.Entities() {
					if e.Depth < far || e.Depth > near {
						t.Fatalf("frame %d: entity %d depth %v outside [%v, %v]", frame, e.ID, e.Depth, far, near)
					}
				}
			}

			if recycled == 0 {
				t.Error("expected entities to be recycled")
			}
		})
	}
}

func TestKinematicsRelativeSpeed(t *testing.T) {
	e := &Entity{Speed: 20}

	scroll := Kinematics{Motion: MotionScroll}
	if got := scroll.RelativeSpeed(e, 30); got != 30 {
		t.Errorf("scroll RelativeSpeed = %v, want 30", got)
	}

	rel := Kinematics{Motion: MotionRelative}
	if got := rel.RelativeSpeed(e, 30); got != 10 {
		t.Errorf("relative RelativeSpeed = %v, want 10", got)
	}
	if got := rel.RelativeSpeed(e, 5); got != -15 {
		t.Errorf("relative RelativeSpeed = %v, want -15", got)
	}
}

func TestKinematicsVisitBeforeRecycle(t *testing.T) {
	p := NewPool(PoolConfig{
		Capacity: 1, FirstSpawn: -1,
		RespawnDepth: -50,
	}, rand.New(rand.NewSource(1)))
	k := Kinematics{DespawnNear: 5}

	var seen []float64
	n := k.Advance(p, 10, 1, func(e *Entity) {
		seen = append(seen, e.Depth)
	})

	if n != 1 {
		t.Fatalf("recycled = %d, want 1", n)
	}
	if len(seen) != 1 || seen[0] != 9 {
		t.Errorf("visit saw %v, want [9]", seen)
	}
	if got := p.Entities()[0].Depth; got != -50 {
		t.Errorf("depth after recycle = %v, want -50", got)
	}
}

func TestKinematicsSkipsInactive(t *testing.T) {
	p := NewPool(PoolConfig{Capacity: 2, FirstSpawn: -10, Stagger: 5}, rand.New(rand.NewSource(1)))
	p.Entities()[1].Active = false
	k := Kinematics{DespawnNear: 100}

	k.Advance(p, 10, 1, nil)

	if got := p.Entities()[0].Depth; got != 0 {
		t.Errorf("active depth = %v, want 0", got)
	}
	if got := p.Entities()[1].Depth; got != -15 {
		t.Errorf("inactive depth = %v, want -15", got)
	}
}
