package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func testPoolConfig() PoolConfig {
	return PoolConfig{
		Capacity:                 5,
		FirstSpawn:               -100,
		Stagger:                  10,
		RespawnDepth:             -120,
		RespawnJitter:            20,
		Slots:                    LaneSlots(-1, 1, 3),
		CollectibleChance:        0.2,
		InitialCollectibleChance: 0.3,
	}
}

func TestPoolSeedStagger(t *testing.T) {
	p := NewPool(testPoolConfig(), rand.New(rand.NewSource(1)))

	if p.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", p.Len())
	}

	for i, e := range p.Entities() {
		want := -100 - float64(i)*10
		if e.Depth != want {
			t.Errorf("entity %d depth = %v, want %v", i, e.Depth, want)
		}
		if e.ID != i {
			t.Errorf("entity %d has ID %d", i, e.ID)
		}
		if !e.Active || !e.Visible {
			t.Errorf("entity %d should start active and visible", i)
		}
	}
}

func TestPoolRecycle(t *testing.T) {
	cfg := testPoolConfig()
	p := NewPool(cfg, rand.New(rand.NewSource(7)))

	slots := map[float64]bool{-3: true, 0: true, 3: true}
	e := &p.Entities()[0]
	for i := 0; i < 200; i++ {
		e.Consumed = true
		e.Passed = true
		e.Visible = false

		p.Recycle(e)

		if e.Depth > cfg.RespawnDepth || e.Depth < cfg.RespawnDepth-cfg.RespawnJitter {
			t.Fatalf("recycled depth %v outside [%v, %v]", e.Depth, cfg.RespawnDepth-cfg.RespawnJitter, cfg.RespawnDepth)
		}
		if !slots[e.Lateral] {
			t.Fatalf("recycled lateral %v is not a lane slot", e.Lateral)
		}
		if e.Consumed || e.Passed || !e.Visible || !e.Active {
			t.Fatalf("recycle should clear flags, got %+v", *e)
		}
	}
}

func TestPoolKindRoll(t *testing.T) {
	cfg := testPoolConfig()
	cfg.Capacity = 1

	tests := []struct {
		name   string
		chance float64
		want   core.EntityKind
	}{
		{"never", 0, core.KindObstacle},
		{"always", 1.01, core.KindCollectible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.CollectibleChance = tt.chance
			cfg.InitialCollectibleChance = tt.chance
			p := NewPool(cfg, rand.New(rand.NewSource(3)))
			e := &p.Entities()[0]
			for i := 0; i < 50; i++ {
				p.Recycle(e)
				if e.Kind != tt.want {
					t.Fatalf("kind = %v, want %v", e.Kind, tt.want)
				}
			}
		})
	}
}

func TestPoolSpeedRoll(t *testing.T) {
	cfg := testPoolConfig()
	cfg.MinSpeed = 10
	cfg.MaxSpeed = 30
	p := NewPool(cfg, rand.New(rand.NewSource(5)))

	for i := 0; i < 100; i++ {
		e := &p.Entities()[i%p.Len()]
		p.Recycle(e)
		if e.Speed < 10 || e.Speed > 30 {
			t.Fatalf("speed %v outside [10, 30]", e.Speed)
		}
	}
}

func TestPoolFarBound(t *testing.T) {
	p := NewPool(testPoolConfig(), rand.New(rand.NewSource(1)))

	// Deepest seed is -140, deepest respawn -140 as well.
	if got := p.FarBound(); got != -140 {
		t.Errorf("FarBound() = %v, want -140", got)
	}
}

func TestPosesCopy(t *testing.T) {
	p := NewPool(testPoolConfig(), rand.New(rand.NewSource(1)))

	poses := p.Poses()
	poses[0].Depth = 99

	if p.Entities()[0].Depth == 99 {
		t.Error("Poses should not alias pool entities")
	}
}

func TestAngleSlots(t *testing.T) {
	slots := AngleSlots(16)
	if len(slots) != 16 {
		t.Fatalf("len = %d, want 16", len(slots))
	}

	for i, a := range slots {
		if a <= -math.Pi || a > math.Pi {
			t.Errorf("slot %d = %v outside (-pi, pi]", i, a)
		}
	}

	step := core.WrapAngle(slots[1] - slots[0])
	if math.Abs(step-2*math.Pi/16) > 1e-9 {
		t.Errorf("slot spacing = %v, want %v", step, 2*math.Pi/16)
	}
}
