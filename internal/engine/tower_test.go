package engine

import (
	"math"
	"testing"
)

func testTowerConfig() TowerConfig {
	return TowerConfig{
		BaseSize:      3,
		SwingLimit:    4,
		StartRate:     3,
		RateStep:      0.1,
		BaseHue:       200,
		HueStep:       15,
		DebrisGravity: 9.8,
		DebrisFloor:   10,
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name         string
		pos          float64
		wantOverlap  float64
		wantCenter   float64
		wantDebrisC  float64
		wantDebrisSz float64
	}{
		{"right overhang", 1, 2, 0.5, 2, 1},
		{"left overhang", -1, 2, -0.5, -2, 1},
		{"perfect", 0, 3, 0, 0, 0},
		{"sliver", 2.5, 0.5, 1.25, 2.75, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Slice(0, 3, tt.pos)
			if c.Overlap != tt.wantOverlap {
				t.Errorf("Overlap = %v, want %v", c.Overlap, tt.wantOverlap)
			}
			if c.Center != tt.wantCenter {
				t.Errorf("Center = %v, want %v", c.Center, tt.wantCenter)
			}
			if c.DebrisSize != tt.wantDebrisSz {
				t.Errorf("DebrisSize = %v, want %v", c.DebrisSize, tt.wantDebrisSz)
			}
			if tt.wantDebrisSz > 0 && c.DebrisCenter != tt.wantDebrisC {
				t.Errorf("DebrisCenter = %v, want %v", c.DebrisCenter, tt.wantDebrisC)
			}
		})
	}
}

func TestSliceMiss(t *testing.T) {
	for _, pos := range []float64{3, 3.5, -3.5} {
		if c := Slice(0, 3, pos); c.Overlap > 0 {
			t.Errorf("Slice(0, 3, %v) overlap = %v, want <= 0", pos, c.Overlap)
		}
	}
}

func TestTowerPlace(t *testing.T) {
	tw := NewTower(testTowerConfig())

	p, ok := tw.PlaceAt(1)
	if !ok {
		t.Fatal("PlaceAt(1) should land")
	}
	if tw.Height() != 2 {
		t.Fatalf("Height() = %d, want 2", tw.Height())
	}

	top := tw.Top()
	if top.X != 0.5 || top.W != 2 || top.Z != 0 || top.D != 3 {
		t.Errorf("top = %+v, want X=0.5 W=2 Z=0 D=3", top)
	}
	if top.Hue != 15 {
		t.Errorf("top hue = %d, want 15", top.Hue)
	}
	if p.Debris == nil || p.Debris.X != 2 || p.Debris.W != 1 {
		t.Errorf("debris = %+v, want X=2 W=1", p.Debris)
	}
	if tw.Axis() != AxisZ {
		t.Errorf("Axis() = %v, want z", tw.Axis())
	}
	if math.Abs(tw.Rate()-3.1) > 1e-9 {
		t.Errorf("Rate() = %v, want 3.1", tw.Rate())
	}

	// Second placement slices along z and keeps the x footprint.
	if _, ok := tw.PlaceAt(-0.5); !ok {
		t.Fatal("PlaceAt(-0.5) on z should land")
	}
	top = tw.Top()
	if top.X != 0.5 || top.W != 2 || top.Z != -0.25 || top.D != 2.5 {
		t.Errorf("top = %+v, want X=0.5 W=2 Z=-0.25 D=2.5", top)
	}
	if tw.Axis() != AxisX {
		t.Errorf("Axis() = %v, want x", tw.Axis())
	}
}

func TestTowerMissLeavesStack(t *testing.T) {
	tw := NewTower(testTowerConfig())

	p, ok := tw.PlaceAt(3.5)
	if ok {
		t.Fatal("PlaceAt(3.5) should miss")
	}
	if p.Overlap != -0.5 {
		t.Errorf("Overlap = %v, want -0.5", p.Overlap)
	}
	if tw.Height() != 1 || tw.Axis() != AxisX || tw.Rate() != 3 {
		t.Error("a miss must not change the tower")
	}
}

func TestTowerSwing(t *testing.T) {
	tw := NewTower(testTowerConfig())

	for i := 0; i < 200; i++ {
		tw.Advance(0.05)
		if s := tw.Swing(); math.Abs(s) > 4 {
			t.Fatalf("swing %v beyond limit", s)
		}
	}

	before := tw.Swing()
	tw.PlaceAt(tw.Top().X)
	after := tw.Swing()
	if math.Abs(before-after) > 1e-9 {
		t.Errorf("speed-up moved the swing from %v to %v", before, after)
	}
}

func TestTowerActiveBlock(t *testing.T) {
	tw := NewTower(testTowerConfig())
	tw.PlaceAt(1)

	a := tw.Active()
	if a.X != 0.5 || a.W != 2 || a.D != 3 {
		t.Errorf("active = %+v, want the top footprint on x", a)
	}
	if a.Z != tw.Swing() {
		t.Errorf("active Z = %v, want swing %v", a.Z, tw.Swing())
	}
	if a.Hue != 30 {
		t.Errorf("active hue = %d, want 30", a.Hue)
	}
}

func TestTowerDebrisFalls(t *testing.T) {
	tw := NewTower(testTowerConfig())
	tw.PlaceAt(1)

	if len(tw.Debris()) != 1 {
		t.Fatalf("len(Debris()) = %d, want 1", len(tw.Debris()))
	}

	tw.Advance(0.1)
	if d := tw.Debris(); len(d) != 1 || d[0].Drop <= 0 {
		t.Errorf("debris should be falling, got %+v", d)
	}

	for i := 0; i < 100; i++ {
		tw.Advance(0.1)
	}
	if len(tw.Debris()) != 0 {
		t.Error("debris should be dropped after falling past the floor")
	}
}

func TestTowerReset(t *testing.T) {
	tw := NewTower(testTowerConfig())
	tw.PlaceAt(1)
	tw.PlaceAt(0)
	tw.Advance(1)

	tw.Reset()

	if tw.Height() != 1 || tw.Axis() != AxisX || tw.Rate() != 3 || len(tw.Debris()) != 0 {
		t.Error("Reset should restore the base tower")
	}
	if b := tw.Top(); b.W != 3 || b.D != 3 || b.Hue != 200 {
		t.Errorf("base block = %+v", b)
	}
}
