package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/state"
)

func runnerCollision() CollisionConfig {
	return CollisionConfig{
		LateralTol:    1.0,
		DepthTol:      1.2,
		VerticalTol:   1.0,
		CollectReward: 50,
	}
}

func playingStore(t *testing.T) *state.Store {
	t.Helper()
	s := state.New()
	if !s.Start() {
		t.Fatal("Start() from Idle should succeed")
	}
	return s
}

func TestJudgeObstacleEndsRun(t *testing.T) {
	s := playingStore(t)
	j := NewJudge(runnerCollision())

	entities := []Entity{{Lateral: 0.2, Depth: 0.1, Kind: core.KindObstacle, Active: true, Visible: true}}
	v := j.Judge(core.PlayerPose{}, entities, s)

	if !v.Crashed {
		t.Error("expected a crash")
	}
	if s.Phase() != core.PhaseGameOver {
		t.Errorf("phase = %v, want gameover", s.Phase())
	}
}

func TestJudgeHitAxes(t *testing.T) {
	tests := []struct {
		name   string
		cfg    CollisionConfig
		player core.PlayerPose
		entity Entity
		want   bool
	}{
		{"overlap", runnerCollision(), core.PlayerPose{}, Entity{Lateral: 0.2, Depth: 0.1}, true},
		{"other lane", runnerCollision(), core.PlayerPose{}, Entity{Lateral: 3, Depth: 0}, false},
		{"lateral edge is a miss", runnerCollision(), core.PlayerPose{}, Entity{Lateral: 1.0, Depth: 0}, false},
		{"too far", runnerCollision(), core.PlayerPose{}, Entity{Lateral: 0, Depth: -1.2}, false},
		{"jumped over", runnerCollision(), core.PlayerPose{Vertical: 1.5}, Entity{Lateral: 0, Depth: 0}, false},
		{"low jump still hits", runnerCollision(), core.PlayerPose{Vertical: 0.5}, Entity{Lateral: 0, Depth: 0}, true},
		{
			"vertical ignored",
			CollisionConfig{LateralTol: 1.5, DepthTol: 2},
			core.PlayerPose{Vertical: 5},
			Entity{Lateral: 1, Depth: 1.5},
			true,
		},
		{
			"angle across seam",
			CollisionConfig{LateralTol: 0.3, DepthTol: 1, Angular: true},
			core.PlayerPose{Lateral: math.Pi - 0.1},
			Entity{Lateral: -math.Pi + 0.1, Depth: 0},
			true,
		},
		{
			"angle apart",
			CollisionConfig{LateralTol: 0.3, DepthTol: 1, Angular: true},
			core.PlayerPose{Lateral: 0},
			Entity{Lateral: math.Pi / 2, Depth: 0},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJudge(tt.cfg)
			if got := j.Hit(tt.player, &tt.entity); got != tt.want {
				t.Errorf("Hit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJudgeCollectibleOnce(t *testing.T) {
	s := playingStore(t)
	j := NewJudge(runnerCollision())

	entities := []Entity{{Depth: 0, Kind: core.KindCollectible, Active: true, Visible: true}}

	for i := 0; i < 3; i++ {
		j.Judge(core.PlayerPose{}, entities, s)
	}

	if s.Score() != 50 {
		t.Errorf("Score() = %d, want 50", s.Score())
	}
	if !entities[0].Consumed || entities[0].Visible {
		t.Error("collectible should be consumed and hidden")
	}
	if s.Phase() != core.PhasePlaying {
		t.Error("collectible must not end the run")
	}
}

func TestJudgeRewardBeforeEnd(t *testing.T) {
	s := playingStore(t)
	j := NewJudge(runnerCollision())

	entities := []Entity{
		{Lateral: 0.1, Depth: 0, Kind: core.KindObstacle, Active: true, Visible: true},
		{Lateral: -0.1, Depth: 0.3, Kind: core.KindCollectible, Active: true, Visible: true},
	}
	v := j.Judge(core.PlayerPose{}, entities, s)

	if v.Collected != 1 || !v.Crashed {
		t.Errorf("verdict = %+v, want one collected and crashed", v)
	}
	if s.HighScore() != 50 {
		t.Errorf("HighScore() = %d, want 50", s.HighScore())
	}
}

func TestJudgeSkipsHidden(t *testing.T) {
	s := playingStore(t)
	j := NewJudge(runnerCollision())

	entities := []Entity{
		{Kind: core.KindObstacle, Active: true, Visible: false},
		{Kind: core.KindObstacle, Active: false, Visible: true},
	}
	if v := j.Judge(core.PlayerPose{}, entities, s); v.Crashed {
		t.Error("hidden or inactive entities must not collide")
	}
}
