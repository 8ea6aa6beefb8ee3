package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/state"
)

// Mode selects which world an engine simulates.
type Mode int

const (
	// ModeTrack is a pool of entities streaming toward the player.
	ModeTrack Mode = iota
	// ModeTower is the block-stacking world.
	ModeTower
)

// SpeedCurve maps run progress to the global scroll speed. It must not
// decrease as score and elapsed grow.
type SpeedCurve interface {
	Speed(base float64, score int, elapsed float64) float64
}

// ScoringConfig selects the periodic scoring rules of a game.
type ScoringConfig struct {
	PassReward       int     // points per obstacle that crosses PassLine
	PassLine         float64 // depth behind the player
	TickInterval     float64 // seconds between survival points; zero disables
	TickReward       int
	DistancePerPoint float64 // world units per point; zero disables
}

// Config fully describes one game's simulation.
type Config struct {
	Game      string
	Mode      Mode
	BaseSpeed float64
	Curve     SpeedCurve // nil keeps BaseSpeed

	Kinematics Kinematics
	Pool       PoolConfig
	Player     PlayerConfig
	Collision  CollisionConfig
	Scoring    ScoringConfig
	Tower      TowerConfig
}

// Engine runs one game: it owns the world and reports score and phase
// changes to its store. AdvanceFrame and Start/Reset must be called from a
// single goroutine; OnInput may be called from any.
type Engine struct {
	cfg   Config
	store *state.Store
	input *core.InputQueue
	rng   *rand.Rand

	pool   *Pool
	player *Player
	judge  Judge
	tower  *Tower

	survival Timer
	odometer Timer

	elapsed float64
	speed   float64
	frame   uint64
}

// New builds an engine. A zero seed uses the current time.
func New(cfg Config, store *state.Store, seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if store == nil {
		store = state.New()
	}

	rng := rand.New(rand.NewSource(seed))
	e := &Engine{
		cfg:      cfg,
		store:    store,
		input:    core.NewInputQueue(),
		rng:      rng,
		player:   NewPlayer(cfg.Player),
		judge:    NewJudge(cfg.Collision),
		survival: NewTimer(cfg.Scoring.TickInterval),
		odometer: NewTimer(cfg.Scoring.DistancePerPoint),
	}

	if cfg.Mode == ModeTower {
		e.tower = NewTower(cfg.Tower)
	} else {
		e.pool = NewPool(cfg.Pool, rng)
	}
	e.speed = e.scrollSpeed()

	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Store returns the score store the engine reports to.
func (e *Engine) Store() *state.Store {
	return e.store
}

// Start begins a run from Idle or GameOver with a fresh world.
func (e *Engine) Start() bool {
	if !e.store.Start() {
		return false
	}
	e.input.Clear()
	e.rebuild()
	return true
}

// End finishes the current run.
func (e *Engine) End() bool {
	return e.store.End()
}

// Reset returns to Idle with a fresh world, keeping the high score.
func (e *Engine) Reset() {
	e.store.Reset()
	e.input.Clear()
	e.rebuild()
}

// AddScore credits points to the running score.
func (e *Engine) AddScore(points int) {
	e.store.AddScore(points)
}

// OnInput buffers an input edge until the next frame.
func (e *Engine) OnInput(action core.Action, edge core.Edge) {
	e.input.Push(core.InputEvent{Action: action, Edge: edge})
}

// AdvanceFrame runs one simulation step. Buffered input is always drained;
// nothing moves unless the phase is Playing.
func (e *Engine) AdvanceFrame(dt float64) core.StepResult {
	events := e.input.Drain()
	if !e.store.Playing() || dt <= 0 {
		return core.StepResult{State: e.store.State()}
	}

	e.frame++
	e.elapsed += dt

	if e.cfg.Mode == ModeTower {
		e.stepTower(events, dt)
	} else {
		e.stepTrack(events, dt)
	}

	return core.StepResult{State: e.store.State()}
}

func (e *Engine) stepTrack(events []core.InputEvent, dt float64) {
	for _, ev := range events {
		e.player.Handle(ev)
	}
	e.player.Update(dt)

	e.speed = e.scrollSpeed()
	motion := e.speed
	if e.cfg.Kinematics.Motion == MotionRelative {
		motion = e.player.Speed()
		e.speed = motion
	}

	sc := e.cfg.Scoring
	passed := 0
	var visit func(*Entity)
	if sc.PassReward > 0 {
		visit = func(ent *Entity) {
			if ent.Kind == core.KindObstacle && !ent.Passed && ent.Depth > sc.PassLine {
				ent.Passed = true
				passed++
			}
		}
	}
	e.cfg.Kinematics.Advance(e.pool, motion, dt, visit)

	e.store.AddScore(passed * sc.PassReward)
	e.store.AddScore(e.survival.Advance(dt) * sc.TickReward)
	e.store.AddScore(e.odometer.Advance(e.player.Speed() * dt))

	e.judge.Judge(e.player.Pose(), e.pool.Entities(), e.store)
}

func (e *Engine) stepTower(events []core.InputEvent, dt float64) {
	for _, ev := range events {
		if ev.Action != core.ActionPlace || ev.Edge != core.EdgeDown {
			continue
		}
		if !e.store.Playing() {
			break
		}
		if _, ok := e.tower.Place(); ok {
			e.store.AddScore(1)
		} else {
			e.store.End()
		}
	}
	e.tower.Advance(dt)
}

func (e *Engine) scrollSpeed() float64 {
	if e.cfg.Curve == nil {
		return e.cfg.BaseSpeed
	}
	return e.cfg.Curve.Speed(e.cfg.BaseSpeed, e.store.Score(), e.elapsed)
}

func (e *Engine) rebuild() {
	e.elapsed = 0
	e.frame = 0
	e.survival.Reset()
	e.odometer.Reset()
	e.player.Reset()
	if e.tower != nil {
		e.tower.Reset()
	}
	if e.pool != nil {
		e.pool.Seed()
	}
	e.speed = e.scrollSpeed()
}

// State returns the score and phase.
func (e *Engine) State() core.GameState {
	return e.store.State()
}

// Elapsed returns the simulated seconds of the current run.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// Pool exposes the entity pool; nil in tower mode.
func (e *Engine) Pool() *Pool {
	return e.pool
}

// Player exposes the player controller.
func (e *Engine) Player() *Player {
	return e.player
}

// Tower exposes the tower; nil in track mode.
func (e *Engine) Tower() *Tower {
	return e.tower
}

// Bounds returns the depth interval entities stay within.
func (e *Engine) Bounds() (far, near float64) {
	if e.pool == nil {
		return 0, 0
	}
	return e.cfg.Kinematics.Bounds(e.pool)
}

// Snapshot copies everything a renderer needs. The result shares no memory
// with the engine.
func (e *Engine) Snapshot() core.Snapshot {
	st := e.store.State()
	snap := core.Snapshot{
		Game:      e.cfg.Game,
		Frame:     e.frame,
		Phase:     st.Phase,
		Score:     st.Score,
		HighScore: st.HighScore,
		Speed:     e.speed,
		Player:    e.player.Pose(),
	}

	if e.pool != nil {
		snap.Entities = e.pool.Poses()
	}

	if e.tower != nil {
		snap.Blocks = e.tower.Blocks()
		snap.Debris = e.tower.Debris()
		active := blockPose(e.tower.Active(), e.tower.Height(), 0)
		snap.Active = &active
		snap.Axis = e.tower.Axis().String()
	}

	return snap
}
