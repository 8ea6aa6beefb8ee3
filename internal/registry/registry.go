// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/state"
)

// Game is the interface every arcade game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "runner").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Neon Rush").
	Title() string

	// Description is the one-line blurb shown in the hub.
	Description() string

	// Setup tells the game the screen size and tick rate.
	// Called before the first frame and again on resize.
	Setup(cfg core.RuntimeConfig)

	// Start begins a run from Idle or GameOver. Returns false if ignored.
	Start() bool

	// End finishes the current run. Returns false if not playing.
	End() bool

	// Reset returns to Idle with a fresh world.
	Reset()

	// AddScore credits points while playing.
	AddScore(points int)

	// OnInput buffers a key edge for the next frame.
	OnInput(action core.Action, edge core.Edge)

	// AdvanceFrame moves the simulation forward by dt seconds.
	AdvanceFrame(dt float64) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current score, high score and phase.
	State() core.GameState

	// Snapshot returns a copy of the world for external renderers.
	Snapshot() core.Snapshot
}

// Options are passed to a factory when a game is created.
type Options struct {
	ConfigPath string                  // custom YAML; empty uses the search order
	Difficulty config.DifficultyPreset // empty keeps the config's own settings
	Store      *state.Store            // nil creates a private store
	Seed       int64                   // 0 seeds from the clock
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered games in hub order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		oi, oj := hubRank(result[i].ID), hubRank(result[j].ID)
		if oi != oj {
			return oi < oj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// hubOrder is the display order of the bundled games; others sort after by ID.
var hubOrder = []string{"runner", "racer", "tunnel", "stack"}

func hubRank(id string) int {
	for i, known := range hubOrder {
		if known == id {
			return i
		}
	}
	return len(hubOrder)
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or its config fails to load.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
