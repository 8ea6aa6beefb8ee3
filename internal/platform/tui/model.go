package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// SnapshotPublisher receives one snapshot per simulated frame.
// Implementations must not block.
type SnapshotPublisher interface {
	Publish(snap core.Snapshot)
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Runtime    core.RuntimeConfig
	Runs       *storage.Store    // run log; nil disables it
	Logger     *log.Logger       // nil discards
	Player     string            // recorded with each run
	Publisher  SnapshotPublisher // nil disables streaming
	ExitOnBack bool              // quit the program instead of returning to a hub
}

// GameModel is the Bubble Tea model hosting one game.
// It owns timing, the pause overlay, key-hold emulation and the run log;
// the game itself only sees input edges and frame deltas.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	opts      GameOptions
	logger    *log.Logger
	keys      *KeyMapper
	holds     *HoldTracker
	lastTick  time.Time
	runStart  time.Time
	lastPhase core.Phase
	paused    bool
	quitting  bool
	back      bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, opts GameOptions) GameModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	game.Setup(opts.Runtime)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:      opts,
		logger:    logger,
		keys:      NewKeyMapper(game.ID()),
		holds:     NewHoldTracker(DefaultHoldInitial, DefaultHoldRepeat),
		lastPhase: game.State().Phase,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Setup(m.opts.Runtime)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key to an action and either handles it here
// (host actions) or forwards it to the game as a key-down edge.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	st := m.game.State()
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if st.Playing() {
			m.paused = !m.paused
			if m.paused {
				m.releaseHolds(m.holds.ReleaseAll())
			} else {
				// Do not bill the pause to the next frame.
				m.lastTick = time.Time{}
			}
		}
		return m, nil

	case core.ActionBack:
		if st.Playing() && !m.paused {
			return m, nil
		}
		m.back = true
		if m.opts.ExitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionConfirm:
		if !st.Playing() {
			m.startRun(now)
		}
		return m, nil

	case core.ActionRestart:
		if st.GameOver() {
			m.startRun(now)
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	m.releaseHolds(m.holds.Press(action, now))
	m.game.OnInput(action, core.EdgeDown)
	return m, nil
}

func (m *GameModel) startRun(now time.Time) {
	if !m.game.Start() {
		return
	}
	m.paused = false
	m.runStart = now
	m.lastPhase = core.PhasePlaying
	m.releaseHolds(m.holds.ReleaseAll())
	m.logger.Debug("run started", "game", m.game.ID(), "best", m.game.State().HighScore)
}

func (m *GameModel) releaseHolds(actions []core.Action) {
	for _, a := range actions {
		m.game.OnInput(a, core.EdgeUp)
	}
}

// handleTick advances the simulation by the real time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	m.releaseHolds(m.holds.Expire(now))

	if !m.paused {
		result := m.advance(dt)
		if result.State.Phase == core.PhaseGameOver && m.lastPhase != core.PhaseGameOver {
			m.finishRun(result.State, now)
		}
		m.lastPhase = result.State.Phase

		if m.opts.Publisher != nil {
			m.opts.Publisher.Publish(m.game.Snapshot())
		}
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// advance runs the game through dt in sub-steps, stopping early once the
// run is no longer playing.
func (m GameModel) advance(dt float64) core.StepResult {
	var result core.StepResult
	for _, d := range subSteps(dt) {
		result = m.game.AdvanceFrame(d)
		if result.State.Phase != core.PhasePlaying {
			break
		}
	}
	return result
}

// finishRun records a finished run once, at the GameOver transition.
func (m *GameModel) finishRun(st core.GameState, now time.Time) {
	duration := now.Sub(m.runStart)
	if m.runStart.IsZero() {
		duration = 0
	}

	m.logger.Info("run finished",
		"game", m.game.ID(),
		"score", st.Score,
		"best", st.HighScore,
		"duration", duration.Round(time.Millisecond),
	)

	if m.opts.Runs == nil {
		return
	}
	runID, err := m.opts.Runs.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    st.Score,
		Duration: duration,
		At:       now,
	})
	if err != nil {
		m.logger.Warn("could not log run", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("run logged", "run", runID)
}

// saveScreenshot writes the current frame as plain text to ~/.arcade/screenshots.
func (m GameModel) saveScreenshot() error {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return nil
}

func (m GameModel) draw() {
	m.screen.Clear()
	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawMessageBox("PAUSED", "P resume", "B back to hub")
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Paused reports whether the simulation is frozen by the pause overlay.
func (m GameModel) Paused() bool {
	return m.paused
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the hub.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// Run plays a single game in the terminal until the user quits or backs out.
func Run(game registry.Game, opts GameOptions) error {
	opts.ExitOnBack = true
	p := tea.NewProgram(NewGameModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
