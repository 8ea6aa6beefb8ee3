package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/games/runner"
)

func sessionKey(t *testing.T, m SessionModel, msg tea.KeyMsg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSessionHubToGameAndBack(t *testing.T) {
	m := NewSessionModel(SessionOptions{Runtime: testRuntime(), Player: "ada"})
	if m.ID() == "" {
		t.Fatal("session ID is empty")
	}

	// runner is listed first.
	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatalf("Enter in hub should launch a game (err: %v)", m.Err())
	}
	if m.gameModel.game.ID() != runner.ID {
		t.Errorf("launched %q, want %q", m.gameModel.game.ID(), runner.ID)
	}

	// Idle: Esc returns to the hub.
	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.gameModel != nil {
		t.Fatal("Esc from an idle game should return to the hub")
	}
	if m.menu.Selected() != nil {
		t.Error("hub should be fresh after returning")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(SessionOptions{Runtime: testRuntime()})

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}
	if m.quitting {
		t.Fatal("opening the scoreboard must not end the session")
	}

	m = sessionKey(t, m, runeKey('b'))
	if m.scoreboard != nil {
		t.Fatal("b should close the scoreboard")
	}

	m = sessionKey(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q in the hub should quit")
	}
}

func TestSessionHighScoreSurvivesNavigation(t *testing.T) {
	m := NewSessionModel(SessionOptions{Runtime: testRuntime()})

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatalf("launch failed: %v", m.Err())
	}

	store := m.board.For(runner.ID)
	store.Start()
	store.AddScore(70)
	store.End()

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.menu.best(runner.ID); got != 70 {
		t.Errorf("hub best = %d, want 70", got)
	}
}

func TestHubDifficultyPicker(t *testing.T) {
	m := NewSessionModel(SessionOptions{Runtime: testRuntime(), Difficulty: config.DifficultyHard})
	if got := m.menu.Difficulty(); got != config.DifficultyHard {
		t.Fatalf("initial difficulty = %q, want hard", got)
	}

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.menu.Difficulty(); got != config.DifficultyFixed {
		t.Errorf("after right = %q, want fixed", got)
	}
	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.menu.Difficulty(); got != config.DifficultyEasy {
		t.Errorf("right wraps to %q, want easy", got)
	}

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.opts.Difficulty != config.DifficultyEasy {
		t.Errorf("launched with %q, want easy", m.opts.Difficulty)
	}
}
