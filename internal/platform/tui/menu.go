package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/state"
)

var (
	hubTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	hubItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hubPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	hubDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// difficulties is the order the hub cycles presets in.
var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuItem represents a selectable game in the hub.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the game hub.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	board          *state.Board
	difficulty     int // index into difficulties
	config         core.RuntimeConfig
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a hub listing every registered game.
// board supplies the best score shown next to each game and may be nil.
// difficulty preselects a preset; empty means normal.
func NewMenuModel(board *state.Board, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}

	level := 1
	for i, d := range difficulties {
		if d == difficulty {
			level = i
		}
	}

	return MenuModel{
		items:      items,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		board:      board,
		difficulty: level,
		config:     cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the hub.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(hubTitleStyle.Render("N E O N   A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(hubDimStyle.Render("Select a game"), m.width))
	b.WriteString("\n")
	picker := fmt.Sprintf("< difficulty: %s >", m.Difficulty())
	b.WriteString(centerText(hubItemStyle.Render(picker), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf(" %-12s best %-6d ", item.Title, m.best(item.GameID))
		style := hubItemStyle
		if i == m.cursor {
			style = hubPickStyle
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(hubDimStyle.Render(item.Description), m.width))
		b.WriteString("\n\n")
	}

	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(hubDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) best(gameID string) int {
	if m.board == nil {
		return 0
	}
	return m.board.HighScore(gameID)
}

// Difficulty returns the preset currently picked in the hub.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width, measuring styled text
// by its visible cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
