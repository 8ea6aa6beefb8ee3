package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

const (
	maxScores  = 100 // rows loaded per game
	recentRuns = 50  // rows in the recent view
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// scoreboardKeys binds the scoreboard controls and feeds the help bar.
type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Recent key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("→/tab", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Recent: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "hub")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Recent, k.Back}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

// ScoreboardModel shows the in-memory run log: the best runs of one game
// with its aggregate stats, or the latest runs across all games.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	recent    bool
	runs      *storage.Store
	entries   []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      scoreboardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens on the first game's best runs.
func NewScoreboardModel(runs *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		runs:   runs,
		keys:   newScoreboardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// columns lays out the table for the active view. Spare width goes to
// the player column.
func (m ScoreboardModel) columns() []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 7},
		{Title: "Player", Width: 10},
		{Title: "When", Width: 9},
	}
	if m.recent {
		cols = slices.Insert(cols, 1, table.Column{Title: "Game", Width: 12})
	}

	used := 0
	for _, c := range cols {
		used += c.Width + 2
	}
	if spare := m.width - 8 - used; spare > 0 {
		cols[len(cols)-2].Width += min(spare, 12)
	}
	return cols
}

func (m ScoreboardModel) row(i int, e storage.ScoreEntry) table.Row {
	player := e.Player
	if player == "" {
		player = "-"
	}
	r := table.Row{
		strconv.Itoa(i + 1),
		strconv.Itoa(e.Score),
		formatDuration(e.Duration),
		player,
		e.CreatedAt.Local().Format("15:04:05"),
	}
	if m.recent {
		title := e.GameID
		if info, ok := registry.Info(e.GameID); ok {
			title = info.Title
		}
		r = slices.Insert(r, 1, title)
	}
	return r
}

// reload queries the run log for the active view and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.entries, m.stats = nil, nil
	if m.runs != nil {
		var err error
		if m.recent {
			m.entries, err = m.runs.RecentRuns(recentRuns)
		} else if len(m.games) > 0 {
			id := m.games[m.current].ID
			m.entries, err = m.runs.TopScores(id, maxScores)
			if err == nil {
				m.stats, err = m.runs.GetGameStats(id)
			}
		}
		if err != nil {
			m.entries, m.stats = nil, nil
		}
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = m.row(i, e)
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)
	m.table = t
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// statsLine summarizes the selected game's runs.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  |  best %d  |  avg %.0f  |  played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, formatDuration(m.stats.PlayTime))
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Recent):
			m.recent = !m.recent
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Scroll):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
	}
	return m, nil
}

// cycle moves to another game, leaving the recent view.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.games) == 0 {
		return
	}
	if !m.recent {
		m.current = (m.current + delta + len(m.games)) % len(m.games)
	}
	m.recent = false
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	switch {
	case m.recent:
		title = "RECENT RUNS"
	case len(m.games) > 0:
		title += " - " + strings.ToUpper(m.games[m.current].Title)
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(boardStatsStyle.Render(line), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardEmptyStyle.Render("No runs this session yet.\nScores are kept until the arcade exits.")
	if len(m.entries) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs lists every game plus the recent view, collapsing to the active
// tab between arrows when the strip does not fit.
func (m ScoreboardModel) tabs() string {
	labels := make([]string, 0, len(m.games)+1)
	active := ""
	for i, g := range m.games {
		if !m.recent && i == m.current {
			active = g.Title
			labels = append(labels, boardActiveTab.Render(g.Title))
			continue
		}
		labels = append(labels, boardTabStyle.Render(g.Title))
	}
	if m.recent {
		active = "Recent"
		labels = append(labels, boardActiveTab.Render("Recent"))
	} else {
		labels = append(labels, boardTabStyle.Render("Recent"))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	if lipgloss.Width(strip) > m.width-4 {
		return boardActiveTab.Render("< " + active + " >")
	}
	return strip
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
