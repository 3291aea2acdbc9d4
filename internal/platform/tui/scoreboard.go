package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the settings sidebar
	sidebarWidth       = 22  // Width of the settings sidebar
	maxResults         = 100 // Max results to load per setting
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSetting key.Binding
	PrevSetting key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSetting, k.PrevSetting, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSetting, k.PrevSetting},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextSetting: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next setting"),
		),
		PrevSetting: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev setting"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the best results of every pole/disk setting
// that has been solved at least once.
type ScoreboardModel struct {
	store       ResultStore
	renderer    *lipgloss.Renderer
	settings    []storage.SettingStats
	cursor      int // Index into settings
	results     []storage.Result
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard. The cursor starts on focus when
// that setting has results, otherwise on the first setting.
// A nil renderer uses lipgloss's default renderer.
func NewScoreboardModel(store ResultStore, r *lipgloss.Renderer, focus storage.Setting, width, height int) ScoreboardModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		store:       store,
		renderer:    r,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.reload(focus)
	return m
}

// reload refreshes the settings list and the results of the focused one.
func (m *ScoreboardModel) reload(focus storage.Setting) {
	m.settings, m.loadErr = nil, nil
	if m.store != nil {
		m.settings, m.loadErr = m.store.Settings()
	}

	m.cursor = 0
	for i, st := range m.settings {
		if st.Setting == focus {
			m.cursor = i
			break
		}
	}
	m.loadResults()
}

// Current returns the setting under the cursor.
func (m ScoreboardModel) Current() (storage.Setting, bool) {
	if len(m.settings) == 0 {
		return storage.Setting{}, false
	}
	return m.settings[m.cursor].Setting, true
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Moves", Width: 6},
		{Title: "+Opt", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 13},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Give spare room to the player column
	if spare := tableWidth - 59; spare > 0 {
		columns[4].Width += min(spare, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ScoreboardModel) loadResults() {
	m.results = nil
	if set, ok := m.Current(); ok && m.store != nil {
		results, err := m.store.BestResults(set, maxResults)
		if err != nil {
			m.loadErr = err
		} else {
			m.results = results
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%+d", r.Moves-r.Optimal),
			FormatDuration(r.Duration),
			player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSetting):
			if len(m.settings) > 0 {
				m.cursor = (m.cursor + 1) % len(m.settings)
				m.loadResults()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSetting):
			if len(m.settings) > 0 {
				m.cursor = (m.cursor - 1 + len(m.settings)) % len(m.settings)
				m.loadResults()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) resize(width, height int) ScoreboardModel {
	m.width = width
	m.height = height
	m.showSidebar = width >= minWidthForSidebar
	m.table = m.createTable()
	m.updateTableRows()
	m.help.Width = width
	return m
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST RESULTS"
	if set, ok := m.Current(); ok {
		title = fmt.Sprintf("BEST RESULTS - %s", settingLabel(set))
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Settings\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, st := range m.settings {
		cursor := "  "
		style := m.renderer.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		line := fmt.Sprintf("%dp x %dd (%d)", st.Poles, st.Disks, st.Solved)
		sidebar.WriteString(style.Render(cursor + line))
		sidebar.WriteString("\n")
	}

	tableStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if set, ok := m.Current(); ok {
		b.WriteString(centerText(fmt.Sprintf("< %s >", settingLabel(set)), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := m.renderer.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Results are not being recorded.\nCheck the --db path.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No puzzles solved yet.\nPlay a game to set a record!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard as a standalone program.
func RunScoreboard(store ResultStore, width, height int) error {
	model := NewScoreboardModel(store, nil, storage.Setting{}, width, height)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func settingLabel(s storage.Setting) string {
	return fmt.Sprintf("%d poles / %d disks (optimal %d)", s.Poles, s.Disks, hanoi.OptimalMoves(s.Poles, s.Disks))
}

// FormatDuration prints a solve time as m:ss, or XhYYm past an hour.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= time.Hour {
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
