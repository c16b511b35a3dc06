package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skillquest/internal/registry"
	"github.com/vovakirdan/skillquest/internal/storage"
)

const (
	boardRowLimit = 100 // rows loaded per page
	boardChrome   = 9   // lines used by title, tabs, stats and help
)

// boardPage selects what the scoreboard lists for a pack.
type boardPage int

const (
	pageScores boardPage = iota
	pageAchievements
)

func (p boardPage) String() string {
	if p == pageAchievements {
		return "Achievements"
	}
	return "Scores"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Page     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.Page, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextPack, k.PrevPack, k.Page},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		NextPack: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next pack")),
		PrevPack: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev pack")),
		Page:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scores/achievements")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best runs and unlocked achievements of each pack.
type ScoreboardModel struct {
	packs     []registry.GameInfo
	pack      int
	page      boardPage
	store     *storage.Store
	rows      []table.Row
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered pack.
// store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		packs:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// columns returns the table layout for the current page, giving spare width
// to the name column.
func (m *ScoreboardModel) columns() []table.Column {
	var cols []table.Column
	name := 1
	if m.page == pageAchievements {
		cols = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Achievement", Width: 18},
			{Title: "Player", Width: 12},
			{Title: "Unlocked", Width: 14},
		}
	} else {
		cols = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 12},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Date", Width: 14},
		}
	}

	used := 0
	for _, c := range cols {
		used += c.Width + 2 // cell padding
	}
	if spare := m.width - 6 - used; spare > 0 {
		cols[name].Width += min(spare, 12)
	}
	return cols
}

// reload fetches the current page from the store and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.rows, m.stats = nil, nil
	if m.store != nil && len(m.packs) > 0 {
		gameID := m.packs[m.pack].ID
		if m.page == pageAchievements {
			m.rows = m.achievementRows(gameID)
		} else {
			m.rows = m.scoreRows(gameID)
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, 3)),
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
	m.table = t
}

func (m *ScoreboardModel) scoreRows(gameID string) []table.Row {
	scores, err := m.store.TopScores(gameID, boardRowLimit)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.LevelReached),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m *ScoreboardModel) achievementRows(gameID string) []table.Row {
	list, err := m.store.Achievements(gameID, "")
	if err != nil {
		return nil
	}
	if len(list) > boardRowLimit {
		list = list[len(list)-boardRowLimit:]
	}
	rows := make([]table.Row, len(list))
	for i, a := range list {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			a.Name,
			a.Player,
			a.UnlockedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
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
		case key.Matches(msg, m.keys.NextPack):
			m.switchPack(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevPack):
			m.switchPack(-1)
			return m, nil
		case key.Matches(msg, m.keys.Page):
			m.page = 1 - m.page
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchPack(delta int) {
	if len(m.packs) == 0 {
		return
	}
	m.pack = (m.pack + delta + len(m.packs)) % len(m.packs)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(strings.ToUpper(m.page.String()), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerBlock(box.Render(m.renderBody()), m.width))
	b.WriteString("\n")

	if m.stats != nil && m.stats.GamesCount > 0 {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		line := fmt.Sprintf("%d runs  avg %.0f  best level %d  %d achievements",
			m.stats.GamesCount, m.stats.AvgScore, m.stats.BestLevel, m.stats.Achievements)
		b.WriteString(statsStyle.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs shows one tab per pack, or just the current pack when the row
// does not fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.packs) == 0 {
		return "No level packs"
	}
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.packs))
	for i, p := range m.packs {
		if i == m.pack {
			tabs[i] = active.Render(p.Title)
		} else {
			tabs[i] = idle.Render(p.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.packs[m.pack].Title)
	}
	return line
}

// renderBody renders the table or the empty message for the page.
func (m ScoreboardModel) renderBody() string {
	if len(m.rows) > 0 {
		return m.table.View()
	}
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	if m.page == pageAchievements {
		return empty.Render("No achievements unlocked yet.\nCollect one to see it here!")
	}
	return empty.Render("No runs recorded yet.\nFinish every level to set a high score!")
}

// centerBlock indents every line of a rendered block to center it.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	prefix := strings.Repeat(" ", pad)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
