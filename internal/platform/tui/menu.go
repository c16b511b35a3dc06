package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/registry"
	"github.com/vovakirdan/skillquest/internal/storage"
)

// MenuItem is one level pack in the launcher.
type MenuItem struct {
	GameID       string
	Title        string
	Best         int // Best finished run, 0 when none
	Achievements int // Achievements the player has unlocked in the pack
}

// menuKeys are the launcher bindings.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Scores key.Binding
	Quit   key.Binding
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Scores, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultMenuKeys = menuKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("down/j", "down")),
	Play:   key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "play")),
	Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// MenuModel is the launcher: pick a level pack or open the scoreboard.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	config     core.RuntimeConfig
	keys       menuKeys
	help       help.Model
	quitting   bool
	selected   *MenuItem
	wantScores bool
}

// NewMenuModel lists every registered pack with the player's progress.
// store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, player string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(g.ID); err == nil {
			items[i].Best = best
		}
		if player == "" {
			player = storage.DefaultPlayer
		}
		if unlocked, err := store.Achievements(g.ID, player); err == nil {
			items[i].Achievements = len(unlocked)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{items: items, config: cfg, keys: defaultMenuKeys, help: h}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case key.Matches(msg, m.keys.Play):
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				m.selected = &item
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Scores):
			m.wantScores = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700"))
	pointer := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff6b35"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var list strings.Builder
	for i, item := range m.items {
		if i > 0 {
			list.WriteString("\n")
		}
		name := "  " + item.Title
		if i == m.cursor {
			name = pointer.Render("> " + item.Title)
		}
		list.WriteString(name)

		var progress []string
		if item.Best > 0 {
			progress = append(progress, fmt.Sprintf("best %d", item.Best))
		}
		if item.Achievements > 0 {
			progress = append(progress, fmt.Sprintf("%d achievements", item.Achievements))
		}
		if len(progress) > 0 {
			list.WriteString(dim.Render("  " + strings.Join(progress, ", ")))
		}
	}
	if len(m.items) == 0 {
		list.WriteString(dim.Render("No level packs registered"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(title.Render("S K I L L Q U E S T"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a level pack", width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(box.Render(list.String()), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dim.Render(m.help.View(m.keys)), width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers one line, measuring printed cells so styled strings
// center correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the user chose in the launcher. Exactly one of GameID,
// WantsScoreboard and Quit is set.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes the menu's current state. A menu with no decision yet
// yields an empty MenuResult apart from Config.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.wantScores:
		r.WantsScoreboard = true
	case m.quitting:
		r.Quit = true
	case m.selected != nil:
		r.GameID = m.selected.GameID
	}
	return r
}

// RunMenu runs the launcher as its own program and returns the choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, player string) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, player), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	r := m.Result()
	if r.GameID == "" && !r.WantsScoreboard {
		r.Quit = true
	}
	return r, nil
}
