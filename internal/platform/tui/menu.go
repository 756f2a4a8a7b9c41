package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

// Difficulties lists the presets the menu cycles through.
var Difficulties = []string{"normal", "easy", "hard", "fixed"}

// Main menu entries
const (
	menuStart = iota
	menuDifficulty
	menuQuit
	menuItemCount
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			Padding(0, 2)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	gameID     string
	title      string
	cursor     int
	difficulty int // Index into Difficulties
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model
	quitting   bool
	started    bool
}

// NewMenuModel creates a main menu for the registered game gameID.
func NewMenuModel(gameID, difficulty string, cfg core.RuntimeConfig) MenuModel {
	title := gameID
	for _, info := range registry.List() {
		if info.ID == gameID {
			title = info.Title
		}
	}

	m := MenuModel{
		gameID: gameID,
		title:  title,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	for i, d := range Difficulties {
		if d == difficulty {
			m.difficulty = i
		}
	}
	return m
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
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + menuItemCount - 1) % menuItemCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % menuItemCount

	case MenuActionLeft:
		if m.cursor == menuDifficulty {
			m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)
		}

	case MenuActionRight:
		if m.cursor == menuDifficulty {
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		}

	case MenuActionSelect:
		switch m.cursor {
		case menuStart:
			m.started = true
			return m, tea.Quit
		case menuDifficulty:
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.started {
		return ""
	}

	items := []string{
		"Start",
		fmt.Sprintf("Difficulty: < %s >", m.Difficulty()),
		"Quit",
	}

	lines := make([]string, 0, len(items))
	for i, item := range items {
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+item))
		} else {
			lines = append(lines, itemStyle.Render("  "+item))
		}
	}

	title := strings.ToUpper(strings.Join(strings.Split(m.title, ""), " "))
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		"",
		subtleStyle.Render(m.help.View(m.keys)),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Difficulty returns the selected difficulty preset name.
func (m MenuModel) Difficulty() string {
	return Difficulties[m.difficulty]
}

// Started reports whether the player chose Start.
func (m MenuModel) Started() bool {
	return m.started
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID     string
	Difficulty string
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu shows the main menu for gameID and returns the player's choice.
func RunMenu(gameID, difficulty string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(gameID, difficulty, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Quit: true}, fmt.Errorf("tui: run menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || !m.Started() {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{
		GameID:     m.gameID,
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}, nil
}
