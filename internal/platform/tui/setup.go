package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crucible-tabletop/crucible/internal/ai/difficulty"
	"github.com/crucible-tabletop/crucible/internal/config"
	"github.com/crucible-tabletop/crucible/internal/scenario"
)

// setupStage tracks which choice the setup screen is currently asking
// for.
type setupStage int

const (
	stageScenario setupStage = iota
	stageRedTier
	stageBlueTier
	stageDone
)

// SetupModel is the Bubble Tea model for the match setup screen: pick
// a scenario, then a tier for each side.
type SetupModel struct {
	scenarios []scenario.Scenario
	tiers     []difficulty.Tier
	stage     setupStage
	cursor    int
	choice    config.MatchConfig
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
}

// NewSetupModel creates a new setup model seeded with the defaults
// from the given config.
func NewSetupModel(cfg config.MatchConfig, width, height int) SetupModel {
	return SetupModel{
		scenarios: scenario.List(),
		tiers:     difficulty.Tiers(),
		choice:    cfg,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the setup screen.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for setup navigation.
func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case MenuActionBack:
		if m.stage > stageScenario {
			m.stage--
			m.cursor = 0
		}

	case MenuActionSelect:
		return m.confirm()
	}

	return m, nil
}

// confirm locks in the hovered item and advances to the next stage.
func (m SetupModel) confirm() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageScenario:
		m.choice.Scenario = m.scenarios[m.cursor].ID
	case stageRedTier:
		m.choice.Red.Difficulty = m.tiers[m.cursor].Name()
	case stageBlueTier:
		m.choice.Blue.Difficulty = m.tiers[m.cursor].Name()
	}

	m.stage++
	m.cursor = 0

	if m.stage == stageDone {
		return m, tea.Quit
	}
	return m, nil
}

func (m SetupModel) itemCount() int {
	if m.stage == stageScenario {
		return len(m.scenarios)
	}
	return len(m.tiers)
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting || m.stage == stageDone {
		return ""
	}

	var b strings.Builder

	// Title
	title := "  C R U C I B L E  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	// Stage prompt
	var prompt string
	switch m.stage {
	case stageScenario:
		prompt = "Select a scenario"
	case stageRedTier:
		prompt = "Select Red's difficulty"
	case stageBlueTier:
		prompt = "Select Blue's difficulty"
	}
	b.WriteString(centerText(prompt, m.width))
	b.WriteString("\n\n")

	// Choices
	if m.stage == stageScenario {
		for i, sc := range m.scenarios {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+sc.Title, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(m.scenarios[m.cursor].Description, m.width))
		b.WriteString("\n")
	} else {
		for i, t := range m.tiers {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+t.Name(), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(m.tiers[m.cursor].Description(), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the configured match once setup is complete.
func (m SetupModel) Choice() config.MatchConfig {
	return m.choice
}

// IsDone returns true if all choices have been made.
func (m SetupModel) IsDone() bool {
	return m.stage == stageDone
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// SetupResult holds the result of running the setup screen.
type SetupResult struct {
	Match config.MatchConfig
	Quit  bool
}

// RunSetup runs the setup screen and returns the chosen match config.
func RunSetup(cfg config.MatchConfig, width, height int) (SetupResult, error) {
	model := NewSetupModel(cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{Match: cfg}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok || !m.IsDone() {
		return SetupResult{Match: cfg, Quit: true}, nil
	}

	return SetupResult{Match: m.Choice()}, nil
}

// scenarioTitle resolves a scenario ID to its display title.
func scenarioTitle(id string) string {
	for _, sc := range scenario.List() {
		if sc.ID == id {
			return sc.Title
		}
	}
	return fmt.Sprintf("%q", id)
}
