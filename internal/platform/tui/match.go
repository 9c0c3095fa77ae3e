package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/crucible-tabletop/crucible/internal/config"
	"github.com/crucible-tabletop/crucible/internal/scenario"
	"github.com/crucible-tabletop/crucible/internal/sim"
	"github.com/crucible-tabletop/crucible/internal/storage"
)

// Playback speed in revealed events per second.
const playbackRate = 4

var (
	matchTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	redSideStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	blueSideStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	phaseStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	resultStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MatchModel replays a finished battle event by event. The skirmish
// runs to completion up front; playback only controls how fast the log
// is revealed.
type MatchModel struct {
	match  config.MatchConfig
	store  *storage.Store
	seed   int64
	events []sim.Event
	result sim.Result

	shown      int
	width      int
	height     int
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewMatchModel runs the configured skirmish and returns a model ready
// to replay it.
func NewMatchModel(cfg config.MatchConfig, store *storage.Store, width, height int) (MatchModel, error) {
	state, err := scenario.Create(cfg.Scenario)
	if err != nil {
		return MatchModel{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runner, err := sim.New(state, cfg.Red.Tier(), cfg.Blue.Tier(), seed, cfg.Rounds)
	if err != nil {
		return MatchModel{}, err
	}
	// The alt screen owns the terminal during playback
	runner.SetLogger(log.New(io.Discard))

	result := runner.Run()

	return MatchModel{
		match:     cfg,
		store:     store,
		seed:      seed,
		events:    result.Events,
		result:    result,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}, nil
}

// Init starts playback.
func (m MatchModel) Init() tea.Cmd {
	return tickCmd(playbackRate)
}

// Update handles messages during playback.
func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m MatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.backToMenu = true
		return m, tea.Quit

	case MenuActionSelect:
		// Skip to the end of playback
		m.shown = len(m.events)
		m.recordResult()
		return m, nil
	}

	return m, nil
}

// handleTick reveals the next event.
func (m MatchModel) handleTick() (tea.Model, tea.Cmd) {
	if m.shown < len(m.events) {
		m.shown++
		if m.shown == len(m.events) {
			m.recordResult()
			return m, nil
		}
		return m, tickCmd(playbackRate)
	}
	return m, nil
}

// recordResult persists the finished match, best effort.
func (m *MatchModel) recordResult() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	//nolint:errcheck // Best-effort save
	m.store.SaveMatch(storage.MatchRecord{
		Scenario:       m.match.Scenario,
		RedTier:        m.match.Red.Tier().Name(),
		BlueTier:       m.match.Blue.Tier().Name(),
		Winner:         m.result.Winner,
		Rounds:         m.result.Rounds,
		RedPointsLost:  m.result.RedPointsLost,
		BluePointsLost: m.result.BluePointsLost,
		Seed:           m.seed,
	})
}

// View renders the battle log.
func (m MatchModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	var b strings.Builder

	// Header
	header := fmt.Sprintf("%s  -  %s vs %s",
		scenarioTitle(m.match.Scenario),
		redSideStyle.Render(fmt.Sprintf("%s (%s)", m.match.Red.Name, m.match.Red.Tier().Name())),
		blueSideStyle.Render(fmt.Sprintf("%s (%s)", m.match.Blue.Name, m.match.Blue.Tier().Name())))
	b.WriteString("\n")
	b.WriteString(matchTitleStyle.Render(" BATTLE LOG "))
	b.WriteString("  ")
	b.WriteString(header)
	b.WriteString("\n\n")

	// Visible window of the log
	logHeight := m.height - 7
	if logHeight < 1 {
		logHeight = 1
	}
	start := m.shown - logHeight
	if start < 0 {
		start = 0
	}

	for _, ev := range m.events[start:m.shown] {
		side := ev.Side
		if ev.Side == "Red" {
			side = redSideStyle.Render(ev.Side)
		} else if ev.Side == "Blue" {
			side = blueSideStyle.Render(ev.Side)
		}
		b.WriteString(fmt.Sprintf(" %s %s %s\n",
			phaseStyle.Render(fmt.Sprintf("[R%d %-8s]", ev.Round, ev.Phase)),
			side,
			ev.Detail))
	}

	// Footer
	b.WriteString("\n")
	if m.shown == len(m.events) {
		b.WriteString(resultStyle.Render(fmt.Sprintf(" %s wins after %d rounds ", m.result.Winner, m.result.Rounds)))
		b.WriteString("\n")
		b.WriteString(phaseStyle.Render(" Esc: Back  |  Q: Quit"))
	} else {
		b.WriteString(phaseStyle.Render(" Enter: Skip  |  Esc: Back  |  Q: Quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m MatchModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to setup.
func (m MatchModel) BackToMenu() bool {
	return m.backToMenu
}

// RunMatch runs one match with live playback.
// Returns true if user wants to go back to setup, false if quitting.
func RunMatch(cfg config.MatchConfig, store *storage.Store, width, height int) (goBack bool, err error) {
	model, err := NewMatchModel(cfg, store, width, height)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(MatchModel)
	if !ok {
		return false, nil
	}

	return m.BackToMenu(), nil
}
