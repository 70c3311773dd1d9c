package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-shift/internal/core"
	"github.com/vovakirdan/lane-shift/internal/games/laneshift"
	"github.com/vovakirdan/lane-shift/internal/storage"
)

// mouseSwipeCells is the horizontal drag, in cells, that counts as a swipe.
const mouseSwipeCells = 3

// phase is the screen the model is showing.
type phase int

const (
	phaseMenu phase = iota
	phasePlaying
	phaseScores
)

// Model is the Bubble Tea model for a Lane Shift session:
// menu -> game -> menu, with the scoreboard reachable from the menu.
type Model struct {
	game       *laneshift.Game
	store      storage.Backend
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	menu       MenuModel
	scores     ScoreboardModel
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	phase      phase
	ticking    bool
	quitting   bool
}

// NewModel creates a session model around game. store may be nil.
func NewModel(game *laneshift.Game, store storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	game.Reset(cfg)

	menu := NewMenuModel(keys, game.Look(), "")
	menu.width = cfg.ScreenW

	m := Model{
		game:       game,
		store:      store,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys, mouseSwipeCells),
		help:       help.New(),
		menu:       menu,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	switch m.phase {
	case phaseMenu:
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.updateMenu(key)
		}
	case phasePlaying:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			return m.handleGameKey(msg)
		case tea.MouseMsg:
			m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		}
	case phaseScores:
		return m.updateScores(msg)
	}

	return m, nil
}

// updateMenu handles keys on the customization form.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menu, event, cmd := m.menu.Update(msg)
	m.menu = menu

	switch event {
	case menuQuit:
		m.quitting = true
		return m, tea.Quit

	case menuScores:
		m.scores = NewScoreboardModel(m.runSource(), m.config.ScreenW, m.config.ScreenH)
		m.phase = phaseScores
		return m, nil

	case menuStart:
		look, err := m.menu.Customization()
		if err != nil {
			m.menu.err = err
			return m, nil
		}
		m.menu.err = nil
		m.game.Customize(look)
		m.menu.color.SetValue(string(m.game.Look().Color))
		m.menu.shape = m.game.Look().Shape
		return m.startRun()
	}

	return m, cmd
}

// startRun starts a new run and the tick loop if it isn't running.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	m.game.Start()
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.phase = phasePlaying

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleGameKey processes keyboard input during a run.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack, action == core.ActionRestart:
		m.keyMapper.CancelSwipe()
		m.game.Restart()
		m.gameState = m.game.State()
		m.phase = phaseMenu
		return m, nil
	case action == core.ActionConfirm && !m.game.State().Running:
		return m.startRun()
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// updateScores forwards messages to the scoreboard.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	scores, back, quit, cmd := m.scores.Update(msg)
	m.scores = scores
	switch {
	case quit:
		m.quitting = true
		return m, tea.Quit
	case back:
		m.phase = phaseMenu
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1)) // Last row is the help bar
	m.menu.width = msg.Width
	m.help.Width = msg.Width

	var cmd tea.Cmd
	m.scores, _, _, cmd = m.scores.Update(msg)
	return m, cmd
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying || !m.gameState.Running {
		m.ticking = false
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// A finished run goes back to the menu so the look can be changed
	if result.Ended {
		m.phase = phaseMenu
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// runSource returns the store as a scoreboard source, or nil.
func (m Model) runSource() RunSource {
	if m.store == nil {
		return nil
	}
	return m.store
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".laneshift", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseScores:
		return m.scores.View()
	case phasePlaying:
		m.game.Render(m.screen)
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
	default:
		return m.menu.View(m.game.LastResult(), m.game.State().Best)
	}
}

// Phase names the current screen; used by tests and logging.
func (m Model) Phase() string {
	switch m.phase {
	case phasePlaying:
		return "playing"
	case phaseScores:
		return "scores"
	default:
		return "menu"
	}
}

// Options configures a local terminal session.
type Options struct {
	Game    *laneshift.Game
	Store   storage.Backend
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Run starts the Bubble Tea program in the local terminal.
func Run(opts Options) error {
	model := NewModel(opts.Game, opts.Store, opts.Runtime, opts.Logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags act as swipes
	)

	_, err := p.Run()
	return err
}
