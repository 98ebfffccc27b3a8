package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-waverunner/internal/config"
	"github.com/vovakirdan/tui-waverunner/internal/core"
	"github.com/vovakirdan/tui-waverunner/internal/sim"
	"github.com/vovakirdan/tui-waverunner/internal/storage"
)

// Model is the Bubble Tea model driving the game loop.
type Model struct {
	game       *sim.Game
	screen     *core.Screen
	store      *storage.Store
	gameCfg    config.Config
	runtime    core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	frame      sim.Frame
	quitting   bool
	runSaved   bool // Whether the run has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(gameCfg config.Config, rt core.RuntimeConfig, store *storage.Store) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       sim.New(gameCfg, rt.Seed),
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		gameCfg:    gameCfg,
		runtime:    rt,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is in fixed units; a resize only rescales the projection
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.runtime.TickRate)
	m.frame = m.game.Step(dt, m.inputFrame)
	m.inputFrame.Clear()

	// Record the run once per game over
	if m.frame.Mode == sim.ModeGameOver {
		if !m.runSaved && m.store != nil && m.frame.Player.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.frame.Player.Score, m.frame.Player.BestCombo, m.frame.Stage)
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	Render(m.frame, m.gameCfg, m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".waverunner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("waverunner_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Render(m.frame, m.gameCfg, m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg config.Config, rt core.RuntimeConfig, store *storage.Store) error {
	model := NewModel(gameCfg, rt, store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
