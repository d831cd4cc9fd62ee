package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seed-of-life/internal/core"
	"github.com/vovakirdan/seed-of-life/internal/registry"
	"github.com/vovakirdan/seed-of-life/internal/storage"
)

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitOnBack bool
	quitting   bool
	backToMenu bool
	runSaved   bool // whether the current game over has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		logger:     log.Default().WithPrefix("tui"),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The world is rescaled on render, so a resize never restarts a run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		m.backToMenu = true
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.runSaved = false
	} else if !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run. Saving is best effort; the game goes on
// without a database.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}

	reporter, ok := m.game.(registry.Reporter)
	if !ok {
		return
	}
	report, ok := reporter.Report()
	if !ok {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		Variant:     m.game.ID(),
		Outcome:     report.Outcome,
		ElapsedMs:   report.ElapsedMs,
		Thrusts:     report.Thrusts,
		Score:       report.Score,
		TickMs:      report.TickMs,
		ThrustTicks: report.ThrustTicks,
		Fingerprint: report.Fingerprint,
	})
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "outcome", report.Outcome, "score", report.Score)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".seed", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game. Back exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	_, err := RunGame(game, store, cfg)
	return err
}

// RunGame runs a game until the player leaves or quits and returns the final
// model, so callers can tell BackToMenu from IsQuitting.
func RunGame(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	model := NewModel(game, store, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		model = m
	}
	return model, err
}
