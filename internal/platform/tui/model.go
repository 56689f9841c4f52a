package tui

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// storeTimeout bounds every persistence call so a slow disk never stalls a tick.
const storeTimeout = 2 * time.Second

// helpBarHeight is the number of terminal rows reserved below the game screen.
const helpBarHeight = 1

// Model is the Bubble Tea model for a puzzle session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	keys       GameKeyMap
	quitting   bool
}

// NewModel creates a new Bubble Tea model around the given game.
// If the store holds a saved session, it is resumed; otherwise the
// game starts fresh.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameCfg := cfg
	gameCfg.ScreenH -= helpBarHeight
	g.Reset(gameCfg)
	if store != nil {
		restoreGame(g, store)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpBarHeight),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		keys:       DefaultGameKeyMap(),
	}
}

// restoreGame loads a saved session into the game, best effort.
// A missing or corrupt save leaves the fresh game untouched.
func restoreGame(g *game.Game, store *storage.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, err := store.LoadGame(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn("could not load saved game", "err", err)
		}
		return
	}

	var saved game.SavedState
	if err := json.Unmarshal(raw, &saved); err != nil {
		log.Warn("corrupt saved game, starting fresh", "err", err)
		return
	}
	if err := g.LoadState(saved); err != nil {
		log.Warn("invalid saved game, starting fresh", "err", err)
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		// Quitting mid-slide completes the move so the saved session is
		// settled; if that final move ended the game, record it now.
		if m.game.Settle() {
			m.gameState = m.game.State()
			m.recordScore()
		}
		m.saveGame()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The session survives
// a resize; only the screen buffer and the size check are updated.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpBarHeight)
	m.game.SetScreenSize(msg.Width, msg.Height-helpBarHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Persist after every committed move so a crash loses at most
	// the in-flight move.
	if result.Committed {
		m.saveGame()
	}

	// Record the final score exactly when the terminal transition fires.
	// A resumed game-over session never re-reports it, and undoing out of
	// a game over naturally re-arms it for the next ending.
	if result.Ended {
		m.recordScore()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveGame persists the current session, best effort.
func (m *Model) saveGame() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, err := json.Marshal(m.game.Save())
	if err != nil {
		log.Warn("could not encode game state", "err", err)
		return
	}
	if err := m.store.SaveGame(ctx, raw); err != nil {
		log.Warn("could not save game", "err", err)
	}
}

// recordScore appends the finished game to the score history and
// updates the best score, best effort.
func (m *Model) recordScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := m.store.AppendScore(ctx, m.gameState.Score); err != nil {
		log.Warn("could not record score", "err", err)
	}
	if _, err := m.store.RecordBest(ctx, m.gameState.Score); err != nil {
		log.Warn("could not update best score", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
