package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// ScreenID identifies what the App is currently showing.
type ScreenID int

const (
	ScreenMenu ScreenID = iota
	ScreenPlay
	ScreenWin
	ScreenScores
)

func (s ScreenID) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlay:
		return "play"
	case ScreenWin:
		return "win"
	case ScreenScores:
		return "scores"
	}
	return "unknown"
}

// ResultStore persists solved puzzles. *storage.Store implements it.
type ResultStore interface {
	SaveResult(r storage.Result) (int64, error)
	BestMoves(set storage.Setting) (int, error)
	BestResults(set storage.Setting, limit int) ([]storage.Result, error)
	Settings() ([]storage.SettingStats, error)
}

// Options configures an App.
type Options struct {
	Config   config.Config
	Runtime  core.RuntimeConfig
	Store    ResultStore        // nil disables result history
	Logger   *log.Logger        // nil discards log output
	Renderer *lipgloss.Renderer // nil uses the default renderer
	Settings core.Settings      // zero value uses the configured defaults
	Player   string
	Now      func() time.Time // nil uses time.Now
}

// App is the Bubble Tea model driving the whole game: the settings menu,
// the board, the win screen and the scoreboard.
// It is input driven: every key is classified into at most one action,
// which causes at most one board mutation and one screen change.
type App struct {
	keys      KeyMap
	cfg       config.Config
	style     hanoi.Style
	palette   Palette
	renderer  *lipgloss.Renderer
	store     ResultStore
	logger    *log.Logger
	player    string
	now       func() time.Time
	screen    *core.Screen
	current   ScreenID
	settings  core.Settings
	selected  core.Setting
	board     *hanoi.Board
	started   time.Time
	win       hanoi.WinInfo
	scores    ScoreboardModel
	altScreen bool
	quitting  bool
}

// NewApp creates the App on the menu screen.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt = core.DefaultConfig()
	}

	settings := opts.Settings
	if settings == (core.Settings{}) {
		settings = opts.Config.Settings.Defaults()
	}

	keys := DefaultKeyMap()
	style := opts.Config.Style()
	style.Footer = footerHelp(keys)

	return App{
		keys:      keys,
		cfg:       opts.Config,
		style:     style,
		palette:   NewPalette(opts.Renderer),
		renderer:  opts.Renderer,
		store:     opts.Store,
		logger:    logger,
		player:    opts.Player,
		now:       now,
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		current:   ScreenMenu,
		settings:  settings.Clamp(opts.Config.Settings),
		altScreen: opts.Config.Display.Fullscreen,
	}
}

// footerHelp renders the play bindings as plain text for the screen buffer.
func footerHelp(keys KeyMap) string {
	h := help.New()
	h.Styles = help.Styles{}
	h.ShortSeparator = " | "
	return h.ShortHelpView(keys.ShortHelp())
}

// Init has nothing to start: there are no ticks.
func (a App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.screen.Resize(msg.Width, msg.Height)
		if a.current == ScreenScores {
			a.scores = a.scores.resize(msg.Width, msg.Height)
		}
		return a, nil
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := a.keys.Classify(msg)

	if action.IsGlobal() {
		if action == core.ActionQuit {
			a.quitting = true
			return a, tea.Quit
		}
		return a.toggleFullscreen()
	}

	switch a.current {
	case ScreenMenu:
		return a.updateMenu(action)
	case ScreenPlay:
		return a.updatePlay(action)
	case ScreenWin:
		// Any other key leaves the win screen
		a.current = ScreenMenu
		return a, nil
	case ScreenScores:
		m, cmd := a.scores.Update(msg)
		a.scores = m.(ScoreboardModel)
		// The scoreboard quits its own program on back; here it only
		// returns to the menu.
		if a.scores.IsGoingBack() {
			a.current = ScreenMenu
			return a, nil
		}
		return a, cmd
	}

	return a, nil
}

func (a App) toggleFullscreen() (tea.Model, tea.Cmd) {
	a.altScreen = !a.altScreen
	a.logger.Debug("fullscreen toggled", "on", a.altScreen)
	if a.altScreen {
		return a, tea.EnterAltScreen
	}
	return a, tea.ExitAltScreen
}

func (a App) updateMenu(action core.Action) (tea.Model, tea.Cmd) {
	bounds := a.cfg.Settings

	switch action {
	case core.ActionMoveLeft:
		a.selected = core.SettingPoles
	case core.ActionMoveRight:
		a.selected = core.SettingDisks
	case core.ActionGrab:
		a.settings = a.settings.Step(a.selected, 1, bounds)
	case core.ActionDrop:
		a.settings = a.settings.Step(a.selected, -1, bounds)
	case core.ActionConfirm:
		a.startGame()
	case core.ActionScores:
		set := storage.Setting{Poles: a.settings.Poles, Disks: a.settings.Disks}
		a.scores = NewScoreboardModel(a.store, a.renderer, set, a.screen.Width(), a.screen.Height())
		a.current = ScreenScores
	}

	return a, nil
}

func (a *App) startGame() {
	s := a.settings.Clamp(a.cfg.Settings)
	a.board = hanoi.NewBoard(s.Poles, s.Disks)
	a.started = a.now()
	a.current = ScreenPlay
	a.logger.Debug("board created", "poles", s.Poles, "disks", s.Disks, "snapshot", a.board.Snapshot())
}

func (a App) updatePlay(action core.Action) (tea.Model, tea.Cmd) {
	b := a.board

	if action == core.ActionBack {
		a.logger.Debug("board abandoned", "moves", b.Moves())
		a.board = nil
		a.current = ScreenMenu
		return a, nil
	}
	if !action.IsBoardAction() {
		return a, nil
	}

	switch action {
	case core.ActionMoveLeft:
		b.MoveCursor(-1)
	case core.ActionMoveRight:
		b.MoveCursor(1)
	case core.ActionGrab:
		if !b.Grab() {
			a.logger.Debug("grab ignored", "pole", b.Cursor())
		}
	case core.ActionDrop:
		if !b.Drop() {
			a.logger.Debug("drop ignored", "pole", b.Cursor())
		}
	case core.ActionReset:
		b.Reset()
		a.started = a.now()
	}

	if b.IsWon() {
		a.finishGame()
	}
	return a, nil
}

// finishGame moves to the win screen and records the result.
func (a *App) finishGame() {
	b := a.board
	elapsed := a.now().Sub(a.started)
	set := storage.Setting{Poles: b.PoleCount(), Disks: b.DiskCount()}

	a.win = hanoi.WinInfo{
		Moves:   b.Moves(),
		Optimal: hanoi.OptimalMoves(set.Poles, set.Disks),
	}

	if a.store != nil {
		_, err := a.store.SaveResult(storage.Result{
			Player:   a.player,
			Poles:    set.Poles,
			Disks:    set.Disks,
			Moves:    a.win.Moves,
			Optimal:  a.win.Optimal,
			Duration: elapsed,
		})
		if err != nil {
			a.logger.Warn("could not save result", "error", err)
		}
		if best, err := a.store.BestMoves(set); err != nil {
			a.logger.Warn("could not load best result", "error", err)
		} else {
			a.win.Best = best
		}
	}

	a.logger.Info("puzzle solved",
		"poles", set.Poles,
		"disks", set.Disks,
		"moves", a.win.Moves,
		"optimal", a.win.Optimal,
		"duration", elapsed.Round(time.Millisecond),
	)
	a.current = ScreenWin
}

// View renders the current state to a string for display.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.current {
	case ScreenPlay:
		hanoi.RenderPlay(a.screen, a.board, a.style)
	case ScreenWin:
		hanoi.RenderWin(a.screen, a.board, a.win, a.style)
	case ScreenScores:
		return a.scores.View()
	default:
		hanoi.RenderMenu(a.screen, a.settings, a.selected, a.style)
	}

	return a.palette.Render(a.screen)
}

// Current returns the screen being shown.
func (a App) Current() ScreenID {
	return a.current
}

// Board returns the board in play, or nil outside a game.
func (a App) Board() *hanoi.Board {
	return a.board
}

// Settings returns the menu selection.
func (a App) Settings() core.Settings {
	return a.settings
}

// Fullscreen reports whether the alternate screen is active.
func (a App) Fullscreen() bool {
	return a.altScreen
}

// ProgramOptions returns the tea options matching the App's initial state.
func (a App) ProgramOptions() []tea.ProgramOption {
	if a.altScreen {
		return []tea.ProgramOption{tea.WithAltScreen()}
	}
	return nil
}

// Run starts a local Bubble Tea program.
func Run(opts Options) error {
	app := NewApp(opts)
	_, err := tea.NewProgram(app, app.ProgramOptions()...).Run()
	return err
}
