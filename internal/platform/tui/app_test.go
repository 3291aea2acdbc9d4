package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// fakeStore keeps results in memory.
type fakeStore struct {
	saved   []storage.Result
	saveErr error
}

func (f *fakeStore) SaveResult(r storage.Result) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.saved = append(f.saved, r)
	return int64(len(f.saved)), nil
}

func (f *fakeStore) BestMoves(set storage.Setting) (int, error) {
	best := 0
	for _, r := range f.saved {
		if r.Poles == set.Poles && r.Disks == set.Disks && (best == 0 || r.Moves < best) {
			best = r.Moves
		}
	}
	return best, nil
}

func (f *fakeStore) BestResults(set storage.Setting, limit int) ([]storage.Result, error) {
	var out []storage.Result
	for _, r := range f.saved {
		if r.Poles == set.Poles && r.Disks == set.Disks && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) Settings() ([]storage.SettingStats, error) {
	var out []storage.SettingStats
	for _, r := range f.saved {
		set := storage.Setting{Poles: r.Poles, Disks: r.Disks}
		found := false
		for i := range out {
			if out[i].Setting == set {
				out[i].Solved++
				found = true
			}
		}
		if !found {
			out = append(out, storage.SettingStats{Setting: set, Solved: 1, BestMoves: r.Moves})
		}
	}
	return out, nil
}

func newTestApp(store ResultStore, now func() time.Time) App {
	return NewApp(Options{
		Config:  config.Default(),
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30},
		Store:   store,
		Now:     now,
	})
}

func press(t *testing.T, a App, msgs ...tea.KeyMsg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		var ok bool
		a, ok = m.(App)
		if !ok {
			t.Fatalf("Update returned %T, expected App", m)
		}
	}
	return a
}

// solveKeys returns the key presses that play the optimal solution.
func solveKeys(poles, disks int) []tea.KeyMsg {
	var keys []tea.KeyMsg
	cursor := 0
	moveTo := func(target int) {
		for ; cursor < target; cursor++ {
			keys = append(keys, keyType(tea.KeyRight))
		}
		for ; cursor > target; cursor-- {
			keys = append(keys, keyType(tea.KeyLeft))
		}
	}
	for _, m := range hanoi.Solve(poles, disks) {
		moveTo(m.From)
		keys = append(keys, keyType(tea.KeyUp))
		moveTo(m.To)
		keys = append(keys, keyType(tea.KeyDown))
	}
	return keys
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewAppStartsOnMenu(t *testing.T) {
	a := newTestApp(nil, nil)

	if a.Current() != ScreenMenu {
		t.Errorf("Current() = %v, expected menu", a.Current())
	}
	if got := a.Settings(); got != (core.Settings{Poles: 3, Disks: 3}) {
		t.Errorf("Settings() = %+v, expected 3 poles and 3 disks", got)
	}
	if a.Board() != nil {
		t.Error("No board should exist before a game starts")
	}
	if !a.Fullscreen() {
		t.Error("Default config should start fullscreen")
	}
	if a.Init() != nil {
		t.Error("Init should not schedule any command")
	}
}

func TestNewAppClampsSettings(t *testing.T) {
	a := NewApp(Options{
		Config:   config.Default(),
		Settings: core.Settings{Poles: 50, Disks: 0},
	})
	if got := a.Settings(); got != (core.Settings{Poles: 7, Disks: 1}) {
		t.Errorf("Settings() = %+v, expected clamped 7/1", got)
	}
}

func TestMenuChangesSettings(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want core.Settings
	}{
		{"poles up", []tea.KeyMsg{keyType(tea.KeyUp)}, core.Settings{Poles: 4, Disks: 3}},
		{"poles down at min", []tea.KeyMsg{keyType(tea.KeyDown)}, core.Settings{Poles: 3, Disks: 3}},
		{"disks up", []tea.KeyMsg{keyType(tea.KeyRight), keyRune('k'), keyRune('k')}, core.Settings{Poles: 3, Disks: 5}},
		{"disks down", []tea.KeyMsg{keyType(tea.KeyRight), keyRune('j'), keyRune('j')}, core.Settings{Poles: 3, Disks: 1}},
		{"back to poles", []tea.KeyMsg{keyType(tea.KeyRight), keyType(tea.KeyLeft), keyType(tea.KeyUp)}, core.Settings{Poles: 4, Disks: 3}},
		{"poles capped", []tea.KeyMsg{
			keyType(tea.KeyUp), keyType(tea.KeyUp), keyType(tea.KeyUp),
			keyType(tea.KeyUp), keyType(tea.KeyUp), keyType(tea.KeyUp),
		}, core.Settings{Poles: 7, Disks: 3}},
		{"ignored keys", []tea.KeyMsg{keyRune('r'), keyType(tea.KeyEsc), keyRune('x')}, core.Settings{Poles: 3, Disks: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := press(t, newTestApp(nil, nil), tt.keys...)
			if got := a.Settings(); got != tt.want {
				t.Errorf("Settings() = %+v, expected %+v", got, tt.want)
			}
			if a.Current() != ScreenMenu {
				t.Errorf("Current() = %v, expected menu", a.Current())
			}
		})
	}
}

func TestConfirmStartsGame(t *testing.T) {
	a := press(t, newTestApp(nil, nil),
		keyType(tea.KeyUp),    // 4 poles
		keyType(tea.KeyRight), // select disks
		keyType(tea.KeyUp),    // 4 disks
		keyType(tea.KeyEnter),
	)

	if a.Current() != ScreenPlay {
		t.Fatalf("Current() = %v, expected play", a.Current())
	}
	b := a.Board()
	if b == nil {
		t.Fatal("Board should exist after confirm")
	}
	if b.PoleCount() != 4 || b.DiskCount() != 4 {
		t.Errorf("Board is %dx%d, expected 4 poles and 4 disks", b.PoleCount(), b.DiskCount())
	}
	if got := b.Pole(0); len(got) != 4 || got[0] != 4 || got[3] != 1 {
		t.Errorf("Pole 0 = %v, expected [4 3 2 1]", got)
	}
}

func TestPlayMutatesBoard(t *testing.T) {
	a := press(t, newTestApp(nil, nil), keyType(tea.KeyEnter))

	a = press(t, a, keyType(tea.KeyUp), keyType(tea.KeyRight), keyType(tea.KeyRight), keyType(tea.KeyDown))
	b := a.Board()
	if got := b.Pole(2); len(got) != 1 || got[0] != 1 {
		t.Errorf("Pole 2 = %v, expected [1]", got)
	}
	if b.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", b.Moves())
	}

	// Larger disk onto the smaller one is refused and stays held
	a = press(t, a, keyType(tea.KeyLeft), keyType(tea.KeyLeft), keyType(tea.KeyUp),
		keyType(tea.KeyRight), keyType(tea.KeyRight), keyType(tea.KeyDown))
	if held, ok := b.Held(); !ok || held != 2 {
		t.Errorf("Held() = %d, %v; expected disk 2 still held", held, ok)
	}
	if b.Moves() != 1 {
		t.Errorf("Rejected drop should not count, Moves() = %d", b.Moves())
	}

	a = press(t, a, keyRune('r'))
	if _, ok := b.Held(); ok {
		t.Error("Reset should clear the held disk")
	}
	if b.Moves() != 0 || len(b.Pole(0)) != 3 {
		t.Errorf("Reset should restore the start, moves=%d pole0=%v", b.Moves(), b.Pole(0))
	}
	if a.Current() != ScreenPlay {
		t.Errorf("Current() = %v, expected play", a.Current())
	}
}

func TestBackAbandonsGame(t *testing.T) {
	a := press(t, newTestApp(nil, nil), keyType(tea.KeyEnter), keyType(tea.KeyUp), keyType(tea.KeyEsc))

	if a.Current() != ScreenMenu {
		t.Errorf("Current() = %v, expected menu", a.Current())
	}
	if a.Board() != nil {
		t.Error("Board should be dropped when returning to the menu")
	}
}

func TestSolvingShowsWinAndSavesResult(t *testing.T) {
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store := &fakeStore{}
	a := newTestApp(store, func() time.Time { return clock })

	a = press(t, a, keyType(tea.KeyEnter))
	clock = clock.Add(42 * time.Second)
	a = press(t, a, solveKeys(3, 3)...)

	if a.Current() != ScreenWin {
		t.Fatalf("Current() = %v, expected win", a.Current())
	}
	if len(store.saved) != 1 {
		t.Fatalf("Expected 1 saved result, got %d", len(store.saved))
	}
	r := store.saved[0]
	if r.Poles != 3 || r.Disks != 3 || r.Moves != 7 || r.Optimal != 7 {
		t.Errorf("Unexpected result %+v", r)
	}
	if r.Duration != 42*time.Second {
		t.Errorf("Duration = %v, expected 42s", r.Duration)
	}

	view := a.View()
	for _, want := range []string{"You solved the puzzle! :D", "solved in 7 moves", "Optimal: 7 | Best: 7"} {
		if !strings.Contains(view, want) {
			t.Errorf("Win view missing %q", want)
		}
	}
}

func TestWinAnyKeyReturnsToMenu(t *testing.T) {
	keys := []tea.KeyMsg{keyRune('x'), keyType(tea.KeyEnter), keyType(tea.KeyLeft), keyType(tea.KeyEsc)}

	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			a := press(t, newTestApp(nil, nil), keyType(tea.KeyEnter))
			a = press(t, a, solveKeys(3, 3)...)
			if a.Current() != ScreenWin {
				t.Fatalf("Current() = %v, expected win", a.Current())
			}

			a = press(t, a, k)
			if a.Current() != ScreenMenu {
				t.Errorf("Current() = %v after %q, expected menu", a.Current(), k.String())
			}
		})
	}
}

func TestWinSurvivesStoreFailure(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	a := press(t, newTestApp(store, nil), keyType(tea.KeyEnter))
	a = press(t, a, solveKeys(3, 3)...)

	if a.Current() != ScreenWin {
		t.Errorf("Current() = %v, expected win even when saving fails", a.Current())
	}
}

func TestQuitFromEveryScreen(t *testing.T) {
	setups := map[string][]tea.KeyMsg{
		"menu":   nil,
		"play":   {keyType(tea.KeyEnter)},
		"scores": {keyType(tea.KeyTab)},
		"win":    append([]tea.KeyMsg{keyType(tea.KeyEnter)}, solveKeys(3, 3)...),
	}

	for name, keys := range setups {
		t.Run(name, func(t *testing.T) {
			a := press(t, newTestApp(&fakeStore{}, nil), keys...)
			m, cmd := a.Update(keyRune('q'))
			if !isQuit(cmd) {
				t.Error("q should quit")
			}
			if v := m.View(); v != "" {
				t.Errorf("View after quit should be empty, got %q", v)
			}
		})
	}
}

func TestToggleFullscreen(t *testing.T) {
	a := press(t, newTestApp(nil, nil), keyType(tea.KeyEnter), keyType(tea.KeyUp))
	before := a.Board().Snapshot()

	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	a = m.(App)
	if a.Fullscreen() {
		t.Error("alt+enter should leave fullscreen")
	}
	if cmd == nil {
		t.Error("Toggling should return a screen command")
	}
	if a.Current() != ScreenPlay {
		t.Errorf("Toggling should not change screens, got %v", a.Current())
	}
	after := a.Board().Snapshot()
	if after.Cursor != before.Cursor || after.Held != before.Held || after.Moves != before.Moves {
		t.Error("Toggling should not touch the board")
	}

	a = press(t, a, keyType(tea.KeyF11))
	if !a.Fullscreen() {
		t.Error("f11 should enter fullscreen again")
	}
}

func TestToggleFullscreenKeepsWinScreen(t *testing.T) {
	a := press(t, newTestApp(nil, nil), keyType(tea.KeyEnter))
	a = press(t, a, solveKeys(3, 3)...)
	a = press(t, a, keyType(tea.KeyF11))

	if a.Current() != ScreenWin {
		t.Errorf("Current() = %v, expected win after fullscreen toggle", a.Current())
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	a := press(t, newTestApp(nil, nil), keyType(tea.KeyEnter), keyType(tea.KeyUp))
	b := a.Board()

	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	if a.Board() != b {
		t.Error("Resize should keep the same board")
	}
	if held, ok := b.Held(); !ok || held != 1 {
		t.Errorf("Held() = %d, %v; expected disk 1", held, ok)
	}
	if view := a.View(); !strings.Contains(view, "Moves: 0") {
		t.Error("Play view should render after resize")
	}
}

func TestScoresScreen(t *testing.T) {
	store := &fakeStore{}
	a := press(t, newTestApp(store, nil), keyType(tea.KeyEnter))
	a = press(t, a, solveKeys(3, 3)...)
	a = press(t, a, keyRune('x'), keyType(tea.KeyTab))

	if a.Current() != ScreenScores {
		t.Fatalf("Current() = %v, expected scores", a.Current())
	}
	view := a.View()
	if !strings.Contains(view, "BEST RESULTS - 3 poles / 3 disks") {
		t.Errorf("Scores view should name the setting, got:\n%s", view)
	}

	a = press(t, a, keyType(tea.KeyEsc))
	if a.Current() != ScreenMenu {
		t.Errorf("Current() = %v, expected menu after esc", a.Current())
	}
}

func TestScoresBackReturnsToMenu(t *testing.T) {
	a := press(t, newTestApp(&fakeStore{}, nil), keyType(tea.KeyTab))

	m, cmd := a.Update(keyRune('b'))
	a = m.(App)
	if a.Current() != ScreenMenu {
		t.Errorf("Current() = %v, expected menu after b", a.Current())
	}
	if isQuit(cmd) {
		t.Error("Leaving the scoreboard must not quit the program")
	}

	a = press(t, a, keyType(tea.KeyTab))
	if a.Current() != ScreenScores || a.View() == "" {
		t.Error("Scoreboard should open again after going back")
	}
}

func TestScoresWithoutStore(t *testing.T) {
	a := press(t, newTestApp(nil, nil), keyType(tea.KeyTab))
	if !strings.Contains(a.View(), "Results are not being recorded") {
		t.Error("Scores view should explain that no store is configured")
	}
}

func TestMenuView(t *testing.T) {
	a := newTestApp(nil, nil)
	view := a.View()
	for _, want := range []string{"Tower Of Hanoi", "Press Enter to play!", "Best possible: 7 moves"} {
		if !strings.Contains(view, want) {
			t.Errorf("Menu view missing %q", want)
		}
	}
}
