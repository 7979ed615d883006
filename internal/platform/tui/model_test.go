package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blackbox/internal/core"
	"github.com/vovakirdan/blackbox/internal/storage"
)

// stubGame ends the round on Confirm; won controls whether that counts as solved.
type stubGame struct {
	won    bool
	over   bool
	resets int
	seed   int64
	w, h   int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) error {
	g.resets++
	g.over = false
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
	g.seed = cfg.Seed
	return nil
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionConfirm) {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	score := 0
	if g.over && g.won {
		score = 21
	}
	return core.GameState{Score: score, GameOver: g.over, Won: g.over && g.won}
}

func (g *stubGame) Round() core.RoundSummary {
	return core.RoundSummary{GameID: g.ID(), Atoms: 4, Rays: 3, Score: g.State().Score, Solved: g.won}
}

func (g *stubGame) Resize(w, h int) { g.w, g.h = w, h }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewModelReservesHelpRow(t *testing.T) {
	g := &stubGame{}
	newTestModel(t, g, nil)

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.h != 23 {
		t.Errorf("game height = %d, want 23", g.h)
	}
}

func TestSolvedRoundIsSavedOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, &stubGame{won: true}, store)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, TickMsg{})
	m = send(m, TickMsg{})

	if !m.State().GameOver {
		t.Fatal("round should be over")
	}
	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 21 {
		t.Errorf("scores = %+v, want one entry of 21", scores)
	}
	rounds, err := store.RecentRounds("stub", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Errorf("got %d rounds, want 1", len(rounds))
	}
}

func TestAbandonedRoundSkipsHighScores(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, &stubGame{won: false}, store)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	send(m, TickMsg{})

	if _, ok, _ := store.HighScore("stub"); ok {
		t.Error("unsolved round should not enter the high-score table")
	}
	stats, err := store.GetGameStats("stub")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RoundsCount != 1 || stats.SolvedCount != 0 {
		t.Errorf("stats = %+v, want 1 round, 0 solved", stats)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, TickMsg{})
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = send(m, TickMsg{})

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("restart should start a fresh round")
	}
}

func TestRestartWithChosenSeedIsReproducible(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil) // seed 1

	var seeds []int64
	for range 2 {
		m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
		m = send(m, TickMsg{})
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
		m = send(m, TickMsg{})
		seeds = append(seeds, g.seed)
	}

	if seeds[0] != 2 || seeds[1] != 3 {
		t.Errorf("restart seeds = %v, want [2 3]", seeds)
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("resize restarted the round: resets = %d", g.resets)
	}
	if g.w != 100 || g.h != 39 {
		t.Errorf("game size = %dx%d, want 100x39", g.w, g.h)
	}
}

func TestBackBehaviour(t *testing.T) {
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m := newTestModel(t, &stubGame{}, nil)
	next, cmd := m.Update(esc)
	if !next.(Model).BackToMenu() || cmd == nil {
		t.Error("standalone model should quit the program on back")
	}

	m.embedded = true
	next, cmd = m.Update(esc)
	if !next.(Model).BackToMenu() || cmd != nil {
		t.Error("embedded model should only flag back to menu")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &stubGame{}, nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
