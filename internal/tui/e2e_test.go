package tui

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/tinytelemetry/dashshell/internal/mockapi"
)

func newProgramModel(t *testing.T) (*Boundary, *ShellModel) {
	t.Helper()
	fetcher := mockapi.New(mockapi.Config{MinDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond},
		mockapi.WithRand(rand.New(rand.NewPCG(3, 4))))
	shell := NewShellModel(Options{
		Fetcher:     fetcher,
		Hello:       &countingHello{},
		SidebarOpen: true,
		Rand:        rand.New(rand.NewPCG(5, 6)),
	})
	app := NewApp(NewShellPage(shell), NewProfilePage(shell.Theme))
	return NewBoundary(app, shell.Theme), shell
}

func TestProgram_LoadNavigateQuit(t *testing.T) {
	b, shell := newProgramModel(t)
	tm := teatest.NewTestModel(t, b, teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Total Users"))
	}, teatest.WithDuration(3*time.Second))

	// Expand Users and open its list.
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Bob Johnson"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	if _, ok := final.(*Boundary); !ok {
		t.Fatalf("final model = %T", final)
	}

	s := shell.State()
	if s.ActiveID != "users.list" {
		t.Errorf("active = %q, want users.list", s.ActiveID)
	}
	if !s.Expanded.Has("users") {
		t.Error("users not expanded")
	}
	if s.Theme != "dark" {
		t.Errorf("theme = %q, want dark", s.Theme)
	}
}

func TestProgram_HelpAndAccount(t *testing.T) {
	b, _ := newProgramModel(t)
	tm := teatest.NewTestModel(t, b, teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte(AppTitle))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("toggle sidebar"))
	}, teatest.WithDuration(3*time.Second))
	tm.Send(tea.KeyMsg{Type: tea.KeyEscape})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("john@example.com"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEscape})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	app := final.(*Boundary).Child().(*App)
	if app.ActivePage() != PageShell {
		t.Fatalf("page = %q, want shell", app.ActivePage())
	}
}
