package tui

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/dashshell/internal/mockapi"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

// fakeFetcher resolves instantly with the canned payloads, or with err.
type fakeFetcher struct {
	mu    sync.Mutex
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, key string) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	if f.err != nil {
		return nil, f.err
	}
	return mockapi.PayloadFor(key), nil
}

func (f *fakeFetcher) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// countingHello records GET /hello calls.
type countingHello struct {
	mu    sync.Mutex
	calls int
}

func (h *countingHello) Get(_ context.Context) (json.RawMessage, error) {
	h.mu.Lock()
	h.calls++
	h.mu.Unlock()
	return json.RawMessage(`{"message":"Hello, world!"}`), nil
}

func (h *countingHello) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func newTestShell(t *testing.T, mutate ...func(*Options)) (*ShellModel, *fakeFetcher) {
	t.Helper()
	f := &fakeFetcher{}
	opts := Options{
		Fetcher:     f,
		Hello:       &countingHello{},
		SidebarOpen: true,
		Rand:        rand.New(rand.NewPCG(1, 2)),
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	m := NewShellModel(opts)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, f
}

// collect runs cmd and any batched commands, returning the messages they
// produce. Spinner ticks are dropped so tests never wait on the ticker.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// drain feeds every message produced by cmd back into m until nothing is
// left. Quit messages are returned rather than fed.
func drain(m tea.Model, cmd tea.Cmd) []tea.Msg {
	var leftovers []tea.Msg
	for depth := 0; cmd != nil && depth < 20; depth++ {
		var next []tea.Cmd
		for _, msg := range collect(cmd) {
			if _, ok := msg.(tea.QuitMsg); ok {
				leftovers = append(leftovers, msg)
				continue
			}
			_, c := m.Update(msg)
			next = append(next, c)
		}
		cmd = tea.Batch(next...)
	}
	return leftovers
}

func press(m tea.Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmds []tea.Cmd
	for _, k := range keys {
		_, cmd := m.Update(k)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func rowIndex(m *ShellModel, id string) int {
	for i, r := range m.sidebarRows() {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// selectRow moves the sidebar cursor to id and presses enter.
func selectRow(t *testing.T, m *ShellModel, id string) tea.Cmd {
	t.Helper()
	idx := rowIndex(m, id)
	if idx < 0 {
		t.Fatalf("row %q not visible", id)
	}
	m.activeSection = SectionSidebar
	m.sidebarCursor = idx
	return press(m, keyEnter)
}

func mustLookup(t *testing.T, m *ShellModel, id string) nav.Descriptor {
	t.Helper()
	d, ok := m.router.Lookup(id)
	if !ok {
		t.Fatalf("no section %q", id)
	}
	return d
}
