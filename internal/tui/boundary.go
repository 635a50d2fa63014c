package tui

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FallbackMessage is shown in place of a view that panicked while rendering.
const FallbackMessage = "Something went wrong. Please refresh the page."

// Resetter is implemented by models that can remount their content after a
// render fault.
type Resetter interface {
	Reset() tea.Cmd
}

// Boundary wraps a model and isolates panics raised while rendering it. A
// fault flips the boundary into its fallback view until Try Again is
// chosen. Panics inside commands run off the event loop are not caught.
type Boundary struct {
	child  tea.Model
	keys   KeyMap
	theme  func() Theme
	fault  any
	width  int
	height int
}

// NewBoundary wraps child. theme supplies the palette for the fallback view
// and may be nil.
func NewBoundary(child tea.Model, theme func() Theme) *Boundary {
	if theme == nil {
		theme = LightTheme
	}
	return &Boundary{child: child, keys: DefaultKeyMap(), theme: theme}
}

// Faulted reports whether the fallback view is showing.
func (b *Boundary) Faulted() bool { return b.fault != nil }

// Child returns the wrapped model.
func (b *Boundary) Child() tea.Model { return b.child }

func (b *Boundary) Init() tea.Cmd {
	return b.child.Init()
}

func (b *Boundary) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		b.width = wsm.Width
		b.height = wsm.Height
	}

	if b.fault == nil {
		var cmd tea.Cmd
		b.child, cmd = b.child.Update(msg)
		return b, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		b.child, cmd = b.child.Update(msg)
		return b, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.ForceQuit), key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.Retry), msg.String() == "enter":
			return b, b.Reset()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return b, b.Reset()
		}
	}
	return b, nil
}

// Reset clears the fault and asks the child to remount.
func (b *Boundary) Reset() tea.Cmd {
	log.Printf("tui: error boundary reset")
	b.fault = nil
	if r, ok := b.child.(Resetter); ok {
		return r.Reset()
	}
	return nil
}

func (b *Boundary) View() (out string) {
	if b.fault != nil {
		return b.renderFallback()
	}
	defer func() {
		if r := recover(); r != nil {
			b.fault = r
			log.Printf("tui: render fault: %v\n%s", r, debug.Stack())
			out = b.renderFallback()
		}
	}()
	return b.child.View()
}

func (b *Boundary) renderFallback() string {
	t := b.theme()
	msg := lipgloss.NewStyle().Foreground(t.Error).Bold(true).Render(FallbackMessage)
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Foreground(t.Primary).
		Padding(0, 2).
		Render("Try Again")
	hint := t.muted().Render("r/enter: try again • q: quit")
	detail := t.muted().Faint(true).Render(fmt.Sprintf("%v", b.fault))

	block := lipgloss.JoinVertical(lipgloss.Center, msg, "", button, hint, "", detail)
	if b.width <= 0 || b.height <= 0 {
		return block
	}
	return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, block)
}
