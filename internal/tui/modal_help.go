package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModal lists the key bindings.
type HelpModal struct {
	ctx      ModalContext
	keys     KeyMap
	viewport viewport.Model
}

func NewHelpModal(ctx ModalContext, keys KeyMap) *HelpModal {
	return &HelpModal{
		ctx:      ctx,
		keys:     keys,
		viewport: viewport.New(80, 20),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) SetTheme(t Theme) { h.ctx.Theme = t }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	return scrollViewport(h.ctx, &h.viewport, msg, "?", "h")
}

func (h *HelpModal) View(width, height int) string {
	return renderScrollModal(h.ctx, &h.viewport, "Help", h.content(),
		modalStatus("up/down/Wheel: Scroll", "PgUp/PgDn: Page", "?/h: Toggle Help", "ESC: Close"),
		width, height)
}

func (h *HelpModal) content() string {
	var b strings.Builder
	b.WriteString("My Application\n\n")
	for _, group := range h.keys.helpGroups() {
		b.WriteString(group.Title + ":\n")
		for _, binding := range group.Bindings {
			help := binding.Help()
			fmt.Fprintf(&b, "  %-14s - %s\n", help.Key, help.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString("MOUSE:\n")
	b.WriteString("  Click          - Select a sidebar item, toggle the sidebar, theme or account menu\n")
	b.WriteString("  Wheel          - Move the sidebar cursor\n")
	return b.String()
}
