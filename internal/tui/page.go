package tui

import tea "github.com/charmbracelet/bubbletea"

// Page represents a top-level screen in the TUI (shell, profile).
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// Enterable is implemented by pages that take parameters when navigated to.
// App calls Enter instead of Init for them.
type Enterable interface {
	Enter(params any) tea.Cmd
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
	Params any
}

// Page IDs.
const (
	PageShell   = "shell"
	PageProfile = "profile"
)

func navigateTo(pageID string) *PageNav {
	return &PageNav{PageID: pageID}
}
