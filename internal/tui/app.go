package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// App is the top-level Bubble Tea model that routes between pages.
type App struct {
	pages      map[string]Page
	activePage string
	width      int
	height     int
	shell      *ShellModel
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	var firstID string
	var shell *ShellModel
	for i, p := range pages {
		pageMap[p.ID()] = p
		if i == 0 {
			firstID = p.ID()
		}
		if sp, ok := p.(*ShellPage); ok {
			shell = sp.Model
		}
	}
	return &App{
		pages:      pageMap,
		activePage: firstID,
		shell:      shell,
	}
}

// ActivePage returns the ID of the page being shown.
func (a *App) ActivePage() string { return a.activePage }

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Every page tracks dimensions, not just the active one.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
		var cmds []tea.Cmd
		for _, p := range a.pages {
			cmd, _ := p.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	}

	// Fetch results, spinner ticks and shell actions belong to the shell
	// even while another page is showing.
	if a.activePage != PageShell && isShellMsg(msg) {
		if sp, ok := a.pages[PageShell]; ok {
			cmd, nav := sp.Update(msg)
			return a, tea.Batch(cmd, a.switchTo(nav))
		}
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	return a, tea.Batch(cmd, a.switchTo(nav))
}

// switchTo activates the page nav names and returns its enter command.
func (a *App) switchTo(nav *PageNav) tea.Cmd {
	if nav == nil {
		return nil
	}
	next, exists := a.pages[nav.PageID]
	if !exists {
		log.Printf("tui: unknown page %q", nav.PageID)
		return nil
	}
	a.activePage = nav.PageID
	if e, ok := next.(Enterable); ok {
		return e.Enter(nav.Params)
	}
	return next.Init()
}

// isShellMsg reports whether msg is background work addressed to the shell.
func isShellMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case ownedMsg, spinner.TickMsg, ReportErrorMsg, ActionMsg:
		return true
	}
	return false
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}

// Reset remounts the shell's content panel. The error boundary calls it on
// Try Again.
func (a *App) Reset() tea.Cmd {
	if a.shell == nil {
		return nil
	}
	if _, ok := a.pages[PageShell]; ok {
		a.activePage = PageShell
	}
	return a.shell.Reset()
}
