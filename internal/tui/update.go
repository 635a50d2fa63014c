package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.handleMouseEvent(msg)

	case ActionMsg:
		return m, m.handleAction(msg)

	case ReportErrorMsg:
		m.state = m.state.ReportError(msg.Err)
		if msg.Err != nil {
			log.Printf("tui: error reported: %v", msg.Err)
		}
		return m, nil

	case ownedMsg:
		// Results for panels that were unmounted or remounted are stale.
		if m.panel == nil || msg.owner() != m.panel.Owner() {
			log.Printf("tui: dropping %T for unmounted panel %d", msg, msg.owner())
			return m, nil
		}
		return m, m.panel.Update(msg)

	case spinner.TickMsg:
		if m.panel != nil {
			return m, m.panel.Update(msg)
		}
	}

	return m, nil
}

func (m *ShellModel) handleAction(msg ActionMsg) tea.Cmd {
	switch msg.Action {
	case ActionPushModal:
		if modal, ok := msg.Payload.(Modal); ok {
			m.PushModal(modal)
		}
	case ActionNavigate:
		if id, ok := msg.Payload.(string); ok {
			return m.navigate(id)
		}
	case ActionOpenPage:
		if id, ok := msg.Payload.(string); ok {
			m.pendingNav = navigateTo(id)
		}
	}
	return nil
}

func (m *ShellModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	// Modal on stack gets the key first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.PushModal(NewHelpModal(m.modalContext(), m.keys))
		return nil
	case key.Matches(msg, m.keys.Account):
		m.PushModal(NewAccountMenu(m.modalContext()))
		return nil
	case key.Matches(msg, m.keys.ToggleSidebar):
		m.toggleSidebar()
		return nil
	case key.Matches(msg, m.keys.ToggleTheme):
		m.state = m.state.ToggleTheme()
		return nil
	case key.Matches(msg, m.keys.Dismiss):
		if m.state.BannerShown() {
			m.state = m.state.DismissError()
			return nil
		}
	case key.Matches(msg, m.keys.NextSection), key.Matches(msg, m.keys.PrevSection):
		m.cycleFocus()
		return nil
	}

	if m.activeSection == SectionSidebar && m.state.SidebarOpen {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveSidebarCursor(-1)
			return nil
		case key.Matches(msg, m.keys.Down):
			m.moveSidebarCursor(1)
			return nil
		case key.Matches(msg, m.keys.Home):
			m.sidebarCursor = 0
			return nil
		case key.Matches(msg, m.keys.End):
			m.sidebarCursor = len(m.sidebarRows()) - 1
			m.clampSidebarCursor()
			return nil
		case key.Matches(msg, m.keys.Select):
			return m.activateSidebarCursor()
		}
	}

	if m.panel != nil {
		return m.panel.Update(msg)
	}
	return nil
}

func (m *ShellModel) toggleSidebar() {
	m.state = m.state.ToggleSidebar()
	if !m.state.SidebarOpen {
		m.activeSection = SectionContent
	}
}

func (m *ShellModel) cycleFocus() {
	if m.activeSection == SectionSidebar || !m.state.SidebarOpen {
		m.activeSection = SectionContent
		return
	}
	m.activeSection = SectionSidebar
	m.syncCursorToActive()
}

// handleMouseEvent processes mouse interactions
func (m *ShellModel) handleMouseEvent(msg tea.MouseMsg) tea.Cmd {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return cmd
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.handleMouseClick(msg.X, msg.Y)

	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !m.state.SidebarOpen || msg.X >= sidebarWidth {
			return nil
		}
		delta := -1
		if msg.Button == tea.MouseButtonWheelDown {
			delta = 1
		}
		if m.reverseScrollWheel {
			delta = -delta
		}
		m.activeSection = SectionSidebar
		m.moveSidebarCursor(delta)
	}
	return nil
}

// handleMouseClick resolves a click against the top bar, banner, sidebar or
// content area.
func (m *ShellModel) handleMouseClick(x, y int) tea.Cmd {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}

	if y == 0 {
		switch m.topBarHit(x) {
		case hitSidebarToggle:
			m.toggleSidebar()
		case hitThemeToggle:
			m.state = m.state.ToggleTheme()
		case hitAccount:
			m.PushModal(NewAccountMenu(m.modalContext()))
		}
		return nil
	}

	bodyTop := 1
	if m.state.BannerShown() {
		if y == 1 {
			if x >= m.width-bannerDismissWidth {
				m.state = m.state.DismissError()
			}
			return nil
		}
		bodyTop = 2
	}

	if m.state.SidebarOpen && x < sidebarWidth {
		m.activeSection = SectionSidebar
		// Skip the top border row.
		if idx, ok := m.sidebarCursorAtMouseRow(y - bodyTop - 1); ok {
			rows := m.sidebarRows()
			if idx < len(rows) {
				return m.clickRow(rows[idx])
			}
		}
		return nil
	}

	m.activeSection = SectionContent
	return nil
}
