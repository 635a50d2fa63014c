package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the width available for main content, accounting for sidebar.
func (m *ShellModel) contentWidth() int {
	if m.state.SidebarOpen {
		w := m.width - sidebarWidth
		if w < 40 {
			w = 40
		}
		return w
	}
	return m.width
}

// bodyHeight is the height between the top bar (and banner) and the status
// line.
func (m *ShellModel) bodyHeight() int {
	h := m.height - 2 // top bar + status line
	if m.state.BannerShown() {
		h--
	}
	return h
}

// View renders the shell
func (m *ShellModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		if th, ok := modal.(Themed); ok {
			th.SetTheme(m.Theme())
		}
		return modal.View(m.width, m.height)
	}

	if m.height < 16 || m.width < 60 {
		return "Terminal too small. Resize to at least 60x16."
	}

	return m.renderShell()
}

func (m *ShellModel) renderShell() string {
	t := m.Theme()

	sections := []string{m.renderTopBar(t)}
	if m.state.BannerShown() {
		sections = append(sections, m.renderBanner(t))
	}

	bodyHeight := m.bodyHeight()
	content := m.renderContent(t, m.contentWidth(), bodyHeight)
	body := content
	if m.state.SidebarOpen {
		sidebar := m.renderSidebar(t, bodyHeight-2)
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	}
	sections = append(sections, body, m.renderStatusLine(t))

	return lipgloss.NewStyle().
		MaxWidth(m.width).
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderContent renders the section title and the mounted panel.
func (m *ShellModel) renderContent(t Theme, width, height int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		Padding(0, 1).
		Render(m.router.Title(m.state.ActiveID))

	var panelView string
	if m.panel != nil {
		ctx := m.viewContext(width-2, height-2)
		panelView = m.panel.View(ctx)
	}

	inner := lipgloss.JoinVertical(lipgloss.Left, title, "", panelView)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Padding(0, 1).
		Render(inner)
}
