package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuItem is one row of a MenuModal. Divider rows are not selectable.
type menuItem struct {
	Label   string
	Divider bool
	Cmd     tea.Cmd
}

// MenuModal is a small pop-up list. Choosing an item closes the menu and
// runs the item's command.
type MenuModal struct {
	id     string
	title  string
	ctx    ModalContext
	items  []menuItem
	cursor int
}

func newMenuModal(id, title string, ctx ModalContext, items []menuItem) *MenuModal {
	m := &MenuModal{id: id, title: title, ctx: ctx, items: items}
	m.cursor = m.step(-1, 1)
	return m
}

// NewAccountMenu builds the top-bar account menu.
func NewAccountMenu(ctx ModalContext) *MenuModal {
	return newMenuModal("account", "Account", ctx, []menuItem{
		{Label: "Profile", Cmd: actionMsg(ActionMsg{Action: ActionOpenPage, Payload: PageProfile})},
		{Label: "Account Settings", Cmd: actionMsg(ActionMsg{Action: ActionNavigate, Payload: "settings.general"})},
		{Divider: true},
		{Label: "Sign Out", Cmd: tea.Quit},
	})
}

func (m *MenuModal) ID() string { return m.id }

func (m *MenuModal) SetTheme(t Theme) { m.ctx.Theme = t }

// Selected returns the label under the cursor.
func (m *MenuModal) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return ""
	}
	return m.items[m.cursor].Label
}

func (m *MenuModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "escape", "esc", "q":
			return true, nil
		case "up", "k":
			m.cursor = m.step(m.cursor, -1)
		case "down", "j":
			m.cursor = m.step(m.cursor, 1)
		case "enter", " ":
			if m.cursor >= 0 && m.cursor < len(m.items) {
				return true, m.items[m.cursor].Cmd
			}
			return true, nil
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.cursor = m.step(m.cursor, -1)
			case tea.MouseButtonWheelDown:
				m.cursor = m.step(m.cursor, 1)
			}
		}
	}
	return false, nil
}

// step moves from idx by delta, skipping dividers and clamping at the ends.
func (m *MenuModal) step(idx, delta int) int {
	for next := idx + delta; next >= 0 && next < len(m.items); next += delta {
		if !m.items[next].Divider {
			return next
		}
	}
	if idx < 0 {
		return 0
	}
	return idx
}

func (m *MenuModal) View(width, height int) string {
	t := m.ctx.Theme
	inner := 24
	for _, it := range m.items {
		inner = max(inner, lipgloss.Width(it.Label)+4)
	}

	lines := []string{t.title().Render(m.title), ""}
	for i, it := range m.items {
		if it.Divider {
			lines = append(lines, t.muted().Render(strings.Repeat("─", inner)))
			continue
		}
		label := "  " + it.Label
		if i == m.cursor {
			label = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("> " + it.Label)
		}
		lines = append(lines, label)
	}
	lines = append(lines, "", t.muted().Render(modalStatus("↑↓: Move", "Enter: Select", "ESC: Close")))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
