package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 26

// sidebarHeaderLines is the number of lines above the first item row.
const sidebarHeaderLines = 2

// sidebarRow is one visible row of the navigation drawer.
type sidebarRow struct {
	ID          string
	Label       string
	Icon        string
	ParentID    string
	HasChildren bool
}

// sidebarRows lists the rows currently visible: every top-level item, and
// the children of expanded ones.
func (m *ShellModel) sidebarRows() []sidebarRow {
	var rows []sidebarRow
	for _, item := range m.router.Tree() {
		rows = append(rows, sidebarRow{
			ID:          item.ID,
			Label:       item.Label,
			Icon:        item.Icon,
			HasChildren: item.HasChildren(),
		})
		if !item.HasChildren() || !m.state.Expanded.Has(item.ID) {
			continue
		}
		for _, child := range item.Children {
			rows = append(rows, sidebarRow{
				ID:       child.ID,
				Label:    child.Label,
				Icon:     child.Icon,
				ParentID: item.ID,
			})
		}
	}
	return rows
}

func (m *ShellModel) clampSidebarCursor() {
	rows := m.sidebarRows()
	if len(rows) == 0 {
		m.sidebarCursor = 0
		return
	}
	m.sidebarCursor = max(0, min(m.sidebarCursor, len(rows)-1))
}

func (m *ShellModel) moveSidebarCursor(delta int) {
	m.sidebarCursor += delta
	m.clampSidebarCursor()
}

// syncCursorToActive puts the cursor on the active section's row, or on its
// parent when the child row is hidden.
func (m *ShellModel) syncCursorToActive() {
	d := m.router.Resolve(m.state.ActiveID)
	for i, row := range m.sidebarRows() {
		if row.ID == d.ID {
			m.sidebarCursor = i
			return
		}
		if row.ID == d.ParentID {
			m.sidebarCursor = i
		}
	}
}

// activateSidebarCursor performs a click on the row under the cursor.
func (m *ShellModel) activateSidebarCursor() tea.Cmd {
	rows := m.sidebarRows()
	if len(rows) == 0 {
		return nil
	}
	m.clampSidebarCursor()
	return m.clickRow(rows[m.sidebarCursor])
}

// clickRow applies the selection policy for row and keeps the cursor on it.
func (m *ShellModel) clickRow(row sidebarRow) tea.Cmd {
	cmd := m.applyState(m.state.Click(row.ID, row.HasChildren, m.policy))
	for i, r := range m.sidebarRows() {
		if r.ID == row.ID {
			m.sidebarCursor = i
			break
		}
	}
	return cmd
}

func (m *ShellModel) buildSidebarLines(t Theme) ([]string, map[int]int) {
	rows := m.sidebarRows()
	rowToCursor := make(map[int]int, len(rows))
	lines := make([]string, 0, len(rows)+sidebarHeaderLines)

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render("Navigation"))
	lines = append(lines, "")

	inner := sidebarWidth - 4
	for i, row := range rows {
		icon := row.Icon
		if icon == "" {
			icon = "·"
		}
		var label string
		if row.ParentID == "" {
			chevron := " "
			if row.HasChildren {
				chevron = "▸"
				if m.state.Expanded.Has(row.ID) {
					chevron = "▾"
				}
			}
			label = truncate(icon+" "+row.Label, inner-2)
			label = padRight(label, inner-2) + " " + chevron
		} else {
			label = truncate("  "+icon+" "+row.Label, inner)
		}

		style := lipgloss.NewStyle().Foreground(t.Text)
		if row.ID == m.state.ActiveID || (row.ParentID == "" && m.router.IsActiveBranch(row.ID, m.state.ActiveID)) {
			style = style.Foreground(t.Primary).Bold(true)
		}
		if m.activeSection == SectionSidebar && m.sidebarCursor == i {
			style = style.Reverse(true)
		}

		rowToCursor[len(lines)] = i
		lines = append(lines, style.Render(label))
	}

	return lines, rowToCursor
}

func (m *ShellModel) sidebarCursorAtMouseRow(y int) (int, bool) {
	_, rowToCursor := m.buildSidebarLines(m.Theme())

	// Bubble Tea mouse row can include border/padding rows depending on renderer.
	for _, offset := range []int{0, -1, -2, 1} {
		row := y + offset
		if row < 0 {
			continue
		}
		if idx, ok := rowToCursor[row]; ok {
			return idx, true
		}
	}
	return 0, false
}

// renderSidebar renders the navigation drawer.
func (m *ShellModel) renderSidebar(t Theme, height int) string {
	m.clampSidebarCursor()

	style := lipgloss.NewStyle().
		Width(sidebarWidth-2).
		Height(height).
		MaxHeight(height+2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	if m.activeSection == SectionSidebar {
		style = style.BorderForeground(t.Primary)
	}

	lines, _ := m.buildSidebarLines(t)
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return style.Render(content)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "~"
}

func padRight(s string, n int) string {
	for w := lipgloss.Width(s); w < n; w++ {
		s += " "
	}
	return s
}
