package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// renderScrollModal renders a bordered, scrollable modal around content.
func renderScrollModal(ctx ModalContext, vp *viewport.Model, title, content, status string, width, height int) string {
	modalWidth := width - 8   // 4 chars margin on each side
	modalHeight := height - 4 // 2 lines margin top and bottom

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4
	if contentWidth < 10 {
		contentWidth = 10
	}
	if contentHeight < 3 {
		contentHeight = 3
	}

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(content))

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ctx.Theme.Border).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ctx.Theme.Primary).
		Bold(true).
		Render(title)

	statusBar := ctx.Theme.muted().Render(status)

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ctx.Theme.Primary).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// modalStatus joins modal key hints.
func modalStatus(items ...string) string {
	return strings.Join(items, " | ")
}

// scrollViewport applies the shared scroll keys and wheel handling to vp.
// It reports whether the message closed the modal.
func scrollViewport(ctx ModalContext, vp *viewport.Model, msg tea.Msg, closeKeys ...string) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k := msg.String()
		for _, c := range closeKeys {
			if k == c {
				return true, nil
			}
		}
		switch k {
		case "escape", "esc":
			return true, nil
		case "up", "k":
			vp.ScrollUp(1)
			return false, nil
		case "down", "j":
			vp.ScrollDown(1)
			return false, nil
		case "pgup":
			vp.HalfPageUp()
			return false, nil
		case "pgdown":
			vp.HalfPageDown()
			return false, nil
		}
		var cmd tea.Cmd
		*vp, cmd = vp.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if ctx.ReverseScrollWheel {
				vp.ScrollDown(1)
			} else {
				vp.ScrollUp(1)
			}
		case tea.MouseButtonWheelDown:
			if ctx.ReverseScrollWheel {
				vp.ScrollUp(1)
			} else {
				vp.ScrollDown(1)
			}
		}
	}
	return false, nil
}
