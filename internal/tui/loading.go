package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

func newLoadingSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot))
}

// renderLoadingPlaceholder renders a spinner with text centered in the area.
func renderLoadingPlaceholder(ctx ViewContext, sp spinner.Model, text string, height int) string {
	loadingStyle := lipgloss.NewStyle().
		Foreground(ctx.Theme.Muted).
		Italic(true)

	frame := lipgloss.NewStyle().Foreground(ctx.Theme.Primary).Render(sp.View())
	body := frame + " " + loadingStyle.Render(text)

	if height < 1 {
		height = 1
	}
	return lipgloss.Place(ctx.Width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderFetchError renders the inline fetch error with its Retry action.
func renderFetchError(ctx ViewContext, prefix, message string) string {
	errLine := ctx.Theme.errorText().Bold(true).Render("⚠ " + prefix + ": " + message)
	retry := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ctx.Theme.Primary).
		Foreground(ctx.Theme.Primary).
		Padding(0, 1).
		Render("Retry (r)")
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ctx.Theme.Error).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, errLine, retry))
	return box
}
