package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AppTitle is shown in the top bar.
const AppTitle = "My Application"

const bannerDismissWidth = 4

type topBarHitKind int

const (
	hitNone topBarHitKind = iota
	hitSidebarToggle
	hitThemeToggle
	hitAccount
)

const (
	topBarToggle  = " ☰ "
	topBarAccount = " JD ▾ "
)

func topBarThemeLabel(theme string) string {
	if theme == "dark" {
		return " ☀ light "
	}
	return " ☾ dark "
}

// topBarHit maps a click column on the top bar to its control.
func (m *ShellModel) topBarHit(x int) topBarHitKind {
	toggleW := lipgloss.Width(topBarToggle)
	accountW := lipgloss.Width(topBarAccount)
	themeW := lipgloss.Width(topBarThemeLabel(m.state.Theme))

	switch {
	case x < toggleW:
		return hitSidebarToggle
	case x >= m.width-accountW:
		return hitAccount
	case x >= m.width-accountW-1-themeW && x < m.width-accountW-1:
		return hitThemeToggle
	}
	return hitNone
}

// renderTopBar renders the application bar: sidebar toggle, title, theme
// toggle and account avatar. Layout must stay in step with topBarHit.
func (m *ShellModel) renderTopBar(t Theme) string {
	base := lipgloss.NewStyle().Background(t.Primary).Foreground(t.StatusText)

	toggle := base.Bold(true).Render(topBarToggle)
	title := base.Bold(true).Render(" " + AppTitle)
	themeBtn := base.Render(topBarThemeLabel(m.state.Theme))
	account := lipgloss.NewStyle().Background(t.Secondary).Foreground(t.StatusText).Bold(true).Render(topBarAccount)

	left := toggle + title
	right := themeBtn + base.Render(" ") + account
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + base.Render(strings.Repeat(" ", gap)) + right
}

// renderBanner renders the dismissible global error notice.
func (m *ShellModel) renderBanner(t Theme) string {
	e := m.state.Banner
	style := lipgloss.NewStyle().Background(t.Error).Foreground(lipgloss.Color("#FFFFFF"))

	text := "⚠ " + e.Message
	if e.Code != "" {
		text += fmt.Sprintf(" (%s)", e.Code)
	}
	if !e.Timestamp.IsZero() {
		text += "  " + e.Timestamp.Format("15:04:05")
	}
	closeBtn := " x ✕"
	width := m.width - lipgloss.Width(closeBtn)
	text = truncate(text, width)
	return style.Width(width).Render(text) + style.Bold(true).Render(closeBtn)
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *ShellModel) renderStatusLine(t Theme) string {
	baseStyle := lipgloss.NewStyle().
		Background(t.StatusBg).
		Foreground(t.StatusText)

	w := m.width

	veryNarrow := w < 70
	narrow := w < 100
	medium := w < 130

	var leftText string
	switch m.activeSection {
	case SectionSidebar:
		leftText = "[Navigation]"
	case SectionContent:
		leftText = "[" + m.router.Resolve(m.state.ActiveID).Label + "]"
	}

	var statusText string
	switch {
	case m.state.BannerShown() && !narrow:
		statusText = "x: Dismiss error • ?: Help • Tab: Focus • q: Quit"
	case veryNarrow:
		statusText = "? • Tab • t • q"
	case narrow:
		statusText = "?: Help • Tab: Focus • t: Theme • q: Quit"
	case medium:
		statusText = "?: Help • Tab: Focus • ↑↓: Navigate • Enter: Select • t: Theme • m: Account • q: Quit"
	default:
		statusText = "?: Help • Click items • Tab: Focus • ↑↓: Navigate • Enter: Select • a: Sidebar • t: Theme • m: Account • q: Quit"
	}

	themeInfo := "☾ Dark"
	if m.state.Theme != "dark" {
		themeInfo = "☀ Light"
	}
	rightText := themeInfo
	if !veryNarrow {
		rightText += "  " + lipgloss.NewStyle().Background(t.StatusBg).Foreground(t.StatusText).Bold(true).Render("dashshell")
	}

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2
	if leftWidth+rightWidth >= w {
		return baseStyle.Width(w).Render(leftText)
	}
	centerWidth := w - leftWidth - rightWidth

	if lipgloss.Width(statusText) > centerWidth {
		statusText = truncate(statusText, max(centerWidth, 0))
	}

	leftPart := baseStyle.Align(lipgloss.Left).Width(leftWidth).Render(leftText)
	centerPart := baseStyle.Align(lipgloss.Center).Width(centerWidth).Render(statusText)
	rightPart := baseStyle.Align(lipgloss.Right).Width(rightWidth).Render(rightText)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPart, centerPart, rightPart)
}
