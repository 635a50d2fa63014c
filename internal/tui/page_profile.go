package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/dashshell/internal/mockapi"
	"github.com/tinytelemetry/dashshell/internal/model"
)

// ProfilePage shows the signed-in account, reached from the account menu.
type ProfilePage struct {
	user  model.User
	keys  KeyMap
	theme func() Theme
}

// NewProfilePage builds the page. theme supplies the active palette.
func NewProfilePage(theme func() Theme) *ProfilePage {
	if theme == nil {
		theme = LightTheme
	}
	return &ProfilePage{user: mockapi.Users()[0], keys: DefaultKeyMap(), theme: theme}
}

func (p *ProfilePage) ID() string    { return PageProfile }
func (p *ProfilePage) Init() tea.Cmd { return nil }

func (p *ProfilePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	switch {
	case key.Matches(km, p.keys.ForceQuit):
		return tea.Quit, nil
	case key.Matches(km, p.keys.Escape), key.Matches(km, p.keys.Quit), km.String() == "backspace":
		return nil, navigateTo(PageShell)
	}
	return nil, nil
}

func (p *ProfilePage) View(width, height int) string {
	t := p.theme()
	avatar := lipgloss.NewStyle().
		Foreground(t.StatusText).
		Background(t.Secondary).
		Bold(true).
		Padding(0, 1).
		Render(initials(p.user.Name))

	body := lipgloss.JoinVertical(lipgloss.Left,
		t.title().Render("Profile"),
		"",
		avatar+"  "+lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render(p.user.Name),
		"",
		t.muted().Render("Email: ")+p.user.Email,
		t.muted().Render("Role:  ")+p.user.Role,
		"",
		t.muted().Render("esc: back to dashboard"),
	)
	card := t.card(44).BorderForeground(t.Primary).Render(body)
	if width <= 0 || height <= 0 {
		return card
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
