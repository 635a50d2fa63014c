package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/dashshell/internal/nav"
)

// GenericPanel renders static placeholder content for a section.
type GenericPanel struct {
	desc  nav.Descriptor
	owner int
}

func NewGenericPanel(d nav.Descriptor, deps PanelDeps) *GenericPanel {
	return &GenericPanel{desc: d, owner: deps.Owner}
}

func (p *GenericPanel) Owner() int               { return p.owner }
func (p *GenericPanel) Init() tea.Cmd            { return nil }
func (p *GenericPanel) Update(_ tea.Msg) tea.Cmd { return nil }
func (p *GenericPanel) Close()                   {}

func (p *GenericPanel) View(ctx ViewContext) string {
	t := ctx.Theme
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.title().Render(p.desc.Content.Title),
		"",
		lipgloss.NewStyle().Foreground(t.Text).Render(p.desc.Content.Description),
		"",
		t.muted().Render("Section ID: "+p.desc.ID),
		"",
		t.muted().Italic(true).Render("This is a placeholder for the "+p.desc.Content.Title+" content."),
	)
	return t.card(max(ctx.Width-4, 20)).Render(body)
}
