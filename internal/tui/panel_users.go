package tui

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/dashshell/internal/model"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

// helloResultMsg carries the GET /hello outcome. It is only logged.
type helloResultMsg struct {
	Owner   int
	Payload json.RawMessage
	Err     error
}

func (m helloResultMsg) owner() int { return m.Owner }

// UsersPanel lists the mock users with a per-user actions menu.
type UsersPanel struct {
	desc    nav.Descriptor
	owner   int
	keys    KeyMap
	data    *resource[[]model.User]
	hello   HelloCaller
	modal   ModalContext
	spinner spinner.Model
	cursor  int
}

func NewUsersPanel(d nav.Descriptor, deps PanelDeps) *UsersPanel {
	return &UsersPanel{
		desc:    d,
		owner:   deps.Owner,
		keys:    DefaultKeyMap(),
		data:    newResource[[]model.User](deps.Owner, d.Content.Resource, deps.Fetcher),
		hello:   deps.Hello,
		modal:   deps.Modal,
		spinner: newLoadingSpinner(),
	}
}

func (p *UsersPanel) Owner() int { return p.owner }

func (p *UsersPanel) Init() tea.Cmd {
	return tea.Batch(p.data.fetch(), p.spinner.Tick, p.helloCmd())
}

func (p *UsersPanel) Close() { p.data.close() }

func (p *UsersPanel) helloCmd() tea.Cmd {
	if p.hello == nil {
		return nil
	}
	hello, owner, ctx := p.hello, p.owner, p.data.ctx
	return func() tea.Msg {
		payload, err := hello.Get(ctx)
		return helloResultMsg{Owner: owner, Payload: payload, Err: err}
	}
}

func (p *UsersPanel) users() []model.User {
	if p.data.result.Data == nil {
		return nil
	}
	return *p.data.result.Data
}

func (p *UsersPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ResourceMsg:
		if p.data.apply(msg) {
			p.cursor = min(p.cursor, max(len(p.users())-1, 0))
		}
	case helloResultMsg:
		if msg.Err != nil {
			log.Printf("tui: hello call failed: %v", msg.Err)
		} else {
			log.Printf("tui: hello response: %s", msg.Payload)
		}
	case spinner.TickMsg:
		if p.data.result.Loading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return cmd
		}
	case tea.KeyMsg:
		users := p.users()
		switch {
		case key.Matches(msg, p.keys.Retry):
			if !p.data.result.Loading {
				return tea.Batch(p.data.fetch(), p.spinner.Tick)
			}
		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(users)-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keys.Home):
			p.cursor = 0
		case key.Matches(msg, p.keys.End):
			p.cursor = max(len(users)-1, 0)
		case key.Matches(msg, p.keys.Select):
			if p.cursor < len(users) {
				return pushModalCmd(p.actionsMenu(users[p.cursor]))
			}
		}
	}
	return nil
}

// actionsMenu builds the per-user menu: Edit User, View Details, Delete User.
func (p *UsersPanel) actionsMenu(u model.User) *MenuModal {
	details := fmt.Sprintf("ID:    %d\nName:  %s\nEmail: %s\nRole:  %s\n", u.ID, u.Name, u.Email, u.Role)
	return newMenuModal("user-actions", u.Name, p.modal, []menuItem{
		{Label: "Edit User", Cmd: pushModalCmd(NewNoticeModal("Edit User", "Editing "+u.Name+" is not available in this demo.", p.modal))},
		{Label: "View Details", Cmd: pushModalCmd(NewDetailModal("user-details", "User Details", details, p.modal))},
		{Label: "Delete User", Cmd: pushModalCmd(NewNoticeModal("Delete User", "Deleting "+u.Name+" is not available in this demo.", p.modal))},
	})
}

func (p *UsersPanel) View(ctx ViewContext) string {
	res := p.data.result
	switch {
	case res.Loading:
		return renderLoadingPlaceholder(ctx, p.spinner, "Loading users...", ctx.Height)
	case res.Err != nil:
		return renderFetchError(ctx, "Error loading users", res.Err.Message)
	}

	users := p.users()
	cardWidth := max(min((ctx.Width-6)/3, 34), 20)
	cards := make([]string, 0, len(users))
	for i, u := range users {
		style := ctx.Theme.card(cardWidth)
		if i == p.cursor && ctx.Focused {
			style = style.BorderForeground(ctx.Theme.Primary)
		}
		avatar := lipgloss.NewStyle().
			Foreground(ctx.Theme.StatusText).
			Background(ctx.Theme.Primary).
			Bold(true).
			Render(" " + initials(u.Name) + " ")
		body := lipgloss.JoinVertical(lipgloss.Left,
			avatar+" "+lipgloss.NewStyle().Bold(true).Render(u.Name)+" "+ctx.Theme.muted().Render("⋮"),
			ctx.Theme.muted().Render(u.Email),
			lipgloss.NewStyle().Foreground(ctx.Theme.Secondary).Render("Role: "+u.Role),
		)
		cards = append(cards, style.Render(body))
	}

	var grid string
	perRow := max(ctx.Width/(cardWidth+2), 1)
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:min(i+perRow, len(cards))]...))
	}
	grid = lipgloss.JoinVertical(lipgloss.Left, rows...)

	hint := ctx.Theme.muted().Render("↑↓: select user • enter: actions • r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left,
		ctx.Theme.muted().Render(p.desc.Content.Description), "", grid, "", hint)
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
