package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailModal shows a block of read-only text: user details, notices.
type DetailModal struct {
	id       string
	title    string
	content  string
	ctx      ModalContext
	viewport viewport.Model
}

func NewDetailModal(id, title, content string, ctx ModalContext) *DetailModal {
	return &DetailModal{
		id:       id,
		title:    title,
		content:  content,
		ctx:      ctx,
		viewport: viewport.New(80, 20),
	}
}

// NewNoticeModal is a DetailModal that closes on enter as well.
func NewNoticeModal(title, content string, ctx ModalContext) *DetailModal {
	return NewDetailModal("notice", title, content, ctx)
}

func (d *DetailModal) ID() string { return d.id }

func (d *DetailModal) SetTheme(t Theme) { d.ctx.Theme = t }

// Content returns the modal body text.
func (d *DetailModal) Content() string { return d.content }

func (d *DetailModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	return scrollViewport(d.ctx, &d.viewport, msg, "enter", "q")
}

func (d *DetailModal) View(width, height int) string {
	return renderScrollModal(d.ctx, &d.viewport, d.title, d.content,
		modalStatus("up/down/Wheel: Scroll", "Enter/ESC: Close"),
		width, height)
}
