package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/dashshell/internal/model"
)

// ViewContext provides read-only context to panels for rendering. The active
// theme travels here rather than through a package global.
type ViewContext struct {
	Width   int
	Height  int
	Theme   Theme
	Focused bool // content area has keyboard focus
}

// ModalContext provides read-only context to modals.
type ModalContext struct {
	Theme              Theme
	ReverseScrollWheel bool
}

// Action identifies what a panel or modal wants the shell to do.
type Action int

const (
	ActionPushModal Action = iota
	ActionNavigate         // Payload: section ID
	ActionOpenPage         // Payload: page ID
)

// ActionMsg lets panels and modals talk to the shell without mutating it
// directly.
type ActionMsg struct {
	Action  Action
	Payload any
}

// actionMsg wraps ActionMsg as a tea.Cmd.
func actionMsg(a ActionMsg) tea.Cmd {
	return func() tea.Msg { return a }
}

func pushModalCmd(m Modal) tea.Cmd {
	return actionMsg(ActionMsg{Action: ActionPushModal, Payload: m})
}

// ReportErrorMsg shows the global error banner.
type ReportErrorMsg struct {
	Err *model.AppError
}

// ReportError returns a command that shows err in the global banner. Any
// handler may use it.
func ReportError(err *model.AppError) tea.Cmd {
	return func() tea.Msg { return ReportErrorMsg{Err: err} }
}
