// Package appstate holds the shell's serializable application state. Every
// transition is a pure function of the old state; receivers are never
// mutated.
package appstate

import (
	"github.com/tinytelemetry/dashshell/internal/model"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// State is the record the shell owns and passes down explicitly.
type State struct {
	ActiveID    string           `json:"activeId"`
	Expanded    nav.ExpansionSet `json:"expanded"`
	Theme       string           `json:"theme"`
	SidebarOpen bool             `json:"sidebarOpen"`
	Banner      *model.AppError  `json:"banner,omitempty"`
}

// New returns the state a freshly mounted shell starts with.
func New(theme string, sidebarOpen bool) State {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return State{
		ActiveID:    model.DefaultSectionID,
		Expanded:    nav.NewExpansionSet(),
		Theme:       theme,
		SidebarOpen: sidebarOpen,
	}
}

// Click applies the sidebar click semantics for an item: children are
// selected directly; parents with children toggle their expansion and, under
// PolicyActivateAndToggle, become active.
func (s State) Click(itemID string, hasChildren bool, policy nav.SelectPolicy) State {
	next := s.clone()
	next.ActiveID = nav.Select(s.ActiveID, itemID, hasChildren, policy)
	if hasChildren {
		next.Expanded = s.Expanded.Toggle(itemID)
	}
	return next
}

// Activate makes id the active section without touching expansion.
func (s State) Activate(id string) State {
	next := s.clone()
	next.ActiveID = id
	return next
}

// Expand ensures the parent of a child section is expanded.
func (s State) Expand(parentID string) State {
	if parentID == "" || s.Expanded.Has(parentID) {
		return s.clone()
	}
	next := s.clone()
	next.Expanded = s.Expanded.Toggle(parentID)
	return next
}

// ToggleTheme flips between light and dark.
func (s State) ToggleTheme() State {
	next := s.clone()
	if s.Theme == ThemeDark {
		next.Theme = ThemeLight
	} else {
		next.Theme = ThemeDark
	}
	return next
}

// ToggleSidebar shows or hides the navigation drawer.
func (s State) ToggleSidebar() State {
	next := s.clone()
	next.SidebarOpen = !s.SidebarOpen
	return next
}

// ReportError shows the global banner. A later report replaces the message.
func (s State) ReportError(err *model.AppError) State {
	next := s.clone()
	if err != nil {
		e := *err
		next.Banner = &e
	}
	return next
}

// DismissError hides the global banner.
func (s State) DismissError() State {
	next := s.clone()
	next.Banner = nil
	return next
}

// BannerShown reports whether the global banner is visible.
func (s State) BannerShown() bool { return s.Banner != nil }

func (s State) clone() State {
	next := s
	next.Expanded = s.Expanded.Clone()
	return next
}
