package tui

import (
	"log"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/dashshell/internal/appstate"
	"github.com/tinytelemetry/dashshell/internal/model"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

// Section identifies which region has keyboard focus.
type Section int

const (
	SectionSidebar Section = iota // navigation drawer
	SectionContent                // active panel
)

// SidebarState holds sidebar cursor state. Visibility lives in appstate.
type SidebarState struct {
	sidebarCursor int
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// NavigationState holds focus and the mounted panel.
type NavigationState struct {
	activeSection Section
	panel         Panel
	mountedID     string
	nextOwner     int
}

// Options configures a ShellModel. Zero values pick defaults.
type Options struct {
	Router             *nav.Router
	Policy             nav.SelectPolicy
	Fetcher            Fetcher
	Hello              HelloCaller
	Themes             Themes
	Theme              string
	SidebarOpen        bool
	ReverseScrollWheel bool
	PanelFactory       PanelFactory
	Rand               *rand.Rand
	Now                func() time.Time
}

// ShellModel is the application shell: top bar, sidebar, content area,
// global error banner and status line. All state transitions go through
// appstate.State.
// Sub-state is organized into embedded structs for readability.
type ShellModel struct {
	SidebarState
	ModalStackState
	NavigationState

	width  int
	height int

	state  appstate.State
	router *nav.Router
	policy nav.SelectPolicy
	keys   KeyMap
	themes Themes

	fetcher Fetcher
	hello   HelloCaller
	factory PanelFactory
	rng     *rand.Rand
	now     func() time.Time

	reverseScrollWheel bool

	// Page switch requested by the last Update, drained by ShellPage.
	pendingNav *PageNav
}

// NewShellModel creates the shell with the default section active.
func NewShellModel(opts Options) *ShellModel {
	router := opts.Router
	if router == nil {
		router = nav.MustRouter(nav.DefaultTree(), model.DefaultSectionID)
	}
	factory := opts.PanelFactory
	if factory == nil {
		factory = DefaultPanelFactory
	}
	themes := opts.Themes
	if themes.Light.Name == "" || themes.Dark.Name == "" {
		themes = DefaultThemes()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	state := appstate.New(opts.Theme, opts.SidebarOpen)
	state.ActiveID = router.DefaultID()

	section := SectionSidebar
	if !state.SidebarOpen {
		section = SectionContent
	}

	return &ShellModel{
		NavigationState: NavigationState{activeSection: section},

		state:              state,
		router:             router,
		policy:             opts.Policy,
		keys:               DefaultKeyMap(),
		themes:             themes,
		fetcher:            opts.Fetcher,
		hello:              opts.Hello,
		factory:            factory,
		rng:                rng,
		now:                now,
		reverseScrollWheel: opts.ReverseScrollWheel,
	}
}

// State returns a copy of the application state.
func (m *ShellModel) State() appstate.State { return m.state }

// Theme returns the active palette.
func (m *ShellModel) Theme() Theme { return m.themes.Get(m.state.Theme) }

// Panel returns the mounted content panel.
func (m *ShellModel) Panel() Panel { return m.panel }

// Init mounts the active section's panel.
func (m *ShellModel) Init() tea.Cmd {
	return m.mount()
}

// Reset remounts the content panel from scratch.
func (m *ShellModel) Reset() tea.Cmd {
	m.modalStack = nil
	return m.mount()
}

// mount closes the current panel and builds the one for the active section.
func (m *ShellModel) mount() tea.Cmd {
	if m.panel != nil {
		m.panel.Close()
	}
	m.nextOwner++
	desc := m.router.Resolve(m.state.ActiveID)
	m.mountedID = m.state.ActiveID

	deps := PanelDeps{
		Owner:   m.nextOwner,
		Fetcher: m.fetcher,
		Hello:   m.hello,
		Rand:    m.rng,
		Modal:   m.modalContext(),
	}
	p, err := buildPanel(m.factory, desc, deps)
	if err != nil {
		m.panel = &emptyPanel{owner: m.nextOwner}
		m.state = m.state.ReportError(model.NewAppError(model.CodeRenderError, "Error rendering content", m.now()))
		return nil
	}
	m.panel = p
	return p.Init()
}

// applyState installs next and remounts the panel if the active section
// changed.
func (m *ShellModel) applyState(next appstate.State) tea.Cmd {
	m.state = next
	if m.state.ActiveID == m.mountedID && m.panel != nil {
		return nil
	}
	return m.mount()
}

// navigate activates id, expanding its parent so it is visible.
func (m *ShellModel) navigate(id string) tea.Cmd {
	d, ok := m.router.Lookup(id)
	if !ok {
		log.Printf("tui: navigate to unknown section %q", id)
	}
	cmd := m.applyState(m.state.Activate(id).Expand(d.ParentID))
	m.syncCursorToActive()
	return cmd
}

func (m *ShellModel) modalContext() ModalContext {
	return ModalContext{Theme: m.Theme(), ReverseScrollWheel: m.reverseScrollWheel}
}

func (m *ShellModel) viewContext(width, height int) ViewContext {
	return ViewContext{
		Width:   width,
		Height:  height,
		Theme:   m.Theme(),
		Focused: m.activeSection == SectionContent,
	}
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *ShellModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *ShellModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *ShellModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *ShellModel) HasModal() bool {
	return len(m.modalStack) > 0
}

func (m *ShellModel) takePageNav() *PageNav {
	n := m.pendingNav
	m.pendingNav = nil
	return n
}

// ShellPage adapts ShellModel to the Page interface.
type ShellPage struct {
	Model   *ShellModel
	started bool
}

// NewShellPage wraps a ShellModel as a Page.
func NewShellPage(m *ShellModel) *ShellPage {
	return &ShellPage{Model: m}
}

func (p *ShellPage) ID() string { return PageShell }

// Init mounts the panel the first time only; returning from another page
// keeps the mounted panel.
func (p *ShellPage) Init() tea.Cmd {
	if p.started {
		return nil
	}
	p.started = true
	return p.Model.Init()
}

func (p *ShellPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.Model.Update(msg)
	return cmd, p.Model.takePageNav()
}

func (p *ShellPage) View(width, height int) string {
	p.Model.width = width
	p.Model.height = height
	return p.Model.View()
}
