package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/dashshell/internal/model"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

func TestNewShellModel_Defaults(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	s := m.State()
	if s.ActiveID != "dashboard" {
		t.Fatalf("active = %q, want dashboard", s.ActiveID)
	}
	if len(s.Expanded) != 0 {
		t.Fatalf("expanded = %v, want empty", s.Expanded.IDs())
	}
	if m.activeSection != SectionSidebar {
		t.Fatalf("focus = %v, want sidebar", m.activeSection)
	}
	if s.BannerShown() {
		t.Fatal("banner shown on start")
	}
}

func TestSidebarClick_ParentExpandsThenCollapses(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	drain(m, m.Init())

	drain(m, selectRow(t, m, "users"))
	if !m.State().Expanded.Has("users") {
		t.Fatal("users not expanded after first click")
	}
	if got := m.State().ActiveID; got != "users" {
		t.Fatalf("active = %q, want users", got)
	}
	if _, ok := m.Panel().(*UsersPanel); !ok {
		t.Fatalf("panel = %T, want *UsersPanel", m.Panel())
	}
	if rowIndex(m, "users.list") < 0 {
		t.Fatal("children hidden after expanding")
	}

	drain(m, selectRow(t, m, "users"))
	if m.State().Expanded.Has("users") {
		t.Fatal("users still expanded after second click")
	}
	if rowIndex(m, "users.list") >= 0 {
		t.Fatal("children visible after collapsing")
	}
}

func TestSidebarClick_ToggleOnlyPolicyKeepsActive(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t, func(o *Options) { o.Policy = nav.PolicyToggleOnly })
	drain(m, m.Init())

	drain(m, selectRow(t, m, "analytics"))
	if got := m.State().ActiveID; got != "dashboard" {
		t.Fatalf("active = %q, want dashboard", got)
	}
	if !m.State().Expanded.Has("analytics") {
		t.Fatal("analytics not expanded")
	}

	drain(m, selectRow(t, m, "analytics.usage"))
	if got := m.State().ActiveID; got != "analytics.usage" {
		t.Fatalf("active = %q, want analytics.usage", got)
	}
	if _, ok := m.Panel().(*GalleryPanel); !ok {
		t.Fatalf("panel = %T, want *GalleryPanel", m.Panel())
	}
}

func TestSidebarMouseClick_SelectsChild(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	drain(m, m.Init())
	drain(m, selectRow(t, m, "users"))

	idx := rowIndex(m, "users.roles")
	// top bar, sidebar border, heading lines, then rows
	y := 1 + 1 + sidebarHeaderLines + idx
	_, cmd := m.Update(tea.MouseMsg{X: 3, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	drain(m, cmd)

	if got := m.State().ActiveID; got != "users.roles" {
		t.Fatalf("active = %q, want users.roles", got)
	}
	if !strings.Contains(m.View(), "Users - User Roles") {
		t.Fatal("title missing from view")
	}
	if !strings.Contains(m.View(), "Section ID: users.roles") {
		t.Fatal("generic panel missing section id")
	}
}

func TestTopBarClicks(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	drain(m, m.Init())

	click := func(x int) {
		_, cmd := m.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		drain(m, cmd)
	}

	click(0)
	if m.State().SidebarOpen {
		t.Fatal("sidebar still open after toggle click")
	}
	if m.activeSection != SectionContent {
		t.Fatal("focus stayed on hidden sidebar")
	}

	click(m.width - 1)
	if top, ok := m.TopModal().(*MenuModal); !ok || top.ID() != "account" {
		t.Fatalf("top modal = %T, want account menu", m.TopModal())
	}
	m.PopModal()

	click(m.width - len([]rune(topBarAccount)) - 3)
	if got := m.State().Theme; got != "dark" {
		t.Fatalf("theme = %q, want dark", got)
	}
}

func TestKeyboardToggles(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	drain(m, m.Init())

	drain(m, press(m, runes("t")))
	if m.Theme().Name != "dark" {
		t.Fatalf("theme = %q, want dark", m.Theme().Name)
	}
	if got := m.viewContext(10, 10).Theme.Name; got != "dark" {
		t.Fatalf("view context theme = %q, want dark", got)
	}

	drain(m, press(m, runes("a")))
	if m.State().SidebarOpen {
		t.Fatal("sidebar open after a")
	}

	drain(m, press(m, runes("?")))
	if _, ok := m.TopModal().(*HelpModal); !ok {
		t.Fatalf("top modal = %T, want help", m.TopModal())
	}
	if !strings.Contains(m.View(), "toggle sidebar") {
		t.Fatal("help does not list bindings")
	}
	drain(m, press(m, keyEsc))
	if m.HasModal() {
		t.Fatal("help still open after esc")
	}
}

func TestFocusCycle(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	drain(m, press(m, keyTab))
	if m.activeSection != SectionContent {
		t.Fatal("tab did not move focus to content")
	}
	drain(m, press(m, keyTab))
	if m.activeSection != SectionSidebar {
		t.Fatal("tab did not move focus back to sidebar")
	}
}

func TestStaleResultIsDropped(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	initMsgs := collect(m.Init())

	// Navigate away before the dashboard fetch lands.
	_ = selectRow(t, m, "settings")
	if _, ok := m.Panel().(*GenericPanel); !ok {
		t.Fatalf("panel = %T, want *GenericPanel", m.Panel())
	}

	for _, msg := range initMsgs {
		if _, ok := msg.(ResourceMsg); !ok {
			continue
		}
		_, cmd := m.Update(msg)
		if cmd != nil {
			t.Fatal("stale result produced a command")
		}
	}
	if got := m.State().ActiveID; got != "settings" {
		t.Fatalf("active = %q, want settings", got)
	}
}

func TestStaleResultAfterRemountIsDropped(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	first := collect(m.Init())
	second := collect(m.Reset())

	p := m.Panel().(*DashboardPanel)
	for _, msg := range first {
		m.Update(msg)
	}
	if !p.data.result.Loading {
		t.Fatal("result from the replaced mount was applied")
	}
	for _, msg := range second {
		m.Update(msg)
	}
	if p.data.result.Data == nil {
		t.Fatal("current result not applied")
	}
}

func TestResourceFencesSuperseded(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{}
	r := newResource[model.DashboardMetrics](7, "/api/dashboard", f)
	c1 := r.fetch()
	c2 := r.fetch()

	m2 := c2().(ResourceMsg)
	m1 := c1().(ResourceMsg)
	if !r.apply(m2) {
		t.Fatal("latest result rejected")
	}
	if r.apply(m1) {
		t.Fatal("superseded result applied")
	}
	if r.result.Data == nil || r.result.Data.TotalUsers != 1234 {
		t.Fatalf("result = %+v", r.result)
	}

	other := m2
	other.Owner = 8
	if r.apply(other) {
		t.Fatal("result for another owner applied")
	}

	c3 := r.fetch()
	m3 := c3().(ResourceMsg)
	r.close()
	if r.apply(m3) {
		t.Fatal("result applied after close")
	}
}

func TestBanner_PanelBuildFailure(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	m, _ := newTestShell(t, func(o *Options) {
		o.Now = func() time.Time { return at }
		o.PanelFactory = func(d nav.Descriptor, deps PanelDeps) Panel {
			if d.Content.Kind == nav.KindUsers {
				panic("users panel exploded")
			}
			return DefaultPanelFactory(d, deps)
		}
	})
	drain(m, m.Init())
	drain(m, selectRow(t, m, "users"))

	s := m.State()
	if !s.BannerShown() {
		t.Fatal("banner hidden after build failure")
	}
	if s.Banner.Code != model.CodeRenderError || s.Banner.Message != "Error rendering content" {
		t.Fatalf("banner = %+v", s.Banner)
	}
	if !s.Banner.Timestamp.Equal(at) {
		t.Fatalf("timestamp = %v, want %v", s.Banner.Timestamp, at)
	}
	if !strings.Contains(m.View(), "Error rendering content") {
		t.Fatal("banner not rendered")
	}
	if _, ok := m.Panel().(*emptyPanel); !ok {
		t.Fatalf("panel = %T, want empty fallback", m.Panel())
	}

	// Unrelated navigation keeps the banner until it is dismissed.
	drain(m, selectRow(t, m, "dashboard"))
	if !m.State().BannerShown() {
		t.Fatal("banner auto-dismissed")
	}
	drain(m, press(m, runes("x")))
	if m.State().BannerShown() {
		t.Fatal("banner still shown after x")
	}
}

func TestReportErrorMsg_ShowsBanner(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	drain(m, ReportError(model.NewAppError(model.CodeAPIError, "boom", time.Now())))
	if !m.State().BannerShown() || m.State().Banner.Message != "boom" {
		t.Fatalf("banner = %+v", m.State().Banner)
	}

	// Click the close control on the banner row.
	_, cmd := m.Update(tea.MouseMsg{X: m.width - 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	drain(m, cmd)
	if m.State().BannerShown() {
		t.Fatal("banner still shown after clicking close")
	}
}

func TestAccountMenu(t *testing.T) {
	t.Parallel()

	shell, _ := newTestShell(t)
	app := NewApp(NewShellPage(shell), NewProfilePage(shell.Theme))
	drain(app, app.Init())

	// Profile
	drain(app, press(app, runes("m"), keyEnter))
	if got := app.ActivePage(); got != PageProfile {
		t.Fatalf("page = %q, want profile", got)
	}
	if !strings.Contains(app.View(), "john@example.com") {
		t.Fatal("profile page missing email")
	}
	drain(app, press(app, keyEsc))
	if got := app.ActivePage(); got != PageShell {
		t.Fatalf("page = %q, want shell", got)
	}

	// Account Settings
	drain(app, press(app, runes("m"), keyDown, keyEnter))
	if got := shell.State().ActiveID; got != "settings.general" {
		t.Fatalf("active = %q, want settings.general", got)
	}
	if !shell.State().Expanded.Has("settings") {
		t.Fatal("settings not expanded for the selected child")
	}
	if got := shell.sidebarCursor; got != rowIndex(shell, "settings.general") {
		t.Fatalf("cursor = %d, want settings.general row", got)
	}

	// Sign Out skips the divider.
	left := drain(app, press(app, runes("m"), keyDown, keyDown, keyEnter))
	if len(left) != 1 {
		t.Fatalf("sign out produced %v, want quit", left)
	}
}

func TestTooSmall(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Fatal("expected size warning")
	}
}

func TestNavigateUnknownFallsBack(t *testing.T) {
	t.Parallel()

	m, _ := newTestShell(t)
	drain(m, m.Init())
	drain(m, m.navigate("nowhere"))
	if _, ok := m.Panel().(*DashboardPanel); !ok {
		t.Fatalf("panel = %T, want dashboard fallback", m.Panel())
	}
	if !strings.Contains(m.View(), "Dashboard") {
		t.Fatal("fallback title missing")
	}
	_ = mustLookup(t, m, "dashboard")
}
