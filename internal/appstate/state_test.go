package appstate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/dashshell/internal/model"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := New("", true)
	assert.Equal(t, "dashboard", s.ActiveID)
	assert.Empty(t, s.Expanded)
	assert.Equal(t, ThemeLight, s.Theme)
	assert.True(t, s.SidebarOpen)
	assert.False(t, s.BannerShown())

	assert.Equal(t, ThemeDark, New("dark", false).Theme)
}

func TestClickParentTwice(t *testing.T) {
	t.Parallel()

	s0 := New(ThemeLight, true)
	s1 := s0.Click("users", true, nav.PolicyActivateAndToggle)
	assert.True(t, s1.Expanded.Has("users"))
	assert.Equal(t, "users", s1.ActiveID)

	s2 := s1.Click("users", true, nav.PolicyActivateAndToggle)
	assert.False(t, s2.Expanded.Has("users"))
	assert.Equal(t, "users", s2.ActiveID)

	assert.False(t, s0.Expanded.Has("users"), "receiver mutated")
	assert.True(t, s1.Expanded.Has("users"), "receiver mutated")
}

func TestClickToggleOnlyKeepsActive(t *testing.T) {
	t.Parallel()

	s := New(ThemeLight, true).Activate("settings.general")
	s = s.Click("analytics", true, nav.PolicyToggleOnly)
	assert.Equal(t, "settings.general", s.ActiveID)
	assert.True(t, s.Expanded.Has("analytics"))
}

func TestClickChildLeavesExpansion(t *testing.T) {
	t.Parallel()

	s := New(ThemeLight, true).Click("users", true, nav.PolicyActivateAndToggle)
	s = s.Click("users.add", false, nav.PolicyActivateAndToggle)
	assert.Equal(t, "users.add", s.ActiveID)
	assert.Equal(t, []string{"users"}, s.Expanded.IDs())
}

func TestExpandIsIdempotent(t *testing.T) {
	t.Parallel()

	s := New(ThemeLight, true).Expand("users").Expand("users").Expand("")
	assert.Equal(t, []string{"users"}, s.Expanded.IDs())
}

func TestThemeAndSidebarToggles(t *testing.T) {
	t.Parallel()

	s := New(ThemeLight, true)
	assert.Equal(t, ThemeDark, s.ToggleTheme().Theme)
	assert.Equal(t, ThemeLight, s.ToggleTheme().ToggleTheme().Theme)
	assert.False(t, s.ToggleSidebar().SidebarOpen)
}

func TestBannerStateMachine(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err := model.NewAppError(model.CodeRenderError, "Error rendering content", at)

	s := New(ThemeLight, true)
	shown := s.ReportError(err)
	require.True(t, shown.BannerShown())
	assert.Equal(t, "Error rendering content", shown.Banner.Message)

	err.Message = "changed later"
	assert.Equal(t, "Error rendering content", shown.Banner.Message)

	assert.False(t, shown.DismissError().BannerShown())
	assert.False(t, s.ReportError(nil).BannerShown())
}

func TestStateSerializes(t *testing.T) {
	t.Parallel()

	s := New(ThemeDark, false).Click("users", true, nav.PolicyActivateAndToggle)
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"activeId":"users","expanded":["users"],"theme":"dark","sidebarOpen":false}`, string(b))

	var back State
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "users", back.ActiveID)
	assert.True(t, back.Expanded.Has("users"))
}
