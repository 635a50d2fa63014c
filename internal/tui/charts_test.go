package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestChartHelpers_TooSmall(t *testing.T) {
	t.Parallel()

	s := series{Name: "a", Values: []float64{1, 2, 3}, Color: lipgloss.Color("#000000")}
	if got := renderTimeSeries(5, 2, time.Now(), time.Hour, s); got != "" {
		t.Fatalf("time series = %q, want empty", got)
	}
	if got := renderBars(5, 2, []string{"x"}, s); got != "" {
		t.Fatalf("bars = %q, want empty", got)
	}
	if got := renderBars(40, 10, []string{"x"}); got != "" {
		t.Fatalf("bars without data = %q, want empty", got)
	}
	if got := renderShares(40, 1, []slice{{Label: "a", Value: 1}, {Label: "b", Value: 2}}); got != "" {
		t.Fatalf("shares = %q, want empty", got)
	}
	if got := renderScatter(40, 10, nil, []series{s}, nil); got != "" {
		t.Fatalf("scatter = %q, want empty", got)
	}
}

func TestChartHelpers_Render(t *testing.T) {
	t.Parallel()

	a := series{Name: "a", Values: []float64{3, 1, 4, 1, 5}, Color: lipgloss.Color("#FF0000")}
	b := series{Name: "b", Values: []float64{2, 7, 1, 8, 2}, Color: lipgloss.Color("#00FF00")}

	checks := map[string]string{
		"time series": renderTimeSeries(60, 10, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 24*time.Hour, a, b),
		"bars":        renderBars(60, 10, []string{"Q1", "Q2", "Q3", "Q4", "Q5"}, a, b),
		"shares":      renderShares(40, 4, []slice{{Label: "Desktop", Value: 45}, {Label: "Mobile", Value: 35}}),
		"scatter":     renderScatter(60, 10, []float64{1, 2, 3, 4, 5}, []series{a, b}, []rune{'●', '◆'}),
	}
	for name, out := range checks {
		if strings.TrimSpace(out) == "" {
			t.Errorf("%s rendered nothing", name)
		}
		if h := lipgloss.Height(out); h > 10 {
			t.Errorf("%s height = %d, want <= 10", name, h)
		}
	}
}

func TestRenderLegend(t *testing.T) {
	t.Parallel()

	ctx := ViewContext{Theme: LightTheme()}
	out := renderLegend(ctx,
		series{Name: "Page Views", Color: lipgloss.Color("#123456")},
		series{Name: "New Users", Color: lipgloss.Color("#654321")},
	)
	for _, want := range []string{"Page Views", "New Users", "■"} {
		if !strings.Contains(out, want) {
			t.Errorf("legend missing %q", want)
		}
	}
}
