package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/dashshell/internal/model"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

// DashboardPanel shows the headline metrics.
type DashboardPanel struct {
	desc    nav.Descriptor
	owner   int
	keys    KeyMap
	data    *resource[model.DashboardMetrics]
	spinner spinner.Model
	trend   []float64
}

func NewDashboardPanel(d nav.Descriptor, deps PanelDeps) *DashboardPanel {
	trend := make([]float64, 24)
	v := 50.0
	for i := range trend {
		if deps.Rand != nil {
			v += deps.Rand.Float64()*10 - 4
		}
		trend[i] = max(v, 0)
	}
	return &DashboardPanel{
		desc:    d,
		owner:   deps.Owner,
		keys:    DefaultKeyMap(),
		data:    newResource[model.DashboardMetrics](deps.Owner, d.Content.Resource, deps.Fetcher),
		spinner: newLoadingSpinner(),
		trend:   trend,
	}
}

func (p *DashboardPanel) Owner() int { return p.owner }

func (p *DashboardPanel) Init() tea.Cmd {
	return tea.Batch(p.data.fetch(), p.spinner.Tick)
}

func (p *DashboardPanel) Close() { p.data.close() }

func (p *DashboardPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ResourceMsg:
		p.data.apply(msg)
	case spinner.TickMsg:
		if p.data.result.Loading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return cmd
		}
	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Retry) && !p.data.result.Loading {
			return tea.Batch(p.data.fetch(), p.spinner.Tick)
		}
	}
	return nil
}

func (p *DashboardPanel) View(ctx ViewContext) string {
	res := p.data.result
	switch {
	case res.Loading:
		return renderLoadingPlaceholder(ctx, p.spinner, "Loading dashboard data...", ctx.Height)
	case res.Err != nil:
		return renderFetchError(ctx, "Error loading dashboard", res.Err.Message)
	case res.Data == nil:
		return ""
	}

	m := *res.Data
	cardWidth := max((ctx.Width-8)/4, 14)
	cards := []string{
		statCard(ctx, cardWidth, "Total Users", formatThousands(m.TotalUsers), ctx.Theme.Primary),
		statCard(ctx, cardWidth, "Active Users", formatThousands(m.ActiveUsers), ctx.Theme.Success),
		statCard(ctx, cardWidth, "Revenue", "$"+formatThousands(m.Revenue), ctx.Theme.Secondary),
		statCard(ctx, cardWidth, "Growth", fmt.Sprintf("%.1f%%", m.Growth), ctx.Theme.Warning),
	}

	var row string
	if ctx.Width >= 4*(cardWidth+2) {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		row = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]),
		)
	}

	sections := []string{ctx.Theme.muted().Render(p.desc.Content.Description), "", row}

	remaining := ctx.Height - lipgloss.Height(row) - 4
	if remaining >= 3 && ctx.Width > 20 {
		sl := sparkline.New(min(ctx.Width-4, len(p.trend)*3), min(remaining-1, 6),
			sparkline.WithStyle(lipgloss.NewStyle().Foreground(ctx.Theme.Primary)),
		)
		sl.PushAll(p.trend)
		sl.Draw()
		sections = append(sections, ctx.Theme.title().Render("Activity"), sl.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func statCard(ctx ViewContext, width int, label, value string, accent lipgloss.Color) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		ctx.Theme.muted().Render(label),
		lipgloss.NewStyle().Bold(true).Foreground(accent).Render(value),
	)
	return ctx.Theme.card(width).Render(body)
}

// formatThousands renders n with comma separators.
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
