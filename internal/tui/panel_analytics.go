package tui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/dashshell/internal/model"
	"github.com/tinytelemetry/dashshell/internal/nav"
)

// ExportNotice is shown by the analytics Export Charts action.
const ExportNotice = "Export functionality would be implemented here"

const analyticsDays = 30

var (
	revenueMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	revenueValues = []float64{20, 14, 23, 25, 22, 16}
)

type kpi struct {
	Label string
	Value string
}

var analyticsKPIs = []kpi{
	{"Total Sessions", "24,567"},
	{"Bounce Rate", "34.2%"},
	{"Avg. Session Duration", "4m 32s"},
	{"Conversion Rate", "2.8%"},
}

// AnalyticsPanel shows KPI cards and three charts. The daily series are
// regenerated on mount and on refresh.
type AnalyticsPanel struct {
	desc      nav.Descriptor
	owner     int
	keys      KeyMap
	rng       *rand.Rand
	modal     ModalContext
	data      *resource[model.Acknowledgement]
	spinner   spinner.Model
	start     time.Time
	pageViews []float64
	newUsers  []float64
}

func NewAnalyticsPanel(d nav.Descriptor, deps PanelDeps) *AnalyticsPanel {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p := &AnalyticsPanel{
		desc:    d,
		owner:   deps.Owner,
		keys:    DefaultKeyMap(),
		rng:     rng,
		modal:   deps.Modal,
		data:    newResource[model.Acknowledgement](deps.Owner, d.Content.Resource, deps.Fetcher),
		spinner: newLoadingSpinner(),
	}
	p.regenerate()
	return p
}

// regenerate draws fresh page view (500-1499) and new user (10-59) counts
// for the last 30 days.
func (p *AnalyticsPanel) regenerate() {
	today := time.Now().Truncate(24 * time.Hour)
	p.start = today.AddDate(0, 0, -(analyticsDays - 1))
	p.pageViews = make([]float64, analyticsDays)
	p.newUsers = make([]float64, analyticsDays)
	for i := range analyticsDays {
		p.pageViews[i] = float64(500 + p.rng.IntN(1000))
		p.newUsers[i] = float64(10 + p.rng.IntN(50))
	}
}

func (p *AnalyticsPanel) Owner() int { return p.owner }

func (p *AnalyticsPanel) Init() tea.Cmd {
	return tea.Batch(p.data.fetch(), p.spinner.Tick)
}

func (p *AnalyticsPanel) Close() { p.data.close() }

func (p *AnalyticsPanel) Update(msg tea.Msg) tea.Cmd {
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
		switch {
		case key.Matches(msg, p.keys.Retry):
			if !p.data.result.Loading {
				p.regenerate()
				return tea.Batch(p.data.fetch(), p.spinner.Tick)
			}
		case key.Matches(msg, p.keys.Export):
			return pushModalCmd(NewNoticeModal("Export Charts", ExportNotice, p.modal))
		}
	}
	return nil
}

func (p *AnalyticsPanel) View(ctx ViewContext) string {
	res := p.data.result
	switch {
	case res.Loading:
		return renderLoadingPlaceholder(ctx, p.spinner, "Loading analytics...", ctx.Height)
	case res.Err != nil:
		return renderFetchError(ctx, "Error loading analytics", res.Err.Message)
	}

	t := ctx.Theme
	cardWidth := max((ctx.Width-8)/4, 18)
	cards := make([]string, 0, len(analyticsKPIs))
	for _, k := range analyticsKPIs {
		cards = append(cards, statCard(ctx, cardWidth, k.Label, k.Value, t.Primary))
	}
	kpis := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if ctx.Width < 4*(cardWidth+2) {
		kpis = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]),
		)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		t.muted().Render(p.desc.Content.Description),
		"  ",
		t.muted().Render("[r] Refresh Data  [e] Export Charts"),
	)

	sections := []string{header, "", kpis}
	remaining := ctx.Height - lipgloss.Height(header) - lipgloss.Height(kpis) - 1

	trafficSeries := []series{
		{Name: "Page Views", Values: p.pageViews, Color: t.Primary},
		{Name: "New Users", Values: p.newUsers, Color: t.Secondary},
	}
	if remaining >= 8 {
		chartHeight := min(remaining/2, 12)
		sections = append(sections,
			t.title().Render("Traffic Overview (Last 30 Days)")+"  "+renderLegend(ctx, trafficSeries...),
			renderTimeSeries(ctx.Width-2, chartHeight, p.start, 24*time.Hour, trafficSeries...),
		)
		remaining -= chartHeight + 1
	}

	if remaining >= 6 {
		half := (ctx.Width - 4) / 2
		devices := renderShares(half, 4, []slice{
			{Label: "Desktop", Value: 45, Color: t.Primary},
			{Label: "Mobile", Value: 35, Color: t.Secondary},
			{Label: "Tablet", Value: 15, Color: t.Success},
			{Label: "Other", Value: 5, Color: t.Warning},
		})
		revenue := renderBars(half, max(remaining-2, 4), revenueMonths,
			series{Name: "Revenue", Values: revenueValues, Color: t.Success})
		left := lipgloss.JoinVertical(lipgloss.Left, t.title().Render("Traffic by Device"), devices,
			t.muted().Render("Desktop 45% • Mobile 35% • Tablet 15% • Other 5%"))
		right := lipgloss.JoinVertical(lipgloss.Left, t.title().Render("Monthly Revenue"), revenue)
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(half+2).Render(left), right))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
