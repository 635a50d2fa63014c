package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/dashshell/internal/nav"
)

// ChartType selects what the gallery panel draws.
type ChartType int

const (
	ChartLine ChartType = iota
	ChartBar
	ChartScatter
	ChartPie
)

var chartTypeNames = []string{"Line", "Bar", "Scatter", "Pie"}

func (c ChartType) String() string { return chartTypeNames[c] }

// GalleryPanel cycles through sample charts of each type.
type GalleryPanel struct {
	desc  nav.Descriptor
	owner int
	keys  KeyMap
	chart ChartType
}

func NewGalleryPanel(d nav.Descriptor, deps PanelDeps) *GalleryPanel {
	return &GalleryPanel{desc: d, owner: deps.Owner, keys: DefaultKeyMap()}
}

func (p *GalleryPanel) Owner() int    { return p.owner }
func (p *GalleryPanel) Init() tea.Cmd { return nil }
func (p *GalleryPanel) Close()        {}

// Chart returns the selected chart type.
func (p *GalleryPanel) Chart() ChartType { return p.chart }

func (p *GalleryPanel) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := ChartType(len(chartTypeNames))
	switch {
	case key.Matches(km, p.keys.Left):
		p.chart = (p.chart - 1 + n) % n
	case key.Matches(km, p.keys.Right):
		p.chart = (p.chart + 1) % n
	case key.Matches(km, p.keys.ChartSelect):
		p.chart = ChartType(km.String()[0] - '1')
	}
	return nil
}

func (p *GalleryPanel) View(ctx ViewContext) string {
	t := ctx.Theme
	tabs := make([]string, 0, len(chartTypeNames))
	for i, name := range chartTypeNames {
		label := " " + string(rune('1'+i)) + " " + name + " "
		if ChartType(i) == p.chart {
			tabs = append(tabs, lipgloss.NewStyle().Bold(true).Foreground(t.StatusText).Background(t.Primary).Render(label))
		} else {
			tabs = append(tabs, t.muted().Render(label))
		}
	}
	selector := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	chartWidth := ctx.Width - 2
	chartHeight := max(ctx.Height-6, 4)

	var title, chart, legend string
	switch p.chart {
	case ChartLine:
		data := []series{
			{Name: "Sales", Values: []float64{20, 14, 23, 25, 22, 16}, Color: t.Primary},
			{Name: "Revenue", Values: []float64{16, 18, 17, 19, 24, 28}, Color: t.Secondary},
		}
		title = "Monthly Sales & Revenue"
		start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		chart = renderTimeSeries(chartWidth, chartHeight, start, 30*24*time.Hour, data...)
		legend = renderLegend(ctx, data...)
	case ChartBar:
		data := []series{
			{Name: "Q1", Values: []float64{45, 32, 67, 23}, Color: t.Primary},
			{Name: "Q2", Values: []float64{52, 38, 71, 29}, Color: t.Secondary},
		}
		title = "Product Sales by Quarter"
		chart = renderBars(chartWidth, chartHeight, []string{"A", "B", "C", "D"}, data...)
		legend = renderLegend(ctx, data...)
	case ChartScatter:
		xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		data := []series{
			{Name: "Dataset 1 ●", Values: []float64{2, 4, 7, 8, 12, 15, 18, 22, 25, 28}, Color: t.Primary},
			{Name: "Dataset 2 ◆", Values: []float64{3, 6, 8, 11, 14, 16, 19, 21, 24, 26}, Color: t.Secondary},
		}
		title = "Correlation Analysis"
		chart = renderScatter(chartWidth, chartHeight, xs, data, []rune{'●', '◆'})
		legend = renderLegend(ctx, data...)
	case ChartPie:
		slices := []slice{
			{Label: "Marketing", Value: 35, Color: t.Primary},
			{Label: "Development", Value: 25, Color: t.Secondary},
			{Label: "Sales", Value: 20, Color: t.Success},
			{Label: "Support", Value: 20, Color: t.Warning},
		}
		title = "Budget Distribution"
		chart = renderShares(chartWidth, min(chartHeight, 2*len(slices)), slices)
		legend = t.muted().Render("Marketing 35% • Development 25% • Sales 20% • Support 20%")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.muted().Render(p.desc.Content.Description),
		selector+"  "+t.muted().Render("←/→ or 1-4"),
		t.title().Render(title),
		chart,
		legend,
	)
}
