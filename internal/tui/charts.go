package tui

import (
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

// series is one named dataset for a chart.
type series struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

// slice is one labelled share of a whole.
type slice struct {
	Label string
	Value float64
	Color lipgloss.Color
}

func renderLegend(ctx ViewContext, entries ...series) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		swatch := lipgloss.NewStyle().Foreground(e.Color).Render("■")
		parts = append(parts, swatch+" "+ctx.Theme.muted().Render(e.Name))
	}
	return strings.Join(parts, "   ")
}

// renderTimeSeries draws each dataset as a braille line over consecutive
// steps starting at start.
func renderTimeSeries(width, height int, start time.Time, step time.Duration, data ...series) string {
	if width < 10 || height < 4 {
		return ""
	}
	ts := timeserieslinechart.New(width, height)
	for _, s := range data {
		for i, v := range s.Values {
			ts.PushDataSet(s.Name, timeserieslinechart.TimePoint{
				Time:  start.Add(time.Duration(i) * step),
				Value: v,
			})
		}
		ts.SetDataSetStyle(s.Name, lipgloss.NewStyle().Foreground(s.Color))
	}
	ts.DrawBrailleAll()
	return ts.View()
}

// renderBars draws a vertical bar chart with one bar per label. With more
// than one series the bars of a group sit side by side, labelled once.
func renderBars(width, height int, labels []string, data ...series) string {
	if width < 10 || height < 4 || len(data) == 0 {
		return ""
	}
	bars := len(labels) * len(data)
	barWidth := max((width-bars)/max(bars, 1), 1)
	bc := barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(barWidth),
	)
	for i, label := range labels {
		for j, s := range data {
			if i >= len(s.Values) {
				continue
			}
			l := ""
			if j == 0 {
				l = label
			}
			bc.Push(barchart.BarData{
				Label: l,
				Values: []barchart.BarValue{
					{Name: s.Name, Value: s.Values[i], Style: lipgloss.NewStyle().Foreground(s.Color).Background(s.Color)},
				},
			})
		}
	}
	bc.Draw()
	return bc.View()
}

// renderShares draws each slice as a horizontal bar; the terminal stand-in
// for a pie chart.
func renderShares(width, height int, slices []slice) string {
	if width < 10 || height < len(slices) {
		return ""
	}
	bc := barchart.New(width, height,
		barchart.WithHorizontalBars(),
		barchart.WithBarGap(0),
		barchart.WithBarWidth(1),
	)
	for _, s := range slices {
		bc.Push(barchart.BarData{
			Label: s.Label,
			Values: []barchart.BarValue{
				{Name: s.Label, Value: s.Value, Style: lipgloss.NewStyle().Foreground(s.Color).Background(s.Color)},
			},
		})
	}
	bc.Draw()
	return bc.View()
}

// renderScatter plots points of each series with its own marker.
func renderScatter(width, height int, xs []float64, data []series, markers []rune) string {
	if width < 10 || height < 4 || len(xs) == 0 {
		return ""
	}
	minY, maxY := 0.0, 0.0
	for _, s := range data {
		for _, v := range s.Values {
			maxY = max(maxY, v)
		}
	}
	lc := linechart.New(width, height, 0, xs[len(xs)-1]+1, minY, maxY+2)
	lc.DrawXYAxisAndLabel()
	for i, s := range data {
		marker := '•'
		if i < len(markers) {
			marker = markers[i]
		}
		for j, v := range s.Values {
			if j >= len(xs) {
				break
			}
			lc.DrawRune(canvas.Float64Point{X: xs[j], Y: v}, marker)
		}
	}
	return lc.View()
}
