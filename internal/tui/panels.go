package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/dashshell/internal/nav"
)

// Panel is the content unit rendered for the active section. A panel is
// mounted when its section becomes active and closed when another one does.
type Panel interface {
	// Owner is the unique mount ID used to fence async results.
	Owner() int
	// Init mounts the panel and starts any fetch it needs.
	Init() tea.Cmd
	// Update handles content-area keys and the panel's own async messages.
	Update(msg tea.Msg) tea.Cmd
	View(ctx ViewContext) string
	// Close cancels in-flight work. Results arriving later are dropped.
	Close()
}

// Fetcher is the mock data source panels load from.
type Fetcher interface {
	Fetch(ctx context.Context, key string) (any, error)
}

// HelloCaller issues the placeholder GET /hello request.
type HelloCaller interface {
	Get(ctx context.Context) (json.RawMessage, error)
}

// PanelDeps provides dependencies for panel constructors.
type PanelDeps struct {
	Owner   int
	Fetcher Fetcher
	Hello   HelloCaller
	Rand    *rand.Rand
	Modal   ModalContext
}

// PanelFactory builds the panel for a descriptor.
type PanelFactory func(d nav.Descriptor, deps PanelDeps) Panel

// DefaultPanelFactory maps content kinds to panels.
func DefaultPanelFactory(d nav.Descriptor, deps PanelDeps) Panel {
	switch d.Content.Kind {
	case nav.KindDashboard:
		return NewDashboardPanel(d, deps)
	case nav.KindUsers:
		return NewUsersPanel(d, deps)
	case nav.KindAnalytics:
		return NewAnalyticsPanel(d, deps)
	case nav.KindChartGallery:
		return NewGalleryPanel(d, deps)
	default:
		return NewGenericPanel(d, deps)
	}
}

// buildPanel runs factory and converts a panic into an error so the shell
// can report it on the banner and fall back to an empty content area.
func buildPanel(factory PanelFactory, d nav.Descriptor, deps PanelDeps) (p Panel, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tui: building panel for %s: %v", d.ID, r)
			p, err = nil, fmt.Errorf("building %s: %v", d.ID, r)
		}
	}()
	p = factory(d, deps)
	if p == nil {
		return nil, fmt.Errorf("building %s: no panel", d.ID)
	}
	return p, nil
}

// emptyPanel fills the content area when a panel could not be built.
type emptyPanel struct {
	owner int
}

func (p *emptyPanel) Owner() int                { return p.owner }
func (p *emptyPanel) Init() tea.Cmd             { return nil }
func (p *emptyPanel) Update(_ tea.Msg) tea.Cmd  { return nil }
func (p *emptyPanel) View(_ ViewContext) string { return "" }
func (p *emptyPanel) Close()                    {}
