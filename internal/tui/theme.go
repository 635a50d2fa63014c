package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme is one colour palette. Views never look up the active theme
// themselves; it arrives through ViewContext.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	StatusBg   lipgloss.Color
	StatusText lipgloss.Color
}

// LightTheme is the default palette.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Primary:    lipgloss.Color("#1976D2"),
		Secondary:  lipgloss.Color("#DC004E"),
		Text:       lipgloss.Color("#212121"),
		Muted:      lipgloss.Color("#757575"),
		Surface:    lipgloss.Color("#F5F5F5"),
		Border:     lipgloss.Color("#BDBDBD"),
		Error:      lipgloss.Color("#D32F2F"),
		Success:    lipgloss.Color("#2E7D32"),
		Warning:    lipgloss.Color("#ED6C02"),
		StatusBg:   lipgloss.Color("#1976D2"),
		StatusText: lipgloss.Color("#FFFFFF"),
	}
}

// DarkTheme is the palette behind the dark-mode toggle.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("#90CAF9"),
		Secondary:  lipgloss.Color("#F48FB1"),
		Text:       lipgloss.Color("#E0E0E0"),
		Muted:      lipgloss.Color("#9E9E9E"),
		Surface:    lipgloss.Color("#1E1E1E"),
		Border:     lipgloss.Color("#424242"),
		Error:      lipgloss.Color("#EF5350"),
		Success:    lipgloss.Color("#66BB6A"),
		Warning:    lipgloss.Color("#FFA726"),
		StatusBg:   lipgloss.Color("#000080"),
		StatusText: lipgloss.Color("#FFFFFF"),
	}
}

// themeFile is the on-disk override format. Empty fields keep the built-in
// colour.
type themeFile struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Surface    string `yaml:"surface"`
	Border     string `yaml:"border"`
	Error      string `yaml:"error"`
	Success    string `yaml:"success"`
	Warning    string `yaml:"warning"`
	StatusBg   string `yaml:"status_bg"`
	StatusText string `yaml:"status_text"`
}

func (f themeFile) apply(t Theme) Theme {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&t.Primary, f.Primary)
	set(&t.Secondary, f.Secondary)
	set(&t.Text, f.Text)
	set(&t.Muted, f.Muted)
	set(&t.Surface, f.Surface)
	set(&t.Border, f.Border)
	set(&t.Error, f.Error)
	set(&t.Success, f.Success)
	set(&t.Warning, f.Warning)
	set(&t.StatusBg, f.StatusBg)
	set(&t.StatusText, f.StatusText)
	return t
}

// Themes holds the light and dark palettes the toggle switches between.
type Themes struct {
	Light Theme
	Dark  Theme
}

// DefaultThemes returns the built-in palettes.
func DefaultThemes() Themes {
	return Themes{Light: LightTheme(), Dark: DarkTheme()}
}

// Get returns the palette for name; anything but "dark" is light.
func (ts Themes) Get(name string) Theme {
	if name == "dark" {
		return ts.Dark
	}
	return ts.Light
}

// LoadThemes reads optional <configDir>/themes/{light,dark}.yml overrides on
// top of the built-in palettes. Missing files are not an error. On a parse
// error the built-in palette is kept for that theme and the error returned.
func LoadThemes(configDir string) (Themes, error) {
	ts := DefaultThemes()
	if configDir == "" {
		return ts, nil
	}

	var errs []error
	load := func(base Theme) Theme {
		path := filepath.Join(configDir, "themes", base.Name+".yml")
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				errs = append(errs, fmt.Errorf("reading theme %s: %w", path, err))
			}
			return base
		}
		var f themeFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			errs = append(errs, fmt.Errorf("parsing theme %s: %w", path, err))
			return base
		}
		return f.apply(base)
	}

	ts.Light = load(ts.Light)
	ts.Dark = load(ts.Dark)
	return ts, errors.Join(errs...)
}

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func (t Theme) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) errorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}

func (t Theme) card(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
