// Package theme holds the color palettes the timer can be rendered with.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme string

const (
	Dracula       Theme = "dracula"
	SolarizedDark Theme = "solarized-dark"
	GruvboxDark   Theme = "gruvbox-dark"
)

// Default is used when no theme is configured.
const Default = Dracula

// Palette is the set of colors a frame is drawn with. Accent colors the focus
// phase, OK colors both breaks.
type Palette struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	OK         lipgloss.Color
}

var palettes = map[Theme]Palette{
	Dracula: {
		Background: lipgloss.Color("#282a36"),
		Accent:     lipgloss.Color("#bd93f9"),
		OK:         lipgloss.Color("#50fa7b"),
	},
	SolarizedDark: {
		Background: lipgloss.Color("#002b36"),
		Accent:     lipgloss.Color("#268bd2"),
		OK:         lipgloss.Color("#859900"),
	},
	GruvboxDark: {
		Background: lipgloss.Color("#282828"),
		Accent:     lipgloss.Color("#fabd2f"),
		OK:         lipgloss.Color("#b8bb26"),
	},
}

// All returns every known theme in display order.
func All() []Theme {
	return []Theme{Dracula, SolarizedDark, GruvboxDark}
}

// Parse resolves a theme name. Matching ignores case and surrounding spaces.
func Parse(name string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := palettes[t]; !ok {
		return "", fmt.Errorf("unknown theme %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns the theme identifiers accepted by Parse.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = string(t)
	}
	return names
}

// Palette returns the colors for t, falling back to the default theme for
// identifiers that did not come from Parse.
func (t Theme) Palette() Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Default]
}

func (t Theme) String() string { return string(t) }
