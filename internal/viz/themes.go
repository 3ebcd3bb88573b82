package viz

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/lorenzviz/internal/anim"
)

// Theme defines the chrome colors and how trajectory colors are shown.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color

	// Tint remaps a trajectory color. nil keeps it as is.
	Tint func(colorful.Color) colorful.Color
}

// Available themes
var (
	ThemeNeon = Theme{
		Name:       "neon",
		Primary:    lipgloss.Color("#00f5ff"),
		Secondary:  lipgloss.Color("#ff00ff"),
		Background: lipgloss.Color(anim.Background),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Warning:    lipgloss.Color("#ffaa00"),
		Tint: func(c colorful.Color) colorful.Color {
			_, _, l := c.Hcl()
			return colorful.Hcl(0, 0, l).Clamped()
		},
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Warning:    lipgloss.Color("#ffff00"),
		Tint: func(c colorful.Color) colorful.Color {
			_, _, l := c.Hcl()
			return colorful.Hcl(136, 0.9, l).Clamped()
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeNeon,
		ThemeMono,
		ThemeRetro,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	for i, o := range Themes {
		if o.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// Color resolves a hex color through the theme's tint. Unparseable input
// falls back to white.
func (t Theme) Color(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	if t.Tint != nil {
		c = t.Tint(c)
	}
	return c
}

// BackgroundColor is the theme background as a colorful value.
func (t Theme) BackgroundColor() colorful.Color {
	c, err := colorful.Hex(string(t.Background))
	if err != nil {
		return colorful.Color{}
	}
	return c
}
