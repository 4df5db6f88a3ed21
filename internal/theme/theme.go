// Package theme defines the reader's color schemes.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is one named color scheme.
type Theme struct {
	Name string

	// Text colors
	Text          lipgloss.Color
	Muted         lipgloss.Color
	VerseNumber   lipgloss.Color
	Summary       lipgloss.Color
	FootnoteLabel lipgloss.Color
	Error         lipgloss.Color

	// UI element colors
	Border       lipgloss.Color
	BorderActive lipgloss.Color
	Highlight    lipgloss.Color
}

var (
	CatppuccinMocha = Theme{
		Name:          "Catppuccin Mocha",
		Text:          lipgloss.Color("#cdd6f4"),
		Muted:         lipgloss.Color("#6c7086"),
		VerseNumber:   lipgloss.Color("#f5c2e7"),
		Summary:       lipgloss.Color("#a6adc8"),
		FootnoteLabel: lipgloss.Color("#89b4fa"),
		Error:         lipgloss.Color("#f38ba8"),
		Border:        lipgloss.Color("#45475a"),
		BorderActive:  lipgloss.Color("#89b4fa"),
		Highlight:     lipgloss.Color("#45475a"),
	}

	Dracula = Theme{
		Name:          "Dracula",
		Text:          lipgloss.Color("#f8f8f2"),
		Muted:         lipgloss.Color("#6272a4"),
		VerseNumber:   lipgloss.Color("#ff79c6"),
		Summary:       lipgloss.Color("#6272a4"),
		FootnoteLabel: lipgloss.Color("#bd93f9"),
		Error:         lipgloss.Color("#ff5555"),
		Border:        lipgloss.Color("#44475a"),
		BorderActive:  lipgloss.Color("#bd93f9"),
		Highlight:     lipgloss.Color("#44475a"),
	}

	SolarizedDark = Theme{
		Name:          "Solarized Dark",
		Text:          lipgloss.Color("#839496"),
		Muted:         lipgloss.Color("#586e75"),
		VerseNumber:   lipgloss.Color("#d33682"),
		Summary:       lipgloss.Color("#586e75"),
		FootnoteLabel: lipgloss.Color("#268bd2"),
		Error:         lipgloss.Color("#dc322f"),
		Border:        lipgloss.Color("#073642"),
		BorderActive:  lipgloss.Color("#268bd2"),
		Highlight:     lipgloss.Color("#073642"),
	}

	RosePineDawn = Theme{
		Name:          "Rosé Pine Dawn",
		Text:          lipgloss.Color("#575279"),
		Muted:         lipgloss.Color("#9893a5"),
		VerseNumber:   lipgloss.Color("#d7827e"),
		Summary:       lipgloss.Color("#797593"),
		FootnoteLabel: lipgloss.Color("#907aa9"),
		Error:         lipgloss.Color("#b4637a"),
		Border:        lipgloss.Color("#f2e9e1"),
		BorderActive:  lipgloss.Color("#907aa9"),
		Highlight:     lipgloss.Color("#f2e9e1"),
	}
)

// AllThemes returns every available theme in cycle order.
func AllThemes() []Theme {
	return []Theme{
		CatppuccinMocha,
		Dracula,
		SolarizedDark,
		RosePineDawn,
	}
}

// GetTheme returns a theme by display name, defaulting to Catppuccin Mocha.
func GetTheme(name string) Theme {
	for _, t := range AllThemes() {
		if t.Name == name {
			return t
		}
	}
	return CatppuccinMocha
}

// Next returns the theme after t in cycle order.
func Next(t Theme) Theme {
	all := AllThemes()
	for i, candidate := range all {
		if candidate.Name == t.Name {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
