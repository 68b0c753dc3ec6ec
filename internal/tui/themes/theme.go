package themes

import (
	"github.com/Veraticus/verdict/internal/presenter"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	BadgeOK       lipgloss.Style
	BadgeReview   lipgloss.Style
	BadgeBlock    lipgloss.Style
	BadgeError    lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Italic        lipgloss.Style
	Meta          lipgloss.Style
	Code          lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
}

// Badge returns the style for a status badge. Every variant has exactly one
// style.
func (t Theme) Badge(b presenter.Badge) lipgloss.Style {
	switch b {
	case presenter.BadgeOK:
		return t.BadgeOK
	case presenter.BadgeReview:
		return t.BadgeReview
	case presenter.BadgeBlock:
		return t.BadgeBlock
	default:
		return t.BadgeError
	}
}

// BarColors returns the gradient endpoints for the confidence bar.
func (t Theme) BarColors() (string, string) {
	return string(t.Primary), string(t.Success)
}

func badge(bg lipgloss.Color, fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Bold(true).
		Padding(0, 1)
}

// Default is the default theme.
var Default = Theme{
	// Colors
	Primary: lipgloss.Color("#7c3aed"),
	Success: lipgloss.Color("#10b981"),
	Warning: lipgloss.Color("#f59e0b"),
	Error:   lipgloss.Color("#ef4444"),
	Border:  lipgloss.Color("#404040"),
	Muted:   lipgloss.Color("#737373"),

	// Badge styles
	BadgeOK:     badge(lipgloss.Color("#10b981"), lipgloss.Color("#0a0a0a")),
	BadgeReview: badge(lipgloss.Color("#f59e0b"), lipgloss.Color("#0a0a0a")),
	BadgeBlock:  badge(lipgloss.Color("#ef4444"), lipgloss.Color("#fafafa")),
	BadgeError:  badge(lipgloss.Color("#737373"), lipgloss.Color("#fafafa")),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#f59e0b")),
	Meta: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Code: lipgloss.NewStyle().
		Background(lipgloss.Color("#262626")).
		Foreground(lipgloss.Color("#e5e5e5")).
		Padding(0, 1),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	// Colors
	Primary: lipgloss.Color("#cba6f7"),
	Success: lipgloss.Color("#a6e3a1"),
	Warning: lipgloss.Color("#f9e2af"),
	Error:   lipgloss.Color("#f38ba8"),
	Border:  lipgloss.Color("#45475a"),
	Muted:   lipgloss.Color("#6c7086"),

	// Badge styles
	BadgeOK:     badge(lipgloss.Color("#a6e3a1"), lipgloss.Color("#1e1e2e")),
	BadgeReview: badge(lipgloss.Color("#f9e2af"), lipgloss.Color("#1e1e2e")),
	BadgeBlock:  badge(lipgloss.Color("#f38ba8"), lipgloss.Color("#1e1e2e")),
	BadgeError:  badge(lipgloss.Color("#6c7086"), lipgloss.Color("#cdd6f4")),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#f9e2af")),
	Meta: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")),
	Code: lipgloss.NewStyle().
		Background(lipgloss.Color("#313244")).
		Foreground(lipgloss.Color("#cdd6f4")).
		Padding(0, 1),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(1, 2),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Italic(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
