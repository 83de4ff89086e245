package timer

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles of the terminal timer.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
}

// NewStyle returns the styles for a dark or light terminal background.
func NewStyle(darkTheme bool) Style {
	main := lipgloss.Color("#1F2937")
	secondary := lipgloss.Color("#4B5563")

	if darkTheme {
		main = lipgloss.Color("#F9FAFB")
		secondary = lipgloss.Color("#D1D5DB")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Faint(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}

// swatch renders a coloured square followed by the colour code.
func swatch(color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render("■") + " " + color
}
