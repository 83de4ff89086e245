package timer

import (
	"slices"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/dayclock/internal/config"
)

// SaveFields receives the answers of a save form.
type SaveFields struct {
	Name        string
	Color       string
	CustomColor string
}

// ChosenColor returns the custom colour if one was entered, otherwise the
// palette selection.
func (f *SaveFields) ChosenColor() string {
	if c := strings.TrimSpace(f.CustomColor); c != "" {
		return c
	}

	return f.Color
}

// NewSaveForm returns a form asking for the name and colour of a stopped
// session. The draft colour is preselected and added to the palette if
// missing.
func NewSaveForm(draft Draft, palette []string, fields *SaveFields) *huh.Form {
	*fields = SaveFields{Color: draft.Color}

	if fields.Color != "" && !slices.Contains(palette, fields.Color) {
		palette = append([]string{fields.Color}, palette...)
	}

	options := make([]huh.Option[string], 0, len(palette))
	for _, c := range palette {
		options = append(options, huh.NewOption(swatch(c), c).Selected(c == fields.Color))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session name").
				Placeholder(draft.Name).
				Value(&fields.Name),
			huh.NewSelect[string]().
				Title("Colour").
				Options(options...).
				Value(&fields.Color),
			huh.NewInput().
				Title("Custom colour").
				Description("Optional hex code that overrides the selection").
				Placeholder("#RRGGBB").
				Validate(ValidateColor).
				Value(&fields.CustomColor),
		),
	).WithShowHelp(true)
}

// ValidateColor accepts a blank string or a #RRGGBB hex code.
func ValidateColor(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || config.IsHexColor(s) {
		return nil
	}

	return errInvalidColor.Fmt(s)
}
