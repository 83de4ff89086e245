package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
    _                  _            _
 __| | __ _ _   _  ___| | ___   ___| | __
/ _' |/ _' | | | |/ __| |/ _ \ / __| |/ /
| (_| | (_| | |_| | (__| | (_) | (__|   <
\__,_|\__,_|\__, |\___|_|\___/ \___|_|\_\
            |___/`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Language     string
	DefaultColor string
}

// WithPromptConfig returns an Option that asks for the essential settings
// when no config file exists at configPath and stdin is a terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Language:     "en",
		DefaultColor: "#3B82F6",
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure dayclock for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'dayclock edit-config' to change any settings.`, " ").
		Render()

	colors := make([]huh.Option[string], 0, len(DefaultPalette))
	for _, c := range DefaultPalette {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("■") + " " + c
		colors = append(colors, huh.NewOption(label, c).Selected(c == opts.DefaultColor))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display language").
				Options(
					huh.NewOption("English", "en").Selected(true),
					huh.NewOption("فارسی (Persian)", "fa"),
				).
				Value(&opts.Language),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default session colour").
				Options(colors...).
				Value(&opts.DefaultColor),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Display.Language = opts.Language
	c.Session.DefaultColor = opts.DefaultColor
}
