// Package ui holds the terminal colour helpers and tables shared by dayclock's
// commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Swatch renders a block in the session colour hex followed by the code
// itself. Codes pterm cannot parse are printed as-is.
func Swatch(hex string) string {
	rgb, err := pterm.NewRGBFromHEX(hex)
	if err != nil {
		return hex
	}

	return rgb.Sprint("██") + " " + hex
}
