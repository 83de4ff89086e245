// Package report prints command outcomes to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/dayclock/internal/models"
	"github.com/ayoisaiah/dayclock/internal/osutil"
	"github.com/ayoisaiah/dayclock/internal/timeutil"
	"github.com/ayoisaiah/dayclock/internal/ui"
)

func SessionSaved(sess *models.Session) {
	pterm.Success.Printfln(
		"saved %s (%s)",
		ui.Highlight(sess.Name),
		timeutil.FormatMinutes(sess.Duration),
	)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
