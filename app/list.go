package app

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/dayclock/chart"
	"github.com/ayoisaiah/dayclock/internal/models"
	"github.com/ayoisaiah/dayclock/internal/timeutil"
	"github.com/ayoisaiah/dayclock/internal/ui"
)

const (
	noSessionsMsg = "No sessions found"

	sortByStart = "start"
	sortByName  = "name"
)

// parseDay interprets the --date flag. An empty value yields the zero time.
func parseDay(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return timeutil.FromStr(s, now)
}

// sessionsOn returns the stored sessions, restricted to those overlapping
// day unless it is zero.
func sessionsOn(e *env, day time.Time) []models.Session {
	sessions := e.sessions.ListSessions()
	if day.IsZero() {
		return sessions
	}

	return chart.OnDay(sessions, day, time.Local)
}

// sessionsClippedTo is like sessionsOn but trims sessions crossing midnight
// to the part that falls on day, for drawing and totals.
func sessionsClippedTo(e *env, day time.Time) []models.Session {
	sessions := e.sessions.ListSessions()
	if day.IsZero() {
		return sessions
	}

	return chart.ClipToDay(sessions, day, time.Local)
}

// sortSessions orders sessions in place: newest first by start time, or
// naturally by name with ties broken by start time.
func sortSessions(sessions []models.Session, by string) error {
	switch by {
	case sortByStart, "":
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].StartTime.After(sessions[j].StartTime)
		})
	case sortByName:
		sort.SliceStable(sessions, func(i, j int) bool {
			if sessions[i].Name == sessions[j].Name {
				return sessions[i].StartTime.Before(sessions[j].StartTime)
			}

			return natural.Less(sessions[i].Name, sessions[j].Name)
		})
	default:
		return errUnknownSort.Fmt(by)
	}

	return nil
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []models.Session, layout string) error {
	tableBody := make([][]string, 0, len(sessions)+1)

	tableBody = append(tableBody, []string{
		"#", "ID", "NAME", "COLOR", "START", "END", "DURATION",
	})

	for i := range sessions {
		sess := &sessions[i]

		start, end := ui.Red("invalid"), ""
		if sess.Valid() {
			start = sess.StartTime.Format(layout)
			end = sess.EndTime.Format(layout)
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(i + 1),
			ui.Cyan(sess.ID),
			sess.Name,
			ui.Swatch(sess.Color),
			start,
			end,
			ui.Green(timeutil.FormatMinutes(sess.Duration)),
		})
	}

	return ui.PrintTable(tableBody, w)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// listSessions prints out a table of sessions.
func listSessions(w io.Writer, sessions []models.Session, layout string) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	return printSessionsTable(w, sessions, layout)
}

// printLegend prints the name, colour and total time of each activity.
func printLegend(w io.Writer, entries []chart.LegendEntry) error {
	if len(entries) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	tableBody := [][]string{{"NAME", "COLOR", "TIME"}}

	for _, entry := range entries {
		tableBody = append(tableBody, []string{
			entry.Name,
			ui.Swatch(entry.Color),
			ui.Green(timeutil.FormatMinutes(entry.Minutes)),
		})
	}

	return ui.PrintTable(tableBody, w)
}
