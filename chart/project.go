package chart

import (
	"time"

	"github.com/ayoisaiah/dayclock/internal/models"
	"github.com/ayoisaiah/dayclock/internal/timeutil"
)

// defaultLegendColor is used for sessions stored without a colour.
const defaultLegendColor = "#cccccc"

// Arc is the angular projection of a session onto a face.
type Arc struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// Minutes returns the span of the arc in minutes on a face covering scale
// minutes.
func (a Arc) Minutes(scale int) int {
	return timeutil.Round((a.EndAngle - a.StartAngle) / fullCircle * float64(scale))
}

// Faces holds the arcs of each clock circle in the order of the sessions
// they came from.
type Faces struct {
	Day []Arc `json:"day"`
	AM  []Arc `json:"am"`
	PM  []Arc `json:"pm"`
}

// Arcs returns the arcs of the given face.
func (f Faces) Arcs(face Face) []Arc {
	switch face {
	case FaceAM:
		return f.AM
	case FacePM:
		return f.PM
	default:
		return f.Day
	}
}

// Empty reports whether no face has anything to draw.
func (f Faces) Empty() bool {
	return len(f.Day) == 0 && len(f.AM) == 0 && len(f.PM) == 0
}

// segment is a minute-of-day range [from, to] within a single calendar day.
type segment struct {
	from, to int
}

// segments splits a session into the parts that fall on each calendar day,
// expressed as minutes of the day in loc. A session crossing midnight
// yields [start, 1440] followed by [0, end]. Anything lasting a full day or
// more covers the whole day.
func segments(sess *models.Session, loc *time.Location) []segment {
	start := sess.StartTime.In(loc)
	end := sess.EndTime.In(loc)

	if end.Sub(start) >= 24*time.Hour {
		return []segment{{0, timeutil.MinutesInADay}}
	}

	from := timeutil.MinuteOfDay(start)
	to := timeutil.MinuteOfDay(end)

	if timeutil.SameDay(start, end) {
		return []segment{{from, to}}
	}

	segs := []segment{{from, timeutil.MinutesInADay}}
	if to > 0 {
		segs = append(segs, segment{0, to})
	}

	return segs
}

// Project computes the arcs of every face in the local timezone.
func Project(sessions []models.Session) Faces {
	return ProjectIn(sessions, time.Local)
}

// ProjectIn computes the arcs of every face with wall-clock times taken in
// loc. Sessions with missing or unordered timestamps are skipped, and so
// are zero-length arcs.
func ProjectIn(sessions []models.Session, loc *time.Location) Faces {
	faces := Faces{
		Day: []Arc{},
		AM:  []Arc{},
		PM:  []Arc{},
	}

	for i := range sessions {
		sess := &sessions[i]
		if !sess.Valid() {
			continue
		}

		for _, seg := range segments(sess, loc) {
			faces.Day = appendArc(
				faces.Day,
				sess,
				seg.from,
				seg.to,
				timeutil.MinutesInADay,
			)

			if seg.from < timeutil.MinutesInHalfADay {
				faces.AM = appendArc(
					faces.AM,
					sess,
					seg.from,
					min(seg.to, timeutil.MinutesInHalfADay),
					timeutil.MinutesInHalfADay,
				)
			}

			if seg.to > timeutil.MinutesInHalfADay {
				faces.PM = appendArc(
					faces.PM,
					sess,
					max(seg.from, timeutil.MinutesInHalfADay)-timeutil.MinutesInHalfADay,
					seg.to-timeutil.MinutesInHalfADay,
					timeutil.MinutesInHalfADay,
				)
			}
		}
	}

	return faces
}

func appendArc(arcs []Arc, sess *models.Session, from, to, scale int) []Arc {
	if to <= from {
		return arcs
	}

	return append(arcs, Arc{
		Name:       sess.Name,
		Color:      sess.Color,
		StartAngle: minutesToAngle(from, scale),
		EndAngle:   minutesToAngle(to, scale),
	})
}

// OnDay returns the sessions whose interval overlaps the calendar day of
// day in loc. Invalid sessions are dropped.
func OnDay(sessions []models.Session, day time.Time, loc *time.Location) []models.Session {
	day = day.In(loc)
	from := timeutil.RoundToStart(day)
	to := timeutil.RoundToEnd(day)

	out := make([]models.Session, 0, len(sessions))

	for i := range sessions {
		sess := sessions[i]
		if !sess.Valid() {
			continue
		}

		if sess.EndTime.Before(from) || sess.StartTime.After(to) {
			continue
		}

		out = append(out, sess)
	}

	return out
}

// ClipToDay returns the parts of sessions that fall on the calendar day of
// day in loc. Sessions crossing either midnight are trimmed to the day and
// their duration recomputed, so projecting the result draws nothing from
// neighbouring days.
func ClipToDay(sessions []models.Session, day time.Time, loc *time.Location) []models.Session {
	day = day.In(loc)
	from := timeutil.RoundToStart(day)
	to := from.AddDate(0, 0, 1)

	out := make([]models.Session, 0, len(sessions))

	for i := range sessions {
		sess := sessions[i]
		if !sess.Valid() {
			continue
		}

		if !sess.EndTime.After(from) || !sess.StartTime.Before(to) {
			continue
		}

		if sess.StartTime.Before(from) || sess.EndTime.After(to) {
			start := maxTime(sess.StartTime, from)
			end := minTime(sess.EndTime, to)

			sess.StartTime = start
			sess.EndTime = end
			sess.Duration = models.DurationMinutes(start, end)
		}

		out = append(out, sess)
	}

	return out
}

// ProjectDay computes the arcs of the calendar day of day in loc.
func ProjectDay(sessions []models.Session, day time.Time, loc *time.Location) Faces {
	return ProjectIn(ClipToDay(sessions, day, loc), loc)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}

// LegendEntry is one distinct session name with the colour it is drawn in.
type LegendEntry struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Minutes int    `json:"minutes"`
}

// Legend returns one entry per distinct session name in the order names are
// first seen. The colour of the first session with a name wins. Minutes
// accumulates the stored duration of every session with that name.
func Legend(sessions []models.Session) []LegendEntry {
	index := make(map[string]int)

	var legend []LegendEntry

	for i := range sessions {
		sess := &sessions[i]

		if j, ok := index[sess.Name]; ok {
			legend[j].Minutes += sess.Duration
			continue
		}

		color := sess.Color
		if color == "" {
			color = defaultLegendColor
		}

		index[sess.Name] = len(legend)
		legend = append(legend, LegendEntry{
			Name:    sess.Name,
			Color:   color,
			Minutes: sess.Duration,
		})
	}

	return legend
}

// Summary is the tracked and untracked time of a day.
type Summary struct {
	Tracked int `json:"tracked"`
	Idle    int `json:"idle"`
}

// Summarize adds up the arcs of the 24-hour face. Overlapping sessions are
// counted once per session.
func Summarize(faces Faces) Summary {
	var tracked int

	for _, arc := range faces.Day {
		tracked += arc.Minutes(timeutil.MinutesInADay)
	}

	return Summary{
		Tracked: tracked,
		Idle:    max(0, timeutil.MinutesInADay-tracked),
	}
}
