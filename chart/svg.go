package chart

import (
	"embed"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/ayoisaiah/dayclock/internal/i18n"
	"github.com/ayoisaiah/dayclock/internal/models"
	"github.com/ayoisaiah/dayclock/internal/timeutil"
)

// tickOffset is the distance between the rim of a face and its hour labels.
const tickOffset = 15

//go:embed web/*
var web embed.FS

var tpl = template.Must(
	template.New("index.html").ParseFS(web, "web/index.html", "web/face.svg.tmpl"),
)

type (
	// Tick is an hour label around a face.
	Tick struct {
		Label string
		X     string
		Y     string
	}

	// WedgeView is a drawable arc.
	WedgeView struct {
		Path  string
		Color string
		Name  string
	}

	// FaceView is everything needed to draw one face.
	FaceView struct {
		Face   Face
		Title  string
		Center string
		Radius string
		Wedges []WedgeView
		Ticks  []Tick
		Size   int
	}

	LegendRow struct {
		Name    string
		Color   string
		Minutes string
	}

	// Page is the data of the overview page.
	Page struct {
		Lang        string
		Dir         string
		Title       string
		Date        string
		LegendTitle string
		IdleLabel   string
		Idle        string
		Empty       string
		Legend      []LegendRow
		Faces       []FaceView
		Summary     Summary
	}
)

// Options control how faces are sized and labelled.
type Options struct {
	Translator *i18n.Translator
	Location   *time.Location
	// Day restricts the page to sessions overlapping that calendar day. The
	// zero value includes every session.
	Day    time.Time
	Size   int
	Radius int
}

func (o *Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}

	return o.Location
}

func (o *Options) translator() *i18n.Translator {
	if o.Translator == nil {
		return i18n.New("en")
	}

	return o.Translator
}

// Titles returns the localised caption of each face.
func Titles(t *i18n.Translator) map[Face]string {
	return map[Face]string{
		FaceDay: t.T(i18n.DayChartTitle),
		FaceAM:  t.T(i18n.AMChartTitle),
		FacePM:  t.T(i18n.PMChartTitle),
	}
}

// NewFaceView lays out arcs on a square face of the given size.
func NewFaceView(face Face, arcs []Arc, size, radius int, title string) FaceView {
	c := float64(size) / 2
	r := float64(radius)

	wedges := make([]WedgeView, 0, len(arcs))

	for _, arc := range arcs {
		path := Wedge(c, c, r, arc.StartAngle, arc.EndAngle)
		if path == "" {
			continue
		}

		wedges = append(wedges, WedgeView{
			Path:  path,
			Color: arc.Color,
			Name:  arc.Name,
		})
	}

	return FaceView{
		Face:   face,
		Title:  title,
		Size:   size,
		Center: formatCoord(c),
		Radius: formatCoord(r),
		Wedges: wedges,
		Ticks:  ticks(face, c, r+tickOffset),
	}
}

func ticks(face Face, c, r float64) []Tick {
	hours := 12
	if face == FaceDay {
		hours = 24
	}

	out := make([]Tick, 0, hours)

	for h := range hours {
		label := h

		angle := Angle12(h, 0)
		if face == FaceDay {
			angle = Angle24(h, 0)
		} else if h == 0 {
			label = 12
		}

		p := PolarToCartesian(c, c, r, angle)

		out = append(out, Tick{
			Label: strconv.Itoa(label),
			X:     formatCoord(p.X),
			Y:     formatCoord(p.Y),
		})
	}

	return out
}

// BuildPage projects sessions and prepares the overview page.
func BuildPage(sessions []models.Session, opts *Options) *Page {
	t := opts.translator()
	loc := opts.location()

	page := &Page{
		Lang:        t.Lang(),
		Dir:         "ltr",
		Title:       t.T(i18n.Overview),
		LegendTitle: t.T(i18n.Legend),
		IdleLabel:   t.T(i18n.Idle),
	}

	if t.RTL() {
		page.Dir = "rtl"
	}

	if !opts.Day.IsZero() {
		sessions = ClipToDay(sessions, opts.Day, loc)
		page.Date = opts.Day.In(loc).Format(time.DateOnly)
	}

	faces := ProjectIn(sessions, loc)
	if faces.Empty() {
		page.Empty = t.T(i18n.NoChartData)
		return page
	}

	for _, entry := range Legend(sessions) {
		page.Legend = append(page.Legend, LegendRow{
			Name:    entry.Name,
			Color:   entry.Color,
			Minutes: timeutil.FormatMinutes(entry.Minutes),
		})
	}

	page.Summary = Summarize(faces)
	page.Idle = timeutil.FormatMinutes(page.Summary.Idle)

	titles := Titles(t)

	for _, face := range []Face{FaceDay, FaceAM, FacePM} {
		page.Faces = append(page.Faces, NewFaceView(
			face,
			faces.Arcs(face),
			opts.Size,
			opts.Radius,
			titles[face],
		))
	}

	return page
}

// RenderPage writes the overview page as HTML.
func RenderPage(w io.Writer, page *Page) error {
	return tpl.ExecuteTemplate(w, "index.html", page)
}

// RenderSVG writes a single face as a standalone SVG document.
func RenderSVG(w io.Writer, view FaceView) error {
	_, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	if err != nil {
		return err
	}

	return tpl.ExecuteTemplate(w, "face", view)
}
