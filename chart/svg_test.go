package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/dayclock/internal/i18n"
	"github.com/ayoisaiah/dayclock/internal/models"
	"github.com/ayoisaiah/dayclock/internal/testutil"
)

func TestNewFaceViewTicks(t *testing.T) {
	day := NewFaceView(FaceDay, nil, 300, 120, "day")
	require.Len(t, day.Ticks, 24)
	assert.Equal(t, Tick{Label: "0", X: "150", Y: "15"}, day.Ticks[0])
	assert.Equal(t, Tick{Label: "6", X: "285", Y: "150"}, day.Ticks[6])

	am := NewFaceView(FaceAM, nil, 300, 120, "am")
	require.Len(t, am.Ticks, 12)
	assert.Equal(t, "12", am.Ticks[0].Label)
	assert.Equal(t, Tick{Label: "3", X: "285", Y: "150"}, am.Ticks[3])
}

func TestNewFaceViewSkipsEmptyWedges(t *testing.T) {
	arcs := []Arc{
		arc("a", 0, Angle24(6, 0)),
		arc("b", 1, 1),
	}

	view := NewFaceView(FaceDay, arcs, 300, 120, "day")

	require.Len(t, view.Wedges, 1)
	assert.Equal(t, "M 150 30 A 120 120 0 0 1 270 150 L 150 150 L 150 30 Z", view.Wedges[0].Path)
	assert.Equal(t, "150", view.Center)
	assert.Equal(t, "120", view.Radius)
}

func TestRenderSVG(t *testing.T) {
	view := NewFaceView(FaceDay, []Arc{arc("Reading & notes", 0, Angle24(6, 0))}, 300, 120, "24-Hour Activity")

	var buf bytes.Buffer

	require.NoError(t, RenderSVG(&buf, view))

	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `viewBox="0 0 300 300"`)
	assert.Contains(t, out, `d="M 150 30 A 120 120 0 0 1 270 150 L 150 150 L 150 30 Z"`)
	assert.Contains(t, out, `fill="#112233"`)
	assert.Contains(t, out, "Reading &amp; notes")
	assert.Equal(t, 24, strings.Count(out, "<text "))
}

func TestBuildPage(t *testing.T) {
	sessions := []models.Session{
		session("Reading", at(1, 10, 0), at(1, 14, 0)),
		session("Gym", at(2, 7, 0), at(2, 8, 0)),
	}

	page := BuildPage(sessions, &Options{
		Size:     300,
		Radius:   120,
		Location: time.UTC,
	})

	assert.Equal(t, "en", page.Lang)
	assert.Equal(t, "ltr", page.Dir)
	assert.Empty(t, page.Empty)
	require.Len(t, page.Faces, 3)
	assert.Len(t, page.Faces[0].Wedges, 2)
	assert.Len(t, page.Faces[1].Wedges, 2)
	assert.Len(t, page.Faces[2].Wedges, 1)
	assert.Equal(t, []LegendRow{
		{Name: "Reading", Color: "#112233", Minutes: "4h 00m"},
		{Name: "Gym", Color: "#112233", Minutes: "1h 00m"},
	}, page.Legend)
	assert.Equal(t, "19h 00m", page.Idle)
}

func TestBuildPageForDay(t *testing.T) {
	sessions := []models.Session{
		session("Reading", at(1, 10, 0), at(1, 14, 0)),
		session("Gym", at(2, 7, 0), at(2, 8, 0)),
	}

	page := BuildPage(sessions, &Options{
		Size:     300,
		Radius:   120,
		Location: time.UTC,
		Day:      at(2, 0, 0),
	})

	assert.Equal(t, "2025-03-02", page.Date)
	require.Len(t, page.Legend, 1)
	assert.Equal(t, "Gym", page.Legend[0].Name)
}

func TestBuildPageForDayTrimsOvernightSessions(t *testing.T) {
	sessions := []models.Session{
		session("Sleep", at(1, 23, 0), at(2, 1, 0)),
	}

	page := BuildPage(sessions, &Options{
		Size:     300,
		Radius:   120,
		Location: time.UTC,
		Day:      at(2, 0, 0),
	})

	assert.Equal(t, Summary{Tracked: 60, Idle: 1380}, page.Summary)
	require.Len(t, page.Legend, 1)
	assert.Equal(t, "1h 00m", page.Legend[0].Minutes)

	require.Len(t, page.Faces, 3)
	assert.Len(t, page.Faces[0].Wedges, 1, "only the part after midnight is drawn")
	assert.Empty(t, page.Faces[2].Wedges, "nothing from the previous evening on the PM face")
}

func TestBuildPageEmptyIsLocalised(t *testing.T) {
	tr := i18n.New("fa")

	page := BuildPage(nil, &Options{Translator: tr, Size: 300, Radius: 120})

	assert.Equal(t, "rtl", page.Dir)
	assert.Equal(t, tr.T(i18n.NoChartData), page.Empty)
	assert.Empty(t, page.Faces)

	var buf bytes.Buffer

	require.NoError(t, RenderPage(&buf, page))
	assert.Contains(t, buf.String(), `dir="rtl"`)
}

func TestRenderSVGGolden(t *testing.T) {
	view := NewFaceView(
		FaceAM,
		[]Arc{arc("Reading & notes", Angle12(6, 0), Angle12End(9, 0))},
		300,
		120,
		"00:00 - 12:00",
	)

	var buf bytes.Buffer

	require.NoError(t, RenderSVG(&buf, view))

	testutil.CompareGoldenFile(t, testutil.Golden{Name: "face_am", Data: buf.Bytes()})
}

func TestRenderPageGolden(t *testing.T) {
	reading := models.NewSession("r", "Reading & notes", "#112233", at(2, 6, 0), at(2, 9, 0))
	gym := models.NewSession("g", "Gym", "#445566", at(2, 18, 0), at(2, 19, 30))

	page := BuildPage([]models.Session{reading, gym}, &Options{
		Size:     300,
		Radius:   120,
		Location: time.UTC,
		Day:      at(2, 0, 0),
	})

	var buf bytes.Buffer

	require.NoError(t, RenderPage(&buf, page))

	testutil.CompareGoldenFile(t, testutil.Golden{Name: "page_day", Data: buf.Bytes()})
}
