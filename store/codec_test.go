package store

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/dayclock/internal/models"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("backup.YAML"))
	assert.Equal(t, FormatYAML, FormatFromPath("backup.yml"))
	assert.Equal(t, FormatJSON, FormatFromPath("backup.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("backup"))
}

func TestEncodeDecode(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		models.NewSession("a", "Reading", "#112233", start, start.Add(90*time.Minute)),
	}

	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, Encode(&buf, sessions, format))
			assert.Contains(t, buf.String(), "2025-03-01T09:00:00.000Z")
			assert.Contains(t, buf.String(), "startTime")

			got, err := Decode(&buf, format)
			require.NoError(t, err)
			require.Len(t, got, 1)

			assert.Equal(t, "a", got[0].ID)
			assert.Equal(t, 90, got[0].Duration)
			assert.True(t, got[0].StartTime.Equal(start))
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	got, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnknownFormat(t *testing.T) {
	assert.ErrorIs(t, Encode(&bytes.Buffer{}, nil, "csv"), errUnknownFormat)

	_, err := Decode(strings.NewReader("[]"), "csv")
	assert.ErrorIs(t, err, errUnknownFormat)
}
