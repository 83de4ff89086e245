package store

import (
	"strings"

	"github.com/ayoisaiah/dayclock/internal/apperr"
	"github.com/ayoisaiah/dayclock/internal/models"
)

var errImportFailed = &apperr.Error{
	Message: "writing imported sessions failed",
}

// defaultImportColor is used for imported records without a colour.
const defaultImportColor = "#cccccc"

// normalise repairs an imported record so that it satisfies the invariants
// of sessions created by the timer: an id is always present, a blank name
// falls back to defaultName and the duration is recomputed from valid
// timestamps.
func normalise(sess models.Session, defaultName string) models.Session {
	if strings.TrimSpace(sess.ID) == "" {
		sess.ID = models.NewID()
	}

	if strings.TrimSpace(sess.Name) == "" {
		sess.Name = defaultName
	}

	if strings.TrimSpace(sess.Color) == "" {
		sess.Color = defaultImportColor
	}

	if sess.Valid() {
		sess.Duration = models.DurationMinutes(sess.StartTime, sess.EndTime)
	} else if sess.Duration < 0 {
		sess.Duration = 0
	}

	return sess
}
