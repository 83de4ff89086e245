// Package models defines the records persisted by dayclock
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// isoLayout matches the millisecond ISO-8601 form produced by JavaScript's
// Date.toISOString so exported payloads stay interchangeable.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

const msPerMinute = 60000

// Session is one recorded start-to-stop timer interval.
type Session struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	// Duration is the whole number of minutes between StartTime and EndTime
	Duration int `json:"duration"`
}

// TimerRunState is the persisted state of an in-progress timer.
type TimerRunState struct {
	StartTime  time.Time
	IsTracking bool
}

// NewID returns an opaque identifier that is never reused.
func NewID() string {
	return uuid.NewString()
}

// NewSession builds a session for the interval [start, end]. Timestamps are
// truncated to millisecond precision.
func NewSession(id, name, color string, start, end time.Time) Session {
	start = start.Truncate(time.Millisecond)
	end = end.Truncate(time.Millisecond)

	return Session{
		ID:        id,
		Name:      name,
		Color:     color,
		StartTime: start,
		EndTime:   end,
		Duration:  DurationMinutes(start, end),
	}
}

// DurationMinutes returns floor((end - start) / 1 minute), clamped to zero.
func DurationMinutes(start, end time.Time) int {
	ms := end.Sub(start).Milliseconds()
	if ms <= 0 {
		return 0
	}

	return int(ms / msPerMinute)
}

// Valid reports whether both timestamps are present and ordered.
func (s *Session) Valid() bool {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return false
	}

	return !s.EndTime.Before(s.StartTime)
}

type sessionJSON struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	StartTime json.RawMessage `json:"startTime"`
	EndTime   json.RawMessage `json:"endTime"`
	Duration  json.RawMessage `json:"duration"`
}

func (s Session) MarshalJSON() ([]byte, error) {
	duration, err := json.Marshal(s.Duration)
	if err != nil {
		return nil, err
	}

	return json.Marshal(sessionJSON{
		ID:        s.ID,
		Name:      s.Name,
		Color:     s.Color,
		StartTime: encodeTime(s.StartTime),
		EndTime:   encodeTime(s.EndTime),
		Duration:  duration,
	})
}

// UnmarshalJSON decodes a session leniently. Timestamps may be ISO-8601
// strings or epoch milliseconds; anything unparseable decodes to the zero
// time so the record survives and is simply skipped by chart code.
func (s *Session) UnmarshalJSON(b []byte) error {
	var raw sessionJSON

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err
	}

	*s = Session{
		ID:        raw.ID,
		Name:      raw.Name,
		Color:     raw.Color,
		StartTime: decodeTime(raw.StartTime),
		EndTime:   decodeTime(raw.EndTime),
	}

	var d float64
	if json.Unmarshal(raw.Duration, &d) == nil && d >= 0 {
		s.Duration = int(math.Floor(d))
	} else if s.Valid() {
		s.Duration = DurationMinutes(s.StartTime, s.EndTime)
	}

	return nil
}

func encodeTime(t time.Time) json.RawMessage {
	if t.IsZero() {
		return json.RawMessage("null")
	}

	return json.RawMessage(strconv.Quote(t.UTC().Format(isoLayout)))
}

func decodeTime(b json.RawMessage) time.Time {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return time.Time{}
	}

	var str string
	if json.Unmarshal(b, &str) == nil {
		t, err := time.Parse(time.RFC3339Nano, str)
		if err != nil {
			return time.Time{}
		}

		return t.Local()
	}

	var ms float64
	if json.Unmarshal(b, &ms) == nil {
		return time.UnixMilli(int64(ms))
	}

	return time.Time{}
}
