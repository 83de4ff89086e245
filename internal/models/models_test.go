package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"zero", 0, 0},
		{"under a minute", 59 * time.Second, 0},
		{"exactly one minute", time.Minute, 1},
		{"floors instead of rounding", 125 * time.Second, 2},
		{"just below three minutes", 3*time.Minute - time.Millisecond, 2},
		{"negative clamps to zero", -5 * time.Minute, 0},
		{"multi hour", 3*time.Hour + 59*time.Second, 180},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DurationMinutes(start, start.Add(tc.elapsed))
			if got != tc.want {
				t.Errorf("expected %d minutes, but got %d", tc.want, got)
			}
		})
	}
}

func TestNewSessionTruncatesToMilliseconds(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 123456789, time.UTC)
	end := start.Add(125 * time.Second)

	sess := NewSession("id-1", "Reading", "#112233", start, end)

	if sess.StartTime.Nanosecond() != 123000000 {
		t.Errorf("expected millisecond precision, got %d ns", sess.StartTime.Nanosecond())
	}

	if sess.Duration != 2 {
		t.Errorf("expected duration of 2, but got %d", sess.Duration)
	}
}

func TestSessionJSONRoundTripUsesISOStrings(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sess := NewSession("id-1", "Reading", "#112233", start, start.Add(90*time.Minute))

	b, err := json.Marshal(sess)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"id":"id-1","name":"Reading","color":"#112233",` +
		`"startTime":"2025-03-01T09:00:00.000Z",` +
		`"endTime":"2025-03-01T10:30:00.000Z","duration":90}`

	if string(b) != want {
		t.Errorf("unexpected encoding:\n%s", cmp.Diff(want, string(b)))
	}

	var got Session

	err = json.Unmarshal(b, &got)
	if err != nil {
		t.Fatal(err)
	}

	if !got.StartTime.Equal(sess.StartTime) || !got.EndTime.Equal(sess.EndTime) {
		t.Errorf("timestamps changed after decoding: %v - %v", got.StartTime, got.EndTime)
	}
}

func TestSessionUnmarshalLenient(t *testing.T) {
	cases := []struct {
		name         string
		payload      string
		wantValid    bool
		wantDuration int
	}{
		{
			name:         "epoch milliseconds",
			payload:      `{"id":"a","startTime":1740819600000,"endTime":1740823200000}`,
			wantValid:    true,
			wantDuration: 60,
		},
		{
			name:      "unparseable start",
			payload:   `{"id":"b","startTime":"yesterday","endTime":"2025-03-01T10:00:00.000Z","duration":5}`,
			wantValid: false,
			// stored value is preserved for list views
			wantDuration: 5,
		},
		{
			name:      "missing end",
			payload:   `{"id":"c","startTime":"2025-03-01T10:00:00.000Z"}`,
			wantValid: false,
		},
		{
			name:      "end before start",
			payload:   `{"id":"d","startTime":"2025-03-01T10:00:00.000Z","endTime":"2025-03-01T09:00:00.000Z"}`,
			wantValid: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Session

			err := json.Unmarshal([]byte(tc.payload), &s)
			if err != nil {
				t.Fatal(err)
			}

			if s.Valid() != tc.wantValid {
				t.Errorf("expected valid=%t, but got %t", tc.wantValid, s.Valid())
			}

			if s.Duration != tc.wantDuration {
				t.Errorf("expected duration %d, but got %d", tc.wantDuration, s.Duration)
			}
		})
	}
}

func TestZeroTimesEncodeAsNull(t *testing.T) {
	b, err := json.Marshal(Session{ID: "x"})
	if err != nil {
		t.Fatal(err)
	}

	want := `{"id":"x","name":"","color":"","startTime":null,"endTime":null,"duration":0}`
	if string(b) != want {
		t.Errorf("unexpected encoding:\n%s", cmp.Diff(want, string(b)))
	}
}
