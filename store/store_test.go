package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/dayclock/internal/models"
)

type backend struct {
	open func(t *testing.T) KV
	name string
}

var backends = []backend{
	{
		name: "memory",
		open: func(t *testing.T) KV {
			t.Helper()
			return NewMemoryKV()
		},
	},
	{
		name: "bolt",
		open: func(t *testing.T) KV {
			t.Helper()

			kv, err := Open(DriverBolt, filepath.Join(t.TempDir(), "dayclock.db"))
			require.NoError(t, err)

			t.Cleanup(func() { _ = kv.Close() })

			return kv
		},
	},
	{
		name: "sqlite",
		open: func(t *testing.T) KV {
			t.Helper()

			kv, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "dayclock.sqlite"))
			require.NoError(t, err)

			t.Cleanup(func() { _ = kv.Close() })

			return kv
		},
	},
}

func sampleSession(id string, startHour int) models.Session {
	start := time.Date(2025, 3, 1, startHour, 0, 0, 0, time.UTC)

	return models.NewSession(id, "Reading", "#112233", start, start.Add(45*time.Minute))
}

func ids(sessions []models.Session) []string {
	out := make([]string, len(sessions))
	for i := range sessions {
		out[i] = sessions[i].ID
	}

	return out
}

func TestKVBackends(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			kv := b.open(t)

			_, err := kv.Get("missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, kv.Set("k", []byte("v1")))
			require.NoError(t, kv.Set("k", []byte("v2")))

			v, err := kv.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "v2", string(v))

			require.NoError(t, kv.Remove("k"))
			require.NoError(t, kv.Remove("k"))

			_, err = kv.Get("k")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestSessionsAddListDelete(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := NewSessions(b.open(t))

			assert.Empty(t, s.ListSessions())

			s.AddSession(sampleSession("a", 8))
			s.AddSession(sampleSession("b", 10))
			s.AddSession(sampleSession("c", 12))

			got := s.ListSessions()
			if diff := cmp.Diff([]string{"a", "b", "c"}, ids(got)); diff != "" {
				t.Fatalf("unexpected sessions (-want +got):\n%s", diff)
			}

			assert.True(t, got[1].StartTime.Equal(sampleSession("b", 10).StartTime))
			assert.Equal(t, 45, got[1].Duration)

			remaining := s.DeleteSession("b")
			assert.Equal(t, []string{"a", "c"}, ids(remaining))
			assert.Equal(t, []string{"a", "c"}, ids(s.ListSessions()))

			// absent ids are a no-op
			remaining = s.DeleteSession("does-not-exist")
			assert.Equal(t, []string{"a", "c"}, ids(remaining))
		})
	}
}

func TestClearAllSessionsIsIdempotent(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := NewSessions(b.open(t))

			s.AddSession(sampleSession("a", 8))

			s.ClearAllSessions()
			assert.Empty(t, s.ListSessions())

			s.ClearAllSessions()
			assert.Empty(t, s.ListSessions())
		})
	}
}

func TestListSessionsRepairsCorruptPayload(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"malformed json", `[{"id":`},
		{"object instead of array", `{"id":"a"}`},
		{"null", `null`},
		{"string", `"sessions"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := NewMemoryKV()
			require.NoError(t, kv.Set(SessionsKey, []byte(tc.payload)))

			s := NewSessions(kv)

			assert.Empty(t, s.ListSessions())

			backup, err := kv.Get(corruptKey)
			require.NoError(t, err)
			assert.Equal(t, tc.payload, string(backup))

			s.AddSession(sampleSession("a", 8))
			assert.Equal(t, []string{"a"}, ids(s.ListSessions()))
		})
	}
}

func TestListSessionsSkipsUndecodableEntries(t *testing.T) {
	kv := NewMemoryKV()
	payload := `[42, {"id":"ok","name":"x","startTime":"2025-03-01T09:00:00.000Z","endTime":"2025-03-01T10:00:00.000Z","duration":60}, {"id":7}]`
	require.NoError(t, kv.Set(SessionsKey, []byte(payload)))

	got := NewSessions(kv).ListSessions()

	assert.Equal(t, []string{"ok"}, ids(got))
}

func TestAddSessionSwallowsStorageFailure(t *testing.T) {
	kv := NewMemoryKV()
	s := NewSessions(kv)

	s.AddSession(sampleSession("a", 8))

	kv.SetErr = errors.New("quota exceeded")

	s.AddSession(sampleSession("b", 9))

	remaining := s.DeleteSession("a")
	assert.Equal(t, []string{"a"}, ids(remaining), "a failed delete returns the stored list")

	kv.SetErr = nil

	assert.Equal(t, []string{"a"}, ids(s.ListSessions()))
}

func TestImportNormalisesAndSkipsDuplicates(t *testing.T) {
	s := NewSessions(NewMemoryKV())
	s.AddSession(sampleSession("a", 8))

	start := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)

	records := []models.Session{
		sampleSession("a", 8),
		{Name: "  ", StartTime: start, EndTime: start.Add(125 * time.Second), Duration: 99},
		{ID: "broken", Name: "Broken", Color: "#000000", Duration: -4},
	}

	added, err := s.Import(records, "Unnamed Session")
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	got := s.ListSessions()
	require.Len(t, got, 3)

	assert.NotEmpty(t, got[1].ID)
	assert.Equal(t, "Unnamed Session", got[1].Name)
	assert.Equal(t, defaultImportColor, got[1].Color)
	assert.Equal(t, 2, got[1].Duration)

	assert.Equal(t, "broken", got[2].ID)
	assert.Equal(t, 0, got[2].Duration)
	assert.False(t, got[2].Valid())
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("postgres", "")
	assert.ErrorIs(t, err, errUnknownDriver)
}

func TestBoltLockedDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayclock.db")

	kv, err := NewBoltKV(path)
	require.NoError(t, err)

	defer kv.Close()

	_, err = NewBoltKV(path)
	assert.ErrorIs(t, err, errDBLocked)
}
