package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/dayclock/internal/models"
)

func TestRunStateRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	rs := NewRunState(kv)

	assert.Equal(t, models.TimerRunState{}, rs.Load())

	start := time.UnixMilli(1740819600123)

	require.NoError(t, rs.Save(models.TimerRunState{IsTracking: true, StartTime: start}))

	flag, _ := kv.Get(IsTrackingKey)
	ms, _ := kv.Get(StartTimeKey)

	assert.Equal(t, "true", string(flag))
	assert.Equal(t, "1740819600123", string(ms))

	got := rs.Load()
	assert.True(t, got.IsTracking)
	assert.True(t, got.StartTime.Equal(start))

	require.NoError(t, rs.Clear())
	assert.Equal(t, models.TimerRunState{}, rs.Load())

	_, err := kv.Get(StartTimeKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRunStateLoadToleratesPartialState(t *testing.T) {
	cases := []struct {
		values map[string]string
		name   string
	}{
		{name: "flag without start", values: map[string]string{IsTrackingKey: "true"}},
		{name: "start without flag", values: map[string]string{StartTimeKey: "1740819600000"}},
		{name: "flag false", values: map[string]string{IsTrackingKey: "false", StartTimeKey: "1740819600000"}},
		{name: "unparseable start", values: map[string]string{IsTrackingKey: "true", StartTimeKey: "soon"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := NewMemoryKV()
			for k, v := range tc.values {
				require.NoError(t, kv.Set(k, []byte(v)))
			}

			assert.Equal(t, models.TimerRunState{}, NewRunState(kv).Load())
		})
	}
}

func TestRunStateSaveNotTrackingClears(t *testing.T) {
	kv := NewMemoryKV()
	rs := NewRunState(kv)

	require.NoError(t, rs.Save(models.TimerRunState{IsTracking: true, StartTime: time.Now()}))
	require.NoError(t, rs.Save(models.TimerRunState{}))

	_, err := kv.Get(IsTrackingKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
