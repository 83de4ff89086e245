package store

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/ayoisaiah/dayclock/internal/models"
)

// RunState persists the TimerRunState as two string values: IsTrackingKey
// holds "true" and StartTimeKey holds epoch milliseconds.
type RunState struct {
	kv KV
}

// NewRunState returns a TimerRunState store backed by kv.
func NewRunState(kv KV) *RunState {
	return &RunState{kv: kv}
}

// Load returns the persisted state. Missing or malformed values yield the
// idle state.
func (r *RunState) Load() models.TimerRunState {
	tracking, err := getString(r.kv, IsTrackingKey)
	if err != nil {
		slog.Error("reading timer state failed", slog.Any("error", err))
		return models.TimerRunState{}
	}

	if tracking != "true" {
		return models.TimerRunState{}
	}

	start, err := getString(r.kv, StartTimeKey)
	if err != nil {
		slog.Error("reading timer start failed", slog.Any("error", err))
		return models.TimerRunState{}
	}

	ms, err := strconv.ParseInt(start, 10, 64)
	if err != nil {
		slog.Warn(
			"ignoring tracking flag without a valid start time",
			slog.String("start", start),
		)

		return models.TimerRunState{}
	}

	return models.TimerRunState{
		IsTracking: true,
		StartTime:  time.UnixMilli(ms),
	}
}

// Save persists st. A state that is not tracking is stored as cleared.
func (r *RunState) Save(st models.TimerRunState) error {
	if !st.IsTracking || st.StartTime.IsZero() {
		return r.Clear()
	}

	// the start time goes first so a tracking flag is never visible without it
	err := r.kv.Set(
		StartTimeKey,
		[]byte(strconv.FormatInt(st.StartTime.UnixMilli(), 10)),
	)
	if err != nil {
		return err
	}

	err = r.kv.Set(IsTrackingKey, []byte("true"))
	if err != nil {
		_ = r.kv.Remove(StartTimeKey)
		return err
	}

	return nil
}

// Clear removes both values, the tracking flag first.
func (r *RunState) Clear() error {
	return errors.Join(
		r.kv.Remove(IsTrackingKey),
		r.kv.Remove(StartTimeKey),
	)
}
