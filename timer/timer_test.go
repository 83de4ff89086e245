package timer

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/dayclock/internal/clock"
	"github.com/ayoisaiah/dayclock/internal/models"
	"github.com/ayoisaiah/dayclock/store"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type fakeTicker struct {
	fn    func()
	stops int
}

func (f *fakeTicker) Stop() {
	f.stops++
}

type tickerFactory struct {
	started []*fakeTicker
}

func (f *tickerFactory) newTicker(_ time.Duration, fn func()) Ticker {
	t := &fakeTicker{fn: fn}
	f.started = append(f.started, t)

	return t
}

type fixture struct {
	kv       *store.MemoryKV
	sessions *store.Sessions
	runState *store.RunState
	clock    *clock.Fixed
	tickers  *tickerFactory
	ticks    []time.Duration
}

func newFixture() *fixture {
	kv := store.NewMemoryKV()

	return &fixture{
		kv:       kv,
		sessions: store.NewSessions(kv),
		runState: store.NewRunState(kv),
		clock:    clock.NewFixed(t0),
		tickers:  &tickerFactory{},
	}
}

func (f *fixture) machine() *Machine {
	return New(
		f.sessions,
		f.runState,
		WithClock(f.clock),
		WithTicker(f.tickers.newTicker),
		WithTickHandler(func(d time.Duration) {
			f.ticks = append(f.ticks, d)
		}),
		WithDefaults("Unnamed Session", "#3B82F6"),
		WithIDGenerator(func() string { return "id-1" }),
	)
}

func TestStartStopSubmit(t *testing.T) {
	f := newFixture()
	m := f.machine()

	assert.Equal(t, Idle, m.State())

	require.NoError(t, m.Start())
	assert.Equal(t, Tracking, m.State())

	st := f.runState.Load()
	assert.True(t, st.IsTracking)
	assert.True(t, st.StartTime.Equal(t0))

	f.clock.Advance(125 * time.Second)

	require.NoError(t, m.Stop())
	assert.Equal(t, AwaitingSave, m.State())
	assert.Equal(t, 125*time.Second, m.Elapsed())

	// stopping does not create a session yet
	assert.Empty(t, f.sessions.ListSessions())

	sess, err := m.Submit("Reading", "#112233")
	require.NoError(t, err)

	assert.Equal(t, 2, sess.Duration)
	assert.Equal(t, "Reading", sess.Name)
	assert.Equal(t, "#112233", sess.Color)
	assert.Equal(t, "id-1", sess.ID)
	assert.True(t, sess.StartTime.Equal(t0))
	assert.True(t, sess.EndTime.Equal(t0.Add(125*time.Second)))

	assert.Equal(t, Idle, m.State())
	assert.Equal(t, models.TimerRunState{}, f.runState.Load())
	assert.Len(t, f.sessions.ListSessions(), 1)

	_, err = f.kv.Get(store.StartTimeKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestSubmitDefaultsAndResetsDraft(t *testing.T) {
	f := newFixture()
	m := f.machine()

	m.SetDraft(Draft{Name: "Writing", Color: "#000000"})

	require.NoError(t, m.Start())
	f.clock.Advance(time.Hour)
	require.NoError(t, m.Stop())

	sess, err := m.Submit("   ", "")
	require.NoError(t, err)

	assert.Equal(t, "Unnamed Session", sess.Name)
	assert.Equal(t, "#3B82F6", sess.Color)
	assert.Equal(t, 60, sess.Duration)
	assert.Equal(t, Draft{Name: "Unnamed Session", Color: "#3B82F6"}, m.Draft())
}

func TestResumeFromPersistedState(t *testing.T) {
	f := newFixture()

	started := t0.Add(-10 * time.Minute)
	require.NoError(t, f.runState.Save(models.TimerRunState{IsTracking: true, StartTime: started}))

	m := f.machine()

	assert.Equal(t, Tracking, m.State())
	assert.True(t, m.StartTime().Equal(started))
	assert.Equal(t, 10*time.Minute, m.Elapsed())

	require.Len(t, f.tickers.started, 1)

	f.tickers.started[0].fn()
	f.clock.Advance(time.Second)
	f.tickers.started[0].fn()

	assert.Equal(t, []time.Duration{10 * time.Minute, 10*time.Minute + time.Second}, f.ticks)
}

func TestTickerLifecycle(t *testing.T) {
	f := newFixture()
	m := f.machine()

	require.NoError(t, m.Start())
	require.Len(t, f.tickers.started, 1)

	assert.ErrorIs(t, m.Start(), errAlreadyTracking)
	assert.Len(t, f.tickers.started, 1, "a second start must not add a ticker")

	require.NoError(t, m.Stop())
	assert.Equal(t, 1, f.tickers.started[0].stops)

	require.NoError(t, m.Cancel())
	m.Close()
	assert.Equal(t, 1, f.tickers.started[0].stops, "ticker is stopped once per tracking period")

	require.NoError(t, m.Start())
	require.Len(t, f.tickers.started, 2)

	m.Close()
	m.Close()
	assert.Equal(t, 1, f.tickers.started[1].stops)
}

func TestNoTickerWithoutHandler(t *testing.T) {
	f := newFixture()
	m := New(f.sessions, f.runState, WithClock(f.clock), WithTicker(f.tickers.newTicker))

	require.NoError(t, m.Start())
	assert.Empty(t, f.tickers.started)
}

func TestSubmitWithoutStartTime(t *testing.T) {
	f := newFixture()
	m := f.machine()

	_, err := m.Submit("Reading", "#112233")
	assert.ErrorIs(t, err, errNoStartTime)
	assert.Empty(t, f.sessions.ListSessions())
	assert.Equal(t, Idle, m.State())
}

func TestSubmitWhileTracking(t *testing.T) {
	f := newFixture()
	m := f.machine()

	require.NoError(t, m.Start())

	_, err := m.Submit("Reading", "#112233")
	assert.ErrorIs(t, err, errStillTracking)
	assert.Equal(t, Tracking, m.State())
}

func TestCancel(t *testing.T) {
	t.Run("from tracking", func(t *testing.T) {
		f := newFixture()
		m := f.machine()

		require.NoError(t, m.Start())
		require.NoError(t, m.Cancel())

		assert.Equal(t, Idle, m.State())
		assert.Equal(t, models.TimerRunState{}, f.runState.Load())
		assert.Empty(t, f.sessions.ListSessions())
	})

	t.Run("from awaiting save", func(t *testing.T) {
		f := newFixture()
		m := f.machine()

		require.NoError(t, m.Start())
		f.clock.Advance(time.Minute)
		require.NoError(t, m.Stop())
		require.NoError(t, m.Cancel())

		assert.Equal(t, Idle, m.State())
		assert.Empty(t, f.sessions.ListSessions())
		assert.Zero(t, m.Elapsed())
	})

	t.Run("when idle", func(t *testing.T) {
		m := newFixture().machine()

		assert.ErrorIs(t, m.Cancel(), errNotTracking)
	})
}

func TestInvalidTransitions(t *testing.T) {
	f := newFixture()
	m := f.machine()

	assert.ErrorIs(t, m.Stop(), errNotTracking)

	require.NoError(t, m.Start())
	require.NoError(t, m.Stop())

	assert.ErrorIs(t, m.Start(), errAwaitingSave)
	assert.ErrorIs(t, m.Stop(), errNotTracking)
}

func TestStartAt(t *testing.T) {
	f := newFixture()
	m := f.machine()

	assert.ErrorIs(t, m.StartAt(t0.Add(time.Minute)), errFutureStart)
	assert.Equal(t, Idle, m.State())

	since := t0.Add(-20 * time.Minute)
	require.NoError(t, m.StartAt(since))
	assert.Equal(t, 20*time.Minute, m.Elapsed())
}

func TestStorageFailureDoesNotBlockTransitions(t *testing.T) {
	f := newFixture()
	m := f.machine()

	f.kv.SetErr = errors.New("quota exceeded")

	require.NoError(t, m.Start())
	f.clock.Advance(3 * time.Minute)
	require.NoError(t, m.Stop())

	sess, err := m.Submit("Reading", "#112233")
	require.NoError(t, err)

	assert.Equal(t, 3, sess.Duration)
	assert.Equal(t, Idle, m.State())

	f.kv.SetErr = nil

	assert.Empty(t, f.sessions.ListSessions())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "tracking", Tracking.String())
	assert.Equal(t, "awaiting save", AwaitingSave.String())
}

func TestNewTickerStopIsIdempotent(t *testing.T) {
	ticks := make(chan struct{}, 10)

	tk := NewTicker(time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("ticker never fired")
	}

	tk.Stop()
	tk.Stop()
}

func TestNewTickerNoCallsAfterStop(t *testing.T) {
	var calls atomic.Int64

	tk := NewTicker(time.Millisecond, func() { calls.Add(1) })

	assert.Eventually(t, func() bool { return calls.Load() > 0 },
		time.Second, time.Millisecond)

	tk.Stop()

	// Give a pending tick time to reach the goroutine.
	time.Sleep(5 * time.Millisecond)
	stopped := calls.Load()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
}
