// Package timer records activity sessions with a start/stop state machine and
// drives the interactive terminal timer
package timer

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ayoisaiah/dayclock/internal/clock"
	"github.com/ayoisaiah/dayclock/internal/models"
)

// tickPeriod is how often the elapsed time is refreshed while tracking.
const tickPeriod = time.Second

// State is a stage of the timer lifecycle.
type State int

const (
	Idle State = iota
	Tracking
	AwaitingSave
)

func (s State) String() string {
	switch s {
	case Tracking:
		return "tracking"
	case AwaitingSave:
		return "awaiting save"
	default:
		return "idle"
	}
}

// SessionAdder persists finished sessions.
type SessionAdder interface {
	AddSession(sess models.Session)
}

// RunStateStore persists an in-progress timer.
type RunStateStore interface {
	Load() models.TimerRunState
	Save(st models.TimerRunState) error
	Clear() error
}

// Draft is the name and colour being entered for the next session.
type Draft struct {
	Name  string
	Color string
}

// Machine tracks start/stop transitions and produces finished sessions.
//
// Idle -> Start -> Tracking -> Stop -> AwaitingSave -> Submit -> Idle.
// Cancel returns to Idle from either Tracking or AwaitingSave without
// recording anything.
type Machine struct {
	startTime time.Time
	endTime   time.Time
	clock     clock.Clock
	sessions  SessionAdder
	runState  RunStateStore
	newTicker TickerFunc
	ticker    Ticker
	onTick    func(elapsed time.Duration)
	newID     func() string
	defaults  Draft
	draft     Draft
	state     State
	mu        sync.Mutex
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock sets the source of the current time.
func WithClock(c clock.Clock) Option {
	return func(m *Machine) {
		m.clock = c
	}
}

// WithTicker replaces the repeating timer used for elapsed time updates.
func WithTicker(f TickerFunc) Option {
	return func(m *Machine) {
		m.newTicker = f
	}
}

// WithTickHandler registers fn to receive the elapsed time once per second
// while tracking. Without a handler no ticker is started.
func WithTickHandler(fn func(elapsed time.Duration)) Option {
	return func(m *Machine) {
		m.onTick = fn
	}
}

// WithDefaults sets the name and colour used when a session is submitted
// without them.
func WithDefaults(name, color string) Option {
	return func(m *Machine) {
		m.defaults = Draft{Name: name, Color: color}
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *Machine) {
		m.newID = fn
	}
}

// New returns a machine in the Idle state, or in the Tracking state if an
// in-progress timer was persisted by a previous process.
func New(sessions SessionAdder, runState RunStateStore, opts ...Option) *Machine {
	m := &Machine{
		clock:     clock.System{},
		sessions:  sessions,
		runState:  runState,
		newTicker: NewTicker,
		newID:     models.NewID,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.draft = m.defaults

	st := runState.Load()
	if st.IsTracking {
		m.state = Tracking
		m.startTime = st.StartTime

		slog.Info(
			"resuming timer",
			slog.Time("start_time", m.startTime),
		)

		m.startTicker()
	}

	return m
}

// Start begins tracking from now.
func (m *Machine) Start() error {
	return m.StartAt(m.clock.Now())
}

// StartAt begins tracking from t, which must not be in the future.
func (m *Machine) StartAt(t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case Tracking:
		return errAlreadyTracking.Fmt(m.startTime.Format(time.Kitchen))
	case AwaitingSave:
		return errAwaitingSave
	}

	if t.After(m.clock.Now()) {
		return errFutureStart.Fmt(t.Format(time.DateTime))
	}

	m.state = Tracking
	m.startTime = t.Truncate(time.Millisecond)
	m.endTime = time.Time{}

	err := m.runState.Save(models.TimerRunState{
		IsTracking: true,
		StartTime:  m.startTime,
	})
	if err != nil {
		slog.Error("persisting timer state failed", slog.Any("error", err))
	}

	slog.Info("timer started", slog.Time("start_time", m.startTime))

	m.startTicker()

	return nil
}

// Stop captures the end time and waits for the session details.
func (m *Machine) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Tracking {
		return errNotTracking
	}

	m.stopTicker()

	m.state = AwaitingSave
	m.endTime = m.clock.Now().Truncate(time.Millisecond)

	slog.Info("timer stopped", slog.Time("end_time", m.endTime))

	return nil
}

// Submit records the stopped interval as a session and returns to Idle. A
// blank name or colour falls back to the defaults. Storage failures are
// logged by the session store and do not prevent the transition.
func (m *Machine) Submit(name, color string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.startTime.IsZero() {
		slog.Error("submit aborted", slog.Any("error", errNoStartTime))
		return models.Session{}, errNoStartTime
	}

	if m.state == Tracking {
		return models.Session{}, errStillTracking
	}

	if strings.TrimSpace(name) == "" {
		name = m.defaults.Name
	}

	if strings.TrimSpace(color) == "" {
		color = m.defaults.Color
	}

	sess := models.NewSession(
		m.newID(),
		strings.TrimSpace(name),
		color,
		m.startTime,
		m.endTime,
	)

	m.sessions.AddSession(sess)

	m.reset()

	return sess, nil
}

// Cancel discards the running or stopped interval.
func (m *Machine) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Idle {
		return errNotTracking
	}

	m.stopTicker()

	slog.Info("timer cancelled", slog.Time("start_time", m.startTime))

	m.reset()

	return nil
}

// reset clears the persisted run state and returns to Idle.
func (m *Machine) reset() {
	err := m.runState.Clear()
	if err != nil {
		slog.Error("clearing timer state failed", slog.Any("error", err))
	}

	m.state = Idle
	m.startTime = time.Time{}
	m.endTime = time.Time{}
	m.draft = m.defaults
}

// Close stops the ticker. A running timer stays persisted and is resumed by
// the next call to New.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTicker()
}

func (m *Machine) startTicker() {
	if m.onTick == nil || m.ticker != nil {
		return
	}

	start := m.startTime
	c := m.clock
	fn := m.onTick

	m.ticker = m.newTicker(tickPeriod, func() {
		fn(c.Now().Sub(start))
	})
}

func (m *Machine) stopTicker() {
	if m.ticker == nil {
		return
	}

	m.ticker.Stop()
	m.ticker = nil
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

func (m *Machine) StartTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.startTime
}

// Elapsed is the time tracked so far, frozen once the timer is stopped.
func (m *Machine) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case Tracking:
		return m.clock.Now().Sub(m.startTime)
	case AwaitingSave:
		return m.endTime.Sub(m.startTime)
	default:
		return 0
	}
}

func (m *Machine) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.draft
}

func (m *Machine) SetDraft(d Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.draft = d
}
