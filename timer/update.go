package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/dayclock/internal/models"
)

type tickMsg struct {
	t  time.Time
	id int
}

// ModelOptions configure the terminal timer.
type ModelOptions struct {
	Palette        []string
	Hooks          []Hook
	Style          Style
	TwentyFourHour bool
	Debug          bool
}

// Model is the bubbletea front end of a Machine.
type Model struct {
	err         error
	machine     *Machine
	form        *huh.Form
	saved       *models.Session
	opts        ModelOptions
	fields      SaveFields
	help        help.Model
	elapsed     time.Duration
	// tickID identifies the tick chain of the current Tracking entry. Ticks
	// from an earlier chain are dropped so only one chain is ever live.
	tickID int
}

// NewModel returns a terminal timer driving machine.
func NewModel(machine *Machine, opts ModelOptions) *Model {
	return &Model{
		machine: machine,
		opts:    opts,
		help:    help.New(),
		elapsed: machine.Elapsed(),
	}
}

func (m *Model) Init() tea.Cmd {
	if m.machine.State() == Tracking {
		return m.startTicking()
	}

	return nil
}

// startTicking begins a new tick chain and invalidates any previous one.
func (m *Model) startTicking() tea.Cmd {
	m.tickID++

	return m.tick(m.tickID)
}

func (m *Model) stopTicking() {
	m.tickID++
}

func (m *Model) tick(id int) tea.Cmd {
	return tea.Tick(tickPeriod, func(t time.Time) tea.Msg {
		return tickMsg{id: id, t: t}
	})
}

func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.tickID || m.machine.State() != Tracking {
		return m, nil
	}

	m.elapsed = m.machine.Elapsed()

	return m, m.tick(msg.id)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.stopTicking()
	m.machine.Close()

	return m, tea.Batch(tea.ClearScreen, tea.Quit)
}

func (m *Model) toggle() (tea.Model, tea.Cmd) {
	m.err = nil

	switch m.machine.State() {
	case Idle:
		err := m.machine.Start()
		if err != nil {
			m.err = err
			return m, nil
		}

		m.saved = nil
		m.elapsed = 0

		return m, m.startTicking()

	case Tracking:
		err := m.machine.Stop()
		if err != nil {
			m.err = err
			return m, nil
		}

		m.stopTicking()
		m.elapsed = m.machine.Elapsed()
		m.form = m.newSaveForm()

		return m, m.form.Init()
	}

	return m, nil
}

func (m *Model) cancel() (tea.Model, tea.Cmd) {
	m.form = nil

	if m.machine.State() == Idle {
		return m, nil
	}

	m.stopTicking()

	err := m.machine.Cancel()
	if err != nil {
		m.err = err
	}

	m.elapsed = 0

	return m, nil
}

func (m *Model) newSaveForm() *huh.Form {
	return NewSaveForm(m.machine.Draft(), m.opts.Palette, &m.fields)
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	m.form = nil

	sess, err := m.machine.Submit(m.fields.Name, m.fields.ChosenColor())
	if err != nil {
		m.err = err
		return m, nil
	}

	m.saved = &sess
	m.elapsed = 0

	hooks := m.opts.Hooks
	if len(hooks) == 0 {
		return m, nil
	}

	return m, func() tea.Msg {
		RunHooks(context.Background(), sess, hooks...)
		return nil
	}
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return m.cancel()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submit()
	case huh.StateAborted:
		return m.cancel()
	}

	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.toggle):
		return m.toggle()

	case key.Matches(msg, defaultKeymap.cancel):
		return m.cancel()

	case key.Matches(msg, defaultKeymap.help):
		m.help.ShowAll = !m.help.ShowAll

		return m, nil

	case key.Matches(msg, defaultKeymap.quit):
		return m.quit()
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.opts.Debug {
		slog.Debug(spew.Sdump(msg))
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m.quit()
	}

	if msg, ok := msg.(tickMsg); ok {
		return m.handleTick(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil
	}

	return m, nil
}
