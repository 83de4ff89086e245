package timer

import (
	"strings"

	"github.com/ayoisaiah/dayclock/internal/timeutil"
)

func (m *Model) timeFormat() string {
	if m.opts.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (m *Model) idleView() string {
	var s strings.Builder

	s.WriteString(m.opts.Style.Main.SetString("dayclock").String())

	if m.saved != nil {
		s.WriteString("\n\n")
		s.WriteString(m.opts.Style.Secondary.SetString(
			"Saved " + swatch(m.saved.Color) + " " + m.saved.Name +
				" (" + timeutil.FormatMinutes(m.saved.Duration) + ")",
		).String())
	}

	s.WriteString("\n\n")
	s.WriteString(m.opts.Style.Hint.SetString("Press space to start tracking").String())

	return s.String()
}

func (m *Model) trackingView() string {
	var s strings.Builder

	s.WriteString(m.opts.Style.Secondary.SetString(
		"Tracking since " + m.machine.StartTime().Format(m.timeFormat()),
	).String())
	s.WriteString("\n\n")
	s.WriteString(m.opts.Style.Main.SetString(timeutil.FormatElapsed(m.elapsed)).String())

	return s.String()
}

func (m *Model) saveView() string {
	var s strings.Builder

	s.WriteString(m.opts.Style.Secondary.SetString("Stopped after").String())
	s.WriteString(" ")
	s.WriteString(m.opts.Style.Main.SetString(timeutil.FormatElapsed(m.elapsed)).String())

	if m.form != nil {
		s.WriteString("\n\n" + m.form.View())
	}

	return s.String()
}

func (m *Model) View() string {
	var view string

	switch m.machine.State() {
	case Tracking:
		view = m.trackingView()
	case AwaitingSave:
		view = m.saveView()
	default:
		view = m.idleView()
	}

	if m.err != nil {
		view += "\n\n" + m.opts.Style.Error.SetString(m.err.Error()).String()
	}

	if m.form == nil {
		view += "\n\n" + m.help.View(defaultKeymap)
	}

	return m.opts.Style.Base.Render(view)
}
