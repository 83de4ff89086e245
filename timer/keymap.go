package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	toggle key.Binding
	cancel key.Binding
	help   key.Binding
	quit   key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.cancel, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.toggle, k.cancel}, {k.help, k.quit}}
}

var defaultKeymap = keymap{
	toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "start/stop"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc", "c"),
		key.WithHelp("esc", "cancel"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
