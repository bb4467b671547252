package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is the one-second countdown pulse. The generation stamp lets
// the model drop ticks scheduled before the countdown was re-armed, so
// a restart can never leave two live tick streams double-decrementing.
type tickMsg struct {
	gen int
	at  time.Time
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}
