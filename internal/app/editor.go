package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Editor wraps the textarea widget behind the session.Document
// capability so the tab registry never touches widget state directly.
type Editor struct {
	area textarea.Model
}

func NewEditor() *Editor {
	area := textarea.New()
	area.Placeholder = ""
	area.ShowLineNumbers = false
	area.CharLimit = 0
	return &Editor{area: area}
}

func (e *Editor) Text() string {
	return e.area.Value()
}

func (e *Editor) SetText(text string) {
	e.area.SetValue(text)
}

func (e *Editor) Focus() tea.Cmd {
	return e.area.Focus()
}

func (e *Editor) Blur() {
	e.area.Blur()
}

func (e *Editor) Focused() bool {
	return e.area.Focused()
}

func (e *Editor) SetSize(width, height int) {
	if width > 0 {
		e.area.SetWidth(width)
	}
	if height > 0 {
		e.area.SetHeight(height)
	}
}

func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return cmd
}

func (e *Editor) View() string {
	return e.area.View()
}
