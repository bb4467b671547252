package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// saveAsResult is the terminal message of the save-as overlay.
type saveAsResult int

const (
	saveAsNone saveAsResult = iota
	saveAsClosed
	saveAsChosen
	saveAsEmpty
)

// SaveAsController prompts for a file name. Opening with a prefill
// supports the rename path, where a double save press reroutes here.
type SaveAsController struct {
	input textinput.Model
}

func NewSaveAsController() *SaveAsController {
	input := textinput.New()
	input.Placeholder = "Filnavn"
	input.CharLimit = 120
	input.Width = 40
	return &SaveAsController{input: input}
}

func (c *SaveAsController) Open(prefill string) {
	c.input.SetValue(prefill)
	c.input.CursorEnd()
	c.input.Focus()
}

// HandleKey routes one key. name is meaningful only for saveAsChosen
// and never carries surrounding whitespace.
func (c *SaveAsController) HandleKey(msg tea.KeyMsg) (saveAsResult, string) {
	switch msg.String() {
	case "esc":
		return saveAsClosed, ""
	case "enter":
		name := strings.TrimSpace(c.input.Value())
		if name == "" {
			return saveAsEmpty, ""
		}
		return saveAsChosen, name
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	_ = cmd
	return saveAsNone, ""
}

func (c *SaveAsController) View(width int) string {
	lines := []string{
		overlayTitleStyle.Render(" Gem som "),
		c.input.View(),
	}
	block := overlayBorderStyle.Render(strings.Join(lines, "\n"))
	return centerBlock(block, width)
}
