package app

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// previewResult is the terminal message of the preview overlay.
type previewResult int

const (
	previewNone previewResult = iota
	previewClosed
)

// PreviewController renders the active note as markdown inside a
// scrollable viewport.
type PreviewController struct {
	view  viewport.Model
	width int
}

func NewPreviewController() *PreviewController {
	vp := viewport.New(80, 20)
	return &PreviewController{view: vp, width: 80}
}

func (c *PreviewController) SetSize(width, height int) {
	if width > 4 {
		c.width = width - 4
		c.view.Width = c.width
	}
	if height > 4 {
		c.view.Height = height - 4
	}
}

// Open renders the note text and scrolls back to the top.
func (c *PreviewController) Open(text string) {
	c.view.SetContent(renderMarkdown(text, c.width))
	c.view.GotoTop()
}

func (c *PreviewController) HandleKey(msg tea.KeyMsg) previewResult {
	switch msg.String() {
	case "esc", "enter", "q":
		return previewClosed
	}
	var cmd tea.Cmd
	c.view, cmd = c.view.Update(msg)
	_ = cmd
	return previewNone
}

func (c *PreviewController) View(width int) string {
	block := overlayBorderStyle.Render(c.view.View())
	return centerBlock(block, width)
}
