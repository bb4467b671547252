package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/netrom-source/notator/internal/timespec"
)

// timerMenuResult is the terminal message of the timer menu overlay.
type timerMenuResult int

const (
	timerMenuNone timerMenuResult = iota
	timerMenuClosed
	timerMenuChosen
	timerMenuInvalid
)

// TimerMenuController is the duration picker: preset options plus a
// free-form field accepting the compact duration notation.
type TimerMenuController struct {
	presets  []int
	selected int
	inField  bool
	custom   textinput.Model
}

func NewTimerMenuController(presets []int) *TimerMenuController {
	custom := textinput.New()
	custom.Placeholder = "Brugerdefineret (f.eks. 90, 2m)"
	custom.CharLimit = 16
	custom.Width = 30
	return &TimerMenuController{presets: presets, custom: custom}
}

// Open resets the menu to the first preset with the field cleared.
func (c *TimerMenuController) Open() {
	c.selected = 0
	c.inField = false
	c.custom.SetValue("")
	c.custom.Blur()
}

// HandleKey routes one key. seconds is meaningful only for
// timerMenuChosen.
func (c *TimerMenuController) HandleKey(msg tea.KeyMsg) (timerMenuResult, int) {
	switch msg.String() {
	case "esc":
		return timerMenuClosed, 0
	case "up":
		if c.inField {
			c.inField = false
			c.custom.Blur()
			c.selected = len(c.presets) - 1
		} else if c.selected > 0 {
			c.selected--
		}
		return timerMenuNone, 0
	case "down":
		if c.inField {
			return timerMenuNone, 0
		}
		if c.selected < len(c.presets)-1 {
			c.selected++
		} else {
			c.inField = true
			c.custom.Focus()
		}
		return timerMenuNone, 0
	case "enter":
		if !c.inField {
			return timerMenuChosen, c.presets[c.selected]
		}
		seconds, ok := timespec.Parse(c.custom.Value())
		if !ok {
			return timerMenuInvalid, 0
		}
		c.custom.SetValue("")
		return timerMenuChosen, seconds
	}
	if c.inField {
		var cmd tea.Cmd
		c.custom, cmd = c.custom.Update(msg)
		_ = cmd
	}
	return timerMenuNone, 0
}

func (c *TimerMenuController) View(width int) string {
	lines := []string{overlayTitleStyle.Render(" Timer ")}
	for i, preset := range c.presets {
		label := formatPreset(preset)
		if i == c.selected && !c.inField {
			lines = append(lines, optionSelectedStyle.Render("> "+label))
		} else {
			lines = append(lines, optionStyle.Render("  "+label))
		}
	}
	lines = append(lines, c.custom.View())
	block := overlayBorderStyle.Render(strings.Join(lines, "\n"))
	return centerBlock(block, width)
}

// formatPreset renders a duration the way the menu labels it: whole
// minutes as "3m", anything else in seconds.
func formatPreset(seconds int) string {
	if seconds >= 60 && seconds%60 == 0 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%ds", seconds)
}
