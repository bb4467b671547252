package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/netrom-source/notator/internal/haiku"
)

// deleteGateResult is the terminal message of the deletion overlay.
type deleteGateResult int

const (
	deleteGateNone deleteGateResult = iota
	deleteGateCancelled
	deleteGateConfirmed
)

type deleteGateStep int

const (
	deleteStepWarning deleteGateStep = iota
	deleteStepComposing
)

const deletePreamble = "Denne maskine er skabt for at skrive, ikke slette."

// DeleteGateController is the two-step deletion ritual: a rotating
// warning verse, then a three-line composition that must pass the
// word-count rule before confirm unlocks.
type DeleteGateController struct {
	rule    haiku.Rule
	prompts *haiku.Prompts

	step     deleteGateStep
	verse    string
	targetID string
	// warning step: 0 = "Slet alligevel!", 1 = "Annuller"
	choice int
	// composing step: 0..2 are the lines, 3 is the submit button
	focus int
	lines [3]textinput.Model
}

func NewDeleteGateController(rule haiku.Rule, prompts *haiku.Prompts) *DeleteGateController {
	c := &DeleteGateController{rule: rule, prompts: prompts}
	placeholders := [3]string{"5 stavelser", "7 stavelser", "5 stavelser"}
	for i := range c.lines {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 120
		input.Width = 40
		c.lines[i] = input
	}
	return c
}

// Open arms the gate for the given tab and draws the next verse from
// the rotation.
func (c *DeleteGateController) Open(targetID string) {
	c.targetID = targetID
	c.step = deleteStepWarning
	c.verse = c.prompts.Next()
	c.choice = 0
	c.focus = 0
	for i := range c.lines {
		c.lines[i].SetValue("")
		c.lines[i].Blur()
	}
}

// TargetID is the tab whose file the gate guards.
func (c *DeleteGateController) TargetID() string {
	return c.targetID
}

// Valid re-checks the composition against the word-count rule.
func (c *DeleteGateController) Valid() bool {
	return c.rule.Valid([3]string{
		c.lines[0].Value(),
		c.lines[1].Value(),
		c.lines[2].Value(),
	})
}

func (c *DeleteGateController) HandleKey(msg tea.KeyMsg) deleteGateResult {
	if msg.String() == "esc" {
		return deleteGateCancelled
	}
	if c.step == deleteStepWarning {
		return c.handleWarningKey(msg)
	}
	return c.handleComposingKey(msg)
}

func (c *DeleteGateController) handleWarningKey(msg tea.KeyMsg) deleteGateResult {
	switch msg.String() {
	case "left", "right", "tab":
		c.choice = 1 - c.choice
	case "enter":
		if c.choice == 1 {
			return deleteGateCancelled
		}
		c.step = deleteStepComposing
		c.focus = 0
		c.lines[0].Focus()
	}
	return deleteGateNone
}

func (c *DeleteGateController) handleComposingKey(msg tea.KeyMsg) deleteGateResult {
	switch msg.String() {
	case "up":
		if c.focus > 0 {
			c.setFocus(c.focus - 1)
		}
		return deleteGateNone
	case "down", "tab":
		if c.focus < 3 {
			c.setFocus(c.focus + 1)
		}
		return deleteGateNone
	case "enter":
		if c.Valid() {
			return deleteGateConfirmed
		}
		return deleteGateNone
	}
	if c.focus < 3 {
		var cmd tea.Cmd
		c.lines[c.focus], cmd = c.lines[c.focus].Update(msg)
		_ = cmd
	}
	return deleteGateNone
}

func (c *DeleteGateController) setFocus(focus int) {
	if c.focus < 3 {
		c.lines[c.focus].Blur()
	}
	c.focus = focus
	if c.focus < 3 {
		c.lines[c.focus].Focus()
	}
}

func (c *DeleteGateController) View(width int) string {
	if c.step == deleteStepWarning {
		return c.warningView(width)
	}
	return c.composingView(width)
}

func (c *DeleteGateController) warningView(width int) string {
	contentWidth := displayWidth(deletePreamble)
	for _, line := range strings.Split(c.verse, "\n") {
		if w := displayWidth(line); w > contentWidth {
			contentWidth = w
		}
	}
	lines := []string{padToWidth(deletePreamble, contentWidth), ""}
	lines = append(lines, strings.Split(verseStyle.Render(c.verse), "\n")...)
	lines = append(lines, "", c.warningButtons())
	block := gateBorderStyle.Render(padLines(lines, contentWidth))
	return centerBlock(block, width)
}

func (c *DeleteGateController) warningButtons() string {
	accept := "[Slet alligevel!]"
	cancel := "[Annuller]"
	if c.choice == 0 {
		return buttonFocusStyle.Render(accept) + "  " + buttonStyle.Render(cancel)
	}
	return buttonStyle.Render(accept) + "  " + buttonFocusStyle.Render(cancel)
}

func (c *DeleteGateController) composingView(width int) string {
	lines := []string{"Skriv et haiku for at slette!", ""}
	for i := range c.lines {
		lines = append(lines, c.lines[i].View())
	}
	submit := "[I overflod, beriges man af afsked!]"
	switch {
	case !c.Valid():
		submit = buttonDisabledStyle.Render(submit)
	case c.focus == 3:
		submit = buttonFocusStyle.Render(submit)
	default:
		submit = buttonStyle.Render(submit)
	}
	lines = append(lines, "", submit)
	block := gateBorderStyle.Render(padLines(lines, maxLineWidth(lines)))
	return centerBlock(block, width)
}
