package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// quoteOverlayResult is the terminal message of the quote overlay.
type quoteOverlayResult int

const (
	quoteOverlayNone quoteOverlayResult = iota
	quoteOverlayDismissed
	quoteOverlayRestartYes
	quoteOverlayRestartNo
	quoteOverlayForce
)

type quoteOverlayMode int

const (
	quoteModeQuote quoteOverlayMode = iota
	quoteModeRestart
	quoteModeRateLimit
)

const rateLimitText = "Det er din tredje forespørgsel på et citat på under femten minutter.\n" +
	"Selv de mest kraftfulde ord mister sin virkning, hvis de bruges som flugt.\n" +
	"Prøv en vejrtrækningsøvelse i stedet — og mærk efter."

const forceLabel = "Giv mig et citat, din fandens hippie!!!"

// QuoteOverlayController shows a quote, the restart question, or the
// rate-limit warning, each with its own button row.
type QuoteOverlayController struct {
	mode   quoteOverlayMode
	text   string
	choice int
}

func NewQuoteOverlayController() *QuoteOverlayController {
	return &QuoteOverlayController{}
}

func (c *QuoteOverlayController) ShowQuote(text string) {
	c.mode = quoteModeQuote
	c.text = text
	c.choice = 0
}

func (c *QuoteOverlayController) ShowRestartPrompt() {
	c.mode = quoteModeRestart
	c.text = "Alle citater er vist. Vil du starte forfra?"
	c.choice = 0
}

func (c *QuoteOverlayController) ShowRateLimit() {
	c.mode = quoteModeRateLimit
	c.text = rateLimitText
	c.choice = 0
}

func (c *QuoteOverlayController) HandleKey(msg tea.KeyMsg) quoteOverlayResult {
	switch msg.String() {
	case "esc":
		return quoteOverlayDismissed
	case "left", "right", "tab":
		if c.mode == quoteModeRestart {
			c.choice = 1 - c.choice
		}
		return quoteOverlayNone
	case "enter":
		switch c.mode {
		case quoteModeQuote:
			return quoteOverlayDismissed
		case quoteModeRestart:
			if c.choice == 0 {
				return quoteOverlayRestartYes
			}
			return quoteOverlayRestartNo
		case quoteModeRateLimit:
			return quoteOverlayForce
		}
	}
	return quoteOverlayNone
}

func (c *QuoteOverlayController) View(width int) string {
	contentWidth := 0
	for _, line := range strings.Split(c.text, "\n") {
		if w := displayWidth(line); w > contentWidth {
			contentWidth = w
		}
	}
	lines := strings.Split(quoteStyle.Render(c.text), "\n")
	lines = append(lines, "", c.buttons())
	block := overlayBorderStyle.Render(padLines(lines, contentWidth))
	return centerBlock(block, width)
}

func (c *QuoteOverlayController) buttons() string {
	switch c.mode {
	case quoteModeRestart:
		yes, no := "[Ja]", "[Nej]"
		if c.choice == 0 {
			return buttonFocusStyle.Render(yes) + "  " + buttonStyle.Render(no)
		}
		return buttonStyle.Render(yes) + "  " + buttonFocusStyle.Render(no)
	case quoteModeRateLimit:
		return buttonFocusStyle.Render("[" + forceLabel + "]")
	default:
		return buttonFocusStyle.Render("[OK]")
	}
}
