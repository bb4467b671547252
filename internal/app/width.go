package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"
)

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	if xansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return xansi.Cut(text, 0, width-1) + "…"
}

func padToWidth(text string, width int) string {
	gap := width - xansi.StringWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

func padLines(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = padToWidth(line, width)
	}
	return strings.Join(out, "\n")
}

// displayWidth measures plain (unstyled) text. Styled lines go through
// xansi which strips escape sequences before measuring.
func displayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// maxLineWidth measures a block of possibly styled lines.
func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := xansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
