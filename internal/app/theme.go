package app

import "github.com/charmbracelet/lipgloss"

var (
	tabStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	tabActiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")).Bold(true).Padding(0, 1)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusDirtyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	timerStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	timerExpiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Blink(true)

	overlayTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Background(lipgloss.Color("235")).Bold(true)
	overlayBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	gateBorderStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1)
	verseStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	quoteStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true)

	optionStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	optionSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	buttonStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	buttonFocusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("239")).Bold(true)
	buttonDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)

	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Bold(true)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
