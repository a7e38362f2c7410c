package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7aa2f7")
	colorSuccess = lipgloss.Color("#9ece6a")
	colorWarning = lipgloss.Color("#e0af68")
	colorError   = lipgloss.Color("#f7768e")
	colorMuted   = lipgloss.Color("#565f89")
	colorBgLight = lipgloss.Color("#24283b")
	colorFg      = lipgloss.Color("#c0caf5")
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	totalStyle     = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(colorFg).Background(colorBgLight).Bold(true).Padding(0, 1)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	successStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
)
