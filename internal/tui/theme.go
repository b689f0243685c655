package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

// ---------------------------------------------------------------------------
// Picker styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	monthHeadingStyle  = lipgloss.NewStyle().Foreground(colorMauve).Bold(true)
	weekdayHeaderStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	dayStyle      = lipgloss.NewStyle().Foreground(colorText)
	weekendStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)
	todayStyle    = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus).Bold(true)
	blockedStyle  = lipgloss.NewStyle().Foreground(colorError).Strikethrough(true)
	disabledStyle = lipgloss.NewStyle().Foreground(colorSurface1)

	selectedStyle    = lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Bold(true)
	rangeEndStyle    = lipgloss.NewStyle().Foreground(colorBase).Background(colorBlue).Bold(true)
	rangeMiddleStyle = lipgloss.NewStyle().Foreground(colorBlue).Background(colorSurface0)

	anchorStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	placeholderStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)
	statusStyle      = lipgloss.NewStyle().Foreground(colorSubtext0)
	warningStyle     = lipgloss.NewStyle().Foreground(colorWarning)
	helpStyle        = lipgloss.NewStyle().Foreground(colorOverlay1)

	confirmBarStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorGreen).
			Bold(true).
			Padding(0, 1)
)
