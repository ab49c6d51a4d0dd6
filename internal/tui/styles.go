package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Exported constants.
const (
	// ProgressBarWidth is the default width of progress bars
	ProgressBarWidth = 40
	// MaxProgressBarWidth is the maximum width for progress bars
	MaxProgressBarWidth = 100
	// KeyCtrlC is the key binding for cancellation
	KeyCtrlC = "ctrl+c"
)

// colorsDisabled honors NO_COLOR and dumb terminals; the ASCII progress
// fallback keys off the same flag.
var colorsDisabled = os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"

func AccentColor() lipgloss.Color { return lipgloss.Color(accentColorCode) }

func DimColor() lipgloss.Color { return lipgloss.Color(dimColorCode) }

func ErrorColor() lipgloss.Color { return lipgloss.Color(errorColorCode) }

func SuccessColor() lipgloss.Color { return lipgloss.Color(successColorCode) }

// TitleStyle returns the style for the session header
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor()).
		MarginBottom(1)
}

// DimStyle returns the style for secondary detail lines
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor())
}

// SuccessStyle returns the style for completed folders
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SuccessColor()).
		Bold(true)
}

// ErrorStyle returns the style for failed folders
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true)
}

// unexported constants.
const (
	accentColorCode  = "62"  // Blue
	dimColorCode     = "240" // Dark gray
	errorColorCode   = "196" // Red
	successColorCode = "42"  // Green
)
