// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/recall-sh/recall/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7C6FF0") // Violet
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// CategoryStyle highlights item categories.
	CategoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	MoonIcon    = "🌙"
	BrainIcon   = "🧠"
	CardIcon    = "🃏"
	BellIcon    = "🔔"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatItemLine renders one collection item for list output.
func FormatItemLine(item model.Item, next time.Time, hasNext bool) string {
	icon := BrainIcon
	if item.Kind == model.KindFlashcard {
		icon = CardIcon
	}

	nextText := "all reminders passed"
	if hasNext {
		nextText = "next " + next.Format("2006-01-02 15:04")
	}

	return fmt.Sprintf("%s %s  %s  %s  %s",
		icon,
		SubtleStyle.Render(item.ID[:8]),
		item.Content,
		CategoryStyle.Render(string(item.Category)),
		SubtleStyle.Render(nextText))
}

// FormatConflictAlert renders the night-window message composed from a
// conflict's data. The schedule itself is never affected by this text.
func FormatConflictAlert(conflict *model.NightConflict) string {
	count := conflict.ConflictCount()
	word := "reminders"
	if count == 1 {
		word = "reminder"
	}

	message := fmt.Sprintf(
		"%s We've detected that it is currently nighttime in %s.\n"+
			"We suggest that learning is more effective after a good night's sleep.\n"+
			"Would you like to postpone %d %s until the morning?",
		MoonIcon, conflict.Region, count, word)

	return BoxStyle.Render(WarningStyle.Render(message))
}
