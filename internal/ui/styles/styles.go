// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // IDs, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Accent for selected menu entries and section titles
	HighlightColor = lipgloss.AdaptiveColor{Light: "#5A33CF", Dark: "#7D56F4"}

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	// Selection indicator style (used for ">" prefix in lists: menu, pickers)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// TitleStyle renders section titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)

	// TableHeaderStyle renders table column headers.
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(TextSecondaryColor)

	// TableRowStyle renders plain table rows.
	TableRowStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)

	// SelectedRowStyle renders the row under the cursor.
	SelectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)

	// HintStyle renders footers and key hints.
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// ErrorStyle renders inline form errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	// SuccessStyle renders positive confirmations.
	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)

	// Toast border colors
	ToastBorderSuccessColor = StatusSuccessColor
	ToastBorderErrorColor   = StatusErrorColor
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#89B4FA"}
	ToastBorderWarnColor    = StatusWarningColor
)

// ApplyTheme overrides the color tokens with user-configured values and
// rebuilds the styles derived from them. A configured color applies to both
// light and dark backgrounds; an empty value keeps the built-in default.
// Call once at startup, before any view renders.
func ApplyTheme(highlight, subtle, errorColor, success string) {
	if highlight != "" {
		HighlightColor = lipgloss.AdaptiveColor{Light: highlight, Dark: highlight}
	}
	if subtle != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
		BorderDefaultColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
	}
	if errorColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
	}

	TitleStyle = TitleStyle.Foreground(HighlightColor)
	SelectedRowStyle = SelectedRowStyle.Foreground(HighlightColor)
	HintStyle = HintStyle.Foreground(TextMutedColor)
	ErrorStyle = ErrorStyle.Foreground(StatusErrorColor)
	SuccessStyle = SuccessStyle.Foreground(StatusSuccessColor)
	ToastBorderSuccessColor = StatusSuccessColor
	ToastBorderErrorColor = StatusErrorColor
}
