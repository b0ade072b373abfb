package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// resetTheme restores the token defaults after a test mutates them.
func resetTheme(t *testing.T) {
	t.Helper()

	highlight := HighlightColor
	muted := TextMutedColor
	border := BorderDefaultColor
	errColor := StatusErrorColor
	success := StatusSuccessColor
	title := TitleStyle
	selected := SelectedRowStyle
	hint := HintStyle
	errStyle := ErrorStyle
	successStyle := SuccessStyle
	toastSuccess := ToastBorderSuccessColor
	toastError := ToastBorderErrorColor

	t.Cleanup(func() {
		HighlightColor = highlight
		TextMutedColor = muted
		BorderDefaultColor = border
		StatusErrorColor = errColor
		StatusSuccessColor = success
		TitleStyle = title
		SelectedRowStyle = selected
		HintStyle = hint
		ErrorStyle = errStyle
		SuccessStyle = successStyle
		ToastBorderSuccessColor = toastSuccess
		ToastBorderErrorColor = toastError
	})
}

func TestApplyTheme_OverridesConfiguredTokens(t *testing.T) {
	resetTheme(t)

	ApplyTheme("#112233", "#445566", "#778899", "#AABBCC")

	want := lipgloss.AdaptiveColor{Light: "#112233", Dark: "#112233"}
	assert.Equal(t, want, HighlightColor)
	assert.Equal(t, want, TitleStyle.GetForeground(), "derived styles pick up the new color")
	assert.Equal(t, want, SelectedRowStyle.GetForeground())

	subtle := lipgloss.AdaptiveColor{Light: "#445566", Dark: "#445566"}
	assert.Equal(t, subtle, TextMutedColor)
	assert.Equal(t, subtle, BorderDefaultColor)
	assert.Equal(t, subtle, HintStyle.GetForeground())

	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#778899", Dark: "#778899"}, ErrorStyle.GetForeground())
	assert.Equal(t, StatusErrorColor, ToastBorderErrorColor)
	assert.Equal(t, StatusSuccessColor, ToastBorderSuccessColor)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#AABBCC", Dark: "#AABBCC"}, StatusSuccessColor)
}

func TestApplyTheme_EmptyValuesKeepDefaults(t *testing.T) {
	resetTheme(t)

	before := HighlightColor
	ApplyTheme("", "", "", "")

	assert.Equal(t, before, HighlightColor, "empty config keeps the adaptive default")
	assert.Equal(t, before, TitleStyle.GetForeground())
}
