package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Style variables - these will be set by the parent ui package via SetStyles
var (
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style

	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color

	ModalInputWidth     int
	ModalInputCharLimit int
	ModalWidth          int
	ModalWidthWide      int
	PickerHeight        int
)

// SetStyles sets the style variables from the parent ui package.
// This must be called before rendering any modals.
func SetStyles(
	modalTitle, modalHelp, statusError lipgloss.Style,
	primary, secondary, text, textMuted, textInverse, warning color.Color,
	inputWidth, inputCharLimit, modalWidth, modalWidthWide, pickerHeight int,
) {
	ModalTitleStyle = modalTitle
	ModalHelpStyle = modalHelp
	StatusErrorStyle = statusError

	ColorPrimary = primary
	ColorSecondary = secondary
	ColorText = text
	ColorTextMuted = textMuted
	ColorTextInverse = textInverse
	ColorWarning = warning

	ModalInputWidth = inputWidth
	ModalInputCharLimit = inputCharLimit
	ModalWidth = modalWidth
	ModalWidthWide = modalWidthWide
	PickerHeight = pickerHeight
}
