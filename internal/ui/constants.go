package ui

// Layout constants
const (
	// NavbarHeight is the height of the navbar in lines
	NavbarHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BannerHeight is the height of the error banner when shown
	BannerHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1))
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// DefaultWrapWidth is the wrap width used before the first resize
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight bound the layout from below
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// MaxLabelWidth caps the uploaded file label in the navbar, in cells
	MaxLabelWidth = 32

	// MessageMaxWidthRatio is the share of the viewport a message bubble may use, in percent
	MessageMaxWidthRatio = 75
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is used by the file picker
	ModalWidthWide = 80

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// PickerHeight is the number of rows the file picker lists
	PickerHeight = 14
)
