package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfchat/internal/ui/modals"
)

// Color palette - green on slate, after the upload bar's accent
var (
	ColorPrimary     = lipgloss.Color("#16A34A") // Green
	ColorSecondary   = lipgloss.Color("#3B82F6") // Blue
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#16A34A") // Green when focused
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorUser        = lipgloss.Color("#60A5FA") // Light blue for user messages
	ColorAssistant   = lipgloss.Color("#4ADE80") // Light green for assistant messages
	ColorPending     = lipgloss.Color("#9CA3AF") // Gray for the processing row
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan
	ColorError       = lipgloss.Color("#DC2626") // Red banner
	ColorSuccess     = lipgloss.Color("#10B981") // Green
)

// Navbar styles
var (
	NavbarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	NavbarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	NavbarSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	NavbarFileStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NavbarUploadingStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)
)

// Banner style
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(ColorError).
	Bold(true).
	Align(lipgloss.Center)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FooterSepStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)
)

// Chat styles
var (
	ChatUserStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
				Foreground(ColorAssistant).
				Bold(true)

	ChatPendingStyle = lipgloss.NewStyle().
				Foreground(ColorPending).
				Italic(true)

	ChatUserAvatarStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorSecondary).
				Bold(true).
				Padding(0, 1)

	ChatAssistantAvatarStyle = lipgloss.NewStyle().
					Foreground(ColorTextInverse).
					Background(ColorAssistant).
					Bold(true).
					Padding(0, 1)

	ChatPendingAvatarStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorMuted).
				Padding(0, 1)

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)

	ChatEmptyStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Markdown rendering styles
var (
	MarkdownHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	MarkdownBoldStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FBBF24")).
				Background(lipgloss.Color("#111827"))

	MarkdownListBulletStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true).
				BorderLeft(true).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(ColorMuted).
				PaddingLeft(1)
)

func init() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalInputWidth, ModalInputCharLimit, ModalWidth, ModalWidthWide, PickerHeight,
	)
}
