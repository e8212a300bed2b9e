// Package ui provides the user interface components for the pdfchat TUI.
//
// # Overview
//
// The ui package implements the visual components using the Bubble Tea
// framework and Lipgloss styling library. Components are plain structs with
// setters and a View method; the app package owns the state they draw.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Navbar (1 line)                 ▤ file   ctrl+o ... │
//	├─────────────────────────────────────────────────────┤
//	│ Banner (1 line, only while an upload error shows)   │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Chat history (viewport)                           │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│   Input (textarea)                                  │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// Navbar: title on the left; the uploaded file label (or an uploading
// spinner) and the upload hint on the right.
//
// Banner: the upload error line. It has no timer of its own; the app sets
// and clears its text from the upload state.
//
// Chat: message history in a viewport and the question textarea. History
// is read from an iter.Seq of chat entries on every Refresh, so the panel
// never holds a second copy of the conversation. Assistant replies are
// rendered as light markdown with chroma-highlighted code blocks.
//
// Footer: context-aware key hints via bubbles/help, replaced by a flash
// message while one is live.
//
// Modal: popup dialogs from the modals subpackage (settings, file picker,
// clear confirmation), centered over the screen.
//
// # Constants
//
// Layout constants are defined in constants.go:
//   - NavbarHeight, FooterHeight, BannerHeight: 1 line each
//   - TextareaHeight: 3 lines for input
//   - MessageMaxWidthRatio: messages wrap at 75% of the history width
//
// # Styles
//
// All styles are defined in styles.go using Lipgloss. ColorPrimary
// (#16A34A) marks focus and the navbar gradient; ColorError (#DC2626) is the
// banner background.
package ui
