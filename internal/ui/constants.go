// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// EditorWidthRatio is the denominator for the editor share of the width (1/2)
	EditorWidthRatio = 2

	// StatsHeight is the editor status line under the textarea
	StatsHeight = 1

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// MinTerminalWidth and MinTerminalHeight are the smallest sizes the
	// split layout renders at.
	MinTerminalWidth  = 60
	MinTerminalHeight = 12

	// DefaultWrapWidth is used when the results viewport has no width yet
	DefaultWrapWidth = 80
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// HelpModalMaxVisible is the number of help rows shown before scrolling
	HelpModalMaxVisible = 16
)

// Toast timing
const (
	ToastDuration     = 3 * time.Second
	ToastExitDuration = 300 * time.Millisecond

	// ToastMaxWidth bounds a single toast line
	ToastMaxWidth = 48
)
