// Package ui provides the user interface components for the coderefine TUI.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────────────────┬──────────────────────────┤
//	│                          │                          │
//	│   Editor                 │   Results                │
//	│   (1/2 width)            │   (1/2 width)            │
//	│                          │                  toasts  │
//	├──────────────────────────┴──────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// While signed out the content area shows only the authentication modal.
//
// # Components
//
// ViewContext: singleton holding the layout calculations. All size
// calculations go through it.
//
// Header: title, selected language, signed-in email and the loading spinner,
// over a gradient from the theme's primary color to its background.
//
// Footer: mode badge and the bindings valid in that mode.
//
// Editor: line-numbered textarea with a "Lines: N | Characters: M" status line.
//
// Results: scrollable viewport with the complexity report, the analysis
// rendered as markdown, and the before/after comparison of a refinement.
//
// Toasts: stack of ephemeral messages drawn over the bottom of the content
// area. Each one lives for ToastDuration, then renders faint for
// ToastExitDuration before it is removed.
//
// Modal: hosts one modals.ModalState at a time, centered on screen.
//
// # Styles
//
// Styles are generated from the active Theme by regenerateStyles and pushed
// to the modals package by RefreshModalStyles.
package ui
