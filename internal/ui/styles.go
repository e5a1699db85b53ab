package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, filled from the active theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorSuccess     color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
)

// Header styles
var (
	HeaderTitleStyle lipgloss.Style
	HeaderInfoStyle  lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterModeStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	SectionTitleStyle lipgloss.Style
	MetricLabelStyle  lipgloss.Style
	MetricValueStyle  lipgloss.Style
	StatsStyle        lipgloss.Style
	PlaceholderStyle  lipgloss.Style
)

// List styles, shared with the modals package
var (
	ListItemStyle     lipgloss.Style
	ListSelectedStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

// ToastStyles maps each severity to its style
var ToastStyles map[ToastSeverity]lipgloss.Style

// Diff styles
var (
	DiffAddedStyle   lipgloss.Style
	DiffRemovedStyle lipgloss.Style
	DiffContextStyle lipgloss.Style
)
