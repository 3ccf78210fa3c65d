package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, focused fields
	ColorHighlight = "205" // Magenta - enabled button, key names
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - hints, disabled controls
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - step label
	ColorWarning   = "208" // Orange - required marker
)

// Styles contains shared style definitions used by the wizard steps.
var Styles = struct {
	Step     lipgloss.Style // "Step 1" label above the title
	Title    lipgloss.Style // Step title
	Heading  lipgloss.Style // Field heading
	Hint     lipgloss.Style // Help/hint text under a heading
	Normal   lipgloss.Style
	Keyword  lipgloss.Style // {{ keyword }} in hints
	Required lipgloss.Style
	Optional lipgloss.Style

	Field        lipgloss.Style // Unfocused input frame
	FieldFocused lipgloss.Style // Focused input frame

	Button         lipgloss.Style // Enabled, unfocused
	ButtonFocused  lipgloss.Style // Enabled, focused
	ButtonDisabled lipgloss.Style

	Error lipgloss.Style // Inline error block
	Box   lipgloss.Style // Review summary box
	Label lipgloss.Style // Review field label
}{
	Step: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Keyword: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Required: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorWarning)),
	Optional: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Field: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	FieldFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2),
	ButtonFocused: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	ButtonDisabled: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Width(12),
}
