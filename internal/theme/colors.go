package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles, shelf headers
)

// UI semantic colors
const (
	ColorDimmed    Color = "238" // Items in flight, background under overlays
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Drag and drop colors
const (
	ColorCut        Color = "244" // Items waiting on the clipboard to be moved
	ColorDropLine   Color = "46"  // Insertion indicator between items
	ColorDropTarget Color = "33"  // Shelf or folder the drop lands on
	ColorFocus      Color = "212" // Focused item
	ColorLink       Color = "117" // Link items
	ColorOperation  Color = "214" // Negotiated operation in the status line
	ColorSelected   Color = "141" // Selected items
)

// Accent colors
const (
	ColorBadge     Color = "205" // Pink - multi-item preview badge
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow - hint keys
	ColorHintLabel Color = "178" // Gold - hint labels
)

// Calendar colors
const (
	ColorRange   Color = "24"  // Highlighted range background
	ColorToday   Color = "214" // Today's date
	ColorOutside Color = "238" // Days outside the displayed month
)
