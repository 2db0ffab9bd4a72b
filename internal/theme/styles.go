package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Shelf styles
var (
	ShelfStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	ShelfFocusedStyle = ShelfStyle.
				BorderForeground(ColorSecondary)

	ShelfDropTargetStyle = ShelfStyle.
				BorderForeground(ColorDropTarget)

	ShelfHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	ShelfAcceptStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Padding(0, 1)

	TabActiveStyle = TabStyle.
			Foreground(ColorHighlight).
			Bold(true).
			Underline(true)

	TabDropTargetStyle = TabStyle.
				Foreground(ColorDropTarget).
				Bold(true)
)

// Item styles
var (
	ItemStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	ItemFocusedStyle = lipgloss.NewStyle().
				Foreground(ColorFocus).
				Bold(true)

	ItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSelected)

	ItemDraggingStyle = lipgloss.NewStyle().
				Foreground(ColorDimmed).
				Strikethrough(true)

	ItemCutStyle = lipgloss.NewStyle().
			Foreground(ColorCut).
			Italic(true)

	ItemLinkStyle = lipgloss.NewStyle().
			Foreground(ColorLink)

	ItemDropTargetStyle = lipgloss.NewStyle().
				Foreground(ColorDropTarget).
				Bold(true).
				Reverse(true)

	DropLineStyle = lipgloss.NewStyle().
			Foreground(ColorDropLine).
			Bold(true)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorBadge).
			Bold(true).
			Padding(0, 1)

	OperationStyle = lipgloss.NewStyle().
			Foreground(ColorOperation).
			Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorHintLabel)
)

// Calendar styles
var (
	CalendarHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	CalendarWeekdayStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	CalendarDayStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	CalendarOutsideStyle = lipgloss.NewStyle().
				Foreground(ColorOutside)

	CalendarTodayStyle = lipgloss.NewStyle().
				Foreground(ColorToday).
				Bold(true)

	CalendarRangeStyle = lipgloss.NewStyle().
				Background(ColorRange).
				Foreground(ColorHighlight)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// DimmedStyle renders content pushed to the background by an overlay.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorDimmed)

// Command palette styles
var (
	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorFocus)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)
