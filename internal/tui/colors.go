package tui

// Color constants for the timeflow TUI theme
const (
	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, values, titles)
	ColorSecondaryText = "#94A3B8" // Secondary text - slate grey
	ColorHelpText      = "240"     // Dark grey for help text
	ColorPlaceholder   = "#64748B" // Input placeholders

	// Mode Colors
	ColorWorking = "#135BEC" // Working - primary blue
	ColorBreak   = "#F59E0B" // Break - amber
	ColorOthers  = "#EC4899" // Others/permission - pink
	ColorOut     = "#475569" // Clocked out - slate

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorBorder  = "#3A3F55" // Panel borders
)
