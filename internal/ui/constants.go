package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.
// Text shared with the terminal UI lives in the model package.

// Icons (emojis/symbols)
const (
	IconError    = "⚠"
	IconValid    = "✓"
	IconDownload = "⬇"
)

// Text
const (
	ValidURLHint  = "Valid YouTube link"
	SettingsTitle = "Settings"
)
