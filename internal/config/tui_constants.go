package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 48

	// PanelWidth is the width of a length panel (break or session).
	PanelWidth = 18

	// ProgressWidth is the preferred width of the phase progress bar.
	ProgressWidth = 36

	// MinProgressWidth is the smallest progress bar rendered.
	MinProgressWidth = 10

	// FrameWidth is the preferred width of the clock frame.
	FrameWidth = 42
)

// Display glyphs.
const (
	GlyphPlay      = "▶"
	GlyphPause     = "⏸"
	GlyphIncrement = "▲"
	GlyphDecrement = "▼"

	// TruncationSuffix appended to truncated lines.
	TruncationSuffix = "…"
)
