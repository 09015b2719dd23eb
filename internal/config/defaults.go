package config

// DefaultDefinition returns the built-in demo sheet. style is "list" or
// "grid"; anything else falls back to list.
func DefaultDefinition(style string) *SheetDefinition {
	if style != DisplayStyleGrid {
		style = DisplayStyleList
	}

	disabled := false
	return &SheetDefinition{
		Title:   "Share",
		Message: "Choose where to send this document",
		Style:   style,
		Actions: []ActionDefinition{
			{Title: "Mail", Image: "✉"},
			{Title: "Messages", Image: "✎"},
			{Title: "Copy Link", Image: "⧉"},
			{Title: "Print", Image: "⎙", Enabled: &disabled},
			{Title: "Save to Files", Image: "▤"},
			{Title: "Delete", Image: "✖", TextColor: "#ef4444", ImageTint: "#ef4444"},
			{Title: "Cancel", Style: StyleCancel},
		},
	}
}
