package components

import "strings"

// Spacer renders a blank block of the given size.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: max(width, 0), height: max(height, 0)}
}

// VerticalSpacer creates a spacer that is height rows tall.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer as empty space.
func (s *Spacer) View() string {
	if s.height == 0 {
		return strings.Repeat(" ", s.width)
	}
	lines := make([]string, s.height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", s.width)
	}
	return strings.Join(lines, "\n")
}
