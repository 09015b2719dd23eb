package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content  string
	align    lipgloss.Position
	maxLines int
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		align:         lipgloss.Left,
	}
}

// View renders the text.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, wrapping to the width constraint when one is set.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	if t.content == "" {
		return ""
	}
	style := t.ComputeStyle().Align(t.align)
	if ctx.Constraints.MaxWidth > 0 {
		style = style.Width(ctx.Constraints.MaxWidth)
	}
	if t.maxLines > 0 {
		style = style.MaxHeight(t.maxLines)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers appends style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// WithAlign sets horizontal alignment inside the constrained width.
func (t *Text) WithAlign(pos lipgloss.Position) *Text {
	t.align = pos
	return t
}

// WithMaxLines truncates wrapped output to n lines. Zero means unlimited.
func (t *Text) WithMaxLines(n int) *Text {
	t.maxLines = max(n, 0)
	return t
}
