package components

import (
	"github.com/alexisbeaulieu97/actionsheet/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a vertical box around its children with an optional border.
type Container struct {
	BaseComponent
	layout      *Stack
	border      lipgloss.Border
	bordered    bool
	borderColor lipgloss.TerminalColor
	borderBg    lipgloss.TerminalColor
	width       int
}

// NewContainer creates a borderless container that fits its content.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container. A fixed width also caps the
// children, so the border is never pushed out by long content.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if c.width > 0 {
		childCtx = ctx.WithConstraints(WithMaxWidth(c.width))
	}
	var content string
	if c.layout.Len() > 0 {
		content = c.layout.ViewWithContext(childCtx)
	}

	style := c.ComputeStyle()
	if c.bordered {
		style = style.Border(c.border)
		if c.borderColor != nil {
			style = style.BorderForeground(c.borderColor)
		}
		if c.borderBg != nil {
			style = style.BorderBackground(c.borderBg)
		}
	}
	if c.width > 0 {
		style = style.Width(c.width)
	}
	return style.Render(content)
}

// WithBorder draws b around the content.
func (c *Container) WithBorder(b lipgloss.Border) *Container {
	c.border = b
	c.bordered = true
	return c
}

// WithBorderColor sets the border foreground. nil keeps the terminal default.
func (c *Container) WithBorderColor(color lipgloss.TerminalColor) *Container {
	c.borderColor = color
	return c
}

// WithBorderBackground sets the border background. nil keeps the terminal default.
func (c *Container) WithBorderBackground(color lipgloss.TerminalColor) *Container {
	c.borderBg = color
	return c
}

// WithWidth fixes the width inside the border. Zero fits the content.
func (c *Container) WithWidth(width int) *Container {
	c.width = max(width, 0)
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers appends style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}
