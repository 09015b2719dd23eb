package components

import (
	"github.com/alexisbeaulieu97/actionsheet/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides common styling behaviour for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// StyleFunc transforms a lipgloss.Style. Appliers run in the order they were added.
type StyleFunc func(lipgloss.Style) lipgloss.Style

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the base style with every applier folded in.
func (b *BaseComponent) ComputeStyle() lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		if fn != nil {
			style = fn(style)
		}
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the applier chain.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends to the applier chain without touching shared backing arrays.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// Foreground sets the text colour.
func Foreground(c lipgloss.TerminalColor) StyleFunc {
	return func(s lipgloss.Style) lipgloss.Style {
		if c == nil {
			return s
		}
		return s.Foreground(c)
	}
}

// Background sets the cell background.
func Background(c lipgloss.TerminalColor) StyleFunc {
	return func(s lipgloss.Style) lipgloss.Style {
		if c == nil {
			return s
		}
		return s.Background(c)
	}
}

// Faint dims the text.
func Faint(on bool) StyleFunc {
	return func(s lipgloss.Style) lipgloss.Style {
		return s.Faint(on)
	}
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithWidth creates constraints with a fixed width.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// Constrain applies the constraints to a given size.
func (c Constraints) Constrain(width, height int) (int, int) {
	w, h := width, height

	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth != -1 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight != -1 && h > c.MaxHeight {
		h = c.MaxHeight
	}

	return w, h
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext carries layout constraints down the component tree.
type RenderContext struct {
	Constraints Constraints
}

// DefaultContext returns a render context with no constraints.
func DefaultContext() RenderContext {
	return RenderContext{Constraints: Unconstrained()}
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
