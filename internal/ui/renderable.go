// Package ui holds the minimal rendering contract shared by terminal components.
package ui

// Renderable is anything that can render itself to a string.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View implements Renderable.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}
