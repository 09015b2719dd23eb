package actionsheet

import (
	"fmt"
	"slices"

	apperrors "github.com/alexisbeaulieu97/actionsheet/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// Style distinguishes ordinary actions from the Cancel action.
type Style int

const (
	StyleDefault Style = iota
	StyleCancel

	styleCount = int(StyleCancel) + 1
)

func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleCancel:
		return "cancel"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

func (s Style) valid() bool {
	return s >= 0 && int(s) < styleCount
}

// DisplayStyle selects how Default actions are arranged.
type DisplayStyle int

const (
	DisplayList DisplayStyle = iota
	DisplayGrid
)

func (d DisplayStyle) String() string {
	switch d {
	case DisplayList:
		return "list"
	case DisplayGrid:
		return "grid"
	default:
		return fmt.Sprintf("display(%d)", int(d))
	}
}

// Handler runs when the sheet is dismissed on behalf of an action.
type Handler func(*Action)

// Action is one selectable entry of a sheet.
//
// Title, image, style and handler are fixed at construction. Enablement and
// the colour overrides may change at any time; bound views are notified
// synchronously.
type Action struct {
	title   string
	image   string
	style   Style
	handler Handler

	enabled   bool
	textColor lipgloss.TerminalColor
	imageTint lipgloss.TerminalColor

	enabledObservers    observers[bool]
	appearanceObservers observers[struct{}]
}

// NewAction creates an enabled action. image is a short glyph drawn in front
// of the title in list mode and inside the tile in grid mode.
func NewAction(title, image string, style Style, handler Handler) *Action {
	if !style.valid() {
		style = StyleDefault
	}
	return &Action{
		title:   title,
		image:   image,
		style:   style,
		handler: handler,
		enabled: true,
	}
}

func (a *Action) Title() string { return a.title }

func (a *Action) Image() string { return a.image }

func (a *Action) Style() Style { return a.style }

// Enabled reports whether the action can be selected.
func (a *Action) Enabled() bool { return a.enabled }

// SetEnabled changes enablement and notifies subscribers before returning.
// Setting the current value again is silent.
func (a *Action) SetEnabled(enabled bool) {
	if a.enabled == enabled {
		return
	}
	a.enabled = enabled
	a.enabledObservers.notify(enabled)
}

// TextColor returns the per-action title colour override, or nil.
func (a *Action) TextColor() lipgloss.TerminalColor { return a.textColor }

// SetTextColor overrides the title colour. nil falls back to the appearance.
func (a *Action) SetTextColor(c lipgloss.TerminalColor) {
	if a.textColor == c {
		return
	}
	a.textColor = c
	a.appearanceObservers.notify(struct{}{})
}

// ImageTint returns the per-action glyph colour override, or nil.
func (a *Action) ImageTint() lipgloss.TerminalColor { return a.imageTint }

// SetImageTint overrides the glyph colour. nil falls back to the appearance.
func (a *Action) SetImageTint(c lipgloss.TerminalColor) {
	if a.imageTint == c {
		return
	}
	a.imageTint = c
	a.appearanceObservers.notify(struct{}{})
}

// OnEnabledChanged registers fn to run whenever enablement flips.
func (a *Action) OnEnabledChanged(fn func(enabled bool)) *Subscription {
	return a.enabledObservers.add(fn)
}

// OnAppearanceChanged registers fn to run whenever a colour override changes.
func (a *Action) OnAppearanceChanged(fn func()) *Subscription {
	if fn == nil {
		return a.appearanceObservers.add(nil)
	}
	return a.appearanceObservers.add(func(struct{}) { fn() })
}

// Validate reports configuration the sheet can only render as an empty slot:
// a Default action without a title, or without an image in grid mode.
func (a *Action) Validate(mode DisplayStyle) error {
	if a.style == StyleCancel {
		return nil
	}
	if a.title == "" {
		return apperrors.NewValidationError("title", "default action requires a title", nil)
	}
	if mode == DisplayGrid && a.image == "" {
		return apperrors.NewValidationError("image", fmt.Sprintf("action %q requires an image in grid mode", a.title), nil)
	}
	return nil
}

func (a *Action) perform() {
	if a == nil || a.handler == nil {
		return
	}
	a.handler(a)
}

func (a *Action) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%q)", a.style, a.title)
}

// Subscription is the handle returned when observing an Action.
type Subscription struct {
	cancel func()
}

// Cancel stops delivery. It is safe to call more than once and on nil.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	cancel := s.cancel
	s.cancel = nil
	cancel()
}

type observer[T any] struct {
	fn     func(T)
	active bool
}

type observers[T any] struct {
	list []*observer[T]
}

func (o *observers[T]) add(fn func(T)) *Subscription {
	if fn == nil {
		return &Subscription{}
	}
	entry := &observer[T]{fn: fn, active: true}
	o.list = append(o.list, entry)
	return &Subscription{cancel: func() {
		entry.active = false
		o.list = slices.DeleteFunc(o.list, func(e *observer[T]) bool { return e == entry })
	}}
}

// notify walks a copy so callbacks may subscribe or cancel while it runs.
func (o *observers[T]) notify(v T) {
	for _, entry := range slices.Clone(o.list) {
		if entry.active {
			entry.fn(v)
		}
	}
}

func (o *observers[T]) len() int {
	return len(o.list)
}
