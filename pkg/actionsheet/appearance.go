package actionsheet

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Appearance holds the visual defaults a sheet falls back to when neither
// its Preferences nor an Action override a value.
type Appearance struct {
	// Background fills the sheet. nil keeps the terminal background.
	Background lipgloss.TerminalColor
	// BorderColor draws the sheet and cancel button outlines.
	BorderColor lipgloss.TerminalColor
	// BackdropColor tints the dimmed screen behind the sheet.
	BackdropColor lipgloss.TerminalColor
	// CornerRadius above zero selects rounded border corners.
	CornerRadius int

	DragHandleColor  lipgloss.TerminalColor
	DragHandleWidth  int
	DragHandleRadius int

	TitleStyle   lipgloss.Style
	MessageStyle lipgloss.Style

	// DisabledColor is applied on top of faint text for disabled actions.
	DisabledColor lipgloss.TerminalColor

	actionText [styleCount]textOverride
	actionTint [styleCount]lipgloss.TerminalColor
}

type textOverride struct {
	set   bool
	style lipgloss.Style
}

// DefaultAppearance returns the built-in look.
func DefaultAppearance() Appearance {
	return Appearance{
		BorderColor:      lipgloss.AdaptiveColor{Light: "#c7c7cc", Dark: "#48484a"},
		BackdropColor:    lipgloss.AdaptiveColor{Light: "#8e8e93", Dark: "#3a3a3c"},
		CornerRadius:     1,
		DragHandleColor:  lipgloss.AdaptiveColor{Light: "#d9d9d9", Dark: "#636366"},
		DragHandleWidth:  8,
		DragHandleRadius: 1,
		TitleStyle:       lipgloss.NewStyle().Bold(true),
		MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6e6e73", Dark: "#aeaeb2"}),
		DisabledColor:    lipgloss.AdaptiveColor{Light: "#aeaeb2", Dark: "#636366"},
	}
}

// ActionTextStyle returns the title style for actions of the given style:
// the override when one is set, else the built-in default. Cancel titles are
// bold by default.
func (a Appearance) ActionTextStyle(style Style) lipgloss.Style {
	if style.valid() && a.actionText[style].set {
		return a.actionText[style].style
	}
	if style == StyleCancel {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle()
}

// SetActionTextStyle overrides the title style for one action style. nil
// restores the default.
func (a *Appearance) SetActionTextStyle(style Style, ts *lipgloss.Style) {
	if !style.valid() {
		return
	}
	if ts == nil {
		a.actionText[style] = textOverride{}
		return
	}
	a.actionText[style] = textOverride{set: true, style: *ts}
}

// ActionImageTint returns the glyph colour for one action style, or nil
// when glyphs should follow the title colour.
func (a Appearance) ActionImageTint(style Style) lipgloss.TerminalColor {
	if !style.valid() {
		return nil
	}
	return a.actionTint[style]
}

// SetActionImageTint overrides the glyph colour for one action style. nil
// restores the default.
func (a *Appearance) SetActionImageTint(style Style, c lipgloss.TerminalColor) {
	if !style.valid() {
		return
	}
	a.actionTint[style] = c
}

func (a Appearance) normalized() Appearance {
	a.CornerRadius = max(a.CornerRadius, 0)
	a.DragHandleWidth = max(a.DragHandleWidth, 0)
	a.DragHandleRadius = max(a.DragHandleRadius, 0)
	return a
}

// AppearanceStore coordinates access to a shared Appearance.
type AppearanceStore struct {
	mu         sync.RWMutex
	appearance Appearance
}

// NewAppearanceStore allocates a store holding the provided appearance.
func NewAppearanceStore(appearance Appearance) *AppearanceStore {
	return &AppearanceStore{appearance: appearance.normalized()}
}

// Snapshot returns a copy that later store edits do not reach.
func (s *AppearanceStore) Snapshot() Appearance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appearance
}

// Set replaces the stored appearance.
func (s *AppearanceStore) Set(appearance Appearance) {
	s.mu.Lock()
	s.appearance = appearance.normalized()
	s.mu.Unlock()
}

// Update edits the stored appearance in place under the write lock.
func (s *AppearanceStore) Update(fn func(*Appearance)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.appearance)
	s.appearance = s.appearance.normalized()
}

// ActionTextStyle reads the title style for one action style.
func (s *AppearanceStore) ActionTextStyle(style Style) lipgloss.Style {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appearance.ActionTextStyle(style)
}

// SetActionTextStyle overrides the title style for one action style.
func (s *AppearanceStore) SetActionTextStyle(style Style, ts *lipgloss.Style) {
	s.Update(func(a *Appearance) { a.SetActionTextStyle(style, ts) })
}

// ActionImageTint reads the glyph colour for one action style.
func (s *AppearanceStore) ActionImageTint(style Style) lipgloss.TerminalColor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appearance.ActionImageTint(style)
}

// SetActionImageTint overrides the glyph colour for one action style.
func (s *AppearanceStore) SetActionImageTint(style Style, c lipgloss.TerminalColor) {
	s.Update(func(a *Appearance) { a.SetActionImageTint(style, c) })
}

var (
	sharedOnce  sync.Once
	sharedStore *AppearanceStore
)

// SharedAppearance returns the process-wide store, creating it on first use.
func SharedAppearance() *AppearanceStore {
	sharedOnce.Do(func() {
		sharedStore = NewAppearanceStore(DefaultAppearance())
	})
	return sharedStore
}
