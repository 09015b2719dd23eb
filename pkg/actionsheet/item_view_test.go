package actionsheet

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() *palette {
	return &palette{appearance: DefaultAppearance(), prefs: DefaultPreferences()}
}

type selectionRecorder struct {
	views   []*actionView
	actions []*Action
}

func (r *selectionRecorder) record(v *actionView, a *Action) {
	r.views = append(r.views, v)
	r.actions = append(r.actions, a)
}

func newRowView(t *testing.T, a *Action) (*actionView, *selectionRecorder, *int) {
	t.Helper()
	rec := &selectionRecorder{}
	changes := 0
	v := newActionView(a, DisplayList, testPalette(), rec.record, func() { changes++ })
	v.setSize(20, 2)
	return v, rec, &changes
}

func TestActionViewOpacityTiers(t *testing.T) {
	t.Parallel()

	a := NewAction("Mail", "✉", StyleDefault, nil)
	v, _, _ := newRowView(t, a)

	assert.InDelta(t, 1.0, v.Opacity(), 1e-9)

	v.touchBegan(1, 0)
	assert.InDelta(t, 0.6, v.Opacity(), 1e-9)

	a.SetEnabled(false)
	assert.InDelta(t, 0.4, v.Opacity(), 1e-9, "highlight is ignored while disabled")

	a.SetEnabled(true)
	assert.InDelta(t, 0.6, v.Opacity(), 1e-9)
}

func TestActionViewTapSelectsOnce(t *testing.T) {
	t.Parallel()

	a := NewAction("Mail", "✉", StyleDefault, nil)
	v, rec, _ := newRowView(t, a)

	v.touchBegan(3, 0)
	v.touchEnded(4, 1)

	require.Len(t, rec.actions, 1)
	assert.Same(t, a, rec.actions[0])
	assert.Same(t, v, rec.views[0])
	assert.False(t, v.highlighted)
}

func TestActionViewMoveOutAndBack(t *testing.T) {
	t.Parallel()

	a := NewAction("Mail", "✉", StyleDefault, nil)
	v, rec, changes := newRowView(t, a)

	v.touchBegan(3, 0)
	require.True(t, v.highlighted)

	v.touchMoved(25, 0)
	assert.False(t, v.highlighted)
	v.touchEnded(25, 0)
	assert.Empty(t, rec.actions, "release outside the bounds is not a tap")

	v.touchBegan(3, 0)
	v.touchMoved(50, 5)
	v.touchMoved(2, 1)
	assert.True(t, v.highlighted)
	v.touchCancelled()
	assert.False(t, v.highlighted)
	v.touchEnded(2, 1)
	assert.Empty(t, rec.actions, "a cancelled touch never selects")
	assert.Positive(t, *changes)
}

func TestDisabledActionNeverSelects(t *testing.T) {
	t.Parallel()

	a := NewAction("Mail", "✉", StyleDefault, nil)
	v, rec, _ := newRowView(t, a)

	a.SetEnabled(false)
	v.touchBegan(1, 0)
	v.touchEnded(1, 0)
	v.activate()

	assert.Empty(t, rec.actions)
	assert.InDelta(t, opacityDisabled, v.Opacity(), 1e-9)
}

func TestUnboundViewIgnoresNotifications(t *testing.T) {
	t.Parallel()

	a := NewAction("Mail", "✉", StyleDefault, nil)
	v, rec, changes := newRowView(t, a)
	require.Equal(t, 1, a.enabledObservers.len())
	require.Equal(t, 1, a.appearanceObservers.len())

	v.unbind()
	assert.Equal(t, 0, a.enabledObservers.len())
	assert.Equal(t, 0, a.appearanceObservers.len())

	before := *changes
	a.SetEnabled(false)
	a.SetTextColor(lipgloss.Color("1"))
	assert.True(t, v.enabled, "stale notifications do not reach an unbound view")
	assert.Equal(t, before, *changes)

	v.touchBegan(1, 0)
	v.touchEnded(1, 0)
	assert.Empty(t, rec.actions)
}

func TestRowRendering(t *testing.T) {
	t.Parallel()

	a := NewAction("Mail", "✉", StyleDefault, nil)
	v, _, _ := newRowView(t, a)

	out := v.View()
	assert.Equal(t, 2, lipgloss.Height(out))
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Contains(t, out, "✉ Mail")
	assert.Contains(t, out, strings.Repeat("─", 20))

	v.setSize(20, 3)
	assert.Equal(t, 3, lipgloss.Height(v.View()))

	v.setSize(20, 1)
	out = v.View()
	assert.Equal(t, 1, lipgloss.Height(out))
	assert.NotContains(t, out, "─")

	v.setFocused(true)
	assert.Contains(t, v.View(), "›")
}

func TestTileRendering(t *testing.T) {
	t.Parallel()

	a := NewAction("Mail", "✉", StyleDefault, nil)
	v := newActionView(a, DisplayGrid, testPalette(), nil, nil)
	v.setSize(16, tileHeight)

	out := v.View()
	assert.Equal(t, tileHeight, lipgloss.Height(out))
	assert.Contains(t, out, "✉")
	assert.Contains(t, out, "Mail")
	assert.Contains(t, out, "╭")

	empty := newActionView(NewAction("", "", StyleDefault, nil), DisplayGrid, testPalette(), nil, nil)
	empty.setSize(16, tileHeight)
	assert.Equal(t, tileHeight, lipgloss.Height(empty.View()), "missing image and title still fill the slot")
}

func TestCancelButtonRebindUnsubscribes(t *testing.T) {
	t.Parallel()

	changes := 0
	b := newCancelButton(testPalette(), nil, func() { changes++ })
	assert.True(t, b.hidden())
	assert.Equal(t, "Cancel", b.title())

	first := NewAction("Close", "", StyleCancel, nil)
	second := NewAction("Dismiss", "", StyleCancel, nil)

	b.bind(first)
	assert.Equal(t, 1, first.enabledObservers.len())
	assert.Equal(t, "Close", b.title())

	b.bind(second)
	assert.Equal(t, 0, first.enabledObservers.len())
	assert.Equal(t, 0, first.appearanceObservers.len())
	assert.Equal(t, 1, second.enabledObservers.len())

	first.SetEnabled(false)
	assert.True(t, b.enabled, "the previous action no longer drives the button")

	second.SetEnabled(false)
	assert.False(t, b.enabled)
	assert.InDelta(t, opacityDisabled, b.Opacity(), 1e-9)

	b.bind(nil)
	assert.True(t, b.hidden())
	assert.Empty(t, b.View())
	assert.Positive(t, changes)
}

func TestCancelButtonPress(t *testing.T) {
	t.Parallel()

	presses := 0
	b := newCancelButton(testPalette(), func() { presses++ }, nil)
	a := NewAction("", "", StyleCancel, nil)
	b.bind(a)
	b.width, b.height = 30, cancelButtonHeight

	out := b.View()
	assert.Contains(t, out, "Cancel", "an untitled cancel action shows the placeholder")
	assert.Equal(t, cancelButtonHeight, lipgloss.Height(out))
	assert.Equal(t, 30, lipgloss.Width(out))

	b.touchBegan(5, 1)
	assert.InDelta(t, opacityHighlighted, b.Opacity(), 1e-9)
	b.touchEnded(6, 1)
	assert.Equal(t, 1, presses)

	a.SetEnabled(false)
	b.touchBegan(5, 1)
	b.touchEnded(5, 1)
	assert.Equal(t, 1, presses)
}

func TestCancelButtonDrawsGlyph(t *testing.T) {
	t.Parallel()

	b := newCancelButton(testPalette(), nil, nil)
	a := NewAction("Cancel", "✖", StyleCancel, nil)
	b.bind(a)
	b.width, b.height = 30, cancelButtonHeight

	out := b.View()
	assert.Contains(t, out, "✖ Cancel")
	assert.Equal(t, 30, lipgloss.Width(out))

	b.bind(NewAction("Cancel", "", StyleCancel, nil))
	assert.NotContains(t, b.View(), "✖")
}

func TestCancelGlyphTint(t *testing.T) {
	t.Parallel()

	red := lipgloss.Color("#ef4444")
	blue := lipgloss.Color("#3b82f6")
	p := testPalette()
	p.appearance.SetActionImageTint(StyleCancel, red)

	a := NewAction("Cancel", "✖", StyleCancel, nil)
	_, glyph := p.actionStyles(a)
	assert.Equal(t, red, glyph.GetForeground(), "the Cancel-scoped tint applies")

	_, defaultGlyph := p.actionStyles(NewAction("Mail", "✉", StyleDefault, nil))
	assert.NotEqual(t, red, defaultGlyph.GetForeground())

	a.SetImageTint(blue)
	_, glyph = p.actionStyles(a)
	assert.Equal(t, blue, glyph.GetForeground(), "the action's own tint wins")
}
