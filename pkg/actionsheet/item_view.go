package actionsheet

import (
	"strings"

	"github.com/alexisbeaulieu97/actionsheet/internal/ui"
	"github.com/alexisbeaulieu97/actionsheet/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// tileHeight is the glyph box (three rows) plus two title rows.
const tileHeight = 5

// actionView renders one Default action as a list row or a grid tile and
// turns taps into selections.
type actionView struct {
	touchTracker

	action  *Action
	mode    DisplayStyle
	palette *palette
	enabled bool
	focused bool

	onSelect func(*actionView, *Action)
	onChange func()
	subs     []*Subscription
}

func newActionView(a *Action, mode DisplayStyle, p *palette, onSelect func(*actionView, *Action), onChange func()) *actionView {
	v := &actionView{
		action:   a,
		mode:     mode,
		palette:  p,
		enabled:  a.Enabled(),
		onSelect: onSelect,
		onChange: onChange,
	}
	v.subs = []*Subscription{
		a.OnEnabledChanged(v.enabledChanged),
		a.OnAppearanceChanged(v.invalidate),
	}
	return v
}

// unbind drops the subscriptions and callbacks. Later notifications and
// touches are no-ops.
func (v *actionView) unbind() {
	for _, sub := range v.subs {
		sub.Cancel()
	}
	v.subs = nil
	v.onSelect = nil
	v.onChange = nil
	v.touchTracker.cancelled()
}

func (v *actionView) enabledChanged(enabled bool) {
	v.enabled = enabled
	v.invalidate()
}

func (v *actionView) invalidate() {
	if v.onChange != nil {
		v.onChange()
	}
}

// Opacity is 1.0 normally, 0.6 while highlighted and 0.4 while disabled.
func (v *actionView) Opacity() float64 {
	return opacity(v.enabled, v.highlighted)
}

func (v *actionView) setSize(width, height int) {
	v.width, v.height = width, height
}

func (v *actionView) setFocused(focused bool) {
	if v.focused != focused {
		v.focused = focused
		v.invalidate()
	}
}

func (v *actionView) touchBegan(x, y int) {
	if v.began(x, y) {
		v.invalidate()
	}
}

func (v *actionView) touchMoved(x, y int) {
	if v.moved(x, y) {
		v.invalidate()
	}
}

func (v *actionView) touchEnded(x, y int) {
	wasHighlighted := v.highlighted
	tapped := v.ended(x, y)
	if wasHighlighted {
		v.invalidate()
	}
	if tapped {
		v.activate()
	}
}

func (v *actionView) touchCancelled() {
	if v.highlighted {
		v.touchTracker.cancelled()
		v.invalidate()
		return
	}
	v.touchTracker.cancelled()
}

// activate reports a selection unless the action is disabled.
func (v *actionView) activate() {
	if !v.enabled || v.onSelect == nil {
		return
	}
	v.onSelect(v, v.action)
}

func (v *actionView) View() string {
	if v.mode == DisplayGrid {
		return v.tile()
	}
	return v.row()
}

func (v *actionView) row() string {
	width := max(v.width, 1)
	height := max(v.height, 1)
	bg := components.Background(v.palette.background())
	fade := v.palette.fade(v.Opacity())
	titleStyle, glyphStyle := v.palette.actionStyles(v.action)

	cursor := " "
	if v.focused {
		cursor = "›"
	}
	parts := []ui.Renderable{components.NewText(cursor).WithAppliers(components.Foreground(v.palette.accessory()), bg)}
	if v.action.Image() != "" {
		parts = append(parts, components.NewText(v.action.Image()).WithStyle(glyphStyle).WithAppliers(bg).WithAppliers(fade...))
	}
	if v.action.Title() != "" {
		title := components.NewText(v.action.Title()).WithStyle(titleStyle.Underline(v.focused)).WithAppliers(bg).WithAppliers(fade...)
		parts = append(parts, title)
	}

	line := components.HStack(parts...).
		WithGap(1).
		WithStyle(lipgloss.NewStyle().Width(width).MaxWidth(width).MaxHeight(1)).
		WithAppliers(bg)
	if height == 1 {
		return line.View()
	}

	// Content sits in the vertical middle of the rows above the separator.
	above := (height - 2) / 2
	below := height - 2 - above
	rows := components.VStack()
	if above > 0 {
		rows.Add(components.NewSpacer(width, above))
	}
	rows.Add(line)
	if below > 0 {
		rows.Add(components.NewSpacer(width, below))
	}
	rows.Add(components.NewDivider().WithWidth(width).WithAppliers(components.Foreground(v.palette.borderColor()), bg))
	return rows.View()
}

func (v *actionView) tile() string {
	width := max(v.width, 1)
	bg := components.Background(v.palette.background())
	fade := v.palette.fade(v.Opacity())
	titleStyle, glyphStyle := v.palette.actionStyles(v.action)

	boxColor := v.palette.borderColor()
	if v.focused {
		boxColor = v.palette.accessory()
	}
	glyph := v.action.Image()
	if glyph == "" {
		glyph = " "
	}
	box := components.NewText(glyph).
		WithStyle(glyphStyle.Border(lipgloss.RoundedBorder()).BorderForeground(boxColor).Padding(0, 1)).
		WithAppliers(bg).
		WithAppliers(fade...)

	title := components.NewText(v.action.Title()).
		WithStyle(titleStyle.Underline(v.focused)).
		WithAlign(lipgloss.Center).
		WithMaxLines(2).
		WithAppliers(bg).
		WithAppliers(fade...)

	// The glyph box keeps its natural width; only the title wraps to the tile.
	return components.VStack(ui.RenderFunc(box.View), title).
		WithCrossAlign(components.CrossCenter).
		WithConstraints(components.WithMaxWidth(width)).
		WithStyle(lipgloss.NewStyle().Width(width).Height(tileHeight).MaxHeight(tileHeight).Align(lipgloss.Center)).
		View()
}

// cancelButton is the docked control bound to the sheet's Cancel action.
// Unbound, it carries the placeholder title and stays hidden.
type cancelButton struct {
	touchTracker

	action  *Action
	palette *palette
	enabled bool
	focused bool

	onPress  func()
	onChange func()
	subs     []*Subscription
}

const cancelPlaceholder = "Cancel"

// cancelButtonHeight is the label row inside a border.
const cancelButtonHeight = 3

func newCancelButton(p *palette, onPress, onChange func()) *cancelButton {
	return &cancelButton{palette: p, enabled: true, onPress: onPress, onChange: onChange}
}

// bind switches to a, unsubscribing from the previously bound action first.
func (b *cancelButton) bind(a *Action) {
	for _, sub := range b.subs {
		sub.Cancel()
	}
	b.subs = nil
	b.action = a
	b.enabled = a == nil || a.Enabled()
	b.touchTracker.cancelled()
	if a != nil {
		b.subs = []*Subscription{
			a.OnEnabledChanged(func(enabled bool) {
				b.enabled = enabled
				b.invalidate()
			}),
			a.OnAppearanceChanged(b.invalidate),
		}
	}
	b.invalidate()
}

func (b *cancelButton) unbind() {
	b.bind(nil)
	b.onPress = nil
	b.onChange = nil
}

func (b *cancelButton) invalidate() {
	if b.onChange != nil {
		b.onChange()
	}
}

func (b *cancelButton) title() string {
	if b.action == nil || b.action.Title() == "" {
		return cancelPlaceholder
	}
	return b.action.Title()
}

func (b *cancelButton) hidden() bool {
	return b.action == nil
}

func (b *cancelButton) Opacity() float64 {
	return opacity(b.enabled, b.highlighted)
}

func (b *cancelButton) setFocused(focused bool) {
	if b.focused != focused {
		b.focused = focused
		b.invalidate()
	}
}

func (b *cancelButton) touchBegan(x, y int) {
	if b.began(x, y) {
		b.invalidate()
	}
}

func (b *cancelButton) touchMoved(x, y int) {
	if b.moved(x, y) {
		b.invalidate()
	}
}

func (b *cancelButton) touchEnded(x, y int) {
	wasHighlighted := b.highlighted
	tapped := b.ended(x, y)
	if wasHighlighted {
		b.invalidate()
	}
	if tapped {
		b.activate()
	}
}

func (b *cancelButton) touchCancelled() {
	wasHighlighted := b.highlighted
	b.touchTracker.cancelled()
	if wasHighlighted {
		b.invalidate()
	}
}

func (b *cancelButton) activate() {
	if !b.enabled || b.onPress == nil {
		return
	}
	b.onPress()
}

func (b *cancelButton) View() string {
	if b.hidden() {
		return ""
	}
	width := max(b.width, 3)
	bg := components.Background(b.palette.background())
	fade := b.palette.fade(b.Opacity())
	titleStyle, glyphStyle := b.palette.actionStyles(b.action)

	var parts []ui.Renderable
	if img := b.action.Image(); img != "" {
		parts = append(parts, components.NewText(img).WithStyle(glyphStyle).WithAppliers(bg).WithAppliers(fade...))
	}
	parts = append(parts, components.NewText(b.title()).
		WithStyle(titleStyle.Underline(b.focused)).
		WithAppliers(bg).
		WithAppliers(fade...))
	line := components.HStack(parts...).WithGap(1).WithAppliers(bg).View()

	label := components.NewText(line).
		WithAlign(lipgloss.Center).
		WithMaxLines(1).
		WithAppliers(bg)

	return components.NewContainer(label).
		WithBorder(b.palette.border()).
		WithBorderColor(b.palette.borderColor()).
		WithWidth(width - 2).
		WithAppliers(bg).
		View()
}

// closeControl is the leading ✕ in the navigation bar.
type closeControl struct {
	touchTracker

	palette  *palette
	onPress  func()
	onChange func()
}

const closeGlyph = "✕"

func newCloseControl(p *palette, onPress, onChange func()) *closeControl {
	return &closeControl{
		touchTracker: touchTracker{width: 1, height: 1},
		palette:      p,
		onPress:      onPress,
		onChange:     onChange,
	}
}

func (c *closeControl) invalidate() {
	if c.onChange != nil {
		c.onChange()
	}
}

func (c *closeControl) touchBegan(x, y int) {
	if c.began(x, y) {
		c.invalidate()
	}
}

func (c *closeControl) touchMoved(x, y int) {
	if c.moved(x, y) {
		c.invalidate()
	}
}

func (c *closeControl) touchEnded(x, y int) {
	wasHighlighted := c.highlighted
	tapped := c.ended(x, y)
	if wasHighlighted {
		c.invalidate()
	}
	if tapped && c.onPress != nil {
		c.onPress()
	}
}

func (c *closeControl) touchCancelled() {
	wasHighlighted := c.highlighted
	c.touchTracker.cancelled()
	if wasHighlighted {
		c.invalidate()
	}
}

func (c *closeControl) View() string {
	return components.NewText(closeGlyph).
		WithAppliers(components.Foreground(c.palette.accessory()), components.Background(c.palette.background())).
		WithAppliers(c.palette.fade(opacity(true, c.highlighted))...).
		View()
}

// blankLine is width cells of the sheet background.
func blankLine(p *palette, width int) string {
	style := lipgloss.NewStyle()
	if bg := p.background(); bg != nil {
		style = style.Background(bg)
	}
	return style.Render(strings.Repeat(" ", max(width, 0)))
}
