package actionsheet

import (
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/actionsheet/internal/logger"
	"github.com/alexisbeaulieu97/actionsheet/internal/ui/mouse"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var sheetIDs atomic.Int64

// Sheet is a modal action sheet. Build it with New, add actions, then
// Present it and forward messages to Update while Active reports true.
type Sheet struct {
	*palette

	id           int64
	title        string
	message      string
	displayStyle DisplayStyle
	defaults     []*Action
	cancel       *Action

	fsm  machine
	keys KeyMap
	log  *logger.Logger
	now  func() time.Time

	views        []*actionView
	groups       [][]*actionView
	cancelButton *cancelButton
	close        *closeControl
	bound        bool
	focus        int

	width  int
	height int
	offset float64
	anim   *transition
	gen    int

	mouse       *mouse.Handler
	pressTarget touchTarget
	pressRect   mouse.Rect

	outcome outcome
	pending []tea.Cmd

	dirty       bool
	block       string
	blockHeight int
	regions     []localRegion
}

type outcome struct {
	cause    Cause
	selected *Action
}

// Option configures a Sheet at construction.
type Option func(*Sheet)

// WithPreferences replaces DefaultPreferences.
func WithPreferences(p Preferences) Option {
	return func(s *Sheet) { s.prefs = p }
}

// WithAppearance uses a instead of a snapshot of SharedAppearance.
func WithAppearance(a Appearance) Option {
	return func(s *Sheet) { s.appearance = a }
}

// WithLogger sets the logger for lifecycle diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(s *Sheet) { s.log = l }
}

// WithClock sets the time source used to measure drag velocity.
func WithClock(now func() time.Time) Option {
	return func(s *Sheet) {
		if now != nil {
			s.now = now
		}
	}
}

// WithKeyMap replaces DefaultKeyMap.
func WithKeyMap(k KeyMap) Option {
	return func(s *Sheet) { s.keys = k }
}

// New builds an unpresented sheet. The appearance is a snapshot of
// SharedAppearance taken now unless WithAppearance supplies one.
func New(title, message string, style DisplayStyle, opts ...Option) *Sheet {
	s := &Sheet{
		palette: &palette{
			appearance: SharedAppearance().Snapshot(),
			prefs:      DefaultPreferences(),
		},
		id:           sheetIDs.Add(1),
		title:        title,
		message:      message,
		displayStyle: style,
		keys:         DefaultKeyMap(),
		now:          time.Now,
		focus:        -1,
		dirty:        true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.prefs = s.prefs.normalized()
	s.appearance = s.appearance.normalized()
	s.log = s.log.WithFields(map[string]any{"sheet": s.id, "display": style.String()})

	s.mouse = mouse.NewHandlerWithClock(s.now)
	s.cancelButton = newCancelButton(s.palette, s.pressCancel, s.invalidate)
	s.close = newCloseControl(s.palette, s.pressCancel, s.invalidate)
	return s
}

func (s *Sheet) Title() string { return s.title }

func (s *Sheet) Message() string { return s.message }

func (s *Sheet) DisplayStyle() DisplayStyle { return s.displayStyle }

// AddAction appends a Default action or replaces the Cancel action. Actions
// added while the sheet is on screen show up on the next render.
func (s *Sheet) AddAction(a *Action) {
	if a == nil {
		return
	}
	if err := a.Validate(s.displayStyle); err != nil {
		s.log.Debug("action renders as an empty slot", "action", a.Title(), "reason", err.Error())
	}

	if a.Style() == StyleCancel {
		if s.cancel != nil && s.cancel != a {
			s.log.Debug("cancel action replaced", "previous", s.cancel.Title(), "action", a.Title())
		}
		s.cancel = a
	} else {
		s.defaults = append(s.defaults, a)
	}

	if s.bound {
		s.bind()
	}
	s.invalidate()
}

// Actions returns the Default actions in insertion order followed by the
// Cancel action, if any.
func (s *Sheet) Actions() []*Action {
	all := make([]*Action, 0, len(s.defaults)+1)
	all = append(all, s.defaults...)
	if s.cancel != nil {
		all = append(all, s.cancel)
	}
	return all
}

// CancelAction returns the Cancel action, or nil.
func (s *Sheet) CancelAction() *Action { return s.cancel }

func (s *Sheet) Preferences() Preferences { return s.prefs }

func (s *Sheet) SetPreferences(p Preferences) {
	s.prefs = p.normalized()
	s.invalidate()
}

// Appearance returns a copy of the sheet's private appearance.
func (s *Sheet) Appearance() Appearance { return s.appearance }

func (s *Sheet) SetBackgroundColor(c lipgloss.TerminalColor) {
	s.appearance.Background = c
	s.invalidate()
}

// SetCornerRadius sets the appearance radius. Negative values clamp to 0.
func (s *Sheet) SetCornerRadius(r int) {
	s.appearance.CornerRadius = max(r, 0)
	s.invalidate()
}

func (s *Sheet) SetDragHandle(c lipgloss.TerminalColor, width, radius int) {
	s.appearance.DragHandleColor = c
	s.appearance.DragHandleWidth = max(width, 0)
	s.appearance.DragHandleRadius = max(radius, 0)
	s.invalidate()
}

func (s *Sheet) SetTitleStyle(style lipgloss.Style) {
	s.appearance.TitleStyle = style
	s.invalidate()
}

func (s *Sheet) SetMessageStyle(style lipgloss.Style) {
	s.appearance.MessageStyle = style
	s.invalidate()
}

func (s *Sheet) Keys() KeyMap { return s.keys }

func (s *Sheet) State() State { return s.fsm.state }

// IsPresented reports whether the sheet is at rest on screen and taking input.
func (s *Sheet) IsPresented() bool { return s.fsm.state == StatePresented }

// Active reports whether the host should route messages to the sheet.
func (s *Sheet) Active() bool {
	switch s.fsm.state {
	case StatePresenting, StatePresented, StateDismissing:
		return true
	default:
		return false
	}
}

// BackdropAlpha is the current backdrop opacity, following the enter and
// exit transitions.
func (s *Sheet) BackdropAlpha() float64 {
	switch s.fsm.state {
	case StatePresented:
		return BackdropAlpha
	case StatePresenting:
		if s.anim != nil {
			return BackdropAlpha * s.anim.progress()
		}
	case StateDismissing:
		if s.anim != nil {
			return BackdropAlpha * (1 - s.anim.progress())
		}
	}
	return 0
}

// SetSize sets the screen size the sheet lays itself out in.
func (s *Sheet) SetSize(width, height int) {
	if s.width == width && s.height == height {
		return
	}
	s.width, s.height = max(width, 0), max(height, 0)
	s.invalidate()
}

// Present lays out the actions and starts the enter transition. Only an
// unpresented sheet can be presented; any other state yields a
// TransitionError and changes nothing.
func (s *Sheet) Present() (tea.Cmd, error) {
	if err := s.fsm.fire(EventPresent); err != nil {
		s.log.Warn("present rejected", "state", s.fsm.state.String(), "error", err.Error())
		return nil, err
	}

	s.bind()
	s.log.Debug("sheet presenting", "actions", len(s.defaults), "cancel", s.cancel != nil)

	if !s.prefs.Animated {
		s.setOffset(0)
		return s.finishEnter(), nil
	}
	return s.animate(s.hiddenOffset(), 0, s.finishEnter), nil
}

// Dismiss dismisses a presented sheet as if Cancel were pressed. It does
// nothing in any other state.
func (s *Sheet) Dismiss() tea.Cmd {
	return s.dismiss(CauseCancel, nil)
}

// Update handles frame ticks, window sizes, keys and mouse input.
func (s *Sheet) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		return s.stepAnimation(msg)
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if s.fsm.state == StatePresented {
			return s.handleKey(msg)
		}
	case tea.MouseMsg:
		if s.fsm.state == StatePresented {
			return s.handleMouse(msg)
		}
	}
	return nil
}

func (s *Sheet) finishEnter() tea.Cmd {
	if err := s.fsm.fire(EventEnterFinished); err != nil {
		s.log.Error(err, "enter transition finished out of order")
		return nil
	}
	s.log.Debug("sheet presented")
	return nil
}

func (s *Sheet) dismiss(cause Cause, selected *Action) tea.Cmd {
	if err := s.fsm.fire(EventDismiss); err != nil {
		s.log.Debug("dismiss ignored", "cause", cause.String(), "state", s.fsm.state.String())
		return nil
	}

	s.outcome = outcome{cause: cause, selected: selected}
	s.cancelTouches()
	s.mouse.EndDrag()
	s.log.Debug("sheet dismissing", "cause", cause.String())

	if !s.prefs.Animated {
		return s.finishExit()
	}
	return s.animate(s.offset, s.hiddenOffset(), s.finishExit)
}

// finishExit completes all bookkeeping before running the one handler the
// dismissal calls for, so a panicking handler leaves the sheet dismissed.
func (s *Sheet) finishExit() tea.Cmd {
	if err := s.fsm.fire(EventExitFinished); err != nil {
		s.log.Error(err, "exit transition finished out of order")
		return nil
	}

	s.unbind()
	s.mouse.Clear()
	s.pending = nil

	handler := s.outcome.selected
	if s.outcome.cause != CauseSelection {
		handler = s.cancel
	}
	msg := DismissedMsg{Sheet: s, Cause: s.outcome.cause, Action: handler}
	s.log.Debug("sheet dismissed", "cause", s.outcome.cause.String(), "handler", handler.String())

	handler.perform()
	return func() tea.Msg { return msg }
}

// bind builds one view per Default action, kept in the rows Arrange
// returns, and binds the cancel button.
func (s *Sheet) bind() {
	s.unbindViews()
	for _, group := range Arrange(s.defaults, s.displayStyle) {
		row := make([]*actionView, 0, len(group))
		for _, a := range group {
			v := newActionView(a, s.displayStyle, s.palette, s.selected, s.invalidate)
			s.views = append(s.views, v)
			row = append(row, v)
		}
		s.groups = append(s.groups, row)
	}
	s.cancelButton.bind(s.cancel)
	s.focus = -1
	s.bound = true
	s.invalidate()
}

func (s *Sheet) unbindViews() {
	for _, v := range s.views {
		v.unbind()
	}
	s.views = nil
	s.groups = nil
}

func (s *Sheet) unbind() {
	s.unbindViews()
	s.cancelButton.unbind()
	s.close.onPress = nil
	s.close.onChange = nil
	s.bound = false
	s.focus = -1
}

func (s *Sheet) selected(_ *actionView, a *Action) {
	s.queue(s.dismiss(CauseSelection, a))
}

func (s *Sheet) pressCancel() {
	s.queue(s.dismiss(CauseCancel, nil))
}

func (s *Sheet) queue(cmd tea.Cmd) {
	if cmd != nil {
		s.pending = append(s.pending, cmd)
	}
}

func (s *Sheet) drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *Sheet) invalidate() {
	s.dirty = true
}

func (s *Sheet) cancelTouches() {
	for _, v := range s.views {
		v.touchCancelled()
	}
	s.cancelButton.touchCancelled()
	s.close.touchCancelled()
	s.pressTarget = nil
}

func (s *Sheet) setOffset(offset float64) {
	s.offset = offset
}

func (s *Sheet) hiddenOffset() float64 {
	return float64(s.contentHeight())
}

// animate starts a transition, superseding any running one.
func (s *Sheet) animate(from, to float64, done func() tea.Cmd) tea.Cmd {
	s.gen++
	s.anim = newTransition(from, to, s.gen, done)
	s.setOffset(from)
	return frameTick(s.id, s.gen)
}

func (s *Sheet) stopAnimation() {
	if s.anim == nil {
		return
	}
	s.anim = nil
	s.gen++
}

func (s *Sheet) stepAnimation(msg frameMsg) tea.Cmd {
	if msg.sheet != s.id || s.anim == nil || msg.gen != s.anim.gen {
		return nil
	}
	anim := s.anim
	finished := anim.step()
	s.setOffset(anim.pos)
	if !finished {
		return frameTick(s.id, anim.gen)
	}
	s.anim = nil
	return anim.complete()
}

func (s *Sheet) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Dismiss):
		return s.dismiss(CauseCancel, nil)
	case key.Matches(msg, s.keys.Select):
		s.activateFocus()
		return s.drain()
	case key.Matches(msg, s.keys.Up):
		s.moveFocus(-s.columns())
	case key.Matches(msg, s.keys.Down):
		s.moveFocus(s.columns())
	case key.Matches(msg, s.keys.Left):
		if s.displayStyle == DisplayGrid {
			s.moveFocus(-1)
		}
	case key.Matches(msg, s.keys.Right):
		if s.displayStyle == DisplayGrid {
			s.moveFocus(1)
		}
	}
	return nil
}

func (s *Sheet) columns() int {
	if s.displayStyle == DisplayGrid {
		return GridColumns
	}
	return 1
}

// Focus positions run over the action views, then the cancel button when
// it is visible.
func (s *Sheet) focusCount() int {
	if s.cancelButton.hidden() {
		return len(s.views)
	}
	return len(s.views) + 1
}

func (s *Sheet) focusEnabled(i int) bool {
	if i < len(s.views) {
		return s.views[i].enabled
	}
	return s.cancelButton.enabled
}

// Focused returns the action under keyboard focus, or nil.
func (s *Sheet) Focused() *Action {
	switch {
	case s.focus < 0:
		return nil
	case s.focus < len(s.views):
		return s.views[s.focus].action
	default:
		return s.cancelButton.action
	}
}

func (s *Sheet) moveFocus(delta int) {
	n := s.focusCount()
	if n == 0 || delta == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}

	target := s.focus + delta
	if s.focus < 0 {
		target = 0
		if step < 0 {
			target = n - 1
		}
	}
	target = min(target, n-1)

	for i := target; i >= 0 && i < n; i += step {
		if i == s.focus {
			return
		}
		if s.focusEnabled(i) {
			s.setFocus(i)
			return
		}
	}
}

func (s *Sheet) setFocus(i int) {
	if s.focus >= 0 {
		s.setFocusedAt(s.focus, false)
	}
	s.focus = i
	s.setFocusedAt(i, true)
}

func (s *Sheet) setFocusedAt(i int, focused bool) {
	if i < len(s.views) {
		s.views[i].setFocused(focused)
		return
	}
	s.cancelButton.setFocused(focused)
}

func (s *Sheet) activateFocus() {
	switch {
	case s.focus < 0:
	case s.focus < len(s.views):
		s.views[s.focus].activate()
	default:
		s.cancelButton.activate()
	}
}
