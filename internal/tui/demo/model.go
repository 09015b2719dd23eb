// Package demo hosts an action sheet over a small event-log screen so the
// component can be tried in a terminal.
package demo

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/actionsheet/internal/config"
	"github.com/alexisbeaulieu97/actionsheet/internal/logger"
	"github.com/alexisbeaulieu97/actionsheet/pkg/actionsheet"
)

// maxEntries bounds the event log.
const maxEntries = 200

// Options configures the demo model.
type Options struct {
	// Definition describes the sheet. nil uses config.DefaultDefinition.
	Definition *config.SheetDefinition
	// Style overrides Definition.Style when set.
	Style string
	// SheetOptions are passed to every sheet the demo builds.
	SheetOptions []actionsheet.Option
	Logger       *logger.Logger
	Now          func() time.Time
}

// Model is the demo host screen.
type Model struct {
	def       *config.SheetDefinition
	style     string
	sheetOpts []actionsheet.Option
	log       *logger.Logger
	now       func() time.Time

	sheet   *actionsheet.Sheet
	entries []Entry
	calls   *handlerCalls

	events  viewport.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	showError bool
	errorMsg  string

	width  int
	height int
}

// NewModel creates the demo model.
func NewModel(opts Options) Model {
	def := opts.Definition
	if def == nil {
		def = config.DefaultDefinition(opts.Style)
	}
	style := def.Style
	if opts.Style != "" {
		style = opts.Style
	}
	if style == "" {
		style = config.DisplayStyleList
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle

	m := Model{
		def:       def,
		style:     style,
		sheetOpts: append([]actionsheet.Option(nil), opts.SheetOptions...),
		log:       opts.Logger.WithFields(map[string]any{"component": "demo"}),
		now:       now,
		events:    viewport.New(0, 0),
		spinner:   s,
		help:      help.New(),
		keys:      defaultKeyMap(),
		calls:     &handlerCalls{},
	}
	m.refreshEvents()
	return m
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Sheet returns the sheet on screen, or nil.
func (m Model) Sheet() *actionsheet.Sheet {
	return m.sheet
}

// Style returns the display style the next sheet is built with.
func (m Model) Style() string {
	return m.style
}

// Entries returns the event log, oldest first.
func (m Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// ErrorMessage returns the banner text, or "" when no banner is shown.
func (m Model) ErrorMessage() string {
	if !m.showError {
		return ""
	}
	return m.errorMsg
}

// open builds a fresh sheet from the definition in the current style and
// presents it. Sheets are single-use, so every open builds a new one.
func (m *Model) open() tea.Cmd {
	if m.sheet != nil {
		return nil
	}

	def := *m.def
	def.Style = m.style
	opts := make([]actionsheet.Option, 0, len(m.sheetOpts)+1)
	opts = append(opts, actionsheet.WithLogger(m.log))
	opts = append(opts, m.sheetOpts...)

	sheet, err := config.Build(&def, m.handler(), opts...)
	if err != nil {
		m.log.Warn("sheet definition rejected", "style", m.style, "error", err.Error())
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}

	sheet.SetSize(m.width, m.height)
	cmd, err := sheet.Present()
	if err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}

	m.sheet = sheet
	m.showError = false
	m.errorMsg = ""
	m.log.Info("sheet opened", "style", m.style, "actions", len(sheet.Actions()))
	return cmd
}

// handlerCalls collects the titles of actions whose handlers ran. Handlers
// fire inside Update on a copy of the model, so every copy shares one.
type handlerCalls struct {
	titles []string
}

func (c *handlerCalls) drain() []string {
	titles := c.titles
	c.titles = nil
	return titles
}

// handler is bound to every action of the sheets the demo builds.
func (m Model) handler() actionsheet.Handler {
	calls, log := m.calls, m.log
	return func(a *actionsheet.Action) {
		calls.titles = append(calls.titles, a.Title())
		log.Debug("action handler ran", "action", a.Title())
	}
}

func (m *Model) toggleStyle() {
	if m.style == config.DisplayStyleGrid {
		m.style = config.DisplayStyleList
	} else {
		m.style = config.DisplayStyleGrid
	}
}

func (m *Model) record(msg actionsheet.DismissedMsg) {
	entry := Entry{At: m.now(), Style: m.style, Cause: msg.Cause, Handled: m.calls.drain()}
	if msg.Action != nil {
		entry.Action = msg.Action.Title()
	}

	m.entries = append(m.entries, entry)
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
	m.log.Info("sheet dismissed", "action", entry.Action, "cause", msg.Cause.String())
	m.refreshEvents()
}

// resize lays out the event log between the header and the footer.
func (m *Model) resize() {
	chrome := headerRows + m.footerRows() + 2
	m.events.Width = max(m.width-4, 0)
	m.events.Height = max(m.height-chrome, 1)
	m.help.Width = m.width
	m.refreshEvents()
}

func (m *Model) refreshEvents() {
	m.events.SetContent(renderEntries(m.entries))
	m.events.GotoBottom()
}

func (m Model) footerRows() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0])
	}
	return 1
}

// transitioning reports whether the sheet is animating in or out.
func (m Model) transitioning() bool {
	if m.sheet == nil {
		return false
	}
	state := m.sheet.State()
	return state == actionsheet.StatePresenting || state == actionsheet.StateDismissing
}
