package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/actionsheet/internal/config"
	"github.com/alexisbeaulieu97/actionsheet/pkg/actionsheet"
)

func TestViewBeforeSize(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{})
	assert.Equal(t, "Initializing...", m.View())
}

func TestViewShowsHeaderAndEmptyLog(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, config.DisplayStyleList)
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "Action Sheet Demo")
	assert.Contains(t, view, "style: list")
	assert.Contains(t, view, "No dismissals yet")
	assert.Contains(t, view, "open sheet")
}

func TestViewOverlaysSheet(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, config.DisplayStyleList)
	m = run(t, m, key("enter"))

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Share")
	assert.Contains(t, view, "Mail")
	assert.Contains(t, view, "Cancel")
	assert.LessOrEqual(t, len(strings.Split(view, "\n")), 30)
}

func TestViewListsEntries(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, config.DisplayStyleList)
	m = run(t, m, key("enter"))
	m = run(t, m, key("esc"))

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "09:30:00")
	assert.Contains(t, view, "Cancel")
	assert.Contains(t, view, "cancel, list")
	assert.Contains(t, view, "✓ ran Cancel")
	assert.NotContains(t, view, "No dismissals yet")
}

func TestViewShowsErrorBanner(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, config.DisplayStyleList)
	m = update(t, m, ErrorMsg{Err: assert.AnError})

	assert.Contains(t, ansi.Strip(m.View()), assert.AnError.Error())
}

func TestRenderEntriesLabels(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(renderEntries([]Entry{
		{At: fixedNow, Style: "grid", Action: "Mail", Cause: actionsheet.CauseSelection, Handled: []string{"Mail"}},
		{At: fixedNow, Style: "list", Cause: actionsheet.CauseBackdrop},
	}))

	lines := strings.Split(out, "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "Mail")
		assert.Contains(t, lines[0], "selection, grid")
		assert.Contains(t, lines[1], "(no handler)")
		assert.Contains(t, lines[0], "✓ ran Mail")
		assert.Contains(t, lines[1], "backdrop, list")
		assert.NotContains(t, lines[1], "✓")
	}
}

func TestViewHostIgnoresMouseWithoutSheet(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, config.DisplayStyleList)
	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, m.Sheet())
}
