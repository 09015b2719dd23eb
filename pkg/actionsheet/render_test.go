package actionsheet

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewShowsContent(t *testing.T) {
	t.Parallel()

	s := newTestSheet(t, DisplayList)
	s.AddAction(NewAction("Mail", "✉", StyleDefault, nil))
	s.AddAction(NewAction("Print", "", StyleDefault, nil))
	s.AddAction(NewAction("Close", "", StyleCancel, nil))
	assert.Empty(t, s.View(), "nothing renders before presentation")

	present(t, s)
	out := s.View()
	for _, want := range []string{"Share", "Pick one", "✉ Mail", "Print", "Close", "╭", "╺"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, closeGlyph, "a cancel action replaces the close control")
	assert.Equal(t, DefaultMaxWidth, lipgloss.Width(out))
	assert.Equal(t, s.contentHeight(), lipgloss.Height(out))
}

func TestCloseControlVisibility(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		cancel    bool
		always    bool
		wantClose bool
	}{
		{name: "no cancel action", cancel: false, wantClose: true},
		{name: "cancel action", cancel: true, wantClose: false},
		{name: "always shown", cancel: true, always: true, wantClose: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			prefs := staticPreferences()
			prefs.AlwaysShowCloseButton = tc.always
			s := newTestSheet(t, DisplayList, WithPreferences(prefs))
			s.AddAction(NewAction("Mail", "", StyleDefault, nil))
			if tc.cancel {
				s.AddAction(NewAction("Cancel", "", StyleCancel, nil))
			}
			present(t, s)

			assert.Equal(t, tc.wantClose, strings.Contains(s.View(), closeGlyph))
			assert.Equal(t, tc.wantClose, s.showsCloseControl())
		})
	}
}

func TestNavigationBarHiddenWithoutText(t *testing.T) {
	t.Parallel()

	s := New("", "", DisplayList, WithPreferences(staticPreferences()))
	s.SetSize(screenWidth, screenHeight)
	s.AddAction(NewAction("Cancel", "", StyleCancel, nil))
	present(t, s)

	assert.False(t, s.showsNavigationBar())
	// Handle, spacer row and the bordered cancel button.
	assert.Equal(t, 1+1+cancelButtonHeight, s.contentHeight())
}

func TestTapCloseControlDismisses(t *testing.T) {
	t.Parallel()

	s := newTestSheet(t, DisplayList)
	s.AddAction(NewAction("Mail", "", StyleDefault, nil))
	present(t, s)

	x, y := regionFor(t, s, s.close)
	msg := dismissedMsg(t, tap(s, x, y))
	assert.Equal(t, CauseCancel, msg.Cause)
	assert.Nil(t, msg.Action)
}

func TestBackdropTap(t *testing.T) {
	t.Parallel()

	t.Run("dismisses", func(t *testing.T) {
		t.Parallel()

		log := &handlerLog{}
		s := newTestSheet(t, DisplayList)
		s.AddAction(NewAction("A", "", StyleDefault, log.handler))
		s.AddAction(NewAction("C", "", StyleCancel, log.handler))
		present(t, s)

		msg := dismissedMsg(t, tap(s, 0, 0))
		assert.Equal(t, CauseBackdrop, msg.Cause)
		assert.Equal(t, []string{"C"}, log.calls)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		prefs := staticPreferences()
		prefs.TapBackgroundToDismiss = false
		log := &handlerLog{}
		s := newTestSheet(t, DisplayList, WithPreferences(prefs))
		s.AddAction(NewAction("C", "", StyleCancel, log.handler))
		present(t, s)

		assert.Nil(t, tap(s, 0, 0))
		assert.True(t, s.IsPresented())
		assert.Empty(t, log.calls)
	})

	t.Run("taps on sheet content do not fall through", func(t *testing.T) {
		t.Parallel()

		s := newTestSheet(t, DisplayList)
		s.AddAction(NewAction("C", "", StyleCancel, nil))
		present(t, s)

		x, top := s.origin()
		// The drag handle row and the bar beside the title belong to the sheet.
		assert.Nil(t, tap(s, x+1, top))
		assert.Nil(t, tap(s, x+30, top+2))
		assert.True(t, s.IsPresented())
	})
}

func TestBackdropDragNeverMovesSheet(t *testing.T) {
	t.Parallel()

	t.Run("tap to dismiss disabled", func(t *testing.T) {
		t.Parallel()

		prefs := staticPreferences()
		prefs.TapBackgroundToDismiss = false
		log := &handlerLog{}
		s := newTestSheet(t, DisplayList, WithPreferences(prefs))
		s.AddAction(NewAction("A", "", StyleDefault, log.handler))
		s.AddAction(NewAction("C", "", StyleCancel, log.handler))
		present(t, s)

		s.Update(pressAt(0, 0))
		assert.Nil(t, s.Update(moveTo(0, 5)))
		assert.Zero(t, s.Translation())
		assert.Nil(t, s.Update(moveTo(0, 20)))
		assert.Nil(t, s.Update(releaseAt(0, 20)))

		assert.True(t, s.IsPresented())
		assert.Zero(t, s.Translation())
		assert.Empty(t, log.calls)
	})

	t.Run("release on backdrop taps", func(t *testing.T) {
		t.Parallel()

		log := &handlerLog{}
		s := newTestSheet(t, DisplayList)
		s.AddAction(NewAction("C", "", StyleCancel, log.handler))
		present(t, s)

		s.Update(pressAt(0, 0))
		s.Update(moveTo(0, 20))
		assert.Zero(t, s.Translation())

		msg := dismissedMsg(t, s.Update(releaseAt(0, 20)))
		assert.Equal(t, CauseBackdrop, msg.Cause)
		assert.Equal(t, []string{"C"}, log.calls)
	})

	t.Run("release on sheet is ignored", func(t *testing.T) {
		t.Parallel()

		log := &handlerLog{}
		s := newTestSheet(t, DisplayList)
		s.AddAction(NewAction("A", "", StyleDefault, log.handler))
		s.AddAction(NewAction("C", "", StyleCancel, log.handler))
		present(t, s)

		x, y := regionFor(t, s, s.views[0])
		s.Update(pressAt(x+2, 0))
		s.Update(moveTo(x+2, y))
		assert.False(t, s.views[0].highlighted)
		assert.Nil(t, s.Update(releaseAt(x+2, y)))

		assert.True(t, s.IsPresented())
		assert.Empty(t, log.calls)
	})
}

func TestGridLayoutRegions(t *testing.T) {
	t.Parallel()

	s := newTestSheet(t, DisplayGrid)
	for _, a := range makeActions(5) {
		s.AddAction(a)
	}
	present(t, s)

	s.registerRegions()
	var rects []struct{ x, y int }
	for _, r := range s.mouse.HitMap.Regions() {
		if r.ID == regionAction {
			rects = append(rects, struct{ x, y int }{r.Rect.X, r.Rect.Y})
		}
	}
	require.Len(t, rects, 5)
	assert.Equal(t, rects[0].y, rects[2].y, "first three tiles share a row")
	assert.Equal(t, rects[0].y+tileHeight, rects[3].y)
	assert.Equal(t, rects[0].x, rects[3].x)
	assert.Less(t, rects[0].x, rects[1].x)

	out := s.View()
	assert.Contains(t, out, "action-4")
}

func TestGridRowsFollowArrange(t *testing.T) {
	t.Parallel()

	s := newTestSheet(t, DisplayGrid)
	actions := makeActions(7)
	for _, a := range actions {
		s.AddAction(a)
	}
	present(t, s)

	groups := Arrange(actions, DisplayGrid)
	require.Len(t, s.groups, len(groups))

	s.registerRegions()
	rows := map[*Action]int{}
	cols := map[*Action]int{}
	for _, r := range s.mouse.HitMap.Regions() {
		if r.ID != regionAction {
			continue
		}
		v, ok := r.Data.(*actionView)
		require.True(t, ok)
		rows[v.action] = r.Rect.Y
		cols[v.action] = r.Rect.X
	}
	require.Len(t, rows, len(actions))

	for i, group := range groups {
		require.Len(t, s.groups[i], len(group))
		for c, a := range group {
			assert.Same(t, a, s.groups[i][c].action)
			assert.Equal(t, rows[group[0]], rows[a], "row %d shares one line", i)
			assert.Equal(t, cols[groups[0][c]], cols[a], "column %d lines up", c)
		}
		if i > 0 {
			assert.Equal(t, rows[groups[i-1][0]]+tileHeight, rows[group[0]])
		}
	}
}

func TestCornerRadiusSelectsBorder(t *testing.T) {
	t.Parallel()

	prefs := staticPreferences()
	prefs.SheetCornerRadius = 0
	s := newTestSheet(t, DisplayList, WithPreferences(prefs))
	s.AddAction(NewAction("Mail", "", StyleDefault, nil))
	present(t, s)

	out := s.View()
	assert.Contains(t, out, "┌")
	assert.NotContains(t, out, "╭")
}

func TestDragHandleGeometry(t *testing.T) {
	t.Parallel()

	s := newTestSheet(t, DisplayList)
	s.SetDragHandle(nil, 4, 0)
	s.AddAction(NewAction("Mail", "", StyleDefault, nil))
	present(t, s)

	first := strings.Split(s.View(), "\n")[0]
	assert.Equal(t, "━━━━", strings.TrimSpace(first))
}

func TestOverlayComposesOverBackground(t *testing.T) {
	t.Parallel()

	s := newTestSheet(t, DisplayList)
	s.AddAction(NewAction("Mail", "", StyleDefault, nil))
	background := strings.TrimSuffix(strings.Repeat(strings.Repeat("x", screenWidth)+"\n", screenHeight), "\n")

	assert.Equal(t, background, s.Overlay(background), "an idle sheet leaves the screen alone")

	present(t, s)
	lines := strings.Split(s.Overlay(background), "\n")
	require.Len(t, lines, screenHeight)

	_, top := s.origin()
	assert.Equal(t, strings.Repeat("x", screenWidth), ansi.Strip(lines[0]))

	sheetRow := ansi.Strip(lines[top+3])
	assert.Equal(t, screenWidth, ansi.StringWidth(sheetRow))
	assert.True(t, strings.HasPrefix(sheetRow, "xxxx"), "background stays visible left of the sheet")
	assert.True(t, strings.HasSuffix(sheetRow, "xxxx"), "and right of it")

	joined := ansi.Strip(strings.Join(lines, "\n"))
	assert.Contains(t, joined, "Mail")
}

func TestOverlayPadsShortBackground(t *testing.T) {
	t.Parallel()

	s := newTestSheet(t, DisplayList)
	present(t, s)

	lines := strings.Split(s.Overlay("hello"), "\n")
	require.Len(t, lines, screenHeight)
	assert.Contains(t, ansi.Strip(lines[0]), "hello")
}
