package actionsheet

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

const (
	screenWidth  = 80
	screenHeight = 40
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func staticPreferences() Preferences {
	p := DefaultPreferences()
	p.Animated = false
	return p
}

func newTestSheet(t *testing.T, style DisplayStyle, opts ...Option) *Sheet {
	t.Helper()
	base := []Option{WithPreferences(staticPreferences()), WithAppearance(DefaultAppearance())}
	s := New("Share", "Pick one", style, append(base, opts...)...)
	s.SetSize(screenWidth, screenHeight)
	return s
}

func present(t *testing.T, s *Sheet) {
	t.Helper()
	cmd, err := s.Present()
	require.NoError(t, err)
	if s.prefs.Animated {
		require.NotNil(t, cmd)
		settle(t, s)
	}
	require.Equal(t, StatePresented, s.State())
}

// settle feeds frames until the running transition completes and returns
// the completion command.
func settle(t *testing.T, s *Sheet) tea.Cmd {
	t.Helper()
	var last tea.Cmd
	for i := 0; s.anim != nil; i++ {
		require.LessOrEqual(t, i, transitionFrames, "transition did not finish within its frame budget")
		last = s.Update(frameMsg{sheet: s.id, gen: s.anim.gen})
	}
	return last
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func dismissedMsg(t *testing.T, cmd tea.Cmd) DismissedMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if d, ok := msg.(DismissedMsg); ok {
			return d
		}
	}
	require.FailNow(t, "no DismissedMsg produced")
	return DismissedMsg{}
}

type handlerLog struct {
	calls []string
}

func (h *handlerLog) handler(a *Action) {
	h.calls = append(h.calls, a.Title())
}

func pressAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func moveTo(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func releaseAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// regionFor returns the screen rectangle registered for target.
func regionFor(t *testing.T, s *Sheet, target touchTarget) (x, y int) {
	t.Helper()
	s.registerRegions()
	for _, r := range s.mouse.HitMap.Regions() {
		if r.Data == target {
			return r.Rect.X, r.Rect.Y
		}
	}
	require.FailNow(t, "no region for target")
	return 0, 0
}

func tap(s *Sheet, x, y int) tea.Cmd {
	s.Update(pressAt(x, y))
	return s.Update(releaseAt(x, y))
}
