package actionsheet

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	transitionDuration    = 700 * time.Millisecond
	transitionFPS         = 60
	springFrequency       = 6.0
	springDamping         = 0.9
	springInitialVelocity = 0.5

	// BackdropAlpha is the backdrop opacity while the sheet is at rest.
	BackdropAlpha = 0.5
)

// transitionFrames is the fixed frame budget of every transition.
var transitionFrames = int(math.Round(transitionDuration.Seconds() * transitionFPS))

// frameMsg advances the transition of one sheet. Frames from a superseded
// transition carry an old generation and are dropped.
type frameMsg struct {
	sheet int64
	gen   int
}

// transition springs a vertical offset from one value to another over a
// fixed number of frames, then runs its completion once.
type transition struct {
	spring harmonica.Spring
	from   float64
	to     float64
	pos    float64
	vel    float64
	frame  int
	gen    int
	done   func() tea.Cmd
}

func newTransition(from, to float64, gen int, done func() tea.Cmd) *transition {
	return &transition{
		spring: harmonica.NewSpring(harmonica.FPS(transitionFPS), springFrequency, springDamping),
		from:   from,
		to:     to,
		pos:    from,
		vel:    springInitialVelocity * (to - from),
		gen:    gen,
		done:   done,
	}
}

// step advances one frame and reports whether the frame budget is spent.
// The last frame lands exactly on the target.
func (t *transition) step() bool {
	t.frame++
	if t.frame >= transitionFrames {
		t.pos, t.vel = t.to, 0
		return true
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.to)
	return false
}

// progress is the travelled fraction of the distance, clamped to [0, 1].
func (t *transition) progress() float64 {
	span := t.to - t.from
	if span == 0 {
		return 1
	}
	return clamp01((t.pos - t.from) / span)
}

// complete takes the continuation so it can only run once.
func (t *transition) complete() tea.Cmd {
	done := t.done
	t.done = nil
	if done == nil {
		return nil
	}
	return done()
}

func frameTick(sheet int64, gen int) tea.Cmd {
	return tea.Tick(time.Second/transitionFPS, func(time.Time) tea.Msg {
		return frameMsg{sheet: sheet, gen: gen}
	})
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
