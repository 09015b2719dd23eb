package actionsheet

// Opacity tiers of a touchable view.
const (
	opacityNormal      = 1.0
	opacityHighlighted = 0.6
	opacityDisabled    = 0.4
)

// touchTarget receives pointer events in view-local cells.
type touchTarget interface {
	touchBegan(x, y int)
	touchMoved(x, y int)
	touchEnded(x, y int)
	touchCancelled()
}

// touchTracker holds highlight state for a view of a given size.
type touchTracker struct {
	width, height int
	tracking      bool
	highlighted   bool
}

func (t *touchTracker) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < t.width && y < t.height
}

func (t *touchTracker) began(x, y int) bool {
	t.tracking = t.inside(x, y)
	t.highlighted = t.tracking
	return t.highlighted
}

func (t *touchTracker) moved(x, y int) bool {
	if !t.tracking {
		return false
	}
	was := t.highlighted
	t.highlighted = t.inside(x, y)
	return was != t.highlighted
}

// ended reports whether the touch finished inside the view.
func (t *touchTracker) ended(x, y int) bool {
	tapped := t.tracking && t.inside(x, y)
	t.tracking = false
	t.highlighted = false
	return tapped
}

func (t *touchTracker) cancelled() {
	t.tracking = false
	t.highlighted = false
}

func opacity(enabled, highlighted bool) float64 {
	switch {
	case !enabled:
		return opacityDisabled
	case highlighted:
		return opacityHighlighted
	default:
		return opacityNormal
	}
}
