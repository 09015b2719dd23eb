// Package mouse turns raw Bubble Tea mouse messages into hit-tested presses,
// taps and drags.
//
// Regions are registered after each render. Later regions sit on top of
// earlier ones, so a backdrop registered first only wins where nothing else
// was drawn over it.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultVelocityWindow bounds how far back release velocity is measured.
const DefaultVelocityWindow = 100 * time.Millisecond

// Rect is a screen rectangle in cells. Width and height are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is a named, hit-testable rectangle.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap stores regions in paint order.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region on top of every region added before it.
func (h *HitMap) AddRect(id string, x, y, w, h2 int, data any) {
	r := Rect{X: x, Y: y, W: w, H: h2}
	if r.Empty() {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			region := h.regions[i]
			return &region
		}
	}
	return nil
}

// Regions returns a copy of the registered regions in paint order.
func (h *HitMap) Regions() []Region {
	out := make([]Region, len(h.regions))
	copy(out, h.regions)
	return out
}

// Clear drops all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// ActionType classifies a mouse message.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionPress
	ActionPressMotion
	ActionHover
	ActionDragStart
	ActionDrag
	ActionDragEnd
	ActionClick
	ActionScrollUp
	ActionScrollDown
)

func (a ActionType) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionPressMotion:
		return "press-motion"
	case ActionHover:
		return "hover"
	case ActionDragStart:
		return "drag-start"
	case ActionDrag:
		return "drag"
	case ActionDragEnd:
		return "drag-end"
	case ActionClick:
		return "click"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// MouseAction is the classified result of HandleMouse.
type MouseAction struct {
	Type ActionType
	X, Y int
	// Region is the topmost region under the pointer.
	Region *Region
	// PressRegion is the region under the pointer when the button went down.
	PressRegion *Region
	DragDX      int
	DragDY      int
	// VelocityY is the vertical release speed in rows per second (ActionDragEnd only).
	VelocityY float64
}

type sample struct {
	at time.Time
	y  int
}

// Handler owns a HitMap and the press/drag state between messages.
type Handler struct {
	HitMap *HitMap

	// DragThreshold is the vertical travel, in rows, that promotes a press to a drag.
	DragThreshold  int
	VelocityWindow time.Duration

	now func() time.Time

	pressed     bool
	dragging    bool
	startX      int
	startY      int
	pressRegion *Region
	samples     []sample
}

// NewHandler creates a handler using the wall clock.
func NewHandler() *Handler {
	return NewHandlerWithClock(time.Now)
}

// NewHandlerWithClock creates a handler that timestamps samples with now.
func NewHandlerWithClock(now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		HitMap:         NewHitMap(),
		DragThreshold:  1,
		VelocityWindow: DefaultVelocityWindow,
		now:            now,
	}
}

// HandleMouse classifies msg against the current hit map.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	action := MouseAction{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			return action
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			return action
		case tea.MouseButtonLeft:
			h.StartDrag(msg.X, msg.Y, action.Region)
			action.Type = ActionPress
			action.PressRegion = h.pressRegion
			return action
		}
		return action

	case tea.MouseActionMotion:
		if !h.pressed {
			action.Type = ActionHover
			return action
		}
		h.record(msg.Y)
		action.PressRegion = h.pressRegion
		action.DragDX, action.DragDY = h.DragDelta(msg.X, msg.Y)
		switch {
		case h.dragging:
			action.Type = ActionDrag
		case abs(action.DragDY) >= h.DragThreshold:
			h.dragging = true
			action.Type = ActionDragStart
		default:
			action.Type = ActionPressMotion
		}
		return action

	case tea.MouseActionRelease:
		if !h.pressed {
			return action
		}
		h.record(msg.Y)
		action.PressRegion = h.pressRegion
		action.DragDX, action.DragDY = h.DragDelta(msg.X, msg.Y)
		if h.dragging {
			action.Type = ActionDragEnd
			action.VelocityY = h.velocity()
		} else {
			action.Type = ActionClick
		}
		h.EndDrag()
		return action
	}

	return action
}

// StartDrag records a press at (x, y). It becomes a drag once motion crosses DragThreshold.
func (h *Handler) StartDrag(x, y int, region *Region) {
	h.pressed = true
	h.dragging = false
	h.startX = x
	h.startY = y
	h.pressRegion = region
	h.samples = h.samples[:0]
	h.record(y)
}

// DragDelta returns the travel from the press origin.
func (h *Handler) DragDelta(x, y int) (int, int) {
	return x - h.startX, y - h.startY
}

// EndDrag clears press and drag state.
func (h *Handler) EndDrag() {
	h.pressed = false
	h.dragging = false
	h.pressRegion = nil
	h.samples = h.samples[:0]
}

// IsPressed reports whether the left button is held.
func (h *Handler) IsPressed() bool {
	return h.pressed
}

// IsDragging reports whether the current press has become a drag.
func (h *Handler) IsDragging() bool {
	return h.dragging
}

// DragRegion returns the ID of the region the press started on.
func (h *Handler) DragRegion() string {
	if h.pressRegion == nil {
		return ""
	}
	return h.pressRegion.ID
}

// Clear drops regions and any in-progress press.
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.EndDrag()
}

func (h *Handler) record(y int) {
	now := h.now()
	h.samples = append(h.samples, sample{at: now, y: y})
	cutoff := now.Add(-h.VelocityWindow)
	drop := 0
	for drop < len(h.samples)-2 && h.samples[drop].at.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		h.samples = append(h.samples[:0], h.samples[drop:]...)
	}
}

func (h *Handler) velocity() float64 {
	if len(h.samples) < 2 {
		return 0
	}
	first := h.samples[0]
	last := h.samples[len(h.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return float64(last.y-first.y) / dt
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
