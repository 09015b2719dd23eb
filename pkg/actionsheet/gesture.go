package actionsheet

import (
	"fmt"

	"github.com/alexisbeaulieu97/actionsheet/internal/ui/mouse"
	tea "github.com/charmbracelet/bubbletea"
)

// neededOffsetRatio is the share of the sheet height a drag must exceed.
const neededOffsetRatio = 29.0 / 72.0

// PanPhase is the phase of a vertical pan gesture.
type PanPhase int

const (
	PanBegan PanPhase = iota
	PanChanged
	PanEnded
	PanCancelled
	PanFailed
)

func (p PanPhase) String() string {
	switch p {
	case PanBegan:
		return "began"
	case PanChanged:
		return "changed"
	case PanEnded:
		return "ended"
	case PanCancelled:
		return "cancelled"
	case PanFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p PanPhase) terminal() bool {
	return p == PanEnded || p == PanCancelled || p == PanFailed
}

// PanEvent is one update of a pan gesture. Translation is measured in rows
// from where the pan began, positive downwards; Velocity in rows per second.
type PanEvent struct {
	Phase       PanPhase
	Translation float64
	Velocity    float64
}

// NeededOffset is the translation a released drag must exceed to dismiss.
func (s *Sheet) NeededOffset() float64 {
	return float64(s.contentHeight()) * neededOffsetRatio
}

// MinTranslation is how far up, as a non-positive translation, the sheet can
// be dragged before its top reaches TopDraggableInset.
func (s *Sheet) MinTranslation() float64 {
	if s.height <= 0 {
		return 0
	}
	return float64(min(0, s.contentHeight()+s.prefs.TopDraggableInset-s.height))
}

// Translation is the current vertical displacement of the sheet.
func (s *Sheet) Translation() float64 {
	return s.offset
}

// HandlePan feeds one pan update to a presented sheet. Ended, cancelled and
// failed pans are judged alike: past NeededOffset or faster than
// DismissVelocity dismisses when DragToDismiss is on, anything else springs
// back to rest.
func (s *Sheet) HandlePan(ev PanEvent) tea.Cmd {
	if s.fsm.state != StatePresented {
		return nil
	}

	translation := max(ev.Translation, s.MinTranslation())
	switch {
	case ev.Phase == PanBegan:
		s.stopAnimation()
		s.cancelTouches()
		s.setOffset(translation)
		return nil
	case ev.Phase.terminal():
		s.setOffset(translation)
		if s.shouldDismiss(translation, ev.Velocity) {
			s.log.Debug("drag dismiss", "translation", translation, "velocity", ev.Velocity)
			return s.dismiss(CauseDrag, nil)
		}
		return s.springBack()
	default:
		s.setOffset(translation)
		return nil
	}
}

func (s *Sheet) shouldDismiss(translation, velocity float64) bool {
	if !s.prefs.DragToDismiss {
		return false
	}
	return translation > s.NeededOffset() || velocity > s.prefs.DismissVelocity
}

func (s *Sheet) springBack() tea.Cmd {
	if s.offset == 0 {
		return nil
	}
	if !s.prefs.Animated {
		s.setOffset(0)
		return nil
	}
	return s.animate(s.offset, 0, nil)
}

// handleMouse routes one mouse message: presses, moves and releases go to
// the touch target under the pointer until vertical travel promotes the
// press to a pan of the whole sheet.
func (s *Sheet) handleMouse(msg tea.MouseMsg) tea.Cmd {
	s.registerRegions()
	action := s.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionPress:
		s.pressTarget = nil
		if target, rect, ok := targetOf(action.Region); ok {
			s.pressTarget = target
			s.pressRect = rect
			target.touchBegan(action.X-rect.X, action.Y-rect.Y)
		}
	case mouse.ActionPressMotion:
		if s.pressTarget != nil {
			s.pressTarget.touchMoved(action.X-s.pressRect.X, action.Y-s.pressRect.Y)
		}
	case mouse.ActionDragStart:
		if !onSheet(action.PressRegion) {
			return nil
		}
		s.HandlePan(PanEvent{Phase: PanBegan})
		return s.HandlePan(PanEvent{Phase: PanChanged, Translation: float64(action.DragDY)})
	case mouse.ActionDrag:
		if !onSheet(action.PressRegion) {
			return nil
		}
		return s.HandlePan(PanEvent{Phase: PanChanged, Translation: float64(action.DragDY)})
	case mouse.ActionDragEnd:
		if !onSheet(action.PressRegion) {
			return s.releaseOnBackdrop(action)
		}
		return s.HandlePan(PanEvent{Phase: PanEnded, Translation: float64(action.DragDY), Velocity: action.VelocityY})
	case mouse.ActionClick:
		target := s.pressTarget
		s.pressTarget = nil
		if target != nil {
			target.touchEnded(action.X-s.pressRect.X, action.Y-s.pressRect.Y)
			return s.drain()
		}
		return s.releaseOnBackdrop(action)
	}
	return s.drain()
}

// onSheet reports whether a press landed on the sheet, so that it may pan
// it. Presses on the backdrop never move the sheet.
func onSheet(region *mouse.Region) bool {
	if region == nil {
		return false
	}
	switch region.ID {
	case regionSheet, regionAction, regionCancel, regionClose:
		return true
	}
	return false
}

func onBackdrop(region *mouse.Region) bool {
	return region != nil && region.ID == regionBackdrop
}

// releaseOnBackdrop counts a release as a background tap only when the
// press and the release both hit the backdrop.
func (s *Sheet) releaseOnBackdrop(action mouse.MouseAction) tea.Cmd {
	if onBackdrop(action.PressRegion) && onBackdrop(action.Region) {
		return s.tapBackground()
	}
	return s.drain()
}

// tapBackground handles a press and release that both began on the
// backdrop itself, never on sheet content.
func (s *Sheet) tapBackground() tea.Cmd {
	if !s.prefs.TapBackgroundToDismiss {
		return nil
	}
	return s.dismiss(CauseBackdrop, nil)
}

func targetOf(region *mouse.Region) (touchTarget, mouse.Rect, bool) {
	if region == nil {
		return nil, mouse.Rect{}, false
	}
	target, ok := region.Data.(touchTarget)
	return target, region.Rect, ok
}
