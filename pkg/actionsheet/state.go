package actionsheet

import (
	"fmt"

	apperrors "github.com/alexisbeaulieu97/actionsheet/pkg/errors"
)

// State is a step of the sheet lifecycle.
type State int

const (
	StateUnpresented State = iota
	StatePresenting
	StatePresented
	StateDismissing
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateUnpresented:
		return "unpresented"
	case StatePresenting:
		return "presenting"
	case StatePresented:
		return "presented"
	case StateDismissing:
		return "dismissing"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event drives a lifecycle transition.
type Event int

const (
	EventPresent Event = iota
	EventEnterFinished
	EventDismiss
	EventExitFinished
)

func (e Event) String() string {
	switch e {
	case EventPresent:
		return "present"
	case EventEnterFinished:
		return "enter-finished"
	case EventDismiss:
		return "dismiss"
	case EventExitFinished:
		return "exit-finished"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

type transitionKey struct {
	from  State
	event Event
}

var transitions = map[transitionKey]State{
	{StateUnpresented, EventPresent}:      StatePresenting,
	{StatePresenting, EventEnterFinished}: StatePresented,
	{StatePresented, EventDismiss}:        StateDismissing,
	{StateDismissing, EventExitFinished}:  StateDismissed,
}

// machine is the lifecycle state machine. The zero value is Unpresented.
type machine struct {
	state State
}

func (m *machine) can(event Event) bool {
	_, ok := transitions[transitionKey{m.state, event}]
	return ok
}

// fire applies event or returns a TransitionError leaving the state untouched.
func (m *machine) fire(event Event) error {
	next, ok := transitions[transitionKey{m.state, event}]
	if !ok {
		return apperrors.NewTransitionError(m.state.String(), event.String(), rejection(m.state))
	}
	m.state = next
	return nil
}

func rejection(from State) error {
	switch from {
	case StateUnpresented:
		return apperrors.ErrNotPresented
	case StatePresenting, StateDismissing:
		return apperrors.ErrTransitionInFlight
	case StatePresented:
		return apperrors.ErrAlreadyPresented
	case StateDismissed:
		return apperrors.ErrDismissed
	default:
		return nil
	}
}
