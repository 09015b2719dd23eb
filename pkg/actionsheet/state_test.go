package actionsheet

import (
	"errors"
	"testing"

	apperrors "github.com/alexisbeaulieu97/actionsheet/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineHappyPath(t *testing.T) {
	t.Parallel()

	var m machine
	require.Equal(t, StateUnpresented, m.state)

	steps := []struct {
		event Event
		want  State
	}{
		{EventPresent, StatePresenting},
		{EventEnterFinished, StatePresented},
		{EventDismiss, StateDismissing},
		{EventExitFinished, StateDismissed},
	}
	for _, step := range steps {
		require.True(t, m.can(step.event))
		require.NoError(t, m.fire(step.event))
		assert.Equal(t, step.want, m.state)
	}
}

func TestMachineRejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		from  State
		event Event
		cause error
	}{
		{name: "present twice", from: StatePresented, event: EventPresent, cause: apperrors.ErrAlreadyPresented},
		{name: "present while entering", from: StatePresenting, event: EventPresent, cause: apperrors.ErrTransitionInFlight},
		{name: "present while leaving", from: StateDismissing, event: EventPresent, cause: apperrors.ErrTransitionInFlight},
		{name: "present after dismissal", from: StateDismissed, event: EventPresent, cause: apperrors.ErrDismissed},
		{name: "dismiss before present", from: StateUnpresented, event: EventDismiss, cause: apperrors.ErrNotPresented},
		{name: "dismiss while entering", from: StatePresenting, event: EventDismiss, cause: apperrors.ErrTransitionInFlight},
		{name: "dismiss twice", from: StateDismissing, event: EventDismiss, cause: apperrors.ErrTransitionInFlight},
		{name: "stray exit", from: StatePresented, event: EventExitFinished, cause: apperrors.ErrAlreadyPresented},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := machine{state: tc.from}
			assert.False(t, m.can(tc.event))

			err := m.fire(tc.event)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.cause))

			var terr *apperrors.TransitionError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, tc.from.String(), terr.From)
			assert.Equal(t, tc.event.String(), terr.Event)
			assert.Equal(t, tc.from, m.state, "rejected events leave the state alone")
		})
	}
}
