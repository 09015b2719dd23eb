package demo

import (
	"time"

	"github.com/alexisbeaulieu97/actionsheet/pkg/actionsheet"
)

// Entry is one line of the event log.
type Entry struct {
	At     time.Time
	Style  string
	Action string
	Cause  actionsheet.Cause
	// Handled lists the actions whose handlers ran for this dismissal.
	Handled []string
}

// OpenSheetMsg asks the host to build and present a sheet, as if the Open
// key had been pressed.
type OpenSheetMsg struct{}

// ErrorMsg shows a banner until ClearErrorMsg or the next successful open.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg requests error banner dismissal.
type ClearErrorMsg struct{}
