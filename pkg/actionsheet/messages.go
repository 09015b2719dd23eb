package actionsheet

import "fmt"

// Cause records why a sheet was dismissed.
type Cause int

const (
	// CauseBackdrop is a tap on the dimmed area around the sheet.
	CauseBackdrop Cause = iota
	// CauseDrag is a drag released past the dismissal threshold.
	CauseDrag
	// CauseCancel covers the Cancel action, the close control, the dismiss
	// key and programmatic Dismiss calls.
	CauseCancel
	// CauseSelection is the choice of an enabled Default action.
	CauseSelection
)

func (c Cause) String() string {
	switch c {
	case CauseBackdrop:
		return "backdrop"
	case CauseDrag:
		return "drag"
	case CauseCancel:
		return "cancel"
	case CauseSelection:
		return "selection"
	default:
		return fmt.Sprintf("cause(%d)", int(c))
	}
}

// DismissedMsg is delivered to the host once the exit transition finishes
// and the handler, if any, has run. Action is the action whose handler ran,
// or nil.
type DismissedMsg struct {
	Sheet  *Sheet
	Cause  Cause
	Action *Action
}
