// Package actionsheet implements a modal action sheet for Bubble Tea
// programs.
//
// A Sheet shows an optional title and message above a set of actions laid out
// as a list or as a three-wide grid, with an optional Cancel action docked at
// the bottom. It slides up from the bottom edge, can be dragged down or
// dismissed by tapping the dimmed backdrop, and reports its outcome to the
// host as a DismissedMsg after running exactly one action handler.
//
// Typical usage inside a host model:
//
//	sheet := actionsheet.New("Share", "Pick a destination", actionsheet.DisplayGrid)
//	sheet.AddAction(actionsheet.NewAction("Mail", "✉", actionsheet.StyleDefault, sendMail))
//	sheet.AddAction(actionsheet.NewAction("Cancel", "", actionsheet.StyleCancel, nil))
//	cmd, err := sheet.Present()
//
// While sheet.Active() is true the host forwards every message to
// sheet.Update and composes its own screen with sheet.Overlay.
//
// Sheets and actions belong to the Bubble Tea event loop and are not safe for
// concurrent use. The shared AppearanceStore is the exception: it may be read
// and written from any goroutine, and each sheet works from a private snapshot
// taken when it is built.
package actionsheet
