package actionsheet

import "github.com/charmbracelet/lipgloss"

const (
	// InheritCornerRadius makes a sheet use Appearance.CornerRadius.
	InheritCornerRadius = -1

	DefaultTableCellHeight = 2
	DefaultDismissVelocity = 40.0
	DefaultMaxWidth        = 72
)

// Preferences are per-sheet options. Nil colours fall back to the sheet's
// Appearance.
type Preferences struct {
	SheetCornerRadius int
	SheetColor        lipgloss.TerminalColor
	// SheetAccessoryColor paints the drag handle, the close control and the
	// sheet outline.
	SheetAccessoryColor lipgloss.TerminalColor

	TitleColor   lipgloss.TerminalColor
	// TitleBold overrides the weight of Appearance.TitleStyle. nil keeps it.
	TitleBold    *bool
	MessageColor lipgloss.TerminalColor
	MessageFaint bool

	// AlwaysShowCloseButton keeps the close control even when a Cancel action
	// exists.
	AlwaysShowCloseButton bool
	// TableCellHeight is the height of a list row in rows, separator included.
	TableCellHeight int

	DragToDismiss          bool
	TapBackgroundToDismiss bool
	// TopDraggableInset is how close to the top edge, in rows, the sheet may
	// be dragged up.
	TopDraggableInset int
	// DismissVelocity is the downward release speed, in rows per second,
	// above which a drag dismisses regardless of distance.
	DismissVelocity float64

	Animated bool
	MaxWidth int
}

// DefaultPreferences returns the options a sheet starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		SheetCornerRadius:      InheritCornerRadius,
		TableCellHeight:        DefaultTableCellHeight,
		DragToDismiss:          true,
		TapBackgroundToDismiss: true,
		DismissVelocity:        DefaultDismissVelocity,
		Animated:               true,
		MaxWidth:               DefaultMaxWidth,
	}
}

func (p Preferences) normalized() Preferences {
	if p.TableCellHeight < 1 {
		p.TableCellHeight = 1
	}
	if p.DismissVelocity <= 0 {
		p.DismissVelocity = DefaultDismissVelocity
	}
	if p.MaxWidth <= 0 {
		p.MaxWidth = DefaultMaxWidth
	}
	p.TopDraggableInset = max(p.TopDraggableInset, 0)
	return p
}

func (p Preferences) cornerRadius(a Appearance) int {
	if p.SheetCornerRadius < 0 {
		return a.CornerRadius
	}
	return p.SheetCornerRadius
}
