package actionsheet

import (
	"math"
	"strings"

	"github.com/alexisbeaulieu97/actionsheet/internal/ui"
	"github.com/alexisbeaulieu97/actionsheet/internal/ui/components"
	"github.com/alexisbeaulieu97/actionsheet/internal/ui/mouse"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Hit regions, lowest priority first.
const (
	regionBackdrop = "backdrop"
	regionSheet    = "sheet"
	regionClose    = "close"
	regionAction   = "action"
	regionCancel   = "cancel"
)

const (
	minSheetWidth = 16
	// dimThreshold is the backdrop alpha from which the background is dimmed.
	dimThreshold = 0.25
)

// localRegion is a touch target in sheet-local cells.
type localRegion struct {
	id     string
	rect   mouse.Rect
	target touchTarget
}

// View renders the sheet on its own, bottom filler included. It is empty
// unless the sheet is active.
func (s *Sheet) View() string {
	if !s.Active() {
		return ""
	}
	return strings.Join(s.sheetLines(), "\n")
}

// Overlay draws the sheet over background, a full-screen rendering of the
// host. Background lines are dimmed while the backdrop is visible enough and
// the sheet is drawn bottom-docked, displaced by the current translation and
// clipped to the screen.
func (s *Sheet) Overlay(background string) string {
	if !s.Active() {
		return background
	}

	lines := strings.Split(background, "\n")
	if s.height > 0 {
		for len(lines) < s.height {
			lines = append(lines, "")
		}
		lines = lines[:s.height]
	}

	if s.BackdropAlpha() >= dimThreshold {
		dim := lipgloss.NewStyle().Faint(true)
		if c := s.appearance.BackdropColor; c != nil {
			dim = dim.Foreground(c)
		}
		for i, line := range lines {
			if line != "" {
				lines[i] = dim.Render(ansi.Strip(line))
			}
		}
	}

	x, top := s.origin()
	width := s.sheetWidth()
	for i, line := range s.sheetLines() {
		row := top + i
		if row < 0 || row >= len(lines) {
			continue
		}
		lines[row] = splice(lines[row], line, x, width)
	}
	return strings.Join(lines, "\n")
}

// splice replaces width cells of bg starting at column x with fg.
func splice(bg, fg string, x, width int) string {
	left := ansi.Truncate(bg, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	if pad := width - ansi.StringWidth(fg); pad > 0 {
		fg += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(bg, x+width, "")
	return left + ansi.ResetStyle + fg + ansi.ResetStyle + right
}

func (s *Sheet) sheetLines() []string {
	s.compose()
	lines := strings.Split(s.block, "\n")
	for range s.stretchRows() {
		lines = append(lines, blankLine(s.palette, s.sheetWidth()))
	}
	return lines
}

// stretchRows is how far the sheet is dragged above its resting place; the
// gap under it is filled with the sheet background.
func (s *Sheet) stretchRows() int {
	if s.offset >= 0 {
		return 0
	}
	return int(math.Ceil(-s.offset))
}

// origin is the screen cell of the sheet's top-left corner.
func (s *Sheet) origin() (x, y int) {
	s.compose()
	x = max((s.width-s.sheetWidth())/2, 0)
	y = int(math.Round(s.offset))
	if s.height > 0 {
		y += s.height - s.blockHeight
	}
	return x, y
}

func (s *Sheet) sheetWidth() int {
	width := s.prefs.MaxWidth
	if s.width > 0 {
		width = min(width, s.width)
	}
	return max(width, minSheetWidth)
}

func (s *Sheet) contentHeight() int {
	s.compose()
	return s.blockHeight
}

func (s *Sheet) showsCloseControl() bool {
	return s.prefs.AlwaysShowCloseButton || s.cancel == nil
}

func (s *Sheet) showsNavigationBar() bool {
	return s.title != "" || s.message != "" || s.showsCloseControl()
}

// compose renders the sheet block and records the touch regions inside it.
// It only does work after something invalidated the previous rendering.
func (s *Sheet) compose() {
	if !s.dirty {
		return
	}
	s.dirty = false

	width := s.sheetWidth()
	inner := width - 2
	s.regions = s.regions[:0]

	handle := s.renderHandle(width)
	sections := []string{handle}
	y := lipgloss.Height(handle)

	// Rows inside the box start one below its top border.
	var body []string
	bodyY := y + 1
	if s.showsNavigationBar() {
		nav, closeRow := s.renderNavigationBar(inner)
		if closeRow >= 0 {
			s.regions = append(s.regions, localRegion{
				id:     regionClose,
				rect:   mouse.Rect{X: 2, Y: bodyY + closeRow, W: 1, H: 1},
				target: s.close,
			})
		}
		body = append(body, nav)
		bodyY += lipgloss.Height(nav)
	}
	if actions := s.renderActions(inner, bodyY); actions != "" {
		body = append(body, actions)
	}

	if len(body) > 0 {
		content := lipgloss.JoinVertical(lipgloss.Left, body...)
		box := components.NewContainer(ui.RenderFunc(func() string { return content })).
			WithBorder(s.border()).
			WithBorderColor(s.borderColor()).
			WithBorderBackground(s.background()).
			WithWidth(inner).
			WithAppliers(components.Background(s.background())).
			View()
		sections = append(sections, box)
		y += lipgloss.Height(box)
	}

	if !s.cancelButton.hidden() {
		s.cancelButton.width, s.cancelButton.height = width, cancelButtonHeight
		sections = append(sections, strings.Repeat(" ", width))
		y++
		button := s.cancelButton.View()
		s.regions = append(s.regions, localRegion{
			id:     regionCancel,
			rect:   mouse.Rect{X: 0, Y: y, W: width, H: lipgloss.Height(button)},
			target: s.cancelButton,
		})
		sections = append(sections, button)
	}

	s.block = lipgloss.JoinVertical(lipgloss.Left, sections...)
	s.blockHeight = lipgloss.Height(s.block)
}

func (s *Sheet) renderHandle(width int) string {
	handleWidth := min(s.appearance.DragHandleWidth, width)
	var bar string
	switch {
	case handleWidth <= 0:
		bar = ""
	case s.appearance.DragHandleRadius > 0 && handleWidth >= 2:
		bar = "╺" + strings.Repeat("━", handleWidth-2) + "╸"
	default:
		bar = strings.Repeat("━", handleWidth)
	}
	bar = components.NewText(bar).WithAppliers(components.Foreground(s.accessory())).View()
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// renderNavigationBar draws the close control and title line, then the
// message. closeRow is the bar-relative row of the close control, or -1.
func (s *Sheet) renderNavigationBar(inner int) (string, int) {
	bg := components.Background(s.background())
	rows := components.VStack()
	closeRow := -1

	showClose := s.showsCloseControl()
	if s.title != "" || showClose {
		// Three cells either side keep the title centred on the sheet.
		lead := ui.Renderable(components.NewText("   ").WithAppliers(bg))
		if showClose {
			lead = components.HStack(
				components.NewText(" ").WithAppliers(bg),
				ui.RenderFunc(s.close.View),
				components.NewText(" ").WithAppliers(bg),
			)
			closeRow = 0
		}
		titleWidth := max(inner-6, 1)
		title := components.NewText(s.title).
			WithStyle(s.titleStyle()).
			WithAlign(lipgloss.Center).
			WithMaxLines(1).
			WithAppliers(bg)
		titleCell := ui.RenderFunc(func() string {
			if s.title == "" {
				return blankLine(s.palette, titleWidth)
			}
			return title.ViewWithContext(components.DefaultContext().WithConstraints(components.WithMaxWidth(titleWidth)))
		})
		rows.Add(components.HStack(lead, titleCell, components.NewText("   ").WithAppliers(bg)))
	}

	if s.message != "" {
		message := components.NewText(s.message).
			WithStyle(s.messageStyle().Padding(0, 1)).
			WithAlign(lipgloss.Center).
			WithAppliers(bg)
		rows.Add(ui.RenderFunc(func() string {
			return message.ViewWithContext(components.DefaultContext().WithConstraints(components.WithMaxWidth(inner)))
		}))
	}

	if len(s.views) > 0 {
		rows.Add(components.NewDivider().WithWidth(inner).WithAppliers(components.Foreground(s.borderColor()), bg))
	}
	return rows.View(), closeRow
}

// renderActions lays the action views out and records their regions. top is
// the sheet-local row of the first action.
func (s *Sheet) renderActions(inner, top int) string {
	if len(s.views) == 0 {
		return ""
	}
	if s.displayStyle == DisplayGrid {
		return s.renderGrid(inner, top)
	}

	rows := make([]string, 0, len(s.views))
	y := top
	for _, group := range s.groups {
		for _, v := range group {
			v.setSize(inner, s.prefs.TableCellHeight)
			row := v.View()
			h := lipgloss.Height(row)
			s.regions = append(s.regions, localRegion{
				id:     regionAction,
				rect:   mouse.Rect{X: 1, Y: y, W: inner, H: h},
				target: v,
			})
			rows = append(rows, row)
			y += h
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *Sheet) renderGrid(inner, top int) string {
	column := max(inner/GridColumns, 1)
	// A blank row above and below the tiles.
	blank := blankLine(s.palette, inner)
	lines := []string{blank}
	y := top + 1

	for _, group := range s.groups {
		tiles := make([]ui.Renderable, 0, len(group))
		for c, v := range group {
			v.setSize(column, tileHeight)
			s.regions = append(s.regions, localRegion{
				id:     regionAction,
				rect:   mouse.Rect{X: 1 + c*column, Y: y, W: column, H: tileHeight},
				target: v,
			})
			tiles = append(tiles, v)
		}
		row := components.HStack(tiles...).
			WithStyle(lipgloss.NewStyle().Width(inner)).
			WithAppliers(components.Background(s.background())).
			View()
		lines = append(lines, row)
		y += lipgloss.Height(row)
	}
	lines = append(lines, blank)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// registerRegions refreshes the hit map for the current screen position.
// The backdrop goes in first so anything drawn over it wins.
func (s *Sheet) registerRegions() {
	hm := s.mouse.HitMap
	hm.Clear()

	x, top := s.origin()
	width := s.sheetWidth()
	sheetHeight := s.blockHeight + s.stretchRows()

	screenW := max(s.width, x+width)
	screenH := max(s.height, top+sheetHeight)
	hm.AddRect(regionBackdrop, 0, 0, screenW, screenH, nil)
	hm.AddRect(regionSheet, x, top, width, sheetHeight, nil)
	for _, r := range s.regions {
		hm.AddRect(r.id, x+r.rect.X, top+r.rect.Y, r.rect.W, r.rect.H, r.target)
	}
}
