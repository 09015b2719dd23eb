package actionsheet

import (
	"github.com/alexisbeaulieu97/actionsheet/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// palette resolves the effective look of a sheet from its Appearance
// snapshot and Preferences.
type palette struct {
	appearance Appearance
	prefs      Preferences
}

func (p *palette) background() lipgloss.TerminalColor {
	if p.prefs.SheetColor != nil {
		return p.prefs.SheetColor
	}
	return p.appearance.Background
}

func (p *palette) accessory() lipgloss.TerminalColor {
	if p.prefs.SheetAccessoryColor != nil {
		return p.prefs.SheetAccessoryColor
	}
	return p.appearance.DragHandleColor
}

func (p *palette) border() lipgloss.Border {
	if p.prefs.cornerRadius(p.appearance) > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

func (p *palette) borderColor() lipgloss.TerminalColor {
	if p.prefs.SheetAccessoryColor != nil {
		return p.prefs.SheetAccessoryColor
	}
	return p.appearance.BorderColor
}

func (p *palette) titleStyle() lipgloss.Style {
	style := p.appearance.TitleStyle
	if p.prefs.TitleBold != nil {
		style = style.Bold(*p.prefs.TitleBold)
	}
	if p.prefs.TitleColor != nil {
		style = style.Foreground(p.prefs.TitleColor)
	}
	return style
}

func (p *palette) messageStyle() lipgloss.Style {
	style := p.appearance.MessageStyle
	if p.prefs.MessageColor != nil {
		style = style.Foreground(p.prefs.MessageColor)
	}
	if p.prefs.MessageFaint {
		style = style.Faint(true)
	}
	return style
}

// actionStyles returns the title and glyph styles for a.
func (p *palette) actionStyles(a *Action) (title, glyph lipgloss.Style) {
	title = p.appearance.ActionTextStyle(a.Style())
	if c := a.TextColor(); c != nil {
		title = title.Foreground(c)
	}
	glyph = title
	if c := a.ImageTint(); c != nil {
		glyph = glyph.Foreground(c)
	} else if c := p.appearance.ActionImageTint(a.Style()); c != nil {
		glyph = glyph.Foreground(c)
	}
	return title, glyph
}

// fade maps an opacity tier onto terminal attributes: highlighted text is
// faint, disabled text is faint and muted.
func (p *palette) fade(o float64) []components.StyleFunc {
	switch {
	case o <= opacityDisabled:
		return []components.StyleFunc{components.Faint(true), components.Foreground(p.appearance.DisabledColor)}
	case o < opacityNormal:
		return []components.StyleFunc{components.Faint(true)}
	default:
		return nil
	}
}
