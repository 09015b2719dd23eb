package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/actionsheet/pkg/actionsheet"
	apperrors "github.com/alexisbeaulieu97/actionsheet/pkg/errors"
)

// Build validates def and turns it into an unpresented sheet. Options are
// applied after the ones derived from def, so callers can override them.
// Actions carry handler when it is non-nil.
func Build(def *SheetDefinition, handler actionsheet.Handler, opts ...actionsheet.Option) (*actionsheet.Sheet, error) {
	if err := ValidateSheet(def); err != nil {
		return nil, err
	}

	sheetOpts := []actionsheet.Option{
		actionsheet.WithPreferences(preferencesFrom(def.Preferences)),
		actionsheet.WithAppearance(appearanceFrom(def.Appearance)),
	}
	sheetOpts = append(sheetOpts, opts...)

	sheet := actionsheet.New(def.Title, def.Message, displayStyleOf(def.Style), sheetOpts...)
	for _, ad := range def.Actions {
		sheet.AddAction(actionFrom(ad, handler))
	}
	return sheet, nil
}

// ToDefinition captures a sheet's content back into a definition. Colours
// are not recoverable from a built sheet and are left empty.
func ToDefinition(sheet *actionsheet.Sheet) (*SheetDefinition, error) {
	if sheet == nil {
		return nil, apperrors.NewValidationError("sheet", "sheet is nil", nil)
	}

	def := &SheetDefinition{
		Title:   sheet.Title(),
		Message: sheet.Message(),
		Style:   sheet.DisplayStyle().String(),
	}
	for _, a := range sheet.Actions() {
		enabled := a.Enabled()
		def.Actions = append(def.Actions, ActionDefinition{
			Title:   a.Title(),
			Image:   a.Image(),
			Style:   a.Style().String(),
			Enabled: &enabled,
		})
	}

	p := sheet.Preferences()
	def.Preferences = &PreferencesDefinition{
		DragToDismiss:          boolPtr(p.DragToDismiss),
		TapBackgroundToDismiss: boolPtr(p.TapBackgroundToDismiss),
		AlwaysShowCloseButton:  boolPtr(p.AlwaysShowCloseButton),
		Animated:               boolPtr(p.Animated),
		TableCellHeight:        intPtr(p.TableCellHeight),
		TopDraggableInset:      intPtr(p.TopDraggableInset),
		DismissVelocity:        &p.DismissVelocity,
		MaxWidth:               intPtr(p.MaxWidth),
	}
	if p.SheetCornerRadius >= 0 {
		def.Preferences.CornerRadius = intPtr(p.SheetCornerRadius)
	}
	return def, nil
}

func displayStyleOf(s string) actionsheet.DisplayStyle {
	if s == DisplayStyleGrid {
		return actionsheet.DisplayGrid
	}
	return actionsheet.DisplayList
}

func actionFrom(ad ActionDefinition, handler actionsheet.Handler) *actionsheet.Action {
	style := actionsheet.StyleDefault
	if ad.IsCancel() {
		style = actionsheet.StyleCancel
	}

	a := actionsheet.NewAction(ad.Title, ad.Image, style, handler)
	a.SetEnabled(ad.IsEnabled())
	a.SetTextColor(colorOf(ad.TextColor))
	a.SetImageTint(colorOf(ad.ImageTint))
	return a
}

func preferencesFrom(pd *PreferencesDefinition) actionsheet.Preferences {
	p := actionsheet.DefaultPreferences()
	if pd == nil {
		return p
	}

	setBool(&p.DragToDismiss, pd.DragToDismiss)
	setBool(&p.TapBackgroundToDismiss, pd.TapBackgroundToDismiss)
	setBool(&p.AlwaysShowCloseButton, pd.AlwaysShowCloseButton)
	setBool(&p.Animated, pd.Animated)
	setInt(&p.SheetCornerRadius, pd.CornerRadius)
	setInt(&p.TableCellHeight, pd.TableCellHeight)
	setInt(&p.TopDraggableInset, pd.TopDraggableInset)
	setInt(&p.MaxWidth, pd.MaxWidth)
	if pd.DismissVelocity != nil {
		p.DismissVelocity = *pd.DismissVelocity
	}

	p.SheetColor = colorOf(pd.SheetColor)
	p.SheetAccessoryColor = colorOf(pd.AccessoryColor)
	p.TitleColor = colorOf(pd.TitleColor)
	p.MessageColor = colorOf(pd.MessageColor)
	return p
}

func appearanceFrom(ad *AppearanceDefinition) actionsheet.Appearance {
	a := actionsheet.SharedAppearance().Snapshot()
	if ad == nil {
		return a
	}

	overrideColor(&a.Background, ad.Background)
	overrideColor(&a.BorderColor, ad.BorderColor)
	overrideColor(&a.BackdropColor, ad.BackdropColor)
	overrideColor(&a.DragHandleColor, ad.DragHandleColor)
	overrideColor(&a.DisabledColor, ad.DisabledColor)
	setInt(&a.DragHandleWidth, ad.DragHandleWidth)

	if c := colorOf(ad.DefaultTextColor); c != nil {
		ts := a.ActionTextStyle(actionsheet.StyleDefault).Foreground(c)
		a.SetActionTextStyle(actionsheet.StyleDefault, &ts)
	}
	if c := colorOf(ad.CancelTextColor); c != nil {
		ts := a.ActionTextStyle(actionsheet.StyleCancel).Foreground(c)
		a.SetActionTextStyle(actionsheet.StyleCancel, &ts)
	}
	if c := colorOf(ad.DefaultTint); c != nil {
		a.SetActionImageTint(actionsheet.StyleDefault, c)
	}
	if c := colorOf(ad.CancelTint); c != nil {
		a.SetActionImageTint(actionsheet.StyleCancel, c)
	}
	return a
}

// colorOf returns nil for an empty string so unset colours fall through to
// the next layer.
func colorOf(s string) lipgloss.TerminalColor {
	if s == "" {
		return nil
	}
	return lipgloss.Color(s)
}

func overrideColor(dst *lipgloss.TerminalColor, s string) {
	if c := colorOf(s); c != nil {
		*dst = c
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }
