package config

// SheetDefinition is the YAML document describing one action sheet.
type SheetDefinition struct {
	Title       string                 `yaml:"title,omitempty" validate:"max=200"`
	Message     string                 `yaml:"message,omitempty" validate:"max=1000"`
	Style       string                 `yaml:"style,omitempty" validate:"omitempty,display_style"`
	Actions     []ActionDefinition     `yaml:"actions" validate:"required,min=1,dive"`
	Preferences *PreferencesDefinition `yaml:"preferences,omitempty"`
	Appearance  *AppearanceDefinition  `yaml:"appearance,omitempty"`
}

// ActionDefinition describes a single Default or Cancel action.
type ActionDefinition struct {
	Title     string `yaml:"title,omitempty" validate:"max=100"`
	Image     string `yaml:"image,omitempty" validate:"max=8"`
	Style     string `yaml:"style,omitempty" validate:"omitempty,action_style"`
	Enabled   *bool  `yaml:"enabled,omitempty"`
	TextColor string `yaml:"text_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	ImageTint string `yaml:"image_tint,omitempty" validate:"omitempty,hexcolor_or_ansi"`
}

// IsEnabled reports whether the action starts enabled. Missing means true.
func (a ActionDefinition) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// IsCancel reports whether the action is the sheet's Cancel action.
func (a ActionDefinition) IsCancel() bool {
	return a.Style == StyleCancel
}

// PreferencesDefinition overrides per-sheet options. Unset fields keep the
// built-in defaults.
type PreferencesDefinition struct {
	DragToDismiss          *bool    `yaml:"drag_to_dismiss,omitempty"`
	TapBackgroundToDismiss *bool    `yaml:"tap_background_to_dismiss,omitempty"`
	AlwaysShowCloseButton  *bool    `yaml:"always_show_close_button,omitempty"`
	Animated               *bool    `yaml:"animated,omitempty"`
	CornerRadius           *int     `yaml:"corner_radius,omitempty" validate:"omitempty,min=0,max=4"`
	TableCellHeight        *int     `yaml:"table_cell_height,omitempty" validate:"omitempty,min=1,max=8"`
	TopDraggableInset      *int     `yaml:"top_draggable_inset,omitempty" validate:"omitempty,min=0"`
	DismissVelocity        *float64 `yaml:"dismiss_velocity,omitempty" validate:"omitempty,gt=0"`
	MaxWidth               *int     `yaml:"max_width,omitempty" validate:"omitempty,min=16"`
	SheetColor             string   `yaml:"sheet_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	AccessoryColor         string   `yaml:"accessory_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	TitleColor             string   `yaml:"title_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	MessageColor           string   `yaml:"message_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
}

// AppearanceDefinition overrides the shared appearance for one sheet.
type AppearanceDefinition struct {
	Background       string `yaml:"background,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	BorderColor      string `yaml:"border_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	BackdropColor    string `yaml:"backdrop_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	DragHandleColor  string `yaml:"drag_handle_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	DragHandleWidth  *int   `yaml:"drag_handle_width,omitempty" validate:"omitempty,min=1,max=32"`
	DisabledColor    string `yaml:"disabled_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	DefaultTextColor string `yaml:"default_text_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	CancelTextColor  string `yaml:"cancel_text_color,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	DefaultTint      string `yaml:"default_image_tint,omitempty" validate:"omitempty,hexcolor_or_ansi"`
	CancelTint       string `yaml:"cancel_image_tint,omitempty" validate:"omitempty,hexcolor_or_ansi"`
}

// Accepted values for the style fields.
const (
	DisplayStyleList = "list"
	DisplayStyleGrid = "grid"

	StyleDefault = "default"
	StyleCancel  = "cancel"
)
