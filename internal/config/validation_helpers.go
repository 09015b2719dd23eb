package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/actionsheet/pkg/errors"
)

// ValidateSheet performs schema and cross-field validation on a definition.
func ValidateSheet(def *SheetDefinition) error {
	if def == nil {
		return apperrors.NewValidationError("sheet", "definition is nil", nil)
	}

	if err := validatorInstance().Struct(def); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors
// keyed by the YAML path of the first failing field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return apperrors.NewValidationError(field, describe(field, ve), err)
	}

	return apperrors.NewValidationError("sheet", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, leaving a path
// like "actions[1].text_color".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return strings.ToLower(ns)
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_in_grid":
		return fmt.Sprintf("%s is required for grid sheets", field)
	case "display_style":
		return fmt.Sprintf("%s must be %q or %q, got %q", field, DisplayStyleList, DisplayStyleGrid, fe.Value())
	case "action_style":
		return fmt.Sprintf("%s must be %q or %q, got %q", field, StyleDefault, StyleCancel, fe.Value())
	case "hexcolor_or_ansi":
		return fmt.Sprintf("%s must be a #rrggbb colour or an ANSI index, got %q", field, fe.Value())
	case "min", "max", "gt":
		return fmt.Sprintf("%s failed validation for tag '%s=%s'", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}
