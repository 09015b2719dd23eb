package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	displayStyles   = map[string]struct{}{DisplayStyleList: {}, DisplayStyleGrid: {}}
	actionStyles    = map[string]struct{}{StyleDefault: {}, StyleCancel: {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("display_style", func(fl validator.FieldLevel) bool {
			_, ok := displayStyles[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("action_style", func(fl validator.FieldLevel) bool {
			_, ok := actionStyles[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("hexcolor_or_ansi", func(fl validator.FieldLevel) bool {
			return isColor(fl.Field().String())
		})

		v.RegisterStructValidation(sheetRules, SheetDefinition{})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// sheetRules checks what depends on more than one field: default actions
// need a title, and a grid sheet needs an image for each of them.
func sheetRules(sl validator.StructLevel) {
	def, ok := sl.Current().Interface().(SheetDefinition)
	if !ok {
		return
	}

	for i, action := range def.Actions {
		if action.IsCancel() {
			continue
		}
		if action.Title == "" {
			sl.ReportError(action.Title, fmt.Sprintf("actions[%d].title", i), fmt.Sprintf("Actions[%d].Title", i), "required", "")
		}
		if def.Style == DisplayStyleGrid && action.Image == "" {
			sl.ReportError(action.Image, fmt.Sprintf("actions[%d].image", i), fmt.Sprintf("Actions[%d].Image", i), "required_in_grid", "")
		}
	}
}

// isColor accepts #rgb, #rrggbb, or an ANSI palette index from 0 to 255.
func isColor(s string) bool {
	if hexColorPattern.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 0 && n <= 255
}
