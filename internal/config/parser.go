package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/actionsheet/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseSheet loads a sheet definition from disk, validates it, and returns the resulting model.
func ParseSheet(path string) (*SheetDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes decodes and validates a definition held in memory. source only
// labels errors.
func ParseBytes(source string, data []byte) (*SheetDefinition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def SheetDefinition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.NewParseError(source, 0, errors.New("document is empty"))
		}
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateSheet(&def); err != nil {
		return nil, err
	}

	return &def, nil
}

// Marshal renders a definition back to YAML.
func Marshal(def *SheetDefinition) ([]byte, error) {
	if def == nil {
		return nil, apperrors.NewValidationError("sheet", "definition is nil", nil)
	}
	out, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal sheet definition: %w", err)
	}
	return out, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
