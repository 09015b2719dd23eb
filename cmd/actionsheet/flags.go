package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/actionsheet/internal/config"
)

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

func validateDemoOptions(opts demoOptions) error {
	switch opts.Style {
	case "", config.DisplayStyleList, config.DisplayStyleGrid:
	default:
		return fmt.Errorf("invalid style %q: expected %q or %q", opts.Style, config.DisplayStyleList, config.DisplayStyleGrid)
	}

	if opts.ConfigPath != "" {
		if err := validateConfigPath(opts.ConfigPath); err != nil {
			return err
		}
	}

	return nil
}
