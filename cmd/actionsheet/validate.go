package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/actionsheet/internal/config"
)

type validateOptions struct {
	ConfigPath string
	Print      bool
}

func newValidateCmd() *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <sheet-file>",
		Short: "Check a YAML sheet definition",
		Long: `Validate parses a sheet definition and runs every schema rule on it.
Errors name the offending YAML path, for example actions[2].text_color.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = args[0]
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Print, "print", false, "Print the definition as parsed")

	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	if err := validateConfigPath(opts.ConfigPath); err != nil {
		return err
	}

	def, err := config.ParseSheet(opts.ConfigPath)
	if err != nil {
		return err
	}

	style := def.Style
	if style == "" {
		style = config.DisplayStyleList
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %s: %q, %d actions, %s\n", opts.ConfigPath, def.Title, len(def.Actions), style)

	if opts.Print {
		data, err := config.Marshal(def)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	}
	return nil
}
