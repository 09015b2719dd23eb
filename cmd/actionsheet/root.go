package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "actionsheet",
		Short:         "Actionsheet shows a bottom-docked action sheet in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the demo
			if len(args) == 0 {
				return demoCmdRunner(cmd, demoOptions{LogFile: flags.logFile, LogLevel: flags.logLevel})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write JSON logs to this file (the terminal belongs to the UI)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
