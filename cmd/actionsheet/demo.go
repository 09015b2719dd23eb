package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/actionsheet/internal/config"
	"github.com/alexisbeaulieu97/actionsheet/internal/logger"
	"github.com/alexisbeaulieu97/actionsheet/internal/tui/demo"
)

type demoOptions struct {
	ConfigPath  string
	Style       string
	LogFile     string
	LogLevel    string
	NoAnimation bool
}

var errNotInteractive = errors.New("demo requires an interactive terminal")

var (
	demoCmdRunner = runDemo
	programRunner = func(m tea.Model) error {
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
		return err
	}
	stdoutIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
)

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open the interactive action sheet demo",
		Long: `Demo draws a small event log and presents an action sheet over it.
Without --config the built-in share sheet is used. Every dismissal is
recorded in the log with the action whose handler ran and the cause.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.LogFile = root.logFile
			opts.LogLevel = root.logLevel
			return demoCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML sheet definition to present")
	cmd.Flags().StringVar(&opts.Style, "style", "", "Display style override: list or grid")
	cmd.Flags().BoolVar(&opts.NoAnimation, "no-animation", false, "Present and dismiss without transitions")

	return cmd
}

func runDemo(cmd *cobra.Command, opts demoOptions) error {
	if err := validateDemoOptions(opts); err != nil {
		return err
	}
	if !stdoutIsTerminal() {
		return errNotInteractive
	}

	log, closeLog, err := openLogger(opts.LogFile, opts.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := buildDemoModel(opts, log)
	if err != nil {
		log.Error(err, "demo setup failed")
		return err
	}

	log.Info("launching demo", "config", opts.ConfigPath, "style", m.Style())
	if err := programRunner(m); err != nil {
		log.Error(err, "demo execution failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}
	log.Info("demo closed")
	return nil
}

func buildDemoModel(opts demoOptions, log *logger.Logger) (demo.Model, error) {
	var def *config.SheetDefinition
	if opts.ConfigPath != "" {
		parsed, err := config.ParseSheet(opts.ConfigPath)
		if err != nil {
			return demo.Model{}, err
		}
		def = parsed
	} else {
		def = config.DefaultDefinition(opts.Style)
	}

	if opts.NoAnimation {
		if def.Preferences == nil {
			def.Preferences = &config.PreferencesDefinition{}
		}
		animated := false
		def.Preferences.Animated = &animated
	}

	return demo.NewModel(demo.Options{
		Definition: def,
		Style:      opts.Style,
		Logger:     log,
	}), nil
}

// openLogger writes JSON lines to path, or discards everything when path is
// empty. The returned func closes the file.
func openLogger(path, level string) (*logger.Logger, func(), error) {
	var (
		writer io.Writer = io.Discard
		closer           = func() {}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = f
		closer = func() { _ = f.Close() }
	}

	log, err := logger.New(logger.Options{Level: level, Writer: writer, Component: "actionsheet"})
	if err != nil {
		closer()
		return nil, nil, err
	}
	return log, closer, nil
}
