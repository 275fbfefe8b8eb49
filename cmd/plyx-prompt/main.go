// Plyx-prompt runs the interactive prompts from the command line.
//
// Each subcommand draws its prompt on the controlling terminal and prints
// only the answer on stdout, which makes the prompts usable from shell
// scripts:
//
//	name=$(plyx-prompt text "Project name:" --default my-app)
//
// The init and add subcommands replay the project setup flows against the
// feature and font catalog without touching the filesystem.
//
// Usage:
//
//	plyx-prompt [command] [flags]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plyx/prompt"
	"github.com/plyx/prompt/internal/catalog"
	"github.com/plyx/prompt/internal/logging"
)

func main() {
	if err := newRootCmd(newApp(os.Stdout)).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// prompter is the subset of *prompt.Prompter the commands use.
type prompter interface {
	Confirm(question string) (bool, error)
	TextInput(question, def string) (string, error)
	SearchSelect(question string, items []string, help string) (string, error)
	FeatureSelect(question string, features []prompt.Feature, help string, preChecked, locked []string, actionLabel string) ([]string, error)
	AddWidget(question string, features []prompt.Feature, fonts, lockedFeatures, installedFonts []string, help string) (prompt.AddResult, error)
	Close() error
}

// app carries the global flags and the collaborators shared by commands.
type app struct {
	out         io.Writer
	catalogPath string
	logLevel    string
	theme       string
	noColor     bool
	format      string

	logger      *zap.Logger
	catalog     *catalog.Catalog
	newPrompter func(options ...prompt.Option) (prompter, error)
}

func newApp(out io.Writer) *app {
	return &app{
		out:    out,
		logger: zap.NewNop(),
		newPrompter: func(options ...prompt.Option) (prompter, error) {
			return prompt.New(options...)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plyx-prompt",
		Short: "Interactive terminal prompts",
		Long: `Interactive terminal prompts for scripts and project setup.

Every prompt runs in raw mode and restores the terminal on exit.
Ctrl+C aborts with exit status 130.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(a.out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.catalogPath, "catalog", "", "Feature and font catalog (YAML, built-in when empty)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level on stderr (debug, info, warn, error; also "+logging.LogLevelEnvVar+")")
	flags.StringVar(&a.theme, "theme", "default", "Colour theme (default, accessible, monochrome)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colour output")
	flags.StringVar(&a.format, "format", formatText, "Output format (text, json)")

	rootCmd.AddCommand(
		newConfirmCmd(a),
		newTextCmd(a),
		newSelectCmd(a),
		newFeaturesCmd(a),
		newAddCmd(a),
		newInitCmd(a),
	)
	return rootCmd
}

// setup resolves the logger and the catalog once flags are parsed.
func (a *app) setup() error {
	if a.format != formatText && a.format != formatJSON {
		return fmt.Errorf("unknown output format %q", a.format)
	}
	if _, err := themeByName(a.theme); err != nil {
		return err
	}

	logger, err := logging.New(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	if a.catalogPath == "" {
		a.catalog = catalog.Default()
		return nil
	}
	c, err := catalog.Load(a.catalogPath)
	if err != nil {
		return err
	}
	a.logger.Debug("catalog loaded",
		zap.String("path", a.catalogPath),
		zap.Int("features", len(c.Features)),
		zap.Int("fonts", len(c.Fonts)),
	)
	a.catalog = c
	return nil
}

// withPrompter opens a prompter configured from the global flags, runs fn
// and closes it.
func (a *app) withPrompter(fn func(p prompter) error) error {
	scheme, err := themeByName(a.theme)
	if err != nil {
		return err
	}
	options := []prompt.Option{
		prompt.WithColorScheme(scheme),
		prompt.WithLogger(a.logger),
	}
	if a.noColor {
		options = append(options, prompt.WithColor(false))
	}

	p, err := a.newPrompter(options...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := p.Close(); cerr != nil {
			a.logger.Warn("failed to close prompter", zap.Error(cerr))
		}
	}()
	return fn(p)
}

func themeByName(name string) (*prompt.ColorScheme, error) {
	switch name {
	case "", "default":
		return prompt.ThemeDefault, nil
	case "accessible":
		return prompt.ThemeAccessible, nil
	case "monochrome":
		return prompt.ThemeMonochrome, nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}
