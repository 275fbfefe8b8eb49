package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plyx/prompt"
)

const (
	formatText = "text"
	formatJSON = "json"
)

const (
	defaultProjectName = "my-app"
	featuresQuestion   = "Select features (space to select, arrow-keys to navigate):"
	featuresHelp       = "Don't worry, you can activate these later with `plyx add`"
	firstFontQuestion  = "Choose your first font:"
	firstFontHelp      = "Don't worry, you can add more fonts later with `plyx add`"
	addQuestion        = "Add to project:"
)

// emit prints v as JSON, or text in the text format.
func (a *app) emit(v any, text string) error {
	if a.format == formatJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(a.out, text)
	return err
}

// checkFeatureKeys warns about keys the catalog does not define; the prompts
// ignore them.
func (a *app) checkFeatureKeys(flag string, keys []string) {
	for _, key := range keys {
		if !a.catalog.HasFeature(key) {
			a.logger.Warn("unknown feature key", zap.String("flag", flag), zap.String("key", key))
		}
	}
}

func newConfirmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <question>",
		Short: "Ask a yes/no question",
		Long: `Ask a yes/no question. Enter and y answer yes, n and Esc answer no.

Prints "yes" or "no".`,
		Example: `  plyx-prompt confirm "Download the Android SDK?"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var yes bool
			err := a.withPrompter(func(p prompter) error {
				var err error
				yes, err = p.Confirm(args[0])
				return err
			})
			if err != nil {
				return err
			}
			answer := "no"
			if yes {
				answer = "yes"
			}
			return a.emit(map[string]bool{"confirmed": yes}, answer)
		},
	}
}

func newTextCmd(a *app) *cobra.Command {
	var def string
	cmd := &cobra.Command{
		Use:     "text <question>",
		Short:   "Ask for a line of text",
		Example: `  plyx-prompt text "Project name:" --default my-app`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			err := a.withPrompter(func(p prompter) error {
				var err error
				value, err = p.TextInput(args[0], def)
				return err
			})
			if err != nil {
				return err
			}
			return a.emit(map[string]string{"value": value}, value)
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "Value used when nothing is typed")
	return cmd
}

func newSelectCmd(a *app) *cobra.Command {
	var help string
	cmd := &cobra.Command{
		Use:   "select <question> [item...]",
		Short: "Pick one item by typing",
		Long: `Pick one item by typing part of it; Enter takes the best match.

Without items the catalog fonts are offered, suggested fonts first, and the
chosen font name is printed without the default marker.`,
		Example: `  plyx-prompt select "Target:" android ios web
  plyx-prompt select "Choose your first font:"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := args[1:]
			fromCatalog := len(items) == 0
			if fromCatalog {
				items = a.catalog.FirstFontOptions()
			}

			var selected string
			err := a.withPrompter(func(p prompter) error {
				var err error
				selected, err = p.SearchSelect(args[0], items, help)
				return err
			})
			if err != nil {
				return err
			}
			if fromCatalog {
				selected = a.catalog.ResolveFont(selected)
			}
			return a.emit(map[string]string{"selected": selected}, selected)
		},
	}
	cmd.Flags().StringVar(&help, "help-text", "", "Help line shown under the results")
	return cmd
}

func newFeaturesCmd(a *app) *cobra.Command {
	var (
		help       string
		action     string
		preChecked []string
		locked     []string
	)
	cmd := &cobra.Command{
		Use:   "features [question]",
		Short: "Choose catalog features from a checklist",
		Long: `Choose catalog features from a checklist. Space toggles a row, Enter on
the action row confirms. Locked features are shown checked and cannot be
changed; they are never part of the result.

Prints the selected feature keys, one per line.`,
		Example: `  plyx-prompt features --checked tinyvg --locked text-styling`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := featuresQuestion
			if len(args) == 1 {
				question = args[0]
			}
			a.checkFeatureKeys("checked", preChecked)
			a.checkFeatureKeys("locked", locked)

			var keys []string
			err := a.withPrompter(func(p prompter) error {
				var err error
				keys, err = p.FeatureSelect(question, a.catalog.PromptFeatures(), help, preChecked, locked, action)
				return err
			})
			if err != nil {
				return err
			}
			return a.emit(map[string][]string{"features": keys}, strings.Join(keys, "\n"))
		},
	}
	cmd.Flags().StringVar(&help, "help-text", featuresHelp, "Help line shown under the checklist")
	cmd.Flags().StringVar(&action, "action", "Done", "Label of the confirming row")
	cmd.Flags().StringSliceVar(&preChecked, "checked", nil, "Feature keys checked initially")
	cmd.Flags().StringSliceVar(&locked, "locked", nil, "Feature keys already in place")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	var (
		help      string
		locked    []string
		installed []string
	)
	cmd := &cobra.Command{
		Use:   "add [question]",
		Short: "Add features and fonts in one screen",
		Long: `Add features and fonts in one screen. The feature checklist, the font
search and the Done row are reached with the arrow keys. Enter in the font
search adds the best match; fonts already installed or added are refused.`,
		Example: `  plyx-prompt add --locked tinyvg --installed Roboto`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := addQuestion
			if len(args) == 1 {
				question = args[0]
			}
			a.checkFeatureKeys("locked", locked)

			var result prompt.AddResult
			err := a.withPrompter(func(p prompter) error {
				var err error
				result, err = p.AddWidget(question, a.catalog.PromptFeatures(), a.catalog.Fonts, locked, installed, help)
				return err
			})
			if err != nil {
				return err
			}
			return a.emit(result, describeAdd(result))
		},
	}
	cmd.Flags().StringVar(&help, "help-text", "", "Help line shown under the widget")
	cmd.Flags().StringSliceVar(&locked, "locked", nil, "Feature keys already enabled")
	cmd.Flags().StringSliceVar(&installed, "installed", nil, "Fonts already installed")
	return cmd
}

func describeAdd(result prompt.AddResult) string {
	if len(result.Features) == 0 && len(result.Fonts) == 0 {
		return "Nothing to add."
	}
	var b strings.Builder
	for _, key := range result.Features {
		fmt.Fprintf(&b, "feature %s\n", key)
	}
	for _, font := range result.Fonts {
		fmt.Fprintf(&b, "font %s\n", font)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// initPlan is what the init flow collected.
type initPlan struct {
	Name     string   `json:"name"`
	Font     string   `json:"font"`
	Features []string `json:"features"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Walk through the new project questions",
		Long: `Walk through the new project questions: project name, first font and
features. The answers are printed; no files are written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var plan initPlan
			err := a.withPrompter(func(p prompter) error {
				var err error
				plan, err = a.runInit(p)
				return err
			})
			if err != nil {
				return err
			}
			text := fmt.Sprintf("Project: %s\nFont: %s\nFeatures: %s",
				plan.Name, plan.Font, strings.Join(plan.Features, ", "))
			return a.emit(plan, text)
		},
	}
}

func (a *app) runInit(p prompter) (initPlan, error) {
	name, err := p.TextInput("Project name:", defaultProjectName)
	if err != nil {
		return initPlan{}, err
	}
	if _, err := os.Stat(name); err == nil {
		return initPlan{}, fmt.Errorf("directory %q already exists", name)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return initPlan{}, fmt.Errorf("failed to check project directory: %w", err)
	}

	option, err := p.SearchSelect(firstFontQuestion, a.catalog.FirstFontOptions(), firstFontHelp)
	if err != nil {
		return initPlan{}, err
	}

	keys, err := p.FeatureSelect(featuresQuestion, a.catalog.PromptFeatures(), featuresHelp, nil, nil, "Create!")
	if err != nil {
		return initPlan{}, err
	}

	a.logger.Debug("init answers collected",
		zap.String("name", name),
		zap.String("font", option),
		zap.Strings("features", keys),
	)
	return initPlan{
		Name:     name,
		Font:     a.catalog.ResolveFont(option),
		Features: keys,
	}, nil
}
