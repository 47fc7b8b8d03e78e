// Package main provides the CLI entrypoint for readage.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/readage/internal/agegroup"
	"github.com/verte-zerg/readage/internal/config"
	"github.com/verte-zerg/readage/internal/logging"
	"github.com/verte-zerg/readage/internal/model"
	"github.com/verte-zerg/readage/internal/prompt"
	"github.com/verte-zerg/readage/internal/readability"
	"github.com/verte-zerg/readage/internal/report"
	"github.com/verte-zerg/readage/internal/source"
	"github.com/verte-zerg/readage/internal/textstats"
	"github.com/verte-zerg/readage/internal/tui"
)

const (
	defaultFormat   = "text"
	defaultLogLevel = "info"
)

var (
	configPath string

	analyzeMetric   string
	analyzeFormat   string
	analyzePick     bool
	analyzeLogLevel string
)

func main() {
	logging.SetDefaultCLILogger(defaultLogLevel)
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "readage <file>",
		Short:         "Estimate the reader age of a text",
		Long:          "Reads the first line of a text file, prints its statistics and scores it with\nARI, Flesch–Kincaid, SMOG or Coleman–Liau.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyzeCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.Flags().StringVarP(&analyzeMetric, "metric", "m", "", "score to calculate without prompting ("+readability.SelectionList()+")")
	rootCmd.Flags().StringVarP(&analyzeFormat, "format", "f", defaultFormat, "output format (text, table, json, yaml)")
	rootCmd.Flags().BoolVar(&analyzePick, "pick", false, "choose the score with an interactive picker")
	rootCmd.Flags().StringVar(&analyzeLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGroupsCmd())

	return rootCmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "metric", &analyzeMetric, fileCfg.Report.Metric)
	applyStringConfig(cmd, "format", &analyzeFormat, fileCfg.Report.Format)
	applyBoolConfig(cmd, "pick", &analyzePick, fileCfg.Report.Pick)
	applyStringConfig(cmd, "log-level", &analyzeLogLevel, fileCfg.Log.Level)

	logging.SetDefaultCLILogger(analyzeLogLevel)

	cfg, err := resolveConfig(args[0])
	if err != nil {
		return err
	}

	text, err := source.ReadFirstLine(cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read text: %w", err)
	}
	st := textstats.Compute(text)
	slog.Debug("computed statistics", "path", cfg.Path, "words", st.Words, "sentences", st.Sentences)

	out := cmd.OutOrStdout()
	if err := report.RenderHeader(out, cfg.Format, text, st); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	sel, err := selectMetric(cmd, cfg)
	if err != nil {
		return err
	}
	slog.Debug("evaluating", "selection", string(sel))

	assessment, err := readability.Evaluate(sel, st)
	if err != nil {
		return err
	}
	rep := report.Report{Text: text, Stats: st, Assessment: assessment}
	if err := report.RenderResult(out, cfg.Format, rep); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func resolveConfig(path string) (model.Config, error) {
	format, err := report.ParseFormat(analyzeFormat)
	if err != nil {
		return model.Config{}, fmt.Errorf("--format: %w", err)
	}
	cfg := model.Config{
		Path:     path,
		Format:   format,
		Pick:     analyzePick,
		LogLevel: analyzeLogLevel,
	}
	if analyzeMetric != "" {
		sel, err := readability.ParseSelection(analyzeMetric)
		if err != nil {
			return model.Config{}, fmt.Errorf("--metric: %w", err)
		}
		cfg.Selection = sel
	}
	return cfg, nil
}

// selectMetric returns the preset selection or asks for one. Structured
// formats keep stdout clean by asking on stderr.
func selectMetric(cmd *cobra.Command, cfg model.Config) (readability.Selection, error) {
	if cfg.Preselected() {
		return cfg.Selection, nil
	}
	promptOut := cmd.OutOrStdout()
	if cfg.Format.Structured() {
		promptOut = cmd.ErrOrStderr()
	}
	if cfg.Pick {
		if in, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(in.Fd())) {
			return tui.Run(in, promptOut)
		}
		slog.Warn("--pick needs an interactive terminal, falling back to the prompt")
	}
	sel, err := prompt.ReadSelection(cmd.InOrStdin(), promptOut)
	if err != nil {
		return "", err
	}
	return sel, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	if err := ensureConfigFile(configPath); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], configPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		slog.Info("created config", "path", path)
	}
	return nil
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List reader age groups by score level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := report.RenderGroups(cmd.OutOrStdout(), agegroup.All()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# readage configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# metric = "all"          # Score to calculate without prompting (%s)
# format = %q         # Output format: text, table, json, yaml
# pick = false            # Choose the score with an interactive picker

[log]
# level = %q          # debug, info, warn, error
`,
		readability.SelectionList(),
		defaultFormat,
		defaultLogLevel,
	)
}
