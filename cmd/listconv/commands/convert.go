package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/listconv/internal/logger"
	"github.com/jmylchreest/listconv/internal/output"
	"github.com/jmylchreest/listconv/pkg/cleaner/lists"
)

// convertBindings maps viper keys (config file and LISTCONV_* names) to
// the flags shared by render and summary.
var convertBindings = map[string]string{
	"profile":             "profile",
	"format":              "format",
	"indent_width":        "indent",
	"content":             "content",
	"line_breaks":         "line-breaks",
	"non_breaking_spaces": "nbsp",
	"summary_separator":   "separator",
	"text_output":         "text",
	"pretty_html":         "pretty",
	"max_input_size":      "max-input-size",
	"timeout":             "timeout",
}

func addConvertFlags(cmd *cobra.Command) {
	d := lists.DefaultConfig()
	flags := cmd.Flags()

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", string(output.FormatText), "output format: text, json, jsonl, yaml")
	flags.Bool("text", false, "emit plain text instead of HTML")
	flags.Bool("pretty", false, "indent HTML output")
	flags.Bool("stats", false, "print conversion stats to stderr")

	// Conversion settings
	flags.String("profile", "", "lists config file; replaces config file and LISTCONV_* settings, explicit flags still apply")
	flags.Int("indent", d.IndentWidth, "spaces per nesting level in outlines")
	flags.String("content", d.Content, "item content: text or html")
	flags.String("line-breaks", string(d.LineBreaks), "outline line breaks: br or newline")
	flags.Bool("nbsp", d.NonBreakingSpaces, "use non-breaking spaces in outlines (use --nbsp=false to disable)")
	flags.String("separator", d.SummarySeparator, "separator between summary markers")

	// Input settings
	flags.String("max-input-size", "10MB", "max input size (e.g., 512KB, 10MB, 0=unlimited)")
	flags.Duration("timeout", 30*time.Second, "fetch timeout for URL inputs")
}

// bindConvertFlags binds the running command's flags. render and summary
// share keys, so binding happens at run time rather than in init.
func bindConvertFlags(cmd *cobra.Command) error {
	for key, name := range convertBindings {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// convertOptions is the resolved configuration of one run.
type convertOptions struct {
	config *lists.Config
	format output.Format
	input  inputOptions
}

// loadConvertOptions resolves flags, LISTCONV_* variables and the config
// file into the cleaner configuration. Keys shared with lists.Config are
// decoded through its mapstructure tags. A --profile file takes the place
// of everything but the flags set on the command line.
func loadConvertOptions(cmd *cobra.Command, mode lists.Mode) (*convertOptions, error) {
	cfg := lists.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", lists.ErrInvalidConfig, err)
	}
	if profile := viper.GetString("profile"); profile != "" {
		base, err := lists.LoadConfig(profile)
		if err != nil {
			return nil, err
		}
		cfg = applyFlags(cmd, base, cfg)
		logger.Debug("loaded profile", "path", profile)
	}
	cfg.Mode = mode
	if viper.GetBool("text_output") {
		cfg.Output = lists.OutputText
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(viper.GetString("format"))
	if err != nil {
		return nil, err
	}

	maxBytes, err := parseSize(viper.GetString("max_input_size"))
	if err != nil {
		return nil, fmt.Errorf("max-input-size: %w", err)
	}

	return &convertOptions{
		config: cfg,
		format: format,
		input: inputOptions{
			MaxBytes: maxBytes,
			Timeout:  viper.GetDuration("timeout"),
		},
	}, nil
}

// applyFlags layers the flags set on the command line over base, taking
// their values from resolved. Merge skips zero values, so explicit false
// and zero settings are assigned afterwards.
func applyFlags(cmd *cobra.Command, base, resolved *lists.Config) *lists.Config {
	flags := cmd.Flags()

	overrides := &lists.Config{}
	if flags.Changed("content") {
		overrides.Content = resolved.Content
	}
	if flags.Changed("line-breaks") {
		overrides.LineBreaks = resolved.LineBreaks
	}
	if flags.Changed("separator") {
		overrides.SummarySeparator = resolved.SummarySeparator
	}
	merged := base.Merge(overrides)

	if flags.Changed("indent") {
		merged.IndentWidth = resolved.IndentWidth
	}
	if flags.Changed("nbsp") {
		merged.NonBreakingSpaces = resolved.NonBreakingSpaces
	}
	if flags.Changed("pretty") {
		merged.PrettyHTML = resolved.PrettyHTML
	}
	return merged
}

// runConvert converts every input argument with the given mode and writes
// one report per input.
func runConvert(cmd *cobra.Command, args []string, mode lists.Mode) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := bindConvertFlags(cmd); err != nil {
		return err
	}
	opts, err := loadConvertOptions(cmd, mode)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}
	logger.Debug("convert command starting", "mode", mode, "format", opts.format,
		"indent", opts.config.IndentWidth, "content", opts.config.Content, "output", opts.config.Output)

	if len(args) == 0 {
		args = []string{"-"}
	}

	out := cmd.OutOrStdout()
	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			logger.Error("failed to create output file", "path", outPath, "error", err)
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	writer, err := output.NewWriter(out, opts.format)
	if err != nil {
		return err
	}
	defer func() { _ = writer.Close() }()

	showStats, _ := cmd.Flags().GetBool("stats")
	c := lists.New(opts.config)

	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return err
		}

		src, err := readInput(ctx, arg, cmd.InOrStdin(), opts.input)
		if err != nil {
			logger.Error("failed to read input", "input", arg, "error", err)
			return err
		}

		result := c.CleanWithStats(src.HTML)
		for _, w := range result.Warnings {
			logger.Warn("conversion warning", "source", src.Name, "phase", w.Phase, "message", w.Message, "context", w.Context)
		}
		logger.Debug("input converted", "source", src.Name,
			"lists", result.Stats.ListsConverted, "items", result.Stats.ItemsConverted)
		if showStats {
			logInfo("%s\n%s", src.Name, result.Stats)
		}

		if err := writer.Write(output.NewReport(src.Name, mode, result)); err != nil {
			return fmt.Errorf("writing %s: %w", src.Name, err)
		}
	}

	return writer.Flush()
}
