// Package commands implements the CLI commands for listconv.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/listconv/internal/logger"
	"github.com/jmylchreest/listconv/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "listconv",
	Short: "Convert HTML lists to plain-text outlines and marker summaries",
	Long: `Listconv replaces the ordered and unordered lists of an HTML document
with plain text: either an indented, numbered outline or a one-line
summary of the item markers (such as "1, 2a, 2b, 3").

Inputs may be files, http(s) URLs, or "-" for stdin.

Examples:
  # Outline every list in a page
  listconv render page.html

  # Summarize the lists of a remote page as JSON
  listconv summary https://example.com/terms --format json

  # Plain text with four-space indentation
  cat page.html | listconv render --text --indent 4 -`,
	Version:      version.String(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogger(); err != nil {
			logError("%v", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	pflags := rootCmd.PersistentFlags()
	pflags.String("config", "", "config file (default $HOME/.listconv.yaml or ./.listconv.yaml)")
	pflags.Bool("debug", false, "enable debug logging")
	pflags.BoolP("quiet", "q", false, "only log errors")
	pflags.Bool("json-logs", false, "write logs as JSON")
	pflags.String("log-level", "", "log level: debug, info, warn, error (overrides --debug and --quiet)")

	_ = viper.BindPFlag("config", pflags.Lookup("config"))
	_ = viper.BindPFlag("debug", pflags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", pflags.Lookup("quiet"))
	_ = viper.BindPFlag("json_logs", pflags.Lookup("json-logs"))
	_ = viper.BindPFlag("log_level", pflags.Lookup("log-level"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".listconv")
		viper.SetConfigType("yaml")
	}

	// Environment variables: LISTCONV_INDENT_WIDTH, LISTCONV_SUMMARY_SEPARATOR, ...
	viper.SetEnvPrefix("LISTCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	if err := viper.ReadInConfig(); err == nil {
		logInfo("using config file %s", viper.ConfigFileUsed())
	}
}

func initLogger() error {
	return logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("json_logs"),
		Level: viper.GetString("log_level"),
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
