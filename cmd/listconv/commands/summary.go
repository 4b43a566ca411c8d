package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/listconv/pkg/cleaner/lists"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file|url|-]...",
	Short: "Replace lists with a one-line summary of item markers",
	Long: `Replace every list in the input with a paragraph listing the markers
of its leaf items, such as "1, 2a, 2b, 3". Nested markers are joined
to their parent's, with a hyphen where both are roman or share a style.
Unordered lists contribute nothing; a list with no markers is removed.

Examples:
  listconv summary page.html
  listconv summary --separator "; " --format json page.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, lists.ModeSummary)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	addConvertFlags(summaryCmd)
}
