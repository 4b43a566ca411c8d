package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/listconv/pkg/cleaner/lists"
)

var renderCmd = &cobra.Command{
	Use:   "render [file|url|-]...",
	Short: "Replace lists with indented, numbered outlines",
	Long: `Replace every list in the input with its outline.

Each item is written on its own line as its marker (1., a., iv., *)
followed by its text. Nested lists follow their parent item after a
blank line, indented by --indent spaces per level.

Examples:
  listconv render page.html
  listconv render --text --indent 4 page.html
  listconv render --format yaml https://example.com/guide`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, lists.ModeOutline)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addConvertFlags(renderCmd)
}
