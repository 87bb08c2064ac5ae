package app

import (
	"github.com/spf13/cobra"
)

func NewFormatCmd(mgr Manager) *cobra.Command {
	outputVal := formatValue("text")

	cmd := &cobra.Command{
		Use:   "format [root...]",
		Short: "Rewrite files into their canonical form",
		Long: `
Format runs the same pipeline as check and persists the canonical form of
every changed file back to its path. Files the formatter cannot parse are
left byte-for-byte untouched and reported as errors. Formatting is
idempotent: a second run finds nothing to rewrite.`,
		Args: cobra.ArbitraryArgs,
		Example: `
  canonfmt format
  canonfmt format src scripts
  canonfmt format --language shell .`,
	}

	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}

		noColour, _ := cmd.Flags().GetBool("nocolour")
		return mgr.FormatTree(cmd.Context(), roots, string(outputVal), !noColour)
	}

	return cmd
}
