package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewCheckCmd(mgr Manager) *cobra.Command {
	var strict bool
	var watch bool
	outputVal := formatValue("text")

	cmd := &cobra.Command{
		Use:   "check [root...]",
		Short: "Report files that are not canonically formatted",
		Long: `
Check runs every discovered file through its formatter and reports the ones
whose canonical form differs, plus the ones the formatter cannot parse. No
file is modified. Without --strict the command always exits successfully;
use it in editors and pre-commit hooks. With --strict any finding fails the
command, which is what a CI gate wants.`,
		Args: cobra.ArbitraryArgs,
		Example: `
  canonfmt check
  canonfmt check src scripts
  canonfmt check --strict
  canonfmt check -o json .
  canonfmt check --watch src`,
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any file needs attention")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch for changes and rerun the check")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}

		noColour, _ := cmd.Flags().GetBool("nocolour")
		useColour := !noColour

		if strict && watch {
			return fmt.Errorf("--strict and --watch are mutually exclusive")
		}

		if watch {
			return mgr.WatchCheck(cmd.Context(), roots, string(outputVal), useColour, nil)
		}

		return mgr.CheckTree(cmd.Context(), roots, string(outputVal), useColour, strict)
	}

	return cmd
}
