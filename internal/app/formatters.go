package app

import (
	"strings"

	"github.com/spf13/cobra"
)

func NewFormattersCmd(mgr Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formatters",
		Short: "List the active formatters and the extensions they claim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range mgr.Registry().Formatters() {
				cmd.Printf("%-8s %s\n", f.Name(), strings.Join(f.Extensions(), ", "))
			}
			return nil
		},
	}

	return cmd
}
