package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/canonfmt/canonfmt/internal/config"
)

// NewInitCmd returns a new cobra command for writing a default configuration.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   InitCmdName + " [dirpath]",
		Short: "Write a default canonfmt configuration file",
		Long:  `Write a commented default ` + config.ConfigFile + ` into the given directory (default: the working directory).`,
		Args:  cobra.MaximumNArgs(1),
		Example: `
canonfmt init .
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirpath := "."
			if len(args) > 0 {
				dirpath = args[0]
			}

			if err := os.MkdirAll(dirpath, 0o750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}

			configPath := filepath.Join(dirpath, config.ConfigFile)
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("configuration already exists: %s", configPath)
			}

			if err := os.WriteFile(configPath, []byte(config.DefaultConfigContent), 0o600); err != nil {
				return fmt.Errorf("failed to write configuration file: %w", err)
			}

			cmd.Printf("Wrote %s\n", configPath)
			cmd.Println("Edit it to pick languages and filters, then run: canonfmt check")
			return nil
		},
	}

	return cmd
}
