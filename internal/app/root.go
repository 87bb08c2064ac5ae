package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/canonfmt/canonfmt/internal/config"
	"github.com/canonfmt/canonfmt/internal/formatter"
	"github.com/canonfmt/canonfmt/internal/pipeline"
)

// Version is the current version of canonfmt, set at build time.
var Version = "dev"

const InitCmdName = "init"

// Banner with colour codes.
var Banner = "\033[32m" + `
                                ____     __
  _________ _____  ____  ____  / __/___ ___  / /_
 / ___/ __ ` + "`" + `/ __ \/ __ \/ __ \/ /_/ __ ` + "`" + `__ \/ __/
/ /__/ /_/ / / / / /_/ / / / / __/ / / / / / /_
\___/\__,_/_/ /_/\____/_/ /_/_/ /_/ /_/ /_/\__/
` + "\033[0m"

var LongDescription = `
canonfmt verifies that source trees are canonically formatted. It discovers
files under one or more roots, runs each through the formatter for its
language, and either reports the differences (check), fails the build on them
(check --strict), or rewrites the files in place (format).
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer) *cobra.Command {
	var debug bool
	var noColour bool
	var configPath string
	var languages []string
	var include []string
	var exclude []string
	var indent int
	var languageVersion string
	var jobs int

	rootCmd := &cobra.Command{
		Use:           "canonfmt",
		Short:         "Verify and enforce canonical source formatting",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          Banner + "\n" + LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help, completion and init commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == InitCmdName {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if debug {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			// 1. Setup Logging
			if debug {
				ll.Set(slog.LevelDebug)
			}
			logger, _, lErr := setupLogger(stderr, ll)
			if lErr != nil {
				logger.Warn("logging to file disabled", "error", lErr)
			}

			// 2. Load configuration and apply flag overrides
			var cfg *config.Config
			var err error
			if configPath != "" {
				cfg, err = config.Load(configPath)
			} else {
				cfg, err = config.LoadOrDefault(".")
			}
			if err != nil {
				return err
			}

			if len(languages) > 0 {
				cfg.Languages = languages
			}
			cfg.Include = append(cfg.Include, include...)
			cfg.Exclude = append(cfg.Exclude, exclude...)
			if cmd.Flags().Changed("indent") {
				cfg.Indent = indent
			}
			if cmd.Flags().Changed("language-version") {
				cfg.LanguageVersion = languageVersion
			}

			// 3. Build Dependencies
			registry, err := formatter.Build(cfg.Languages, cfg.Indent, cfg.LanguageVersion)
			if err != nil {
				return fmt.Errorf("formatter initialisation failed: %w", err)
			}

			runner := pipeline.NewRunner(registry, logger)
			if cmd.Flags().Changed("jobs") {
				runner.SetWorkers(jobs)
			}

			// 4. Hydrate the Lazy Wrapper
			realMgr := NewCLIManager(logger, cfg, registry, runner, cmd.OutOrStdout())
			lazy.SetInner(realMgr)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ./"+config.ConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&languages, "language", nil, "Restrict the run to the given languages")
	rootCmd.PersistentFlags().StringArrayVar(&include, "include", nil, "Additional include glob (repeatable)")
	rootCmd.PersistentFlags().StringArrayVar(&exclude, "exclude", nil, "Additional exclude glob (repeatable)")
	rootCmd.PersistentFlags().IntVar(&indent, "indent", 0, "Indentation width in spaces (0 = formatter default)")
	rootCmd.PersistentFlags().StringVar(&languageVersion, "language-version", "", "Opaque version hint handed to formatters (shell dialect)")
	rootCmd.PersistentFlags().IntVar(&jobs, "jobs", 0, "Number of files formatted concurrently")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	// Subcommands
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewCheckCmd(lazy))
	rootCmd.AddCommand(NewFormatCmd(lazy))
	rootCmd.AddCommand(NewFormattersCmd(lazy))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
