package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sofmeright/premerge/src/config"
	"github.com/sofmeright/premerge/src/log"
)

var (
	migrateInPlace bool
	migrateOutput  string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [file]",
	Short: "Migrate config to the latest schema version",
	Long: `Migrate a .premerge.yml (or .toml) config file to the latest schema version.

By default, prints the migrated config to stdout. Use --in-place to
overwrite the file, or --output to write to a different path.

Version 1 files carry a pre_build_merge block; it becomes the version 2
merge block. Strategy and fast-forward identifiers are copied as written,
including ones this build does not recognize. Files from before
fast-forward selection get fast_forward_mode: FF.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVarP(&migrateInPlace, "in-place", "i", false, "overwrite the config file in place")
	migrateCmd.Flags().StringVarP(&migrateOutput, "output", "o", "", "write migrated config to this path")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if migrateInPlace && migrateOutput != "" {
		return fmt.Errorf("--in-place and --output are mutually exclusive")
	}

	inputPath := configPath()
	if len(args) > 0 {
		inputPath = args[0]
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	migrated, err := config.MigrateToLatest(data, config.FormatFor(inputPath))
	if err != nil {
		return err
	}
	log.From(cmd.Context()).Debug("migrated config",
		zap.String("path", inputPath),
		zap.Bool("changed", !bytes.Equal(data, migrated)),
	)

	// Determine output destination.
	switch {
	case migrateInPlace:
		if err := os.WriteFile(inputPath, migrated, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", inputPath, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  migrated %s (in-place)\n", inputPath)

	case migrateOutput != "":
		if config.FormatFor(migrateOutput) != config.FormatFor(inputPath) {
			return fmt.Errorf("output %s must use the same format as %s", migrateOutput, inputPath)
		}
		if err := os.WriteFile(migrateOutput, migrated, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", migrateOutput, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  migrated %s → %s\n", inputPath, migrateOutput)

	default:
		// Print to stdout (pipeable).
		fmt.Fprint(cmd.OutOrStdout(), string(migrated))
	}

	return nil
}
