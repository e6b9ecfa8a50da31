package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sofmeright/premerge/src/config"
	"github.com/sofmeright/premerge/src/log"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// Commands that read their own input instead of the loaded config.
var skipConfig = map[string]bool{
	"version":    true,
	"strategies": true,
	"migrate":    true,
	"validate":   true,
}

var rootCmd = &cobra.Command{
	Use:   "premerge",
	Short: "Pre-build merge configuration",
	Long:  "premerge loads, upgrades, validates and renders the merge-before-build settings of a CI config.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stderr, verbose)
		cmd.SetContext(log.With(cmd.Context(), logger))

		if skipConfig[cmd.Name()] {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("loaded config",
			zap.String("path", configPath()),
			zap.Bool("merge_enabled", cfg.Merge.Enabled()),
		)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .premerge.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return ".premerge.yml"
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
