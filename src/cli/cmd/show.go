package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sofmeright/premerge/src/log"
	"github.com/sofmeright/premerge/src/merge"
	"github.com/sofmeright/premerge/src/output"
)

var showArgs bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved merge settings",
	Long: `Show the merge settings after resolution.

Strategy and fast-forward identifiers the running build does not know
are shown with the default they fall back to. With --args, print the
git merge command line instead.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showArgs, "args", false, "print the git merge command line")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if !cfg.Merge.Enabled() {
		return fmt.Errorf("%s: no merge configured", configPath())
	}

	opts := cfg.Merge.Options()
	logFallbacks(cmd, opts)

	if showArgs {
		fmt.Fprintln(cmd.OutOrStdout(), "git merge "+strings.Join(opts.MergeArgs(), " "))
		return nil
	}

	output.MergeSection(cmd.OutOrStdout(), opts, output.UseColor())
	return nil
}

// logFallbacks notes at debug level which identifiers resolved to a default.
func logFallbacks(cmd *cobra.Command, opts merge.Options) {
	logger := log.From(cmd.Context())
	if _, ok := merge.Strategies.Lookup(opts.RawStrategy()); !ok {
		logger.Debug("strategy falls back to default",
			zap.String("raw", opts.RawStrategy()),
			zap.Stringer("resolved", opts.Strategy()),
		)
	}
	if _, ok := merge.FastForwardModes.Lookup(opts.RawFastForwardMode()); !ok {
		logger.Debug("fast-forward mode falls back to default",
			zap.String("raw", opts.RawFastForwardMode()),
			zap.Stringer("resolved", opts.FastForwardMode()),
		)
	}
}
