package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/sofmeright/premerge/src/merge"
	"github.com/sofmeright/premerge/src/output"
)

var (
	strategiesFastForward bool
	strategiesJSON        bool
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the accepted merge strategies",
	Long: `List the identifiers accepted for merge.strategy, in declaration
order, as label/value pairs for a selection control. The default is
marked. With --fast-forward, list merge.fast_forward_mode instead.`,
	Args: cobra.NoArgs,
	RunE: runStrategies,
}

func init() {
	strategiesCmd.Flags().BoolVar(&strategiesFastForward, "fast-forward", false, "list fast-forward modes")
	strategiesCmd.Flags().BoolVar(&strategiesJSON, "json", false, "print as JSON")

	rootCmd.AddCommand(strategiesCmd)
}

type optionJSON struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Default bool   `json:"default,omitempty"`
}

func runStrategies(cmd *cobra.Command, args []string) error {
	opts, def := merge.Strategies.Options(), merge.Strategies.Default().String()
	if strategiesFastForward {
		opts, def = merge.FastForwardModes.Options(), merge.FastForwardModes.Default().String()
	}

	if !strategiesJSON {
		output.OptionTable(cmd.OutOrStdout(), opts, def, output.UseColor())
		return nil
	}

	rows := lo.Map(opts, func(o merge.Option, _ int) optionJSON {
		return optionJSON{Label: o.Label, Value: o.Value, Default: o.Value == def}
	})
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding options: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
