package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sofmeright/premerge/src/config"
	"github.com/sofmeright/premerge/src/log"
	"github.com/sofmeright/premerge/src/output"
)

var (
	validateJUnit string
	validateJobs  int
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate config files",
	Long: `Validate one or more config files (default: the --config file).

Errors fail the command. Strategy or fast-forward identifiers that this
build does not recognize are warnings only: they still resolve, to the
defaults, and builds keep running with them.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateJUnit, "junit", "", "write a JUnit XML report to this directory")
	validateCmd.Flags().IntVarP(&validateJobs, "jobs", "j", runtime.NumCPU(), "files validated in parallel")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{configPath()}
	}

	start := time.Now()
	w := cmd.OutOrStdout()
	output.SectionStart(w, "premerge_validate", "Validate")
	results, err := config.ValidateFiles(cmd.Context(), paths, validateJobs)
	output.SectionEnd(w, "premerge_validate")
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	log.From(cmd.Context()).Debug("validated", zap.Int("files", len(paths)), zap.Duration("elapsed", elapsed))

	p := output.NewPrinter()
	p.Writer = w
	failed := p.Print(results)
	p.Summary(results)

	if validateJUnit != "" {
		if err := output.WriteValidateJUnit(validateJUnit, results, elapsed); err != nil {
			return err
		}
	}

	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}
