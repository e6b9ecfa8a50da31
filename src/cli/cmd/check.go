package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sofmeright/premerge/src/gitref"
	"github.com/sofmeright/premerge/src/log"
	"github.com/sofmeright/premerge/src/output"
)

var checkRepo string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the merge source exists in a local clone",
	Long: `Check that the configured remote and its tracking ref
refs/remotes/<remote>/<target> exist in the repository containing --repo.

Nothing is fetched: run git fetch first if the clone may be stale.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkRepo, "repo", ".", "path inside the repository")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if !cfg.Merge.Enabled() {
		return fmt.Errorf("%s: no merge configured", configPath())
	}

	opts := cfg.Merge.Options()
	report, err := gitref.Check(cmd.Context(), checkRepo, opts)
	if err != nil {
		return err
	}
	log.From(cmd.Context()).Debug("checked merge source",
		zap.String("ref", report.RefName.String()),
		zap.Bool("remote_found", report.RemoteFound),
		zap.Bool("ref_found", report.RefFound),
	)

	color := output.UseColor()
	sec := output.NewSection(cmd.OutOrStdout(), "Check", 0, color)
	output.RowStatus(sec, "remote", remoteDetail(report), status(report.RemoteFound), color)
	refDetail := report.RefName.String()
	if report.RefFound {
		refDetail += " " + output.Dimmed(report.Hash.String()[:12], color)
	}
	output.RowStatus(sec, "ref", refDetail, status(report.RefFound), color)
	if report.RemoteFound {
		sec.Separator()
		sec.KV("forge", string(report.Forge))
		if report.BranchURL != "" {
			sec.KV("browse", report.BranchURL)
		}
	}
	sec.Close()

	if !report.OK() {
		return fmt.Errorf("merge source %s not found", opts.Ref())
	}
	return nil
}

func remoteDetail(r *gitref.Report) string {
	if len(r.URLs) == 0 {
		return r.Remote
	}
	return fmt.Sprintf("%s (%s)", r.Remote, strings.Join(r.URLs, ", "))
}

func status(ok bool) string {
	if ok {
		return "success"
	}
	return "failed"
}
