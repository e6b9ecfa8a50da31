package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/sofmeright/premerge/src/merge"
	"github.com/sofmeright/premerge/src/version"
)

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
//
// Identifiers that no longer name a strategy or fast-forward mode are only
// warnings: they still resolve, to the defaults, and a build must not fail
// on them.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs *multierror.Error

	if cfg.Version != CurrentVersion {
		errs = multierror.Append(errs, fmt.Errorf("version: must be %d, got %d", CurrentVersion, cfg.Version))
	}

	if cfg.Requires != "" {
		if rerr := checkRequires(cfg.Requires); rerr != nil {
			errs = multierror.Append(errs, rerr)
		}
	}

	m := cfg.Merge
	switch {
	case m.Remote == "" && m.Target != "":
		errs = multierror.Append(errs, fmt.Errorf("merge: target %q has no remote", m.Target))
	case m.Remote != "" && m.Target == "":
		errs = multierror.Append(errs, fmt.Errorf("merge: remote %q has no target", m.Remote))
	}

	if !m.Enabled() && (m.Strategy != "" || m.FastForwardMode != "") {
		warnings = append(warnings, "merge: strategy or fast_forward_mode set without remote and target; nothing will be merged")
	}

	if w := staleIdentifier("merge.strategy", m.Strategy, merge.Strategies); w != "" {
		warnings = append(warnings, w)
	}
	if w := staleIdentifier("merge.fast_forward_mode", m.FastForwardMode, merge.FastForwardModes); w != "" {
		warnings = append(warnings, w)
	}

	return warnings, errs.ErrorOrNil()
}

// checkRequires verifies the running build satisfies the config's
// version constraint. Development builds always pass.
func checkRequires(requires string) error {
	c, err := semver.NewConstraint(requires)
	if err != nil {
		return fmt.Errorf("requires: invalid constraint %q: %w", requires, err)
	}
	if version.IsDev() {
		return nil
	}

	v, err := semver.NewVersion(version.Version)
	if err != nil {
		return fmt.Errorf("requires: cannot compare against build version %q: %w", version.Version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("requires: premerge %s does not satisfy %q", v, requires)
	}
	return nil
}

// staleIdentifier returns a warning when id is set but names nothing in
// the registry.
func staleIdentifier[T fmt.Stringer](field, id string, r *merge.Registry[T]) string {
	if id == "" {
		return ""
	}
	if _, ok := r.Lookup(id); ok {
		return ""
	}

	msg := fmt.Sprintf("%s: unknown value %q; falls back to %q", field, id, r.Default().String())
	if s, found := suggest(id, r.Strings()); found {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return msg
}

// suggest finds a candidate that differs from id only by case or by
// '-' versus '_'.
func suggest(id string, candidates []string) (string, bool) {
	norm := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	}
	want := norm(id)
	return lo.Find(candidates, func(c string) bool {
		return norm(c) == want
	})
}

// FileResult is the outcome of validating one config file.
type FileResult struct {
	Path     string
	Warnings []string
	Err      error
}

// ValidateFiles loads and validates each path, at most limit at a time.
// Results keep the input order. The returned error is only set when ctx
// is cancelled; per-file problems are reported in FileResult.Err.
func ValidateFiles(ctx context.Context, paths []string, limit int) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := FileResult{Path: path}
			cfg, err := Read(path)
			if err != nil {
				res.Err = err
			} else {
				res.Warnings, res.Err = Validate(cfg)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
