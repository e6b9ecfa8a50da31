// Package gitref looks up a configured merge source in a local clone.
// It only reads what is already there: nothing is fetched, and a missing
// remote or ref is reported rather than treated as an error.
package gitref

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/sofmeright/premerge/src/merge"
)

// Report describes what a repository knows about a merge source.
type Report struct {
	Remote      string
	RefName     plumbing.ReferenceName
	RemoteFound bool
	URLs        []string
	Forge       Forge
	BranchURL   string
	RefFound    bool
	Hash        plumbing.Hash
}

// OK reports whether both the remote and its tracking ref exist.
func (r *Report) OK() bool {
	return r.RemoteFound && r.RefFound
}

// Check opens the repository containing dir and looks up opts there.
func Check(ctx context.Context, dir string, opts merge.Options) (*Report, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	return CheckRepository(ctx, repo, opts)
}

// CheckRepository looks up the remote and the remote-tracking ref
// refs/remotes/<remote>/<target> in repo.
func CheckRepository(ctx context.Context, repo *git.Repository, opts merge.Options) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		Remote:  opts.Remote(),
		RefName: plumbing.NewRemoteReferenceName(opts.Remote(), opts.Target()),
	}

	remote, err := repo.Remote(opts.Remote())
	switch {
	case err == nil:
		report.RemoteFound = true
		report.URLs = remote.Config().URLs
		report.Forge = Unknown
		if len(report.URLs) > 0 {
			report.Forge = DetectForge(report.URLs[0])
			report.BranchURL = BranchURL(report.URLs[0], opts.Target())
		}
	case errors.Is(err, git.ErrRemoteNotFound):
	default:
		return nil, fmt.Errorf("looking up remote %q: %w", opts.Remote(), err)
	}

	ref, err := repo.Reference(report.RefName, true)
	switch {
	case err == nil:
		report.RefFound = true
		report.Hash = ref.Hash()
	case errors.Is(err, plumbing.ErrReferenceNotFound):
	default:
		return nil, fmt.Errorf("resolving %s: %w", report.RefName, err)
	}

	return report, nil
}
