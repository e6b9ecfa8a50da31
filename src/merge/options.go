// Package merge describes which ref to merge into the commit being built
// and how. Strategy and fast-forward identifiers are stored as raw strings
// and resolved on read, so a configuration written by any version of the
// tool stays readable: identifiers the running version does not know fall
// back to StrategyDefault and FastForward instead of failing.
package merge

import "fmt"

// Options is the user-supplied merge configuration. It is immutable once
// constructed and safe to share between goroutines.
type Options struct {
	remote          string
	target          string
	strategy        string
	fastForwardMode string
}

// Legacy is the accessor surface of the older pre-build merge
// configuration that Options replaces.
type Legacy interface {
	RemoteBranchName() string
	MergeTarget() string
	MergeStrategy() fmt.Stringer
	FastForwardMode() fmt.Stringer
}

// New stores all four identifiers verbatim. Nothing is validated here;
// unknown strategy or fast-forward identifiers resolve to defaults on read.
func New(remote, target, strategy, fastForwardMode string) Options {
	return Options{
		remote:          remote,
		target:          target,
		strategy:        strategy,
		fastForwardMode: fastForwardMode,
	}
}

// NewLegacy builds Options for configuration written before fast-forward
// selection existed. The mode is FastForward.
//
// Deprecated: use New and pass the fast-forward mode explicitly.
func NewLegacy(remote, target, strategy string) Options {
	return New(remote, target, strategy, FastForward.String())
}

// FromLegacy upgrades an older pre-build merge configuration. A nil
// strategy or mode is copied as an empty identifier.
func FromLegacy(l Legacy) Options {
	return New(l.RemoteBranchName(), l.MergeTarget(), stringOf(l.MergeStrategy()), stringOf(l.FastForwardMode()))
}

func stringOf(s fmt.Stringer) string {
	if s == nil {
		return ""
	}
	return s.String()
}

// Remote is the name of the remote the merge source lives in, e.g. "origin".
func (o Options) Remote() string {
	return o.remote
}

// Target is the ref within Remote that is merged, normally a branch name.
func (o Options) Target() string {
	return o.target
}

// Ref joins Remote and Target with a single slash. The result is not
// checked for being a well-formed ref.
func (o Options) Ref() string {
	return o.remote + "/" + o.target
}

// Strategy resolves the stored strategy identifier.
func (o Options) Strategy() Strategy {
	return Strategies.Resolve(o.strategy)
}

// FastForwardMode resolves the stored fast-forward identifier.
func (o Options) FastForwardMode() FastForwardMode {
	return FastForwardModes.Resolve(o.fastForwardMode)
}

// RawStrategy returns the strategy identifier exactly as stored.
func (o Options) RawStrategy() string {
	return o.strategy
}

// RawFastForwardMode returns the fast-forward identifier exactly as stored.
func (o Options) RawFastForwardMode() string {
	return o.fastForwardMode
}

// MergeArgs returns the git merge arguments these options describe:
// strategy selection, fast-forward flag and the ref to merge.
func (o Options) MergeArgs() []string {
	args := o.Strategy().Args()
	args = append(args, o.FastForwardMode().Flag(), o.Ref())
	return args
}

// String summarizes the resolved values, not the raw identifiers, so the
// output shows what any defaulting decided.
func (o Options) String() string {
	return fmt.Sprintf("strategy: %s, fastForwardMode: %s", o.Strategy().Name(), o.FastForwardMode().Name())
}
