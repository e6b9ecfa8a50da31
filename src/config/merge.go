package config

import (
	"fmt"

	"github.com/sofmeright/premerge/src/merge"
)

// MergeConfig is the persisted form of merge.Options. Only the raw
// identifiers are stored, never resolved values, so files stay readable
// when strategies or fast-forward modes are added or retired.
type MergeConfig struct {
	Remote          string `yaml:"remote" toml:"remote"`
	Target          string `yaml:"target" toml:"target"`
	Strategy        string `yaml:"strategy" toml:"strategy"`
	FastForwardMode string `yaml:"fast_forward_mode" toml:"fast_forward_mode"`
}

// DefaultMergeConfig returns an empty merge block: no pre-build merge.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{}
}

// Enabled reports whether a merge source is configured at all.
func (m MergeConfig) Enabled() bool {
	return m.Remote != "" || m.Target != ""
}

// Options builds the merge options this block describes.
func (m MergeConfig) Options() merge.Options {
	return merge.New(m.Remote, m.Target, m.Strategy, m.FastForwardMode)
}

// MergeConfigFrom is the inverse of MergeConfig.Options.
func MergeConfigFrom(o merge.Options) MergeConfig {
	return MergeConfig{
		Remote:          o.Remote(),
		Target:          o.Target(),
		Strategy:        o.RawStrategy(),
		FastForwardMode: o.RawFastForwardMode(),
	}
}

// PreBuildMergeConfig is the version 1 merge block. Files older than
// fast-forward selection omit fast_forward_mode entirely.
type PreBuildMergeConfig struct {
	RemoteName  string  `yaml:"remote_branch_name" toml:"remote_branch_name"`
	Target      string  `yaml:"merge_target" toml:"merge_target"`
	Strategy    string  `yaml:"merge_strategy" toml:"merge_strategy"`
	FastForward *string `yaml:"fast_forward_mode,omitempty" toml:"fast_forward_mode,omitempty"`
}

var _ merge.Legacy = PreBuildMergeConfig{}

// identifier passes a persisted identifier through as-is.
type identifier string

func (i identifier) String() string { return string(i) }

func (p PreBuildMergeConfig) RemoteBranchName() string { return p.RemoteName }

func (p PreBuildMergeConfig) MergeTarget() string { return p.Target }

func (p PreBuildMergeConfig) MergeStrategy() fmt.Stringer { return identifier(p.Strategy) }

func (p PreBuildMergeConfig) FastForwardMode() fmt.Stringer {
	if p.FastForward == nil {
		return nil
	}
	return identifier(*p.FastForward)
}

// Options upgrades the block. Without a fast-forward mode the pre-selection
// default applies.
func (p PreBuildMergeConfig) Options() merge.Options {
	if p.FastForward == nil {
		return merge.NewLegacy(p.RemoteName, p.Target, p.Strategy)
	}
	return merge.FromLegacy(p)
}
