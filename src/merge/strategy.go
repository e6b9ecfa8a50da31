package merge

import "strings"

// Strategy is a git merge strategy. The zero value is StrategyDefault.
type Strategy int

const (
	StrategyDefault Strategy = iota
	StrategyResolve
	StrategyRecursive
	StrategyOctopus
	StrategyOurs
	StrategySubtree
	StrategyRecursiveTheirs
)

var strategyNames = [...]string{
	StrategyDefault:         "default",
	StrategyResolve:         "resolve",
	StrategyRecursive:       "recursive",
	StrategyOctopus:         "octopus",
	StrategyOurs:            "ours",
	StrategySubtree:         "subtree",
	StrategyRecursiveTheirs: "recursive_theirs",
}

// Strategies lists every known strategy in declaration order.
// Unknown identifiers resolve to StrategyDefault.
var Strategies = NewRegistry(StrategyDefault,
	StrategyDefault,
	StrategyResolve,
	StrategyRecursive,
	StrategyOctopus,
	StrategyOurs,
	StrategySubtree,
	StrategyRecursiveTheirs,
)

// String returns the canonical identifier persisted in configuration.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return strategyNames[StrategyDefault]
	}
	return strategyNames[s]
}

// Name returns the upper-case constant name, e.g. "RECURSIVE_THEIRS".
func (s Strategy) Name() string {
	return strings.ToUpper(s.String())
}

// Args returns the git merge arguments that select this strategy.
// The default strategy adds nothing and leaves the choice to git.
func (s Strategy) Args() []string {
	switch s {
	case StrategyRecursiveTheirs:
		return []string{"-s", "recursive", "-X", "theirs"}
	case StrategyResolve, StrategyRecursive, StrategyOctopus, StrategyOurs, StrategySubtree:
		return []string{"-s", s.String()}
	default:
		return nil
	}
}
