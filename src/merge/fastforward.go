package merge

// FastForwardMode controls whether a merge may just advance the branch
// pointer. The zero value is FastForward.
type FastForwardMode int

const (
	FastForward FastForwardMode = iota
	FastForwardOnly
	NoFastForward
)

var fastForwardModes = [...]struct {
	id   string
	flag string
}{
	FastForward:     {"FF", "--ff"},
	FastForwardOnly: {"FF_ONLY", "--ff-only"},
	NoFastForward:   {"NO_FF", "--no-ff"},
}

// FastForwardModes lists every known mode in declaration order.
// Unknown identifiers resolve to FastForward.
var FastForwardModes = NewRegistry(FastForward,
	FastForward,
	FastForwardOnly,
	NoFastForward,
)

// String returns the canonical identifier persisted in configuration.
func (m FastForwardMode) String() string {
	if m < 0 || int(m) >= len(fastForwardModes) {
		return fastForwardModes[FastForward].id
	}
	return fastForwardModes[m].id
}

// Name returns the constant name. For fast-forward modes it is the
// canonical identifier itself.
func (m FastForwardMode) Name() string {
	return m.String()
}

// Flag returns the git merge flag for this mode.
func (m FastForwardMode) Flag() string {
	if m < 0 || int(m) >= len(fastForwardModes) {
		return fastForwardModes[FastForward].flag
	}
	return fastForwardModes[m].flag
}
