package mutation

import "strings"

// Mode selects between merging claims and splitting a claim
type Mode int

const (
	ModeSplit Mode = iota
	ModeMerge
)

// ParseMode maps a request parameter to a Mode.
// Only "merge" (any case) selects ModeMerge; everything else, including "", is ModeSplit.
func ParseMode(raw string) Mode {
	if strings.EqualFold(strings.TrimSpace(raw), "merge") {
		return ModeMerge
	}
	return ModeSplit
}

func (m Mode) String() string {
	if m == ModeMerge {
		return "merge"
	}
	return "split"
}
