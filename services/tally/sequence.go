package tally

import (
	"fmt"
	"strconv"
	"strings"
)

// Report numbers are "<prefix><suffix>" where the prefix encodes mode and
// vessel and the suffix is a zero-padded counter scoped to that prefix.
// There is no central counter: the next suffix comes from scanning the
// IDs already known, which stays cheap at per-vessel report volume.

// ReportPrefix builds the shared prefix for one (mode, vessel) pair.
func ReportPrefix(mode string, vesselID int64) string {
	return fmt.Sprintf("PB-%s-%d-", mode, vesselID)
}

// NextSequences assigns n report numbers after the highest suffix found
// in existing. IDs that do not carry the prefix, or whose suffix is not
// numeric, are ignored.
func NextSequences(existing []string, prefix string, n int) []string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		suffix := strings.TrimPrefix(id, prefix)
		v, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if v > max {
			max = v
		}
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = fmt.Sprintf("%s%02d", prefix, max+1+i)
	}
	return out
}
