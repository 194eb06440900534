package matching

import (
	"sort"

	"github.com/google/uuid"
)

// RankedMatch pairs one scored candidate with its identity for display.
type RankedMatch struct {
	CandidateID   uuid.UUID
	CandidateName string
	Result        Result
}

// Rank sorts matches descending by overall score and truncates to
// limit. The sort is stable, so candidates with equal scores keep
// their input order and repeated calls on the same data produce
// identical output. A limit <= 0 is rejected upstream; here it means
// no truncation.
func Rank(matches []RankedMatch, limit int) []RankedMatch {
	out := make([]RankedMatch, len(matches))
	copy(out, matches)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Score > out[j].Result.Score
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
