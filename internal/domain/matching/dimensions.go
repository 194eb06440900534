package matching

import "strings"

// educationLadder in ascending order; free-text education fields are
// resolved to a rung by substring containment.
var educationLadder = []string{"high school", "associate", "bachelor", "master", "phd"}

// skillMatchScore rates one candidate proficiency against one required
// level on the shared 0-100 scale: min(p/r, 1), with a missing or zero
// proficiency scoring 0. Callers guarantee required > 0.
func skillMatchScore(proficiency, required int) float64 {
	if proficiency <= 0 {
		return 0
	}
	if required <= 0 {
		return 0
	}
	ratio := float64(proficiency) / float64(required)
	if ratio > 1 {
		return 1
	}
	return ratio
}

func educationScore(candidate, required string) float64 {
	required = strings.TrimSpace(required)
	if required == "" {
		return 1
	}

	candLower := strings.ToLower(strings.TrimSpace(candidate))
	reqLower := strings.ToLower(required)
	if candLower != "" && strings.Contains(candLower, reqLower) {
		return 1
	}

	candIdx := ladderIndex(candLower)
	reqIdx := ladderIndex(reqLower)
	if candIdx < 0 || reqIdx < 0 {
		return 0
	}
	if candIdx >= reqIdx {
		return 1
	}
	return float64(candIdx) / float64(reqIdx)
}

func ladderIndex(education string) int {
	for i, rung := range educationLadder {
		if strings.Contains(education, rung) {
			return i
		}
	}
	return -1
}

func experienceScore(candidateYears, requiredYears float64) float64 {
	if requiredYears <= 0 || candidateYears >= requiredYears {
		return 1
	}
	if candidateYears > 0 {
		return candidateYears / requiredYears
	}
	return 0
}

func locationScore(cand CandidateProfile, listing ListingProfile) float64 {
	if cand.RemoteOK && listing.Remote {
		return 1
	}
	pref := strings.ToLower(strings.TrimSpace(cand.LocationPreference))
	if pref == "" {
		// No stated preference is neutral, not a mismatch.
		return 0.5
	}
	if strings.Contains(strings.ToLower(listing.Location), pref) {
		return 1
	}
	return 0
}

func compensationScore(minimum, offered float64) float64 {
	if minimum <= 0 || offered >= minimum {
		return 1
	}
	if offered <= 0 {
		return 0
	}
	return offered / minimum
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
