package match

import "math"

// Weights of the three fit components. Fixed by design, not configurable
// per call, and they must sum to exactly 1.0.
const (
	requiredWeight   = 0.6
	preferredWeight  = 0.2
	similarityWeight = 0.2
)

func init() {
	if math.Abs(requiredWeight+preferredWeight+similarityWeight-1.0) > 1e-9 {
		panic("match: fit score weights must sum to 1.0")
	}
}

// Score combines exact-match ratios and textual similarity into the job fit
// score, rounded to one decimal and clamped into [0, 100]. An empty required
// or preferred list counts as fully satisfied (ratio 1.0): no requirement
// means nothing is unmet.
func Score(resume, required, preferred []string, similarity float64) float64 {
	requiredRatio := overlapRatio(resume, required)
	preferredRatio := overlapRatio(resume, preferred)

	score := 100 * (requiredWeight*requiredRatio + preferredWeight*preferredRatio + similarityWeight*similarity)
	score = math.Round(score*10) / 10
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// overlapRatio is the fraction of want covered by have, with an empty want
// defined as fully covered
func overlapRatio(have, want []string) float64 {
	if len(want) == 0 {
		return 1.0
	}
	set := toSet(have)
	hits := 0
	for _, skill := range want {
		if _, ok := set[skill]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(want))
}
