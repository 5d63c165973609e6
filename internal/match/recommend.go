package match

import "fmt"

// bracketRule pairs a score predicate with its advisory message. The rules
// are evaluated top to bottom and the first match wins, so exactly one
// bracket message is emitted per analysis.
type bracketRule struct {
	applies func(score float64) bool
	message func(missing int) string
}

var bracketRules = []bracketRule{
	{
		applies: func(score float64) bool { return score >= 80 },
		message: func(int) string {
			return "Strong match. Your skill set aligns well with this role."
		},
	},
	{
		applies: func(score float64) bool { return score >= 40 },
		message: func(missing int) string {
			if missing == 1 {
				return "Moderate match. Closing the 1 missing skill above would improve your fit."
			}
			return fmt.Sprintf("Moderate match. Closing the %d missing skills above would improve your fit.", missing)
		},
	},
	{
		applies: func(float64) bool { return true },
		message: func(int) string {
			return "Low match. Broader upskilling in this role's core requirements is recommended."
		},
	},
}

// Recommend produces the advisory text for a match result: one suggestion
// per missing skill, in the missing list's order, followed by exactly one
// score-bracket message. Output is fully determined by its inputs.
func Recommend(jobTitle string, missing, matching []string, score float64) []string {
	recs := make([]string, 0, len(missing)+1)
	for _, skill := range missing {
		recs = append(recs, fmt.Sprintf("Consider developing %s to strengthen fit for %s.", skill, jobTitle))
	}
	for _, rule := range bracketRules {
		if rule.applies(score) {
			recs = append(recs, rule.message(len(missing)))
			break
		}
	}
	return recs
}
