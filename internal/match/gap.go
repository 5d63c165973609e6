package match

// Gap is the three-way partition of a resume's skills against a job's
// requirements. Matching and Missing together cover the required list
// exactly; Additional holds resume skills named by neither the required nor
// the preferred list.
type Gap struct {
	Matching   []string
	Missing    []string
	Additional []string
}

// AnalyzeGap partitions normalized skill collections. Matching and Missing
// are emitted in the required list's order, Additional in the resume's
// order. All three slices are non-nil even when empty.
func AnalyzeGap(resume, required, preferred []string) Gap {
	have := toSet(resume)
	gap := Gap{
		Matching:   make([]string, 0, len(required)),
		Missing:    make([]string, 0, len(required)),
		Additional: make([]string, 0, len(resume)),
	}
	for _, skill := range required {
		if _, ok := have[skill]; ok {
			gap.Matching = append(gap.Matching, skill)
		} else {
			gap.Missing = append(gap.Missing, skill)
		}
	}

	wanted := toSet(required)
	for _, skill := range preferred {
		wanted[skill] = struct{}{}
	}
	for _, skill := range resume {
		if _, ok := wanted[skill]; !ok {
			gap.Additional = append(gap.Additional, skill)
		}
	}
	return gap
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}
