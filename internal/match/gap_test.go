package match

import (
	"reflect"
	"testing"
)

func TestAnalyzeGap(t *testing.T) {
	tests := []struct {
		name       string
		resume     []string
		required   []string
		preferred  []string
		matching   []string
		missing    []string
		additional []string
	}{
		{
			name:       "partial overlap",
			resume:     []string{"Python", "Machine Learning", "SQL"},
			required:   []string{"Python", "Machine Learning", "Statistics"},
			preferred:  []string{"TensorFlow", "AWS"},
			matching:   []string{"Python", "Machine Learning"},
			missing:    []string{"Statistics"},
			additional: []string{"SQL"},
		},
		{
			name:       "no overlap",
			resume:     []string{"Java", "Spring"},
			required:   []string{"Python", "Django"},
			preferred:  []string{},
			matching:   []string{},
			missing:    []string{"Python", "Django"},
			additional: []string{"Java", "Spring"},
		},
		{
			name:       "full coverage",
			resume:     []string{"Python", "Django"},
			required:   []string{"Python", "Django"},
			preferred:  []string{},
			matching:   []string{"Python", "Django"},
			missing:    []string{},
			additional: []string{},
		},
		{
			name:       "preferred skills are not additional",
			resume:     []string{"Python", "TensorFlow", "Rust"},
			required:   []string{"Python"},
			preferred:  []string{"TensorFlow"},
			matching:   []string{"Python"},
			missing:    []string{},
			additional: []string{"Rust"},
		},
		{
			name:       "empty resume",
			resume:     []string{},
			required:   []string{"Python"},
			preferred:  []string{},
			matching:   []string{},
			missing:    []string{"Python"},
			additional: []string{},
		},
		{
			name:       "all inputs empty",
			resume:     []string{},
			required:   []string{},
			preferred:  []string{},
			matching:   []string{},
			missing:    []string{},
			additional: []string{},
		},
		{
			name:       "matching follows required order",
			resume:     []string{"SQL", "Python", "Go"},
			required:   []string{"Go", "Python"},
			preferred:  []string{},
			matching:   []string{"Go", "Python"},
			missing:    []string{},
			additional: []string{"SQL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeGap(tt.resume, tt.required, tt.preferred)
			if !reflect.DeepEqual(got.Matching, tt.matching) {
				t.Errorf("Matching = %v, want %v", got.Matching, tt.matching)
			}
			if !reflect.DeepEqual(got.Missing, tt.missing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.missing)
			}
			if !reflect.DeepEqual(got.Additional, tt.additional) {
				t.Errorf("Additional = %v, want %v", got.Additional, tt.additional)
			}
		})
	}
}

func TestAnalyzeGapCoversRequired(t *testing.T) {
	resume := []string{"Python", "SQL", "Docker", "Kubernetes"}
	required := []string{"Python", "Statistics", "Docker", "Terraform", "Go"}

	gap := AnalyzeGap(resume, required, nil)

	// Matching and missing must partition required exactly, in order
	combined := make(map[string]struct{}, len(required))
	for _, s := range gap.Matching {
		combined[s] = struct{}{}
	}
	for _, s := range gap.Missing {
		if _, dup := combined[s]; dup {
			t.Errorf("skill %q appears in both matching and missing", s)
		}
		combined[s] = struct{}{}
	}
	if len(combined) != len(required) {
		t.Fatalf("matching+missing cover %d skills, required has %d", len(combined), len(required))
	}
	for _, s := range required {
		if _, ok := combined[s]; !ok {
			t.Errorf("required skill %q missing from the partition", s)
		}
	}
}
