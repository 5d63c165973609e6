package match

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		min  float64
		max  float64
	}{
		{
			name: "identical collections",
			a:    []string{"Python", "Machine Learning", "SQL"},
			b:    []string{"Python", "Machine Learning", "SQL"},
			min:  0.9999,
			max:  1.0,
		},
		{
			name: "partial overlap",
			a:    []string{"Python", "Machine Learning", "SQL"},
			b:    []string{"Python", "Machine Learning", "Statistics"},
			min:  0.5581,
			max:  0.5591,
		},
		{
			name: "no shared vocabulary",
			a:    []string{"Python", "Django"},
			b:    []string{"Java", "Spring"},
			min:  0,
			max:  0,
		},
		{
			name: "first collection empty",
			a:    []string{},
			b:    []string{"Python"},
			min:  0,
			max:  0,
		},
		{
			name: "second collection empty",
			a:    []string{"Python"},
			b:    []string{},
			min:  0,
			max:  0,
		},
		{
			name: "both collections empty",
			a:    []string{},
			b:    []string{},
			min:  0,
			max:  0,
		},
		{
			name: "shared phrase scores above zero",
			a:    []string{"Machine Learning"},
			b:    []string{"Machine Learning", "Deep Learning"},
			min:  0.3,
			max:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Similarity = %v, want finite", got)
			}
			if got < 0 || got > 1 {
				t.Fatalf("Similarity = %v, out of [0,1]", got)
			}
			if got < tt.min || got > tt.max {
				t.Errorf("Similarity = %v, want in [%v, %v]", got, tt.min, tt.max)
			}
		})
	}
}

func TestSimilarityDeterministic(t *testing.T) {
	a := []string{"Python", "Machine Learning", "SQL", "Docker", "Kubernetes"}
	b := []string{"Python", "Deep Learning", "Statistics", "Docker"}

	first := Similarity(a, b)
	for i := 0; i < 100; i++ {
		if got := Similarity(a, b); got != first {
			t.Fatalf("call %d returned %v, first call returned %v", i, got, first)
		}
	}
}

func TestSimilarityNoVocabularyLeak(t *testing.T) {
	a := []string{"Python", "SQL"}
	b := []string{"Python", "Statistics"}

	before := Similarity(a, b)
	// An unrelated comparison with a very different vocabulary must not
	// influence a later one
	Similarity([]string{"Haskell", "Prolog", "Erlang"}, []string{"COBOL", "Fortran"})
	after := Similarity(a, b)

	if before != after {
		t.Errorf("similarity changed across unrelated comparisons: %v then %v", before, after)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := []string{"Python", "Machine Learning"}
	b := []string{"Python", "Statistics", "SQL"}

	if ab, ba := Similarity(a, b), Similarity(b, a); ab != ba {
		t.Errorf("Similarity(a,b) = %v, Similarity(b,a) = %v", ab, ba)
	}
}

func BenchmarkSimilarity(b *testing.B) {
	x := []string{"Python", "Machine Learning", "SQL", "Docker", "Kubernetes", "AWS"}
	y := []string{"Python", "Deep Learning", "Statistics", "Docker", "Terraform"}

	for b.Loop() {
		Similarity(x, y)
	}
}
