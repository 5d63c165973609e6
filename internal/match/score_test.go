package match

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		resume     []string
		required   []string
		preferred  []string
		similarity float64
		expected   float64
	}{
		{
			name:       "partial required no preferred overlap",
			resume:     []string{"Python", "Machine Learning", "SQL"},
			required:   []string{"Python", "Machine Learning", "Statistics"},
			preferred:  []string{"TensorFlow", "AWS"},
			similarity: 0,
			expected:   40.0,
		},
		{
			name:       "exact required match with empty preferred",
			resume:     []string{"Python", "Django"},
			required:   []string{"Python", "Django"},
			preferred:  []string{},
			similarity: 0,
			expected:   80.0,
		},
		{
			name:       "perfect match",
			resume:     []string{"Python"},
			required:   []string{"Python"},
			preferred:  []string{},
			similarity: 1.0,
			expected:   100.0,
		},
		{
			name:       "empty required counts as satisfied",
			resume:     []string{"Anything"},
			required:   []string{},
			preferred:  []string{},
			similarity: 0,
			expected:   80.0,
		},
		{
			name:       "empty required with empty resume",
			resume:     []string{},
			required:   []string{},
			preferred:  []string{},
			similarity: 0,
			expected:   80.0,
		},
		{
			name:       "no overlap at all",
			resume:     []string{"Java"},
			required:   []string{"Python"},
			preferred:  []string{"Django"},
			similarity: 0,
			expected:   0.0,
		},
		{
			name:       "rounds to one decimal",
			resume:     []string{"Go"},
			required:   []string{"Go", "Rust", "Zig"},
			preferred:  []string{},
			similarity: 0.123,
			expected:   42.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.resume, tt.required, tt.preferred, tt.similarity)
			if got != tt.expected {
				t.Errorf("Score = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	cases := [][]float64{{0}, {0.5}, {1}}
	resumes := [][]string{nil, {"Python"}, {"Python", "SQL", "Go"}}
	requireds := [][]string{nil, {"Python"}, {"Rust", "Zig"}}

	for _, sim := range cases {
		for _, resume := range resumes {
			for _, required := range requireds {
				got := Score(resume, required, nil, sim[0])
				if math.IsNaN(got) || got < 0 || got > 100 {
					t.Errorf("Score(%v, %v, nil, %v) = %v, out of [0,100]",
						resume, required, sim[0], got)
				}
			}
		}
	}
}

func TestOverlapRatio(t *testing.T) {
	tests := []struct {
		name     string
		have     []string
		want     []string
		expected float64
	}{
		{
			name:     "empty want is fully covered",
			have:     []string{"Python"},
			want:     []string{},
			expected: 1.0,
		},
		{
			name:     "two of three",
			have:     []string{"Python", "SQL"},
			want:     []string{"Python", "SQL", "Go"},
			expected: 2.0 / 3.0,
		},
		{
			name:     "nothing covered",
			have:     []string{},
			want:     []string{"Python"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlapRatio(tt.have, tt.want); got != tt.expected {
				t.Errorf("overlapRatio = %v, want %v", got, tt.expected)
			}
		})
	}
}
