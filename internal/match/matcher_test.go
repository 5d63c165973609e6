package match

import (
	"context"
	"math"
	"reflect"
	"testing"

	"skillgap/internal/skills"
	"skillgap/internal/types"
)

func newTestMatcher(concurrency int) *Matcher {
	return NewMatcher(skills.NewNormalizer(skills.DefaultTable()), concurrency)
}

func TestMatch(t *testing.T) {
	m := newTestMatcher(1)

	t.Run("partial overlap with synonyms", func(t *testing.T) {
		got := m.Match(
			[]string{"python", "ml", "SQL"},
			types.JobRequirement{
				Title:     "Data Scientist",
				Required:  []string{"Python", "Machine Learning", "Statistics"},
				Preferred: []string{"tf", "aws"},
			},
		)

		if !reflect.DeepEqual(got.Matching, []string{"Python", "Machine Learning"}) {
			t.Errorf("Matching = %v", got.Matching)
		}
		if !reflect.DeepEqual(got.Missing, []string{"Statistics"}) {
			t.Errorf("Missing = %v", got.Missing)
		}
		if !reflect.DeepEqual(got.Additional, []string{"SQL"}) {
			t.Errorf("Additional = %v", got.Additional)
		}
		if math.Abs(got.SimilarityScore-0.5586) > 0.0005 {
			t.Errorf("SimilarityScore = %v, want ~0.5586", got.SimilarityScore)
		}
		if got.JobFitScore != 51.2 {
			t.Errorf("JobFitScore = %v, want 51.2", got.JobFitScore)
		}
		want := []string{
			"Consider developing Statistics to strengthen fit for Data Scientist.",
			"Moderate match. Closing the 1 missing skill above would improve your fit.",
		}
		if !reflect.DeepEqual(got.Recommendations, want) {
			t.Errorf("Recommendations = %v, want %v", got.Recommendations, want)
		}
	})

	t.Run("no shared skills", func(t *testing.T) {
		got := m.Match(
			[]string{"Java", "Spring"},
			types.JobRequirement{
				Title:    "Python Developer",
				Required: []string{"Python", "Django"},
			},
		)

		if got.SimilarityScore != 0 {
			t.Errorf("SimilarityScore = %v, want 0", got.SimilarityScore)
		}
		if len(got.Matching) != 0 {
			t.Errorf("Matching = %v, want empty", got.Matching)
		}
		if !reflect.DeepEqual(got.Missing, []string{"Python", "Django"}) {
			t.Errorf("Missing = %v", got.Missing)
		}
		if !reflect.DeepEqual(got.Additional, []string{"Java", "Spring"}) {
			t.Errorf("Additional = %v", got.Additional)
		}
	})

	t.Run("missing job lists treated as empty", func(t *testing.T) {
		got := m.Match([]string{"Python"}, types.JobRequirement{Title: "Open Role"})

		// Required and preferred both empty: both ratios default to 1.0
		if got.JobFitScore < 80 {
			t.Errorf("JobFitScore = %v, want >= 80", got.JobFitScore)
		}
		if got.Matching == nil || got.Missing == nil || got.Additional == nil {
			t.Error("gap collections must be non-nil")
		}
	})

	t.Run("empty resume", func(t *testing.T) {
		got := m.Match(nil, types.JobRequirement{
			Title:    "Data Scientist",
			Required: []string{"Python"},
		})

		if got.JobFitScore < 0 || got.JobFitScore > 100 {
			t.Errorf("JobFitScore = %v, out of bounds", got.JobFitScore)
		}
		if !reflect.DeepEqual(got.Missing, []string{"Python"}) {
			t.Errorf("Missing = %v", got.Missing)
		}
	})
}

func TestCompareAll(t *testing.T) {
	m := newTestMatcher(4)
	resume := []string{"Python", "Machine Learning", "SQL"}

	jobs := []types.JobRequirement{
		{Title: "Unrelated Role", Required: []string{"Welding", "Plumbing"}},
		{Title: "Data Scientist", Required: []string{"Python", "Machine Learning", "Statistics"}},
		{Title: "Data Analyst", Required: []string{"Python", "SQL"}},
	}

	got, err := m.CompareAll(context.Background(), resume, jobs)
	if err != nil {
		t.Fatalf("CompareAll returned error: %v", err)
	}
	if len(got) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(got), len(jobs))
	}

	for i := 1; i < len(got); i++ {
		if got[i].JobFitScore > got[i-1].JobFitScore {
			t.Errorf("results not sorted descending: %v after %v",
				got[i].JobFitScore, got[i-1].JobFitScore)
		}
	}
	if got[0].JobTitle != "Data Analyst" {
		t.Errorf("best match = %q, want Data Analyst", got[0].JobTitle)
	}
	if got[len(got)-1].JobTitle != "Unrelated Role" {
		t.Errorf("worst match = %q, want Unrelated Role", got[len(got)-1].JobTitle)
	}
}

func TestCompareAllTieBreak(t *testing.T) {
	m := newTestMatcher(2)
	resume := []string{"Python"}

	// Identical requirements give identical scores, so ordering falls back
	// to the title
	jobs := []types.JobRequirement{
		{Title: "Zebra Role", Required: []string{"Python"}},
		{Title: "Alpha Role", Required: []string{"Python"}},
		{Title: "Middle Role", Required: []string{"Python"}},
	}

	got, err := m.CompareAll(context.Background(), resume, jobs)
	if err != nil {
		t.Fatalf("CompareAll returned error: %v", err)
	}

	titles := make([]string, len(got))
	for i, entry := range got {
		titles[i] = entry.JobTitle
	}
	want := []string{"Alpha Role", "Middle Role", "Zebra Role"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("tie-break order = %v, want %v", titles, want)
	}
}

func TestCompareAllEmptyJobs(t *testing.T) {
	m := newTestMatcher(2)

	got, err := m.CompareAll(context.Background(), []string{"Python"}, nil)
	if err != nil {
		t.Fatalf("CompareAll returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil result", got)
	}
}

func TestCompareAllCancelledContext(t *testing.T) {
	m := newTestMatcher(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.CompareAll(ctx, []string{"Python"}, []types.JobRequirement{
		{Title: "Role", Required: []string{"Python"}},
	})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCompareAllManyJobs(t *testing.T) {
	m := newTestMatcher(8)
	resume := []string{"Python", "SQL", "Docker"}

	jobs := make([]types.JobRequirement, 50)
	for i := range jobs {
		jobs[i] = types.JobRequirement{
			Title:    string(rune('A'+i%26)) + " Role",
			Required: []string{"Python", "Go"},
		}
	}

	got, err := m.CompareAll(context.Background(), resume, jobs)
	if err != nil {
		t.Fatalf("CompareAll returned error: %v", err)
	}
	if len(got) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(got), len(jobs))
	}
	for i, entry := range got {
		if entry.JobTitle == "" {
			t.Fatalf("result %d has empty title, worker never filled it", i)
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	m := newTestMatcher(1)
	resume := []string{"Python", "Machine Learning", "SQL", "Docker", "AWS"}
	job := types.JobRequirement{
		Title:     "Data Scientist",
		Required:  []string{"Python", "Machine Learning", "Statistics"},
		Preferred: []string{"TensorFlow", "AWS"},
	}

	for b.Loop() {
		m.Match(resume, job)
	}
}
