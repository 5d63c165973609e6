package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"skillgap/internal/types"
)

func sampleMatchOutput() types.MatchOutput {
	return types.MatchOutput{
		JobTitle: "Data Scientist",
		Analysis: types.MatchResult{
			JobFitScore:     51.2,
			Matching:        []string{"Python", "Machine Learning"},
			Missing:         []string{"Statistics"},
			Additional:      []string{"SQL"},
			SimilarityScore: 0.5586,
			Recommendations: []string{
				"Consider developing Statistics to strengthen fit for Data Scientist.",
				"Moderate match. Closing the 1 missing skill above would improve your fit.",
			},
		},
	}
}

func TestFormatJSON(t *testing.T) {
	registry := NewFormatterRegistry()

	out, err := registry.Format(sampleMatchOutput(), "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded types.MatchOutput
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Analysis.JobFitScore != 51.2 {
		t.Errorf("job_fit_score = %v, want 51.2", decoded.Analysis.JobFitScore)
	}
	for _, field := range []string{"job_fit_score", "matching", "missing", "additional", "similarity_score", "recommendations"} {
		if !strings.Contains(out, field) {
			t.Errorf("JSON output missing field %q", field)
		}
	}
}

func TestFormatMatchOutput(t *testing.T) {
	registry := NewFormatterRegistry()

	tests := []struct {
		format    string
		fragments []string
	}{
		{
			format:    "text",
			fragments: []string{"JOB FIT ANALYSIS", "Data Scientist", "51.2", "Missing: Statistics", "RECOMMENDATIONS"},
		},
		{
			format:    "markdown",
			fragments: []string{"# Job Fit Analysis", "**Fit Score:** 51.2/100", "### Missing", "- Statistics"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := registry.Format(sampleMatchOutput(), tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, fragment := range tt.fragments {
				if !strings.Contains(out, fragment) {
					t.Errorf("%s output missing %q\noutput:\n%s", tt.format, fragment, out)
				}
			}
		})
	}
}

func TestFormatBatchOutput(t *testing.T) {
	registry := NewFormatterRegistry()
	data := types.BatchOutput{
		TotalJobs: 2,
		Results: types.BatchResult{
			{JobTitle: "Data Analyst", MatchResult: types.MatchResult{JobFitScore: 72.4}},
			{JobTitle: "Data Scientist", MatchResult: types.MatchResult{JobFitScore: 51.2, Missing: []string{"Statistics"}}},
		},
	}

	out, err := registry.Format(data, "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, fragment := range []string{"# Job Comparison", "| 1 | Data Analyst | 72.4 |", "Statistics", "Best Match: Data Analyst"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("markdown output missing %q\noutput:\n%s", fragment, out)
		}
	}
}

func TestFormatSkillsOutput(t *testing.T) {
	registry := NewFormatterRegistry()
	data := types.SkillsOutput{Skills: []string{"Python", "SQL"}, Count: 2}

	out, err := registry.Format(data, "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Extracted 2 skills") || !strings.Contains(out, "- Python") {
		t.Errorf("unexpected text output:\n%s", out)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()

	if _, err := registry.Format(sampleMatchOutput(), "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
