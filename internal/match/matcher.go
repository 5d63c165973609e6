package match

import (
	"context"
	"sort"
	"sync"

	"skillgap/internal/skills"
	"skillgap/internal/types"
)

// Matcher runs the full analysis pipeline: normalization, gap analysis,
// similarity, scoring, recommendations. The only shared state is the
// read-only normalizer, so a single Matcher is safe for concurrent use.
type Matcher struct {
	normalizer  *skills.Normalizer
	concurrency int
}

// NewMatcher builds a matcher around the given normalizer. concurrency
// bounds the number of jobs scored in parallel by CompareAll; values below
// one are raised to one.
func NewMatcher(normalizer *skills.Normalizer, concurrency int) *Matcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Matcher{normalizer: normalizer, concurrency: concurrency}
}

// Match scores one resume against one job requirement. Missing required or
// preferred lists are treated as empty, never as an error.
func (m *Matcher) Match(resume []string, job types.JobRequirement) types.MatchResult {
	res := m.normalizer.NormalizeAll(resume)
	req := m.normalizer.NormalizeAll(job.Required)
	pref := m.normalizer.NormalizeAll(job.Preferred)

	gap := AnalyzeGap(res, req, pref)
	similarity := Similarity(res, req)
	score := Score(res, req, pref, similarity)

	return types.MatchResult{
		JobFitScore:     score,
		Matching:        gap.Matching,
		Missing:         gap.Missing,
		Additional:      gap.Additional,
		SimilarityScore: similarity,
		Recommendations: Recommend(job.Title, gap.Missing, gap.Matching, score),
	}
}

// CompareAll scores the resume against every job and returns the results
// sorted by descending fit score, ties broken by ascending title. Jobs are
// scored independently across at most m.concurrency workers. Returns the
// context error if ctx is cancelled before all jobs are scheduled.
func (m *Matcher) CompareAll(ctx context.Context, resume []string, jobs []types.JobRequirement) (types.BatchResult, error) {
	results := make(types.BatchResult, len(jobs))
	sem := make(chan struct{}, m.concurrency)
	var wg sync.WaitGroup

	for i := range jobs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = types.BatchEntry{
				JobTitle:    jobs[i].Title,
				MatchResult: m.Match(resume, jobs[i]),
			}
		}(i)
	}
	wg.Wait()

	sort.Slice(results, func(a, b int) bool {
		if results[a].JobFitScore != results[b].JobFitScore {
			return results[a].JobFitScore > results[b].JobFitScore
		}
		return results[a].JobTitle < results[b].JobTitle
	})
	return results, nil
}
