package types

// JobRequirement represents one job's skill requirements
type JobRequirement struct {
	Title     string   `json:"title"`
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// MatchResult represents the outcome of matching a resume against one job.
// Field names and value ranges are part of the wire contract: job_fit_score
// is in [0,100], similarity_score in [0,1], and the three skill lists are
// always arrays, never null.
type MatchResult struct {
	JobFitScore     float64  `json:"job_fit_score"`
	Matching        []string `json:"matching"`
	Missing         []string `json:"missing"`
	Additional      []string `json:"additional"`
	SimilarityScore float64  `json:"similarity_score"`
	Recommendations []string `json:"recommendations"`
}

// BatchEntry pairs a job title with its match result
type BatchEntry struct {
	JobTitle string `json:"job_title"`
	MatchResult
}

// BatchResult is the per-job results of a multi-job comparison, sorted by
// descending job_fit_score with ties broken by ascending job_title
type BatchResult []BatchEntry

// MatchInput represents the input for a single-job match
type MatchInput struct {
	ResumeSkills   []string       `json:"resumeSkills"`
	JobRequirement JobRequirement `json:"jobRequirement"`
}

// BatchInput represents the input for a multi-job comparison
type BatchInput struct {
	ResumeSkills []string         `json:"resumeSkills"`
	Jobs         []JobRequirement `json:"jobs"`
}

// MatchOutput represents the output of a single-job match
type MatchOutput struct {
	JobTitle string      `json:"jobTitle"`
	Analysis MatchResult `json:"analysis"`
}

// BatchOutput represents the output of a multi-job comparison
type BatchOutput struct {
	TotalJobs int         `json:"totalJobs"`
	Results   BatchResult `json:"results"`
}

// SkillsInput represents the input for skill extraction/normalization
type SkillsInput struct {
	Text string `json:"text"`
}

// SkillsOutput represents the canonical skills extracted from free text
type SkillsOutput struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}
