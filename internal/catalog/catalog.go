package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"skillgap/internal/errors"
	"skillgap/internal/types"
)

// Catalog is a read-only collection of job requirements, used as the
// default job set for batch comparison and the /jobs endpoint.
type Catalog struct {
	jobs []types.JobRequirement
}

// Load reads a catalog from a JSON file holding an array of job
// requirement records. Titles must be present and unique; missing required
// or preferred lists are normalized to empty collections.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIOError(errors.ErrCodeFileNotFound,
				"catalog file does not exist", err).WithContext("path", path)
		}
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			"failed to read catalog file", err).WithContext("path", path)
	}

	var jobs []types.JobRequirement
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, errors.NewCatalogError(errors.ErrCodeInvalidCatalog,
			"catalog file is not a valid job requirement array", err).WithContext("path", path)
	}
	return New(jobs)
}

// New builds a catalog from the given jobs, validating titles and
// normalizing absent skill lists to empty ones.
func New(jobs []types.JobRequirement) (*Catalog, error) {
	seen := make(map[string]struct{}, len(jobs))
	normalized := make([]types.JobRequirement, 0, len(jobs))
	for i, job := range jobs {
		title := strings.TrimSpace(job.Title)
		if title == "" {
			return nil, errors.NewCatalogError(errors.ErrCodeInvalidCatalog,
				"catalog entry has an empty title", nil).WithContext("index", i)
		}
		key := strings.ToLower(title)
		if _, dup := seen[key]; dup {
			return nil, errors.NewCatalogError(errors.ErrCodeInvalidCatalog,
				"catalog entry has a duplicate title", nil).WithContext("title", title)
		}
		seen[key] = struct{}{}

		if job.Required == nil {
			job.Required = []string{}
		}
		if job.Preferred == nil {
			job.Preferred = []string{}
		}
		job.Title = title
		normalized = append(normalized, job)
	}
	return &Catalog{jobs: normalized}, nil
}

// Jobs returns a copy of the catalog entries in their original order
func (c *Catalog) Jobs() []types.JobRequirement {
	jobs := make([]types.JobRequirement, len(c.jobs))
	copy(jobs, c.jobs)
	return jobs
}

// Find looks up one job by title, case-insensitively
func (c *Catalog) Find(title string) (types.JobRequirement, bool) {
	for _, job := range c.jobs {
		if strings.EqualFold(job.Title, title) {
			return job, true
		}
	}
	return types.JobRequirement{}, false
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.jobs)
}
