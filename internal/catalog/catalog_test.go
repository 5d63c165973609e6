package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skillgap/internal/errors"
	"skillgap/internal/types"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()

	if c.Len() != 5 {
		t.Fatalf("built-in catalog has %d roles, want 5", c.Len())
	}
	for _, job := range c.Jobs() {
		if job.Title == "" {
			t.Error("built-in job has empty title")
		}
		if len(job.Required) == 0 {
			t.Errorf("built-in job %q has no required skills", job.Title)
		}
	}

	job, ok := c.Find("data scientist")
	if !ok {
		t.Fatal("Find(data scientist) not found, lookup should be case-insensitive")
	}
	if job.Title != "Data Scientist" {
		t.Errorf("Find returned title %q, want Data Scientist", job.Title)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		jobs          []types.JobRequirement
		expectError   bool
		expectedError string
	}{
		{
			name: "valid jobs",
			jobs: []types.JobRequirement{
				{Title: "Role A", Required: []string{"Go"}},
				{Title: "Role B", Required: []string{"Python"}},
			},
		},
		{
			name: "empty catalog is valid",
			jobs: []types.JobRequirement{},
		},
		{
			name: "empty title rejected",
			jobs: []types.JobRequirement{
				{Title: "  ", Required: []string{"Go"}},
			},
			expectError:   true,
			expectedError: "empty title",
		},
		{
			name: "duplicate title rejected",
			jobs: []types.JobRequirement{
				{Title: "Role A"},
				{Title: "role a"},
			},
			expectError:   true,
			expectedError: "duplicate title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.jobs)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Len() != len(tt.jobs) {
				t.Errorf("catalog has %d jobs, want %d", c.Len(), len(tt.jobs))
			}
		})
	}
}

func TestNewNormalizesNilLists(t *testing.T) {
	c, err := New([]types.JobRequirement{{Title: "Role"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	job, _ := c.Find("Role")
	if job.Required == nil || job.Preferred == nil {
		t.Error("nil skill lists should be normalized to empty collections")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.json")
		content := `[
			{"title": "Platform Engineer", "required": ["Go", "Kubernetes"], "preferred": ["Terraform"]},
			{"title": "Data Engineer", "required": ["Python", "SQL"]}
		]`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		c, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Len() != 2 {
			t.Fatalf("loaded %d jobs, want 2", c.Len())
		}
		job, ok := c.Find("Data Engineer")
		if !ok {
			t.Fatal("Data Engineer not found")
		}
		if job.Preferred == nil {
			t.Error("absent preferred list should be an empty collection")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		appErr, ok := err.(*errors.AppError)
		if !ok || appErr.Code != errors.ErrCodeFileNotFound {
			t.Errorf("err = %v, want FILE_NOT_FOUND AppError", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte(`{"not": "an array"}`), 0600); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error for malformed catalog")
		}
		appErr, ok := err.(*errors.AppError)
		if !ok || appErr.Code != errors.ErrCodeInvalidCatalog {
			t.Errorf("err = %v, want INVALID_CATALOG AppError", err)
		}
	})
}

func TestJobsReturnsCopy(t *testing.T) {
	c := Builtin()
	jobs := c.Jobs()
	jobs[0].Title = "Mutated"

	if job := c.Jobs()[0]; job.Title == "Mutated" {
		t.Error("Jobs() must return a copy, catalog was mutated")
	}
}
