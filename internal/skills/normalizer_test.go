package skills

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{
			name:     "synonym expansion - js",
			raw:      "js",
			expected: "JavaScript",
			ok:       true,
		},
		{
			name:     "synonym expansion - ml",
			raw:      "ml",
			expected: "Machine Learning",
			ok:       true,
		},
		{
			name:     "synonym is case insensitive",
			raw:      "K8S",
			expected: "Kubernetes",
			ok:       true,
		},
		{
			name:     "known casing - sql",
			raw:      "sql",
			expected: "SQL",
			ok:       true,
		},
		{
			name:     "known casing - node.js",
			raw:      "NODE.JS",
			expected: "Node.js",
			ok:       true,
		},
		{
			name:     "unknown single word gets title case",
			raw:      "python",
			expected: "Python",
			ok:       true,
		},
		{
			name:     "unknown multi word gets title case",
			raw:      "data engineering",
			expected: "Data Engineering",
			ok:       true,
		},
		{
			name:     "whitespace trimmed and collapsed",
			raw:      "  machine   learning  ",
			expected: "Machine Learning",
			ok:       true,
		},
		{
			name:     "trailing punctuation stripped",
			raw:      "Statistics.",
			expected: "Statistics",
			ok:       true,
		},
		{
			name:     "plus signs survive",
			raw:      "c++",
			expected: "C++",
			ok:       true,
		},
		{
			name:     "sharp survives",
			raw:      "c#",
			expected: "C#",
			ok:       true,
		},
		{
			name: "empty input yields nothing",
			raw:  "",
			ok:   false,
		},
		{
			name: "whitespace only yields nothing",
			raw:  "   ",
			ok:   false,
		},
		{
			name: "punctuation only yields nothing",
			raw:  "...!!",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Normalize(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	inputs := []string{
		"js", "ML", "python", "Node.JS", "data engineering",
		"SQL", "rest", "scikit-learn", "c++", "CI/CD",
	}

	for _, raw := range inputs {
		once, ok := n.Normalize(raw)
		if !ok {
			t.Fatalf("Normalize(%q) unexpectedly produced nothing", raw)
		}
		twice, ok := n.Normalize(once)
		if !ok {
			t.Fatalf("Normalize(%q) unexpectedly produced nothing", once)
		}
		if once != twice {
			t.Errorf("normalization not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	tests := []struct {
		name     string
		raw      []string
		expected []string
	}{
		{
			name:     "dedup preserves first-seen order",
			raw:      []string{"Python", "js", "JAVASCRIPT", "python", "SQL"},
			expected: []string{"Python", "JavaScript", "SQL"},
		},
		{
			name:     "empty entries dropped",
			raw:      []string{"", "  ", "Go", "..."},
			expected: []string{"Go"},
		},
		{
			name:     "nil input yields empty collection",
			raw:      nil,
			expected: []string{},
		},
		{
			name:     "synonyms collapse to one token",
			raw:      []string{"ml", "machine learning"},
			expected: []string{"Machine Learning"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.NormalizeAll(tt.raw)
			if got == nil {
				t.Fatal("NormalizeAll returned nil, want non-nil collection")
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NormalizeAll(%v) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestExtractFromText(t *testing.T) {
	n := NewNormalizer(DefaultTable())

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "comma separated",
			text:     "Python, SQL, machine learning",
			expected: []string{"Python", "SQL", "Machine Learning"},
		},
		{
			name:     "mixed delimiters",
			text:     "Docker; Kubernetes | Terraform\nAnsible",
			expected: []string{"Docker", "Kubernetes", "Terraform", "Ansible"},
		},
		{
			name:     "bullet points",
			text:     "• Python • Go • Rust",
			expected: []string{"Python", "Go", "Rust"},
		},
		{
			name:     "single character fragments dropped",
			text:     "R, Python",
			expected: []string{"Python"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.ExtractFromText(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractFromText(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestMergeTable(t *testing.T) {
	table := DefaultTable().Merge(map[string]string{
		"rdbms": "Relational Database",
		"oss":   "Open Source",
	})
	n := NewNormalizer(table)

	got, ok := n.Normalize("RDBMS")
	if !ok || got != "Relational Database" {
		t.Errorf("Normalize(RDBMS) = %q, %v; want Relational Database", got, ok)
	}

	// Built-in entries must survive the merge
	got, ok = n.Normalize("js")
	if !ok || got != "JavaScript" {
		t.Errorf("Normalize(js) = %q, %v; want JavaScript", got, ok)
	}

	// Merged canonical forms stay idempotent
	got, ok = n.Normalize("Relational Database")
	if !ok || got != "Relational Database" {
		t.Errorf("merged canonical not idempotent: got %q, %v", got, ok)
	}
}

func BenchmarkNormalizeAll(b *testing.B) {
	n := NewNormalizer(DefaultTable())
	raw := []string{"Python", "js", "machine learning", "SQL", "docker", "k8s", "aws"}

	for b.Loop() {
		n.NormalizeAll(raw)
	}
}
