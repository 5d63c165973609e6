package skills

// Table holds the vocabulary used for canonicalization. Synonyms maps a
// lowercase alias to the canonical display form of a skill; Casing maps the
// lowercase spelling of a canonical skill to its display form, for skills
// whose casing is not plain title case. A Table is read-only once handed to
// a Normalizer.
type Table struct {
	Synonyms map[string]string
	Casing   map[string]string
}

// DefaultTable returns the built-in skill vocabulary
func DefaultTable() Table {
	return Table{
		Synonyms: map[string]string{
			"js":       "JavaScript",
			"ts":       "TypeScript",
			"py":       "Python",
			"golang":   "Go",
			"ml":       "Machine Learning",
			"ai":       "Artificial Intelligence",
			"dl":       "Deep Learning",
			"nlp":      "Natural Language Processing",
			"cv":       "Computer Vision",
			"db":       "Database",
			"k8s":      "Kubernetes",
			"gcp":      "Google Cloud Platform",
			"postgres": "PostgreSQL",
			"mongo":    "MongoDB",
			"nodejs":   "Node.js",
			"node":     "Node.js",
			"reactjs":  "React",
			"rest":     "REST API",
			"tf":       "TensorFlow",
			"sklearn":  "Scikit-learn",
			"viz":      "Data Visualization",
		},
		Casing: map[string]string{
			"javascript":   "JavaScript",
			"typescript":   "TypeScript",
			"sql":          "SQL",
			"nosql":        "NoSQL",
			"mysql":        "MySQL",
			"postgresql":   "PostgreSQL",
			"mongodb":      "MongoDB",
			"html":         "HTML",
			"css":          "CSS",
			"php":          "PHP",
			"api":          "API",
			"rest api":     "REST API",
			"graphql":      "GraphQL",
			"aws":          "AWS",
			"ci/cd":        "CI/CD",
			"devops":       "DevOps",
			"mlops":        "MLOps",
			"ios":          "iOS",
			"macos":        "macOS",
			"numpy":        "NumPy",
			"scipy":        "SciPy",
			"pytorch":      "PyTorch",
			"tensorflow":   "TensorFlow",
			"scikit-learn": "Scikit-learn",
			"fastapi":      "FastAPI",
			"node.js":      "Node.js",
			"next.js":      "Next.js",
			"vue.js":       "Vue.js",
		},
	}
}

// Merge returns a copy of the table with extra alias -> canonical entries
// applied on top of the built-in synonyms. Entries whose canonical form has
// irregular casing are also registered in the casing map so normalization
// stays idempotent.
func (t Table) Merge(extra map[string]string) Table {
	merged := Table{
		Synonyms: make(map[string]string, len(t.Synonyms)+len(extra)),
		Casing:   make(map[string]string, len(t.Casing)+len(extra)),
	}
	for alias, canonical := range t.Synonyms {
		merged.Synonyms[alias] = canonical
	}
	for lower, display := range t.Casing {
		merged.Casing[lower] = display
	}
	for alias, canonical := range extra {
		key := foldKey(alias)
		if key == "" || canonical == "" {
			continue
		}
		merged.Synonyms[key] = canonical
		merged.Casing[foldKey(canonical)] = canonical
	}
	return merged
}
