package skills

import (
	"strings"
	"unicode"
)

// Normalizer canonicalizes raw skill strings into a stable vocabulary. It is
// immutable after construction and safe for concurrent use.
type Normalizer struct {
	synonyms map[string]string
	display  map[string]string
}

// NewNormalizer builds a normalizer from the given vocabulary table. The
// maps are copied, so later mutation of the table does not affect the
// normalizer. Canonical forms of every synonym are self-resolving, which
// makes Normalize idempotent.
func NewNormalizer(table Table) *Normalizer {
	n := &Normalizer{
		synonyms: make(map[string]string, len(table.Synonyms)),
		display:  make(map[string]string, len(table.Casing)+len(table.Synonyms)),
	}
	for lower, disp := range table.Casing {
		n.display[foldKey(lower)] = disp
	}
	for alias, canonical := range table.Synonyms {
		n.synonyms[foldKey(alias)] = canonical
		// "JavaScript" must normalize to itself, not retranslate
		if _, ok := n.display[foldKey(canonical)]; !ok {
			n.display[foldKey(canonical)] = canonical
		}
	}
	return n
}

// Normalize canonicalizes a single raw skill string. The second return value
// is false when the input is empty or contains no word characters at all;
// such input is skipped by callers, not treated as an error.
func (n *Normalizer) Normalize(raw string) (string, bool) {
	key := foldKey(raw)
	if key == "" {
		return "", false
	}
	if canonical, ok := n.synonyms[key]; ok {
		return canonical, true
	}
	if display, ok := n.display[key]; ok {
		return display, true
	}
	return titleCase(key), true
}

// NormalizeAll canonicalizes a list of raw skills, dropping empty entries
// and deduplicating while preserving first-seen order. The result is never
// nil.
func (n *Normalizer) NormalizeAll(raw []string) []string {
	result := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		skill, ok := n.Normalize(r)
		if !ok {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		result = append(result, skill)
	}
	return result
}

// skillDelimiters are the separators recognized when pulling skills out of
// free text, matching the common formats of pasted skill sections
const skillDelimiters = ",;|\n•·"

// ExtractFromText splits free text into candidate skills, filters out
// fragments that are too short or too long to be a skill name, and returns
// the normalized, deduplicated collection.
func (n *Normalizer) ExtractFromText(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(skillDelimiters, r)
	})
	candidates := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		length := len([]rune(p))
		if length < 2 || length > 50 {
			continue
		}
		candidates = append(candidates, p)
	}
	return n.NormalizeAll(candidates)
}

// foldKey reduces a raw skill to its lookup key: trimmed, lowercased,
// trailing sentence punctuation stripped, inner whitespace collapsed.
// Symbols that are part of skill names (+, #, /, -, .) survive, so "C++"
// and "Node.js" keep their shape.
func foldKey(raw string) string {
	s := strings.TrimSpace(strings.ToLower(raw))
	s = strings.TrimRight(s, ".,;:!?")
	if s == "" {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	// Reject input that is punctuation only
	hasWord := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasWord = true
			break
		}
	}
	if !hasWord {
		return ""
	}
	return s
}

// titleCase upper-cases the first letter of each space-separated word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
