package match

import (
	"math"
	"sort"
	"strings"
)

// Similarity computes the cosine similarity of the TF-IDF vectors of two
// skill collections. Each collection is joined into one pseudo-document and
// the model is fit over exactly those two documents, so vocabulary never
// leaks between unrelated comparisons. Features are word unigrams plus
// adjacent-word bigrams, which keeps multi-word skills like "machine
// learning" intact as phrases. Returns a value in [0, 1]; an empty or
// zero-magnitude side yields 0.
func Similarity(a, b []string) float64 {
	ta := termCounts(a)
	tb := termCounts(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	vocab := make([]string, 0, len(ta)+len(tb))
	for term := range ta {
		vocab = append(vocab, term)
	}
	for term := range tb {
		if _, dup := ta[term]; !dup {
			vocab = append(vocab, term)
		}
	}
	// Fixed iteration order keeps the float result bit-identical across calls
	sort.Strings(vocab)

	const docs = 2.0
	var dot, magA, magB float64
	for _, term := range vocab {
		df := 0.0
		if ta[term] > 0 {
			df++
		}
		if tb[term] > 0 {
			df++
		}
		// Smoothed inverse document frequency over the two documents
		idf := math.Log((1+docs)/(1+df)) + 1
		wa := float64(ta[term]) * idf
		wb := float64(tb[term]) * idf
		dot += wa * wb
		magA += wa * wa
		magB += wb * wb
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(magA) * math.Sqrt(magB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// termCounts renders a skill collection as a pseudo-document and counts its
// unigram and bigram term frequencies
func termCounts(skills []string) map[string]int {
	var words []string
	for _, s := range skills {
		words = append(words, strings.Fields(strings.ToLower(s))...)
	}
	counts := make(map[string]int, len(words)*2)
	for i, w := range words {
		counts[w]++
		if i+1 < len(words) {
			counts[w+" "+words[i+1]]++
		}
	}
	return counts
}
