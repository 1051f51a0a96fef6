package clarity

import "strings"

// Scoring weights. Exact substring containment only: the corpus is small and
// curated, and a missed match is preferred over a fuzzy false positive.
const (
	wholeQueryTitleScore   = 50
	wholeQueryContentScore = 30
	wordTitleScore         = 10
	wordContentScore       = 5
)

// Score computes the relevance of a document to a query. Repeated query words
// score each time they occur in the query; no stemming, no stop words.
func Score(query, title, content string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(title)
	c := strings.ToLower(content)

	if q == "" {
		return 0
	}

	score := 0
	if strings.Contains(t, q) {
		score += wholeQueryTitleScore
	}
	if strings.Contains(c, q) {
		score += wholeQueryContentScore
	}

	for _, word := range strings.Fields(q) {
		if strings.Contains(t, word) {
			score += wordTitleScore
		}
		if strings.Contains(c, word) {
			score += wordContentScore
		}
	}

	return score
}
