package clarity

// Suggestion rule thresholds. First matching rule wins; this is a fixed
// priority decision tree, not a weighted blend.
const (
	rewritePCIThreshold    = 50
	followUpRatioThreshold = 0.4
	lowConfRatioThreshold  = 0.3
)

// Canned remediation suggestions for administrators.
const (
	SuggestionRewrite  = "Rewrite this document; students repeatedly struggle to get a clear answer from it."
	SuggestionFAQ      = "Add an FAQ section with worked examples; the follow-up rate is high."
	SuggestionKeywords = "Add clearer keywords and terminology; queries against it are frequently misclassified."
	SuggestionMinor    = "Minor clarity improvements recommended."
)

// Suggest maps an aggregate's shape to exactly one remediation suggestion:
// low PCI first, then high follow-up ratio, then high low-confidence ratio,
// else the generic note.
func Suggest(agg Aggregate) string {
	switch {
	case agg.PCI < rewritePCIThreshold:
		return SuggestionRewrite
	case float64(agg.FollowUps) > float64(agg.Total)*followUpRatioThreshold:
		return SuggestionFAQ
	case float64(agg.LowConfidence) > float64(agg.Total)*lowConfRatioThreshold:
		return SuggestionKeywords
	default:
		return SuggestionMinor
	}
}
