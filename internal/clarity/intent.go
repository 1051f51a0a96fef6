package clarity

import "strings"

// Intent names produced by the classifier.
const (
	IntentHostel    = "HOSTEL"
	IntentFees      = "FEES"
	IntentExams     = "EXAMS"
	IntentLeave     = "LEAVE"
	IntentAcademics = "ACADEMICS"
	IntentGeneral   = "GENERAL"
)

// Confidence is constant per branch: this is coarse triage, not a scored
// classifier, so match quality is deliberately not reflected.
const (
	MatchConfidence    = 85
	FallbackConfidence = 50
)

// IntentRule maps one intent to its trigger keywords.
type IntentRule struct {
	Intent   string
	Keywords []string
}

// IntentResult is a classified intent with its fixed confidence.
type IntentResult struct {
	Intent     string `json:"intent"`
	Confidence int    `json:"confidence"`
}

// IntentClassifier triages a query into a fixed intent set by ordered keyword
// lookup. Independent of retrieval; the two signals may disagree.
type IntentClassifier struct {
	rules []IntentRule
}

// NewIntentClassifier builds a classifier from ordered rules. Rule order is
// the tie-break: the first rule with a contained keyword wins.
func NewIntentClassifier(rules []IntentRule) *IntentClassifier {
	copied := make([]IntentRule, len(rules))
	copy(copied, rules)
	return &IntentClassifier{rules: copied}
}

// DefaultIntentClassifier returns the campus intent rule table. HOSTEL sits
// before LEAVE so "hostel leave pass" triages to the hostel office.
func DefaultIntentClassifier() *IntentClassifier {
	return NewIntentClassifier([]IntentRule{
		{Intent: IntentHostel, Keywords: []string{"hostel", "warden", "outpass", "room"}},
		{Intent: IntentFees, Keywords: []string{"fee", "payment", "refund", "fine"}},
		{Intent: IntentExams, Keywords: []string{"exam", "result", "revaluation", "backlog"}},
		{Intent: IntentLeave, Keywords: []string{"leave", "absent", "vacation"}},
		{Intent: IntentAcademics, Keywords: []string{"attendance", "course", "syllabus", "credit"}},
	})
}

// Classify returns the first matching intent at MatchConfidence, or
// GENERAL at FallbackConfidence when no keyword is contained in the query.
func (c *IntentClassifier) Classify(query string) IntentResult {
	q := strings.ToLower(query)
	for _, r := range c.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(q, kw) {
				return IntentResult{Intent: r.Intent, Confidence: MatchConfidence}
			}
		}
	}
	return IntentResult{Intent: IntentGeneral, Confidence: FallbackConfidence}
}

// Intents returns the intent names in rule order, without the GENERAL
// fallback.
func (c *IntentClassifier) Intents() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Intent
	}
	return out
}
