package clarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestLowPCIWinsRegardlessOfRatios(t *testing.T) {
	// both ratios are low; the pci rule still fires first
	agg := Aggregate{PCI: 45, Total: 20, FollowUps: 2, LowConfidence: 1}
	assert.Equal(t, SuggestionRewrite, Suggest(agg))
}

func TestSuggestPCIBoundary(t *testing.T) {
	low := Aggregate{PCI: 49, Total: 10}
	assert.Equal(t, SuggestionRewrite, Suggest(low))

	// exactly 50 is not "below 50"
	atThreshold := Aggregate{PCI: 50, Total: 10}
	assert.Equal(t, SuggestionMinor, Suggest(atThreshold))
}

func TestSuggestHighFollowUpRatio(t *testing.T) {
	agg := Aggregate{PCI: 70, Total: 10, FollowUps: 5, LowConfidence: 0}
	assert.Equal(t, SuggestionFAQ, Suggest(agg))
}

func TestSuggestFollowUpRatioBoundary(t *testing.T) {
	// exactly 0.4 of total does not fire; the rule is strictly greater
	agg := Aggregate{PCI: 70, Total: 10, FollowUps: 4, LowConfidence: 0}
	assert.Equal(t, SuggestionMinor, Suggest(agg))
}

func TestSuggestHighLowConfidenceRatio(t *testing.T) {
	agg := Aggregate{PCI: 70, Total: 10, FollowUps: 0, LowConfidence: 4}
	assert.Equal(t, SuggestionKeywords, Suggest(agg))
}

func TestSuggestLowConfidenceRatioBoundary(t *testing.T) {
	agg := Aggregate{PCI: 70, Total: 10, FollowUps: 0, LowConfidence: 3}
	assert.Equal(t, SuggestionMinor, Suggest(agg))
}

func TestSuggestFollowUpOutranksLowConfidence(t *testing.T) {
	agg := Aggregate{PCI: 70, Total: 10, FollowUps: 5, LowConfidence: 5}
	assert.Equal(t, SuggestionFAQ, Suggest(agg))
}

func TestSuggestGenericFallback(t *testing.T) {
	agg := Aggregate{PCI: 95, Total: 10, FollowUps: 1, LowConfidence: 1}
	assert.Equal(t, SuggestionMinor, Suggest(agg))
}
