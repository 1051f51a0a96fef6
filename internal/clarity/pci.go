package clarity

import (
	"fmt"
	"math"
)

// PCI penalty weights. Follow-ups weigh more than low confidence: a follow-up
// is direct behavioral evidence the first answer failed, low confidence only a
// proxy.
const (
	followUpWeight       = 40.0
	lowConfidenceWeight  = 30.0
	repetitionWeight     = 40.0
	repetitionSaturation = 10.0
)

// LowConfidenceThreshold is the cutoff below which a recorded confidence
// counts as a low-confidence interaction.
const LowConfidenceThreshold = 70

// ComputePCI turns interaction counts into a 0-100 Process Clarity Index.
// 100 means no observed confusion; zero evidence defaults to 100. The result
// is rounded and clamped.
//
// Counts are a caller contract: negative values, or follow-up/low-confidence
// counts exceeding total, panic.
func ComputePCI(total, followUps, lowConfidence int) int {
	validateCounts(total, followUps, lowConfidence)
	if total == 0 {
		return 100
	}
	raw := 100 -
		float64(followUps)/float64(total)*followUpWeight -
		float64(lowConfidence)/float64(total)*lowConfidenceWeight
	return clampScore(raw)
}

// ComputeDomainPCI is the domain-level variant of ComputePCI: on top of the
// base penalties it applies a repetition penalty scaled by min(total/10, 1),
// so a domain attracting ten or more queries is treated as a hot spot
// regardless of the other signals. Not interchangeable with ComputePCI; the
// two are used in different aggregation contexts.
func ComputeDomainPCI(total, followUps, lowConfidence int) int {
	validateCounts(total, followUps, lowConfidence)
	if total == 0 {
		return 100
	}
	repetition := math.Min(float64(total)/repetitionSaturation, 1) * repetitionWeight
	raw := 100 -
		float64(followUps)/float64(total)*followUpWeight -
		float64(lowConfidence)/float64(total)*lowConfidenceWeight -
		repetition
	return clampScore(raw)
}

func validateCounts(total, followUps, lowConfidence int) {
	if total < 0 || followUps < 0 || lowConfidence < 0 {
		panic(fmt.Sprintf("clarity: negative interaction counts (total=%d followUps=%d lowConfidence=%d)",
			total, followUps, lowConfidence))
	}
	if followUps > total || lowConfidence > total {
		panic(fmt.Sprintf("clarity: counts exceed total (total=%d followUps=%d lowConfidence=%d)",
			total, followUps, lowConfidence))
	}
}

func clampScore(raw float64) int {
	score := int(math.Round(raw))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
