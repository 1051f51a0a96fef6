package clarity

import (
	"sort"

	"github.com/campuskit/claritycore/internal/domain"
)

// Aggregate is the derived, ephemeral clarity record for one group of
// interactions. Recomputed from the raw interaction set on every request.
type Aggregate struct {
	Key           string `json:"key"`
	Total         int    `json:"total"`
	FollowUps     int    `json:"follow_ups"`
	LowConfidence int    `json:"low_confidence"`
	PCI           int    `json:"pci"`
}

// KeyFunc extracts the grouping key from an interaction. Returning "" drops
// the interaction from the grouping (e.g. no matched document code).
type KeyFunc func(domain.Interaction) string

// CalcFunc is a PCI calculator: ComputePCI or ComputeDomainPCI.
type CalcFunc func(total, followUps, lowConfidence int) int

// AggregatePCI computes the overall PCI of a flat interaction set using the
// base calculator. Pure in its input multiset: element order is irrelevant.
func AggregatePCI(interactions []domain.Interaction) int {
	total, followUps, lowConfidence := countSignals(interactions)
	return ComputePCI(total, followUps, lowConfidence)
}

// GroupPCI groups interactions by key, scores each group with calc, and
// returns the groups sorted ascending by PCI (worst clarity first). Ties keep
// first-seen grouping order, so the result is deterministic for a given input
// order. known seeds groups that must appear even with zero interactions;
// those default to PCI 100.
func GroupPCI(interactions []domain.Interaction, key KeyFunc, calc CalcFunc, known []string) []Aggregate {
	byKey := make(map[string]*Aggregate)
	var order []string

	add := func(k string) *Aggregate {
		if agg, ok := byKey[k]; ok {
			return agg
		}
		agg := &Aggregate{Key: k}
		byKey[k] = agg
		order = append(order, k)
		return agg
	}

	for _, k := range known {
		add(k)
	}

	for _, in := range interactions {
		k := key(in)
		if k == "" {
			continue
		}
		agg := add(k)
		agg.Total++
		if in.FollowUp {
			agg.FollowUps++
		}
		if isLowConfidence(in) {
			agg.LowConfidence++
		}
	}

	out := make([]Aggregate, 0, len(order))
	for _, k := range order {
		agg := byKey[k]
		agg.PCI = calc(agg.Total, agg.FollowUps, agg.LowConfidence)
		out = append(out, *agg)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].PCI < out[j].PCI })
	return out
}

func countSignals(interactions []domain.Interaction) (total, followUps, lowConfidence int) {
	for _, in := range interactions {
		total++
		if in.FollowUp {
			followUps++
		}
		if isLowConfidence(in) {
			lowConfidence++
		}
	}
	return
}

// isLowConfidence treats only a recorded confidence below the threshold as
// low; a missing reading is not evidence either way.
func isLowConfidence(in domain.Interaction) bool {
	return in.AIConfidence != nil && *in.AIConfidence < LowConfidenceThreshold
}
