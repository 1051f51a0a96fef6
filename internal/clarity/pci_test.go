package clarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePCIZeroEvidence(t *testing.T) {
	assert.Equal(t, 100, ComputePCI(0, 0, 0))
}

func TestComputePCIKnownScenario(t *testing.T) {
	// followUpPenalty = 4/10*40 = 16, lowConfidencePenalty = 3/10*30 = 9
	assert.Equal(t, 75, ComputePCI(10, 4, 3))
}

func TestComputePCIWorstCase(t *testing.T) {
	// both ratios saturated: 100 - 40 - 30 = 30
	assert.Equal(t, 30, ComputePCI(20, 20, 20))
}

func TestComputePCIRounds(t *testing.T) {
	// 100 - 1/3*40 - 0 = 86.67 -> 87
	assert.Equal(t, 87, ComputePCI(3, 1, 0))
}

func TestComputePCIBounds(t *testing.T) {
	for total := 0; total <= 15; total++ {
		for f := 0; f <= total; f++ {
			for l := 0; l <= total; l++ {
				got := ComputePCI(total, f, l)
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, 100)

				got = ComputeDomainPCI(total, f, l)
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, 100)
			}
		}
	}
}

func TestComputePCIMonotonicInFollowUps(t *testing.T) {
	prev := 101
	for f := 0; f <= 10; f++ {
		got := ComputePCI(10, f, 2)
		assert.LessOrEqual(t, got, prev)
		prev = got
	}
}

func TestComputePCIMonotonicInLowConfidence(t *testing.T) {
	prev := 101
	for l := 0; l <= 10; l++ {
		got := ComputePCI(10, 3, l)
		assert.LessOrEqual(t, got, prev)
		prev = got
	}
}

func TestComputeDomainPCIRepetitionPenalty(t *testing.T) {
	// 5 queries: half-saturated penalty of 20
	assert.Equal(t, 80, ComputeDomainPCI(5, 0, 0))
	// 10+ queries saturate the penalty at 40
	assert.Equal(t, 60, ComputeDomainPCI(10, 0, 0))
	assert.Equal(t, 60, ComputeDomainPCI(50, 0, 0))
}

func TestComputeDomainPCINotInterchangeable(t *testing.T) {
	assert.NotEqual(t, ComputePCI(10, 4, 3), ComputeDomainPCI(10, 4, 3))
}

func TestComputeDomainPCIZeroEvidence(t *testing.T) {
	assert.Equal(t, 100, ComputeDomainPCI(0, 0, 0))
}

func TestComputePCIRejectsInvalidCounts(t *testing.T) {
	assert.Panics(t, func() { ComputePCI(-1, 0, 0) })
	assert.Panics(t, func() { ComputePCI(5, 6, 0) })
	assert.Panics(t, func() { ComputePCI(5, 0, 6) })
	assert.Panics(t, func() { ComputeDomainPCI(5, -1, 0) })
}
