package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name      string
		budget    int
		count     int
		remaining int
		phase     Phase
	}{
		{"first question", 8, 1, 7, PhaseInProgress},
		{"mid interview", 8, 5, 3, PhaseInProgress},
		{"two remaining", 8, 6, 2, PhaseNearEnd},
		{"one remaining", 8, 7, 1, PhaseNearEnd},
		{"final question", 8, 8, 0, PhaseConclude},
		{"past the budget", 8, 12, 0, PhaseConclude},
		{"single question budget", 1, 1, 0, PhaseConclude},
		{"zero count", 8, 0, 8, PhaseInProgress},
		{"tiny budget near end", 2, 1, 1, PhaseNearEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputeProgress(tt.budget, tt.count)
			assert.Equal(t, tt.count, p.Current)
			assert.Equal(t, tt.budget, p.Total)
			assert.Equal(t, tt.remaining, p.Remaining)
			assert.Equal(t, tt.phase, p.Phase)
		})
	}
}

func TestComputeProgress_ClampsBadInput(t *testing.T) {
	// non-positive budget can't produce a permanently concluded interview
	p := ComputeProgress(0, 0)
	assert.Equal(t, 1, p.Total)
	assert.Equal(t, 1, p.Remaining)
	assert.Equal(t, PhaseInProgress, p.Phase)

	p = ComputeProgress(-5, 1)
	assert.Equal(t, 1, p.Total)
	assert.Equal(t, PhaseConclude, p.Phase)

	// negative count treated as zero
	p = ComputeProgress(8, -1)
	assert.Equal(t, 0, p.Current)
	assert.Equal(t, 8, p.Remaining)
}

func TestComputeProgress_MonotonicConclusion(t *testing.T) {
	// remaining never increases and conclude is sticky as count grows
	prev := ComputeProgress(5, 0)
	concluded := false
	for count := 1; count <= 10; count++ {
		p := ComputeProgress(5, count)
		assert.LessOrEqual(t, p.Remaining, prev.Remaining)
		if concluded {
			assert.Equal(t, PhaseConclude, p.Phase)
		}
		if p.Phase == PhaseConclude {
			concluded = true
		}
		prev = p
	}
	assert.True(t, concluded)
}
