package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGrowthScore_DeterministicPerSeed(t *testing.T) {
	first := ComputeGrowthScore("Lisboa-Lisboa", 10.2, 42.6)
	second := ComputeGrowthScore("Lisboa-Lisboa", 10.2, 42.6)
	assert.Equal(t, first, second)
}

func TestComputeGrowthScore_VariesPerSeed(t *testing.T) {
	lisboa := ComputeGrowthScore("Lisboa-Lisboa", 10.2, 42.6)
	porto := ComputeGrowthScore("Porto-Porto", 10.2, 42.6)
	assert.NotEqual(t, lisboa.Bars, porto.Bars)
	// Same growth inputs, same score: only the bar noise is seeded.
	assert.Equal(t, lisboa.Score, porto.Score)
}

func TestComputeGrowthScore_BarsWithinRange(t *testing.T) {
	score := ComputeGrowthScore("Faro-Faro", 14.9, 68.2)
	require.Len(t, score.Bars, 12)
	for _, bar := range score.Bars {
		assert.GreaterOrEqual(t, bar, 0.0)
		assert.LessOrEqual(t, bar, 100.0)
	}
}

func TestComputeGrowthScore_ScoreClamped(t *testing.T) {
	high := ComputeGrowthScore("x", 100, 400)
	assert.Equal(t, 100, high.Score)

	low := ComputeGrowthScore("x", -100, -200)
	assert.Equal(t, 0, low.Score)

	mid := ComputeGrowthScore("x", 10, 40)
	// base = 30 + 40*0.8 + 10*1.2 = 74
	assert.Equal(t, 74, mid.Score)
}
