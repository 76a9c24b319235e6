package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lusolens/server/internal/models"
)

func benchmark(municipality, district string, price int) models.Property {
	return models.Property{
		Location: models.Location{Municipality: municipality, District: district},
		Price:    models.Price{Current: price},
	}
}

func TestCompareToBenchmarks_AboveAndBelow(t *testing.T) {
	records := []models.Property{
		benchmark("Lisboa", "Lisboa", 869400),
		benchmark("Porto", "Porto", 300000),
		benchmark("Faro", "Faro", 754688),
	}
	target := benchmark("Cascais", "Lisboa", 500000)

	comparisons := CompareToBenchmarks(target, records)
	require.Len(t, comparisons, 3)

	lisboa := comparisons[0]
	assert.Equal(t, "Lisboa", lisboa.Name)
	assert.Equal(t, "below", lisboa.Direction)
	assert.Equal(t, 369400, lisboa.Magnitude)
	assert.Equal(t, -369400, lisboa.Delta)

	porto := comparisons[1]
	assert.Equal(t, "Porto", porto.Name)
	assert.Equal(t, "above", porto.Direction)
	assert.Equal(t, 200000, porto.Delta)
	assert.Equal(t, 200000, porto.Magnitude)
}

func TestCompareToBenchmarks_ZeroDeltaIsAbove(t *testing.T) {
	records := []models.Property{benchmark("Porto", "Porto", 500000)}
	target := benchmark("Braga", "Braga", 500000)

	comparisons := CompareToBenchmarks(target, records)
	require.Len(t, comparisons, 1)
	assert.Equal(t, "above", comparisons[0].Direction)
	assert.Zero(t, comparisons[0].Magnitude)
}

func TestCompareToBenchmarks_MissingBenchmarksOmitted(t *testing.T) {
	records := []models.Property{benchmark("Porto", "Porto", 300000)}
	target := benchmark("Braga", "Braga", 450000)

	comparisons := CompareToBenchmarks(target, records)
	require.Len(t, comparisons, 1)
	assert.Equal(t, "Porto", comparisons[0].Name)
}

func TestCompareToBenchmarks_DistrictFallbackMatch(t *testing.T) {
	// No "Faro" municipality record, but a Faro-district one qualifies.
	records := []models.Property{benchmark("Albufeira", "Faro", 600000)}
	target := benchmark("Braga", "Braga", 450000)

	comparisons := CompareToBenchmarks(target, records)
	require.Len(t, comparisons, 1)
	assert.Equal(t, "Albufeira", comparisons[0].Name)
	assert.Equal(t, "below", comparisons[0].Direction)
	assert.Equal(t, 150000, comparisons[0].Magnitude)
}

func TestCompareToBenchmarks_EmptyDataset(t *testing.T) {
	assert.Empty(t, CompareToBenchmarks(benchmark("Braga", "Braga", 450000), nil))
}
