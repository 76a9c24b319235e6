package generator

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lusolens/server/config"
	"lusolens/server/internal/models"
)

func fixedClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
}

func newTestGenerator(seed int64) *Generator {
	return New(config.Municipalities, rand.New(rand.NewSource(seed)), fixedClock())
}

func TestGenerateAll_OneRecordPerMunicipality(t *testing.T) {
	records := newTestGenerator(1).GenerateAll()
	require.Len(t, records, len(config.Municipalities))

	for i, p := range records {
		assert.Equal(t, config.Municipalities[i].Name, p.Location.Municipality)
		assert.Equal(t, config.Municipalities[i].District, p.Location.District)
		assert.Greater(t, p.Price.Current, 0)
	}

	// IDs are the 1-based table position.
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "2", records[1].ID)
}

func TestGenerateAll_DeterministicWithFixedSeed(t *testing.T) {
	first := newTestGenerator(42).GenerateAll()
	second := newTestGenerator(42).GenerateAll()
	assert.Equal(t, first, second)

	other := newTestGenerator(43).GenerateAll()
	assert.NotEqual(t, first, other)
}

func TestGenerateAll_ConcurrentCallers(t *testing.T) {
	// All gin handlers share one generator; regenerating from many
	// goroutines at once must stay race-free and produce sane records.
	g := newTestGenerator(7)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				records := g.GenerateAll()
				if len(records) != len(config.Municipalities) {
					t.Errorf("got %d records, want %d", len(records), len(config.Municipalities))
					return
				}
				for _, p := range records {
					if p.Metrics.PriceGrowth.Year < 1 || p.Metrics.PriceGrowth.Year > 19 {
						t.Errorf("%s: year growth %v out of range", p.Location.Municipality, p.Metrics.PriceGrowth.Year)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestGenerateAll_EmptyTable(t *testing.T) {
	g := New(nil, rand.New(rand.NewSource(1)), fixedClock())
	assert.Empty(t, g.GenerateAll())
}

func findRecord(t *testing.T, records []models.Property, municipality string) models.Property {
	t.Helper()
	for _, p := range records {
		if p.Location.Municipality == municipality {
			return p
		}
	}
	t.Fatalf("municipality %q not in generated records", municipality)
	return models.Property{}
}

func TestCalculateBasePrice_MultipliersStack(t *testing.T) {
	records := newTestGenerator(7).GenerateAll()

	tests := []struct {
		municipality string
		expected     int
	}{
		// Lisboa: primary x1.8 district x1.15 university x1.2 population
		{"Lisboa", 869400},
		// Cascais: primary x1.8 district x1.25 coastal x1.2 population
		{"Cascais", 945000},
		// Moura: tertiary with the small-town discount
		{"Moura", 127500},
		// Porto: primary x1.3 district x1.15 university x1.2 population
		{"Porto", 627900},
		// Faro: primary x1.5 district x1.25 coastal x1.15 university
		{"Faro", 754688},
	}
	for _, tt := range tests {
		p := findRecord(t, records, tt.municipality)
		assert.Equal(t, tt.expected, p.Price.Current, tt.municipality)
		assert.Equal(t, int(float64(tt.expected)/100+0.5), p.Price.PricePerSqm, tt.municipality)
	}
}

func TestGenerateAll_GrowthRangesPerTier(t *testing.T) {
	records := newTestGenerator(99).GenerateAll()

	for i, p := range records {
		mun := config.Municipalities[i]

		var boost float64
		switch mun.District {
		case "Faro":
			boost = 3
		case "Lisboa":
			boost = 2
		}

		year := p.Metrics.PriceGrowth.Year
		switch mun.MarketTier {
		case config.TierPrimary:
			assert.GreaterOrEqual(t, year, 8+boost, mun.Name)
			assert.Less(t, year, 16+boost+0.1, mun.Name)
		case config.TierSecondary:
			assert.GreaterOrEqual(t, year, 4+boost, mun.Name)
			assert.Less(t, year, 10+boost+0.1, mun.Name)
		default:
			assert.GreaterOrEqual(t, year, 1+boost, mun.Name)
			assert.Less(t, year, 5+boost+0.1, mun.Name)
		}

		// The five-year figure weighs the raw growth x4 and the boost x3;
		// recover the raw growth from the boosted year figure and check the
		// relationship within rounding tolerance.
		raw := year - boost
		assert.InDelta(t, raw*4+boost*3, p.Metrics.PriceGrowth.FiveYear, 0.5, mun.Name)

		// month/quarter derive from the unboosted rate, rounded independently.
		assert.InDelta(t, raw/12, p.Metrics.PriceGrowth.Month, 0.1, mun.Name)
		assert.InDelta(t, raw/4, p.Metrics.PriceGrowth.Quarter, 0.15, mun.Name)
	}
}

func TestGenerateAll_TierConstants(t *testing.T) {
	records := newTestGenerator(3).GenerateAll()

	for i, p := range records {
		mun := config.Municipalities[i]
		switch mun.MarketTier {
		case config.TierPrimary:
			assert.Equal(t, 35, p.Metrics.DaysOnMarket)
			assert.Equal(t, 8, p.Metrics.PriceReductions)
		case config.TierSecondary:
			assert.Equal(t, 45, p.Metrics.DaysOnMarket)
			assert.Equal(t, 12, p.Metrics.PriceReductions)
		default:
			assert.Equal(t, 60, p.Metrics.DaysOnMarket)
			assert.Equal(t, 18, p.Metrics.PriceReductions)
		}

		assert.Equal(t, mun.Population, p.Demographics.Population)
		assert.InDelta(t, float64(mun.Population)/150, float64(p.Metrics.Inventory), 0.5)
	}
}

func TestGenerateAll_LastUpdatedFromClock(t *testing.T) {
	records := newTestGenerator(5).GenerateAll()
	require.NotEmpty(t, records)
	assert.Equal(t, "2026-09-01", records[0].Price.LastUpdated)
}

func TestGenerateAll_MedianPriceDiscount(t *testing.T) {
	records := newTestGenerator(11).GenerateAll()
	for _, p := range records {
		assert.InDelta(t, float64(p.Price.Current)*0.95, float64(p.Metrics.MedianPrice), 0.5)
	}
}
