package analysis

import "math"

// TrendSeries is a reconstructed historical trajectory, one point per year
// ending at the current value.
type TrendSeries struct {
	Years      []int   `json:"years"`
	Values     []int   `json:"values"`
	AnnualRate float64 `json:"annual_rate"`
}

// PriceTrend rebuilds an N+1 point series from a current value and the
// total percentage growth over the last `years` years, assuming constant
// compound annual growth. The final point equals the current value within
// rounding. Negative and near-zero growth produce declining and flat series
// without division errors.
func PriceTrend(current int, totalGrowthPct float64, years int, endYear int) TrendSeries {
	if years <= 0 {
		return TrendSeries{Years: []int{endYear}, Values: []int{current}}
	}

	factor := 1 + totalGrowthPct/100
	if factor <= 0 {
		// A -100% or worse figure has no real compound rate; render flat.
		factor = 1
	}
	annual := math.Pow(factor, 1/float64(years)) - 1
	start := float64(current) / math.Pow(1+annual, float64(years))

	series := TrendSeries{
		Years:      make([]int, 0, years+1),
		Values:     make([]int, 0, years+1),
		AnnualRate: annual,
	}
	for i := 0; i <= years; i++ {
		series.Years = append(series.Years, endYear-years+i)
		series.Values = append(series.Values, int(math.Round(start*math.Pow(1+annual, float64(i)))))
	}
	return series
}

// PopulationTrend estimates a 5-year population trajectory. The yearly rate
// is derived from price growth and clamped to a plausible demographic band
// of [-2%, 5%].
func PopulationTrend(population int, priceGrowthYoY float64, endYear int) TrendSeries {
	const years = 5
	rate := math.Max(-2, math.Min(5, priceGrowthYoY/3)) / 100
	start := float64(population) / math.Pow(1+rate, years)

	series := TrendSeries{
		Years:      make([]int, 0, years+1),
		Values:     make([]int, 0, years+1),
		AnnualRate: rate,
	}
	for i := 0; i <= years; i++ {
		series.Years = append(series.Years, endYear-years+i)
		series.Values = append(series.Values, int(math.Round(start*math.Pow(1+rate, float64(i)))))
	}
	return series
}
