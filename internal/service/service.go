package service

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"lusolens/server/config"
	"lusolens/server/internal/analysis"
	"lusolens/server/internal/cache"
	"lusolens/server/internal/generator"
	"lusolens/server/internal/ine"
	"lusolens/server/internal/models"
)

// Service is the single interface the presentation layer calls. It
// orchestrates the synthesizer, the INE gateway and the filter layer, and
// returns plain in-memory records, never raw HTTP responses. Construct one
// at process start and pass it by reference.
type Service struct {
	gen    *generator.Generator
	ine    *ine.Client
	cache  *cache.Cache
	clock  clockwork.Clock
	logger *logrus.Logger
}

func New(gen *generator.Generator, ineClient *ine.Client, c *cache.Cache, clock clockwork.Clock, logger *logrus.Logger) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{gen: gen, ine: ineClient, cache: c, clock: clock, logger: logger}
}

// Properties synthesizes the full national record list and applies the
// caller's filters.
func (s *Service) Properties(ctx context.Context, filters models.Filters) []models.Property {
	return generator.Filter(s.gen.GenerateAll(), filters)
}

// Forecasts returns the market forecast table, optionally narrowed to
// specific location ids.
func (s *Service) Forecasts(ctx context.Context, locationIDs []string) []models.MarketForecast {
	forecasts := s.forecastTable()
	if len(locationIDs) == 0 {
		return forecasts
	}

	wanted := make(map[string]bool, len(locationIDs))
	for _, id := range locationIDs {
		wanted[id] = true
	}
	out := make([]models.MarketForecast, 0, len(forecasts))
	for _, f := range forecasts {
		if wanted[f.LocationID] {
			out = append(out, f)
		}
	}
	return out
}

// INEData returns census rows for a municipality, preferring live INE data
// and falling back to the bundled census snapshot when the gateway comes
// back empty.
func (s *Service) INEData(ctx context.Context, municipalityCode string) []models.INEData {
	key := "ine:population:" + municipalityCode

	var cached []models.INEData
	if s.cache.Get(ctx, key, &cached) {
		return cached
	}

	if rows := s.ine.PopulationData(ctx, municipalityCode); len(rows) > 0 {
		s.cache.Set(ctx, key, rows)
		return rows
	}

	s.logger.Warn("No live INE population data, serving census snapshot")
	return censusSnapshot()
}

// HousingData returns house-price indicator rows, empty on gateway failure.
func (s *Service) HousingData(ctx context.Context, municipalityCode string) []models.IndicatorRow {
	key := "ine:housing:" + municipalityCode

	var cached []models.IndicatorRow
	if s.cache.Get(ctx, key, &cached) {
		return cached
	}

	rows, err := s.ine.HousePriceData(ctx, municipalityCode)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to fetch INE housing data")
		return []models.IndicatorRow{}
	}
	s.cache.Set(ctx, key, rows)
	return rows
}

// ConstructionData returns permit and cost rows, empty on gateway failure.
func (s *Service) ConstructionData(ctx context.Context, municipalityCode string) models.ConstructionData {
	key := "ine:construction:" + municipalityCode

	var cached models.ConstructionData
	if s.cache.Get(ctx, key, &cached) {
		return cached
	}

	data, err := s.ine.ConstructionData(ctx, municipalityCode)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to fetch INE construction data")
		return models.ConstructionData{Permits: []models.IndicatorRow{}, Costs: []models.IndicatorRow{}}
	}
	s.cache.Set(ctx, key, data)
	return data
}

// ComprehensiveMunicipalityData aggregates the three INE fan-out calls. A
// failed aggregate maps to the all-empty composite; the caller never sees
// the error.
func (s *Service) ComprehensiveMunicipalityData(ctx context.Context, municipalityCode string) models.MunicipalityData {
	key := "ine:municipality:" + municipalityCode

	var cached models.MunicipalityData
	if s.cache.Get(ctx, key, &cached) {
		return cached
	}

	data, err := s.ine.MunicipalityData(ctx, municipalityCode)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to fetch comprehensive municipality data")
		return models.MunicipalityData{
			Population:   []models.INEData{},
			Housing:      []models.IndicatorRow{},
			Construction: models.ConstructionData{Permits: []models.IndicatorRow{}, Costs: []models.IndicatorRow{}},
		}
	}
	s.cache.Set(ctx, key, data)
	return data
}

// SearchIndicators looks up catalog entries by topic.
func (s *Service) SearchIndicators(ctx context.Context, topic string) []models.IndicatorRow {
	return s.ine.SearchIndicators(ctx, topic)
}

// ValidateIndicator reports whether an indicator id resolves to usable
// metadata.
func (s *Service) ValidateIndicator(ctx context.Context, indicatorID string) bool {
	return s.ine.IsIndicatorValid(ctx, indicatorID)
}

// SearchLocations matches a query against both the district registry and
// the municipality reference table, returning a unified candidate list.
// Municipalities carry coordinates so the UI can recenter the map. Only
// entries whose own name contains the query survive: a municipality that
// matched solely through its district name is dropped, so "lisboa" yields
// the Lisboa district and municipality but not Cascais.
func (s *Service) SearchLocations(ctx context.Context, query string) []models.LocationResult {
	q := strings.ToLower(query)
	var candidates []models.LocationResult

	for _, d := range ine.Districts {
		if strings.Contains(strings.ToLower(d.Name), q) {
			candidates = append(candidates, models.LocationResult{Name: d.Name, Type: "district"})
		}
	}
	for _, m := range config.SearchMunicipalities(query) {
		coords := m.Coordinates
		candidates = append(candidates, models.LocationResult{Name: m.Name, Type: "municipality", Coordinates: &coords})
	}

	out := make([]models.LocationResult, 0, len(candidates))
	for _, r := range candidates {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// AvailableDistricts lists every district in the reference table.
func (s *Service) AvailableDistricts(ctx context.Context) []string {
	return config.AllDistricts()
}

// MunicipalitiesInDistrict returns the reference entries for one district.
func (s *Service) MunicipalitiesInDistrict(ctx context.Context, district string) []config.Municipality {
	return config.MunicipalitiesByDistrict(district)
}

// Insights is the derived-metric bundle behind the property detail panel.
type Insights struct {
	Property        models.Property       `json:"property"`
	PriceTrend      analysis.TrendSeries  `json:"price_trend"`
	PopulationTrend analysis.TrendSeries  `json:"population_trend"`
	GrowthScore     analysis.GrowthScore  `json:"growth_score"`
	Comparisons     []analysis.Comparison `json:"comparisons"`
}

// PropertyInsights computes the detail-view derivations for one record id.
// The second return is false when the id is not in the current generation
// pass.
func (s *Service) PropertyInsights(ctx context.Context, id string) (Insights, bool) {
	records := s.gen.GenerateAll()

	var target *models.Property
	for i := range records {
		if records[i].ID == id {
			target = &records[i]
			break
		}
	}
	if target == nil {
		return Insights{}, false
	}

	endYear := s.clock.Now().Year()
	seedKey := target.Location.Municipality + "-" + target.Location.District
	return Insights{
		Property:        *target,
		PriceTrend:      analysis.PriceTrend(target.Price.Current, target.Metrics.PriceGrowth.FiveYear, 5, endYear),
		PopulationTrend: analysis.PopulationTrend(target.Demographics.Population, target.Metrics.PriceGrowth.Year, endYear),
		GrowthScore:     analysis.ComputeGrowthScore(seedKey, target.Metrics.PriceGrowth.Year, target.Metrics.PriceGrowth.FiveYear),
		Comparisons:     analysis.CompareToBenchmarks(*target, records),
	}, true
}

// MarketStats returns the national market summary shown on the landing
// dashboard.
func (s *Service) MarketStats(ctx context.Context) models.MarketStats {
	return models.MarketStats{
		TotalProperties:    125000,
		AveragePriceGrowth: 8.7,
		HotMarkets:         []string{"Lisboa", "Porto", "Faro"},
		TopGrowthAreas: []models.GrowthArea{
			{Name: "Cascais", Growth: 15.2},
			{Name: "Vila Nova de Gaia", Growth: 12.8},
			{Name: "Funchal", Growth: 11.5},
		},
	}
}

func (s *Service) forecastTable() []models.MarketForecast {
	updated := s.clock.Now().Format("2006-01-02")
	return []models.MarketForecast{
		{
			LocationID: "1",
			Predictions: models.ForecastPredictions{
				ThreeMonth: 2.1, SixMonth: 4.5, OneYear: 8.2, ThreeYear: 18.5, FiveYear: 32.1,
			},
			Confidence: 0.78,
			Factors: []string{
				"População crescente",
				"Investimento estrangeiro",
				"Proximidade ao centro",
				"Transportes públicos",
			},
			LastUpdated: updated,
		},
		{
			LocationID: "2",
			Predictions: models.ForecastPredictions{
				ThreeMonth: 2.8, SixMonth: 5.2, OneYear: 10.1, ThreeYear: 22.3, FiveYear: 38.7,
			},
			Confidence: 0.82,
			Factors: []string{
				"Regeneração urbana",
				"Turismo crescente",
				"Tecnologia e inovação",
				"Universidades",
			},
			LastUpdated: updated,
		},
	}
}

// censusSnapshot is the bundled 2021 census fallback for the three largest
// reference markets.
func censusSnapshot() []models.INEData {
	return []models.INEData{
		{
			Code: "1106", Name: "Lisboa", Level: "municipality",
			Population: 548703, Households: 265236, Buildings: 84532, Dwellings: 298765,
			AverageIncome: 31500, MedianAge: 44.2,
			EducationLevel: models.EducationLevel{Basic: 25.3, Secondary: 38.7, Higher: 36.0},
			LastCensus:     "2021",
		},
		{
			Code: "1302", Name: "Porto", Level: "municipality",
			Population: 231962, Households: 115482, Buildings: 45231, Dwellings: 128456,
			AverageIncome: 27800, MedianAge: 42.8,
			EducationLevel: models.EducationLevel{Basic: 28.1, Secondary: 41.2, Higher: 30.7},
			LastCensus:     "2021",
		},
		{
			Code: "0613", Name: "Coimbra", Level: "municipality",
			Population: 140796, Households: 68542, Buildings: 28145, Dwellings: 75986,
			AverageIncome: 24600, MedianAge: 40.5,
			EducationLevel: models.EducationLevel{Basic: 22.8, Secondary: 39.1, Higher: 38.1},
			LastCensus:     "2021",
		},
	}
}
