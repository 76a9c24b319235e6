package models

// Location identifies where a property record sits in the Portuguese
// administrative hierarchy.
type Location struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Address      string  `json:"address"`
	District     string  `json:"district"`
	Municipality string  `json:"municipality"`
	Parish       string  `json:"parish"`
	PostalCode   string  `json:"postal_code"`
}

type Price struct {
	Current     int    `json:"current"`
	Currency    string `json:"currency"`
	PricePerSqm int    `json:"price_per_sqm"`
	LastUpdated string `json:"last_updated"`
}

// PriceGrowth figures are percentages, each rounded to one decimal
// independently. The month/quarter fractions are approximations and are not
// constrained to sum back to the year figure after rounding.
type PriceGrowth struct {
	Month    float64 `json:"month"`
	Quarter  float64 `json:"quarter"`
	Year     float64 `json:"year"`
	FiveYear float64 `json:"five_year"`
}

type Metrics struct {
	MedianPrice     int         `json:"median_price"`
	PriceGrowth     PriceGrowth `json:"price_growth"`
	Inventory       int         `json:"inventory"`
	DaysOnMarket    int         `json:"days_on_market"`
	PriceReductions int         `json:"price_reductions"`
}

type AgeGroups struct {
	Under25   float64 `json:"under_25"`
	Age25to44 float64 `json:"age_25_to_44"`
	Age45to64 float64 `json:"age_45_to_64"`
	Over65    float64 `json:"over_65"`
}

type Demographics struct {
	Population       int       `json:"population"`
	MedianIncome     float64   `json:"median_income"`
	UnemploymentRate float64   `json:"unemployment_rate"`
	AgeGroups        AgeGroups `json:"age_groups"`
}

// Property is one synthesized market record per municipality. IDs are the
// 1-based position in the reference table and are only stable within a
// single generation pass.
type Property struct {
	ID           string       `json:"id"`
	Location     Location     `json:"location"`
	Price        Price        `json:"price"`
	Metrics      Metrics      `json:"metrics"`
	Demographics Demographics `json:"demographics"`
}

// Filters narrows a property list. Zero values mean "no constraint"; all
// present predicates are combined with AND.
type Filters struct {
	District     string `form:"district"`
	Municipality string `form:"municipality"`
	PriceMin     int    `form:"price_min"`
	PriceMax     int    `form:"price_max"`
}

type ForecastPredictions struct {
	ThreeMonth float64 `json:"three_month"`
	SixMonth   float64 `json:"six_month"`
	OneYear    float64 `json:"one_year"`
	ThreeYear  float64 `json:"three_year"`
	FiveYear   float64 `json:"five_year"`
}

type MarketForecast struct {
	LocationID  string              `json:"location_id"`
	Predictions ForecastPredictions `json:"predictions"`
	Confidence  float64             `json:"confidence"`
	Factors     []string            `json:"factors"`
	LastUpdated string              `json:"last_updated"`
}

type MarketStats struct {
	TotalProperties    int          `json:"total_properties"`
	AveragePriceGrowth float64      `json:"average_price_growth"`
	HotMarkets         []string     `json:"hot_markets"`
	TopGrowthAreas     []GrowthArea `json:"top_growth_areas"`
}

type GrowthArea struct {
	Name   string  `json:"name"`
	Growth float64 `json:"growth"`
}

// LocationResult is a unified search hit across districts and
// municipalities. Coordinates are only present for municipalities.
type LocationResult struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "district" or "municipality"
	Coordinates *[2]float64 `json:"coordinates,omitempty"`
}
