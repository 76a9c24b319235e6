package models

// EducationLevel breaks down attainment as percentages of the population.
type EducationLevel struct {
	Basic     float64 `json:"basic"`
	Secondary float64 `json:"secondary"`
	Higher    float64 `json:"higher"`
}

// INEData is a normalized census row from the INE statistics API. Fields the
// population indicator cannot fill (households, buildings, dwellings and the
// economic figures) stay zero unless a dedicated indicator call provides
// them.
type INEData struct {
	Code           string         `json:"code"`
	Name           string         `json:"name"`
	Level          string         `json:"level"` // district, municipality or parish
	Population     int            `json:"population"`
	Households     int            `json:"households"`
	Buildings      int            `json:"buildings"`
	Dwellings      int            `json:"dwellings"`
	AverageIncome  float64        `json:"average_income"`
	MedianAge      float64        `json:"median_age"`
	EducationLevel EducationLevel `json:"education_level"`
	LastCensus     string         `json:"last_census"`
}

// IndicatorRow is a raw INE API row. The upstream schema varies per
// indicator, so rows pass through untyped.
type IndicatorRow map[string]any

type ConstructionData struct {
	Permits []IndicatorRow `json:"permits"`
	Costs   []IndicatorRow `json:"costs"`
}

// MunicipalityData aggregates the three INE fan-out calls for one
// municipality. Any failed branch is reported as its empty value rather than
// failing the whole aggregate.
type MunicipalityData struct {
	Population   []INEData        `json:"population"`
	Housing      []IndicatorRow   `json:"housing"`
	Construction ConstructionData `json:"construction"`
}
