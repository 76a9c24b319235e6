package geometry

import "lusolens/server/internal/models"

// Metric is the map "data point" selection. It is a closed enumeration with
// a total accessor mapping; anything unrecognized renders as home value.
type Metric int

const (
	MetricHomeValue Metric = iota
	MetricHomeValueGrowth
	MetricPopulationGrowth
)

var metricNames = map[Metric]string{
	MetricHomeValue:        "Home Value",
	MetricHomeValueGrowth:  "Home Value Growth (YoY)",
	MetricPopulationGrowth: "Population Growth",
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return metricNames[MetricHomeValue]
}

// ParseMetric maps a display name to its metric, defaulting to home value.
func ParseMetric(name string) Metric {
	for metric, display := range metricNames {
		if display == name {
			return metric
		}
	}
	return MetricHomeValue
}

// Value extracts the scalar the metric colors by.
func (m Metric) Value(p models.Property) float64 {
	switch m {
	case MetricHomeValueGrowth:
		return p.Metrics.PriceGrowth.Year
	case MetricPopulationGrowth:
		return float64(p.Demographics.Population)
	default:
		return float64(p.Price.Current)
	}
}

// GrowthRamp reports whether the metric uses the 3-bucket growth color
// ramp instead of the 5-bucket value ramp.
func (m Metric) GrowthRamp() bool {
	return m == MetricHomeValueGrowth || m == MetricPopulationGrowth
}
