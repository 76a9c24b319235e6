package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"lusolens/server/internal/models"
)

// Default viewport covering mainland Portugal.
var (
	DefaultCenter = [2]float64{39.5, -8.0}
	DefaultZoom   = 7
)

// Growth ramp: low growth is bad (red), high growth is good (green).
var growthRamp = []string{"#ef4444", "#fbbf24", "#22c55e"}

// Value ramp: cheap is blue, expensive is red.
var valueRamp = []string{"#3b82f6", "#06b6d4", "#10b981", "#f59e0b", "#ef4444"}

// Result carries the rebuilt feature set plus the normalization range used
// for the color scale and legend.
type Result struct {
	Collection *geojson.FeatureCollection `json:"collection"`
	MinValue   float64                    `json:"min_value"`
	MaxValue   float64                    `json:"max_value"`
}

// Engine turns a filtered property list and a selected metric into colored
// point features, and dispatches click events back to a caller-supplied
// callback with the full record. It keeps no selection state; features are
// always rebuilt wholesale, never mutated in place.
type Engine struct {
	onClick func(models.Property)
	byID    map[string]models.Property
}

func NewEngine() *Engine {
	return &Engine{byID: make(map[string]models.Property)}
}

// OnPropertyClick registers the callback invoked with the full original
// record when a rendered feature is clicked.
func (e *Engine) OnPropertyClick(fn func(models.Property)) {
	e.onClick = fn
}

// HandleClick forwards the record behind a rendered feature to the click
// callback. Unknown ids and a missing callback are no-ops.
func (e *Engine) HandleClick(id string) bool {
	p, ok := e.byID[id]
	if !ok || e.onClick == nil {
		return false
	}
	e.onClick(p)
	return true
}

// Build recomputes the point-feature collection for the given records and
// metric. The computation is pure: identical inputs yield identical output.
// An empty record set yields the 0..1 sentinel range and no features.
func (e *Engine) Build(records []models.Property, metric Metric) Result {
	e.byID = make(map[string]models.Property, len(records))
	collection := geojson.NewFeatureCollection()

	if len(records) == 0 {
		return Result{Collection: collection, MinValue: 0, MaxValue: 1}
	}

	min := math.Inf(1)
	max := math.Inf(-1)
	for _, p := range records {
		v := metric.Value(p)
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	for _, p := range records {
		e.byID[p.ID] = p
		v := metric.Value(p)

		feature := geojson.NewFeature(orb.Point{p.Location.Longitude, p.Location.Latitude})
		feature.Properties = geojson.Properties{
			"id":           p.ID,
			"location":     p.Location,
			"price":        p.Price,
			"metrics":      p.Metrics,
			"demographics": p.Demographics,
			"value":        v,
			"color":        ColorForValue(v, min, max, metric),
		}
		collection.Append(feature)
	}

	return Result{Collection: collection, MinValue: min, MaxValue: max}
}

// ColorForValue normalizes v into the [min,max] range and picks the bucket
// color for the metric's ramp. A zero-width range normalizes to 0.
func ColorForValue(v, min, max float64, metric Metric) string {
	var t float64
	if max > min {
		t = (v - min) / (max - min)
	}

	if metric.GrowthRamp() {
		switch {
		case t < 0.33:
			return growthRamp[0]
		case t < 0.66:
			return growthRamp[1]
		default:
			return growthRamp[2]
		}
	}

	switch {
	case t < 0.2:
		return valueRamp[0]
	case t < 0.4:
		return valueRamp[1]
	case t < 0.6:
		return valueRamp[2]
	case t < 0.8:
		return valueRamp[3]
	default:
		return valueRamp[4]
	}
}

// FormatValue renders a metric value for legends and tooltips: growth as a
// signed one-decimal percentage, home value as EUR, the rest as a grouped
// count.
func FormatValue(v float64, metric Metric) string {
	if metric.GrowthRamp() {
		if v > 0 {
			return fmt.Sprintf("+%.1f%%", v)
		}
		return fmt.Sprintf("%.1f%%", v)
	}
	if metric == MetricHomeValue {
		return "€" + groupDigits(int(math.Round(v)))
	}
	return groupDigits(int(math.Round(v)))
}

// groupDigits inserts thin-space thousands separators, pt-PT style.
func groupDigits(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	out := strings.Join(groups, " ")
	if neg {
		return "-" + out
	}
	return out
}
