package analysis

import "lusolens/server/internal/models"

// Reference markets the detail view compares against.
var referenceMarkets = []string{"Lisboa", "Porto", "Faro"}

// Comparison reports how a target's current price sits against one named
// benchmark market.
type Comparison struct {
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Delta     int    `json:"delta"`
	Direction string `json:"direction"` // "above" or "below"
	Magnitude int    `json:"magnitude"`
}

// CompareToBenchmarks computes price deltas between the target and the
// Lisboa, Porto and Faro reference records found in the dataset. Benchmarks
// absent from the dataset are omitted, not errors.
func CompareToBenchmarks(target models.Property, records []models.Property) []Comparison {
	out := make([]Comparison, 0, len(referenceMarkets))
	for _, name := range referenceMarkets {
		ref := findReference(name, records)
		if ref == nil {
			continue
		}

		delta := target.Price.Current - ref.Price.Current
		direction := "above"
		magnitude := delta
		if delta < 0 {
			direction = "below"
			magnitude = -delta
		}
		out = append(out, Comparison{
			Name:      ref.Location.Municipality,
			Price:     ref.Price.Current,
			Delta:     delta,
			Direction: direction,
			Magnitude: magnitude,
		})
	}
	return out
}

// findReference returns the first record whose municipality or district
// matches the benchmark name.
func findReference(name string, records []models.Property) *models.Property {
	for i := range records {
		if records[i].Location.Municipality == name || records[i].Location.District == name {
			return &records[i]
		}
	}
	return nil
}
