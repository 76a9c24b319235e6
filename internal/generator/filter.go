package generator

import "lusolens/server/internal/models"

// Filter applies the caller-supplied predicates conjunctively, preserving
// input order. Zero-valued fields impose no constraint.
func Filter(records []models.Property, f models.Filters) []models.Property {
	out := make([]models.Property, 0, len(records))
	for _, p := range records {
		if f.District != "" && p.Location.District != f.District {
			continue
		}
		if f.Municipality != "" && p.Location.Municipality != f.Municipality {
			continue
		}
		if f.PriceMin > 0 && p.Price.Current < f.PriceMin {
			continue
		}
		if f.PriceMax > 0 && p.Price.Current > f.PriceMax {
			continue
		}
		out = append(out, p)
	}
	return out
}
