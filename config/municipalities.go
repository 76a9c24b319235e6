package config

import "strings"

// Market tiers used by the pricing model.
const (
	TierPrimary   = "primary"
	TierSecondary = "secondary"
	TierTertiary  = "tertiary"
)

// Municipality describes one entry of the static market reference table.
// Identity is the (District, Name) pair; the table holds no duplicates.
type Municipality struct {
	District       string     `json:"district"`
	Name           string     `json:"municipality"`
	Coordinates    [2]float64 `json:"coordinates"` // lat, lon
	Population     int        `json:"population"`
	MarketTier     string     `json:"market_tier"`
	CoastalPremium bool       `json:"coastal_premium"`
	UniversityTown bool       `json:"university_town"`
}

// Municipalities covers the major municipalities of every Portuguese
// district plus the autonomous regions, with qualitative market attributes.
var Municipalities = []Municipality{
	// Aveiro District
	{District: "Aveiro", Name: "Aveiro", Coordinates: [2]float64{40.6443, -8.6455}, Population: 78450, MarketTier: TierSecondary, CoastalPremium: true, UniversityTown: true},
	{District: "Aveiro", Name: "Ovar", Coordinates: [2]float64{40.8659, -8.6255}, Population: 55398, MarketTier: TierTertiary, CoastalPremium: true},
	{District: "Aveiro", Name: "Santa Maria da Feira", Coordinates: [2]float64{40.9267, -8.5493}, Population: 139309, MarketTier: TierSecondary},

	// Beja District
	{District: "Beja", Name: "Beja", Coordinates: [2]float64{38.015, -7.8632}, Population: 35854, MarketTier: TierTertiary, UniversityTown: true},
	{District: "Beja", Name: "Moura", Coordinates: [2]float64{38.1447, -7.4449}, Population: 15808, MarketTier: TierTertiary},

	// Braga District
	{District: "Braga", Name: "Braga", Coordinates: [2]float64{41.5518, -8.4229}, Population: 192494, MarketTier: TierPrimary, UniversityTown: true},
	{District: "Braga", Name: "Guimarães", Coordinates: [2]float64{41.4412, -8.2918}, Population: 158124, MarketTier: TierSecondary, UniversityTown: true},
	{District: "Braga", Name: "Barcelos", Coordinates: [2]float64{41.5388, -8.6151}, Population: 120391, MarketTier: TierTertiary},

	// Bragança District
	{District: "Bragança", Name: "Bragança", Coordinates: [2]float64{41.8057, -6.7571}, Population: 35341, MarketTier: TierTertiary, UniversityTown: true},
	{District: "Bragança", Name: "Mirandela", Coordinates: [2]float64{41.4872, -7.1855}, Population: 23850, MarketTier: TierTertiary},

	// Castelo Branco District
	{District: "Castelo Branco", Name: "Castelo Branco", Coordinates: [2]float64{39.8221, -7.4909}, Population: 56109, MarketTier: TierTertiary, UniversityTown: true},
	{District: "Castelo Branco", Name: "Covilhã", Coordinates: [2]float64{40.2764, -7.5037}, Population: 51797, MarketTier: TierTertiary, UniversityTown: true},

	// Coimbra District
	{District: "Coimbra", Name: "Coimbra", Coordinates: [2]float64{40.2033, -8.4103}, Population: 143396, MarketTier: TierPrimary, UniversityTown: true},
	{District: "Coimbra", Name: "Figueira da Foz", Coordinates: [2]float64{40.1507, -8.8618}, Population: 62125, MarketTier: TierSecondary, CoastalPremium: true},

	// Évora District
	{District: "Évora", Name: "Évora", Coordinates: [2]float64{38.5664, -7.9098}, Population: 56596, MarketTier: TierSecondary, UniversityTown: true},

	// Faro District (Algarve)
	{District: "Faro", Name: "Faro", Coordinates: [2]float64{37.0194, -7.9322}, Population: 64560, MarketTier: TierPrimary, CoastalPremium: true, UniversityTown: true},
	{District: "Faro", Name: "Portimão", Coordinates: [2]float64{37.1393, -8.538}, Population: 59896, MarketTier: TierPrimary, CoastalPremium: true},
	{District: "Faro", Name: "Lagos", Coordinates: [2]float64{37.102, -8.6739}, Population: 31049, MarketTier: TierPrimary, CoastalPremium: true},
	{District: "Faro", Name: "Loulé", Coordinates: [2]float64{37.1364, -8.0229}, Population: 70622, MarketTier: TierPrimary, CoastalPremium: true},
	{District: "Faro", Name: "Albufeira", Coordinates: [2]float64{37.0887, -8.2503}, Population: 40828, MarketTier: TierPrimary, CoastalPremium: true},

	// Guarda District
	{District: "Guarda", Name: "Guarda", Coordinates: [2]float64{40.5364, -7.2653}, Population: 42541, MarketTier: TierTertiary, UniversityTown: true},

	// Leiria District
	{District: "Leiria", Name: "Leiria", Coordinates: [2]float64{39.7437, -8.8071}, Population: 130100, MarketTier: TierSecondary, UniversityTown: true},
	{District: "Leiria", Name: "Caldas da Rainha", Coordinates: [2]float64{39.4033, -9.1378}, Population: 51729, MarketTier: TierSecondary},
	{District: "Leiria", Name: "Nazaré", Coordinates: [2]float64{39.6016, -9.0711}, Population: 15158, MarketTier: TierSecondary, CoastalPremium: true},

	// Lisboa District
	{District: "Lisboa", Name: "Lisboa", Coordinates: [2]float64{38.7223, -9.1393}, Population: 548703, MarketTier: TierPrimary, UniversityTown: true},
	{District: "Lisboa", Name: "Cascais", Coordinates: [2]float64{38.6979, -9.4215}, Population: 214158, MarketTier: TierPrimary, CoastalPremium: true},
	{District: "Lisboa", Name: "Sintra", Coordinates: [2]float64{38.8107, -9.3843}, Population: 377835, MarketTier: TierPrimary},
	{District: "Lisboa", Name: "Amadora", Coordinates: [2]float64{38.7536, -9.2302}, Population: 175872, MarketTier: TierPrimary},
	{District: "Lisboa", Name: "Oeiras", Coordinates: [2]float64{38.6939, -9.3089}, Population: 172120, MarketTier: TierPrimary, CoastalPremium: true},
	{District: "Lisboa", Name: "Mafra", Coordinates: [2]float64{38.9368, -9.3263}, Population: 76685, MarketTier: TierSecondary, CoastalPremium: true},

	// Portalegre District
	{District: "Portalegre", Name: "Portalegre", Coordinates: [2]float64{39.2967, -7.4281}, Population: 22368, MarketTier: TierTertiary, UniversityTown: true},

	// Porto District
	{District: "Porto", Name: "Porto", Coordinates: [2]float64{41.1579, -8.6291}, Population: 237591, MarketTier: TierPrimary, UniversityTown: true},
	{District: "Porto", Name: "Vila Nova de Gaia", Coordinates: [2]float64{41.1239, -8.6114}, Population: 302295, MarketTier: TierPrimary, CoastalPremium: true},
	{District: "Porto", Name: "Matosinhos", Coordinates: [2]float64{41.182, -8.6895}, Population: 175478, MarketTier: TierPrimary, CoastalPremium: true},
	{District: "Porto", Name: "Vila do Conde", Coordinates: [2]float64{41.3516, -8.7479}, Population: 79533, MarketTier: TierSecondary, CoastalPremium: true},
	{District: "Porto", Name: "Maia", Coordinates: [2]float64{41.2279, -8.621}, Population: 135306, MarketTier: TierSecondary},

	// Santarém District
	{District: "Santarém", Name: "Santarém", Coordinates: [2]float64{39.2369, -8.6895}, Population: 61752, MarketTier: TierTertiary, UniversityTown: true},
	{District: "Santarém", Name: "Torres Novas", Coordinates: [2]float64{39.4813, -8.537}, Population: 36717, MarketTier: TierTertiary},

	// Setúbal District
	{District: "Setúbal", Name: "Setúbal", Coordinates: [2]float64{38.5244, -8.8882}, Population: 123519, MarketTier: TierSecondary, CoastalPremium: true},
	{District: "Setúbal", Name: "Almada", Coordinates: [2]float64{38.6794, -9.157}, Population: 174030, MarketTier: TierPrimary, CoastalPremium: true},
	{District: "Setúbal", Name: "Sesimbra", Coordinates: [2]float64{38.4443, -9.1015}, Population: 49500, MarketTier: TierSecondary, CoastalPremium: true},

	// Viana do Castelo District
	{District: "Viana do Castelo", Name: "Viana do Castelo", Coordinates: [2]float64{41.694, -8.8312}, Population: 88631, MarketTier: TierSecondary, CoastalPremium: true},

	// Vila Real District
	{District: "Vila Real", Name: "Vila Real", Coordinates: [2]float64{41.3005, -7.7442}, Population: 51850, MarketTier: TierTertiary, UniversityTown: true},

	// Viseu District
	{District: "Viseu", Name: "Viseu", Coordinates: [2]float64{40.6566, -7.9122}, Population: 99274, MarketTier: TierSecondary, UniversityTown: true},

	// Autonomous Regions
	{District: "Região Autónoma dos Açores", Name: "Ponta Delgada", Coordinates: [2]float64{37.7394, -25.6681}, Population: 68809, MarketTier: TierSecondary, CoastalPremium: true, UniversityTown: true},
	{District: "Região Autónoma da Madeira", Name: "Funchal", Coordinates: [2]float64{32.6669, -16.9241}, Population: 105795, MarketTier: TierPrimary, CoastalPremium: true, UniversityTown: true},
}

// MunicipalitiesByDistrict returns the reference entries for a district in
// table order.
func MunicipalitiesByDistrict(district string) []Municipality {
	var out []Municipality
	for _, m := range Municipalities {
		if m.District == district {
			out = append(out, m)
		}
	}
	return out
}

// AllDistricts returns the distinct district names in first-occurrence order.
func AllDistricts() []string {
	seen := make(map[string]bool)
	var districts []string
	for _, m := range Municipalities {
		if !seen[m.District] {
			seen[m.District] = true
			districts = append(districts, m.District)
		}
	}
	return districts
}

// SearchMunicipalities matches a case-insensitive substring against both the
// municipality and district names.
func SearchMunicipalities(query string) []Municipality {
	q := strings.ToLower(query)
	var out []Municipality
	for _, m := range Municipalities {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.District), q) {
			out = append(out, m)
		}
	}
	return out
}
