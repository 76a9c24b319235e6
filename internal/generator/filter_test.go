package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lusolens/server/internal/models"
)

func testRecords() []models.Property {
	return []models.Property{
		{ID: "1", Location: models.Location{District: "Lisboa", Municipality: "Lisboa"}, Price: models.Price{Current: 869400}},
		{ID: "2", Location: models.Location{District: "Lisboa", Municipality: "Cascais"}, Price: models.Price{Current: 945000}},
		{ID: "3", Location: models.Location{District: "Porto", Municipality: "Porto"}, Price: models.Price{Current: 627900}},
		{ID: "4", Location: models.Location{District: "Beja", Municipality: "Moura"}, Price: models.Price{Current: 127500}},
	}
}

func TestFilter_NoConstraints(t *testing.T) {
	records := testRecords()
	assert.Equal(t, records, Filter(records, models.Filters{}))
}

func TestFilter_ByDistrict(t *testing.T) {
	out := Filter(testRecords(), models.Filters{District: "Lisboa"})
	require.Len(t, out, 2)
	for _, p := range out {
		assert.Equal(t, "Lisboa", p.Location.District)
	}
}

func TestFilter_ByMunicipality(t *testing.T) {
	out := Filter(testRecords(), models.Filters{Municipality: "Porto"})
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)
}

func TestFilter_ByPriceRange(t *testing.T) {
	out := Filter(testRecords(), models.Filters{PriceMin: 600000, PriceMax: 900000})
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "3", out[1].ID)
}

func TestFilter_PredicatesCommute(t *testing.T) {
	records := testRecords()

	byDistrictThenPrice := Filter(Filter(records, models.Filters{District: "Lisboa"}), models.Filters{PriceMin: 900000})
	byPriceThenDistrict := Filter(Filter(records, models.Filters{PriceMin: 900000}), models.Filters{District: "Lisboa"})
	combined := Filter(records, models.Filters{District: "Lisboa", PriceMin: 900000})

	assert.Equal(t, byDistrictThenPrice, byPriceThenDistrict)
	assert.Equal(t, combined, byDistrictThenPrice)
}

func TestFilter_PreservesOrder(t *testing.T) {
	out := Filter(testRecords(), models.Filters{PriceMax: 1000000})
	var ids []string
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, models.Filters{District: "Lisboa"}))
	assert.Empty(t, Filter([]models.Property{}, models.Filters{}))
}

func TestFilter_NoMatches(t *testing.T) {
	assert.Empty(t, Filter(testRecords(), models.Filters{District: "Aveiro"}))
}
