package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laveehere/wanderbot/internal/travel"
)

var presetCities = []string{"tokyo", "paris", "london", "delhi", "new york"}

var placeCategories = []travel.Category{
	travel.CategoryCulture,
	travel.CategoryFood,
	travel.CategoryShopping,
	travel.CategoryPlaces,
	travel.CategoryLocal,
}

// Every (city, category) pair must yield non-empty, well-formed demo
// content, including cities outside the preset table.
func TestFallbackTotality(t *testing.T) {
	lib := New()
	cities := append([]string{}, presetCities...)
	cities = append(cities, "Atlantis", "")

	for _, city := range cities {
		snap := lib.Weather(city)
		assert.Equal(t, travel.SourceDemo, snap.Source)
		assert.False(t, snap.Live)
		assert.NotEqual(t, travel.Condition(""), snap.Condition)

		for _, cat := range placeCategories {
			places := lib.Places(city, cat)
			require.NotEmptyf(t, places, "city=%q category=%q", city, cat)
			for _, p := range places {
				assert.NotEmpty(t, p.Name)
				assert.Equal(t, travel.SourceDemo, p.Source)
			}
		}

		assert.NotEmpty(t, lib.Articles(city))
		assert.NotEmpty(t, lib.Clothing(city).Traditional)
		assert.NotEmpty(t, lib.Tips(city))
	}
}

func TestTokyoCultureFallback(t *testing.T) {
	lib := New()

	places := lib.Places("tokyo", travel.CategoryCulture)

	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name)
		assert.Equal(t, travel.SourceDemo, p.Source)
		assert.NotZero(t, p.Lat)
		assert.NotZero(t, p.Lon)
	}
	assert.Contains(t, names, "Senso-ji Temple")
	assert.Contains(t, names, "Meiji Shrine")
	assert.Contains(t, names, "Tokyo National Museum")
}

func TestCityKeyIsCaseInsensitive(t *testing.T) {
	lib := New()

	upper := lib.Places("TOKYO", travel.CategoryCulture)
	lower := lib.Places("tokyo", travel.CategoryCulture)

	require.Equal(t, len(lower), len(upper))
	assert.Equal(t, lower[0].Name, upper[0].Name)
}

func TestStampDemoDoesNotMutateTable(t *testing.T) {
	lib := New()

	first := lib.Places("paris", travel.CategoryFood)
	first[0].Name = "mutated"

	second := lib.Places("paris", travel.CategoryFood)
	assert.NotEqual(t, "mutated", second[0].Name)
}
