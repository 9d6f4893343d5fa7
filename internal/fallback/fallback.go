// Package fallback holds the bundled demo datasets served whenever a live
// provider is disabled, fails, or returns nothing usable. Every lookup is
// total: unknown cities receive generic, well-formed content so handlers
// always have something to answer with.
package fallback

import (
	"fmt"
	"time"

	"github.com/laveehere/wanderbot/internal/travel"
)

// Library implements travel.FallbackLibrary over the static tables in
// data.go.
type Library struct{}

func New() *Library {
	return &Library{}
}

// Weather returns the canned weather for a city, or a mild default for
// cities outside the demo set.
func (l *Library) Weather(city string) travel.WeatherSnapshot {
	snap, ok := demoWeather[travel.CityKey(city)]
	if !ok {
		snap = travel.WeatherSnapshot{
			Temperature: 18,
			Humidity:    60,
			WindSpeed:   3.5,
			Pressure:    1013,
			Condition:   travel.ConditionClear,
			Description: "pleasant",
		}
	}
	snap.City = city
	snap.Timestamp = time.Now().UTC()
	snap.Source = travel.SourceDemo
	snap.Live = false
	return snap
}

// Places returns curated demo places for the city and category. Unknown
// cities or categories get synthesized generic entries.
func (l *Library) Places(city string, category travel.Category) []travel.PlaceResult {
	if byCategory, ok := demoPlaces[travel.CityKey(city)]; ok {
		if places, ok := byCategory[category]; ok && len(places) > 0 {
			return stampDemo(places)
		}
	}
	return genericPlaces(city, category)
}

// Articles returns demo event listings for the city.
func (l *Library) Articles(city string) []travel.NewsArticle {
	now := time.Now().UTC()
	titles, ok := demoEvents[travel.CityKey(city)]
	if !ok {
		titles = []string{
			"Seasonal festival on the main square",
			"Weekend craft and food market",
			"Open-air concert series",
		}
	}

	articles := make([]travel.NewsArticle, 0, len(titles))
	for i, title := range titles {
		articles = append(articles, travel.NewsArticle{
			Title:       fmt.Sprintf("%s: %s", city, title),
			Description: "Suggested from the offline demo guide.",
			URL:         "",
			PublishedAt: now.AddDate(0, 0, -i),
			Source:      travel.SourceDemo,
		})
	}
	return articles
}

// Clothing returns traditional clothing notes for the city.
func (l *Library) Clothing(city string) travel.ClothingAdvice {
	traditional, ok := demoClothing[travel.CityKey(city)]
	if !ok {
		traditional = []string{"Comfortable walking clothes and a light jacket work year round."}
	}
	return travel.ClothingAdvice{
		City:        city,
		Traditional: traditional,
		Source:      travel.SourceDemo,
	}
}

// Tips returns local recommendations for the city.
func (l *Library) Tips(city string) []string {
	tips, ok := demoTips[travel.CityKey(city)]
	if !ok {
		tips = []string{
			"Wander the old town early in the morning before the crowds arrive.",
			"Ask at a neighbourhood cafe for the owner's favourite lunch spot.",
			"Use public transport day passes; they usually pay off after two rides.",
		}
	}
	return tips
}

func stampDemo(places []travel.PlaceResult) []travel.PlaceResult {
	out := make([]travel.PlaceResult, len(places))
	copy(out, places)
	for i := range out {
		out[i].Source = travel.SourceDemo
	}
	return out
}

func genericPlaces(city string, category travel.Category) []travel.PlaceResult {
	names := map[travel.Category][]string{
		travel.CategoryCulture:  {"City History Museum", "Old Town Cathedral", "National Art Gallery"},
		travel.CategoryFood:     {"Central Food Market", "Old Town Restaurant Row", "Riverside Cafe Quarter"},
		travel.CategoryShopping: {"Main Street Shopping District", "Central Bazaar", "Artisan Market Hall"},
		travel.CategoryLocal:    {"Neighbourhood Market", "City Park Promenade", "Harbourside Walk"},
	}[category]
	if len(names) == 0 {
		names = []string{"Old Town Square", "City Viewpoint", "Central Park"}
	}

	out := make([]travel.PlaceResult, 0, len(names))
	for i, name := range names {
		out = append(out, travel.PlaceResult{
			Name:       name,
			Address:    city,
			Type:       string(category),
			Category:   string(category),
			Importance: 0.5 - float64(i)*0.1,
			Source:     travel.SourceDemo,
		})
	}
	return out
}
