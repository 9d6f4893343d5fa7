package travel

import (
	"strings"
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// Category is one of the fixed set of travel question categories a user
// message can be classified into.
type Category string

const (
	CategoryWeather  Category = "weather"
	CategoryFood     Category = "food"
	CategoryCulture  Category = "culture"
	CategoryEvents   Category = "events"
	CategoryPlaces   Category = "places"
	CategoryShopping Category = "shopping"
	CategoryClothing Category = "clothing"
	CategoryLocal    Category = "local"
	CategoryGeneral  Category = "general"
)

// Categories lists every supported category in classification priority order.
func Categories() []Category {
	return []Category{
		CategoryWeather,
		CategoryFood,
		CategoryCulture,
		CategoryShopping,
		CategoryEvents,
		CategoryClothing,
		CategoryPlaces,
		CategoryLocal,
		CategoryGeneral,
	}
}

// SourceDemo marks results synthesized from the bundled demo datasets
// rather than a live provider call.
const SourceDemo = "demo"

// CityKey returns the canonical lowercase key used to index a city in
// curated tables and caches.
func CityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// WeatherSnapshot is the normalized weather view for a city at a point in time.
type WeatherSnapshot struct {
	City        string    `json:"city"`
	Timestamp   time.Time `json:"timestamp"` // always UTC
	Temperature float64   `json:"temperatureC"`
	Humidity    float64   `json:"humidityPercent"`
	WindSpeed   float64   `json:"windSpeed"`
	Pressure    float64   `json:"pressureHpa"`
	Condition   Condition `json:"condition"`
	Description string    `json:"description,omitempty"`

	// Source names the provider the snapshot came from; Live is false for
	// demo fallback data.
	Source string `json:"source"`
	Live   bool   `json:"live"`
}

// PlaceResult is a normalized geocoder hit.
// Name is always non-empty; Lat/Lon are present whenever the record
// survived normalization (hits without coordinates are dropped upstream).
type PlaceResult struct {
	Name       string  `json:"name"`
	Address    string  `json:"address,omitempty"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Type       string  `json:"type,omitempty"`
	Category   string  `json:"category,omitempty"`
	Importance float64 `json:"importance"`
	Source     string  `json:"source"`
}

// NewsArticle is a normalized news/events search hit.
type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
}

// ClothingAdvice combines static traditional-clothing notes for a city
// with an optional weather-informed dressing suggestion.
type ClothingAdvice struct {
	City        string   `json:"city"`
	Traditional []string `json:"traditional"`
	Suggestion  string   `json:"suggestion,omitempty"`
	Source      string   `json:"source"`
}

// ChatReply is the structured answer to one user message. Exactly one of
// the payload fields is populated per intent; Message is a short
// human-readable summary the rendering surface may use directly.
type ChatReply struct {
	SessionID  string  `json:"sessionId"`
	City       string  `json:"city"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message"`
	Fallback   bool    `json:"fallback"`

	Weather  *WeatherSnapshot `json:"weather,omitempty"`
	Places   []PlaceResult    `json:"places,omitempty"`
	Articles []NewsArticle    `json:"articles,omitempty"`
	Clothing *ClothingAdvice  `json:"clothing,omitempty"`
	Tips     []string         `json:"tips,omitempty"`
}
