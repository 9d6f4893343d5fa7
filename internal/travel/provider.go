package travel

import (
	"context"
	"errors"
)

// ErrNoResults is returned by providers and live search paths when a call
// succeeded but produced nothing usable; callers treat it like any other
// provider failure and route to fallback data.
var ErrNoResults = errors.New("no usable results")

// WeatherProvider abstracts a current-weather data source (e.g. OpenWeatherMap).
type WeatherProvider interface {
	Name() string
	Current(ctx context.Context, city string) (WeatherSnapshot, error)
}

// PlaceProvider abstracts a free-text geocoded place search (e.g. Nominatim).
// Implementations drop hits missing a display name or coordinates.
type PlaceProvider interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]PlaceResult, error)
}

// NewsProvider abstracts a news/events search source. Providers are tried
// in the order they were configured; the first non-empty answer wins.
type NewsProvider interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]NewsArticle, error)
}

// IntentResult is the outcome of classifying one user message.
type IntentResult struct {
	Category   Category `json:"intent"`
	Confidence float64  `json:"confidence"`
	Source     string   `json:"source"`
}

// Classifier maps one free-text message to exactly one category. Total:
// implementations never fail and never return a category outside the
// fixed set.
type Classifier interface {
	Classify(ctx context.Context, message string) IntentResult
}

// QuerySuggester is the optional hosted-model strategy for planning place
// search queries. A nil suggester (or any error) degrades the planner to
// its curated/template tables.
type QuerySuggester interface {
	SuggestQueries(ctx context.Context, city string, category Category) ([]string, error)
}

// FallbackLibrary is the static demo dataset consulted whenever a live
// path is disabled, fails, or comes back empty. Every method is total:
// unknown cities receive generic, well-formed content.
type FallbackLibrary interface {
	Weather(city string) WeatherSnapshot
	Places(city string, category Category) []PlaceResult
	Articles(city string) []NewsArticle
	Clothing(city string) ClothingAdvice
	Tips(city string) []string
}
