package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig is read once at startup and treated as read-only afterwards.
type AppConfig struct {
	OpenWeatherAPIKey string
	NewsAPIKey        string
	GeminiAPIKey      string
	GeminiModel       string

	// Derived enablement: a capability is live only when its key is real
	// (present and not a placeholder sentinel). Places (Nominatim) is
	// keyless and defaults to enabled.
	WeatherEnabled bool
	NewsEnabled    bool
	AIEnabled      bool
	PlacesEnabled  bool

	// Preset cities the assistant carries demo content for.
	Cities      []string
	DefaultCity string

	// Per-provider cache TTLs.
	WeatherTTL time.Duration
	PlacesTTL  time.Duration
	NewsTTL    time.Duration

	// WarmInterval controls the periodic weather cache warm.
	WarmInterval time.Duration

	HTTPTimeout time.Duration
	QueryDelay  time.Duration
	Port        string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found; using process environment")
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.NewsAPIKey = os.Getenv("NEWSAPI_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = os.Getenv("GEMINI_MODEL")

	cfg.WeatherEnabled = !isPlaceholder(cfg.OpenWeatherAPIKey)
	cfg.NewsEnabled = !isPlaceholder(cfg.NewsAPIKey)
	cfg.AIEnabled = !isPlaceholder(cfg.GeminiAPIKey)
	cfg.PlacesEnabled = getenvBool("PLACES_LIVE", true)

	cities := getenvDefault("CITIES", "tokyo,paris,london,delhi,new york")
	for _, c := range strings.Split(cities, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			cfg.Cities = append(cfg.Cities, c)
		}
	}
	if len(cfg.Cities) == 0 {
		return nil, fmt.Errorf("CITIES must name at least one city")
	}

	cfg.DefaultCity = getenvDefault("DEFAULT_CITY", cfg.Cities[0])

	var err error
	if cfg.WeatherTTL, err = getenvDuration("WEATHER_CACHE_TTL", "10m"); err != nil {
		return nil, err
	}
	if cfg.PlacesTTL, err = getenvDuration("PLACES_CACHE_TTL", "30m"); err != nil {
		return nil, err
	}
	if cfg.NewsTTL, err = getenvDuration("NEWS_CACHE_TTL", "15m"); err != nil {
		return nil, err
	}
	if cfg.WarmInterval, err = getenvDuration("WARM_INTERVAL", "15m"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.QueryDelay, err = getenvDuration("QUERY_DELAY", "100ms"); err != nil {
		return nil, err
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

// isPlaceholder reports whether key is absent or one of the sentinel
// values people leave in sample .env files.
func isPlaceholder(key string) bool {
	k := strings.ToLower(strings.TrimSpace(key))
	switch {
	case k == "", k == "changeme", k == "demo":
		return true
	case strings.HasPrefix(k, "your_"):
		return true
	case strings.Contains(k, "api_key_here"):
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
