package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = retryPolicy{maxRetries: 0, initialInterval: time.Millisecond}

func TestOpenWeatherCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "Tokyo", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"dt": 1700000000,
			"main": {"temp": 21.5, "humidity": 60, "pressure": 1012},
			"wind": {"speed": 4.2},
			"weather": [{"main": "Clouds", "description": "scattered clouds"}]
		}`))
	}))
	defer srv.Close()

	p := NewOpenWeatherProvider(srv.Client(), "secret")
	p.baseURL = srv.URL
	p.retry = fastRetry

	snap, err := p.Current(context.Background(), "Tokyo")
	require.NoError(t, err)

	assert.Equal(t, "Tokyo", snap.City)
	assert.Equal(t, 21.5, snap.Temperature)
	assert.Equal(t, 60.0, snap.Humidity)
	assert.Equal(t, 1012.0, snap.Pressure)
	assert.Equal(t, "cloudy", string(snap.Condition))
	assert.Equal(t, "scattered clouds", snap.Description)
	assert.True(t, snap.Live)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), snap.Timestamp)
}

func TestOpenWeatherNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "city not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOpenWeatherProvider(srv.Client(), "secret")
	p.baseURL = srv.URL
	p.retry = fastRetry

	_, err := p.Current(context.Background(), "Nowhere")
	assert.Error(t, err)
}

func TestClientErrorStatusIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "city not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOpenWeatherProvider(srv.Client(), "secret")
	p.baseURL = srv.URL
	p.retry = retryPolicy{maxRetries: 3, initialInterval: time.Millisecond}

	_, err := p.Current(context.Background(), "Nowhere")
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "a deterministic 4xx must fail without retries")
}

func TestOpenWeatherMissingKey(t *testing.T) {
	p := NewOpenWeatherProvider(http.DefaultClient, "")

	_, err := p.Current(context.Background(), "Tokyo")
	assert.Error(t, err)
}

func TestNominatimSearchNormalizesHits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "museums Tokyo", r.URL.Query().Get("q"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"display_name": "Tokyo National Museum, Uenokoen, Taito, Tokyo, Japan",
			 "name": "Tokyo National Museum",
			 "lat": "35.7188", "lon": "139.7765",
			 "class": "tourism", "type": "museum", "importance": 0.71},
			{"display_name": "Somewhere, Tokyo",
			 "lat": "not-a-number", "lon": "139.0"},
			{"display_name": "",
			 "lat": "35.0", "lon": "139.0"}
		]`))
	}))
	defer srv.Close()

	p := NewNominatimProvider(srv.Client())
	p.baseURL = srv.URL
	p.retry = fastRetry
	p.rateLimit = 0

	hits, err := p.Search(context.Background(), "museums Tokyo", 10)
	require.NoError(t, err)

	// Hits with bad coordinates or no name are dropped before ranking.
	require.Len(t, hits, 1)
	assert.Equal(t, "Tokyo National Museum", hits[0].Name)
	assert.Equal(t, 35.7188, hits[0].Lat)
	assert.Equal(t, "museum", hits[0].Type)
	assert.Equal(t, "tourism", hits[0].Category)
	assert.Equal(t, 0.71, hits[0].Importance)
	assert.Equal(t, "nominatim", hits[0].Source)
}

func TestNominatimSpacesConsecutiveCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := NewNominatimProvider(srv.Client())
	p.baseURL = srv.URL
	p.retry = fastRetry
	p.rateLimit = 120 * time.Millisecond

	start := time.Now()
	_, err := p.Search(context.Background(), "first", 1)
	require.NoError(t, err)
	_, err = p.Search(context.Background(), "second", 1)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), p.rateLimit,
		"back-to-back searches must be spaced by the rate limit")
}

func TestNominatimRateWaitHonorsContext(t *testing.T) {
	p := NewNominatimProvider(http.DefaultClient)
	p.rateLimit = time.Minute
	p.lastCall = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Search(ctx, "anything", 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNominatimNameFromDisplayName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"display_name": "Borough Market, Southwark, London",
			 "lat": "51.5055", "lon": "-0.0910", "importance": 0.6}
		]`))
	}))
	defer srv.Close()

	p := NewNominatimProvider(srv.Client())
	p.baseURL = srv.URL
	p.retry = fastRetry
	p.rateLimit = 0

	hits, err := p.Search(context.Background(), "borough market", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Borough Market", hits[0].Name)
}

func TestNewsAPISearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"source": {"name": "Example Times"},
				 "title": "Festival season opens",
				 "description": "Autumn festivals around the city.",
				 "url": "https://example.com/festival",
				 "publishedAt": "2026-08-30T10:00:00Z"},
				{"source": {"name": "No URL Daily"}, "title": "Dropped", "url": ""}
			]
		}`))
	}))
	defer srv.Close()

	p := NewNewsAPIProvider(srv.Client(), "secret")
	p.baseURL = srv.URL
	p.retry = fastRetry

	articles, err := p.Search(context.Background(), "tokyo events culture", 5)
	require.NoError(t, err)

	require.Len(t, articles, 1)
	assert.Equal(t, "Festival season opens", articles[0].Title)
	assert.Equal(t, "Example Times", articles[0].Source)
	assert.Equal(t, "https://example.com/festival", articles[0].URL)
}

func TestNewsAPIErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "error", "articles": []}`))
	}))
	defer srv.Close()

	p := NewNewsAPIProvider(srv.Client(), "secret")
	p.baseURL = srv.URL
	p.retry = fastRetry

	_, err := p.Search(context.Background(), "anything", 5)
	assert.Error(t, err)
}

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Google News</title>
<item>
  <title>City festival draws crowds</title>
  <link>https://example.com/a</link>
  <description>Big turnout downtown.</description>
  <pubDate>Sat, 29 Aug 2026 12:00:00 GMT</pubDate>
</item>
<item>
  <title>No date item</title>
  <link>https://example.com/b</link>
</item>
</channel></rss>`

func TestGoogleNewsSearchParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "paris events culture", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	p := NewGoogleNewsProvider(srv.Client())
	p.baseURL = srv.URL
	p.retry = fastRetry

	articles, err := p.Search(context.Background(), "paris events culture", 5)
	require.NoError(t, err)

	// The item without a publish date is skipped.
	require.Len(t, articles, 1)
	assert.Equal(t, "City festival draws crowds", articles[0].Title)
	assert.Equal(t, "https://example.com/a", articles[0].URL)
	assert.Equal(t, "Google News", articles[0].Source)
}
