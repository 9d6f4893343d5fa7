package providers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/laveehere/wanderbot/internal/common"
	"github.com/laveehere/wanderbot/internal/travel"
)

const nominatimUserAgent = "wanderbot/1.0 (travel assistant)"

// NominatimProvider implements travel.PlaceProvider against the OSM
// Nominatim free-text search endpoint. Nominatim is keyless but asks for a
// descriptive User-Agent and at most one request per second, so calls are
// serialized through a local rate limit.
type NominatimProvider struct {
	name    string
	baseURL string
	client  *http.Client
	retry   retryPolicy
	circuit *gobreaker.CircuitBreaker

	mu        sync.Mutex
	rateLimit time.Duration
	lastCall  time.Time
}

func NewNominatimProvider(client *http.Client) *NominatimProvider {
	return &NominatimProvider{
		name:      "nominatim",
		baseURL:   "https://nominatim.openstreetmap.org/search",
		client:    client,
		retry:     defaultRetry,
		circuit:   newBreaker("nominatim"),
		rateLimit: 1 * time.Second,
	}
}

func (p *NominatimProvider) Name() string {
	return p.name
}

func (p *NominatimProvider) waitForSlot(ctx context.Context) error {
	p.mu.Lock()
	slot := p.lastCall.Add(p.rateLimit)
	if now := time.Now(); slot.Before(now) {
		slot = now
	}
	p.lastCall = slot
	p.mu.Unlock()

	wait := time.Until(slot)
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Search runs one free-text query and normalizes the hits. Records missing
// a display name or coordinates are dropped here, before ranking.
func (p *NominatimProvider) Search(ctx context.Context, query string, limit int) ([]travel.PlaceResult, error) {
	if limit <= 0 {
		limit = 10
	}

	if err := p.waitForSlot(ctx); err != nil {
		return nil, err
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", query)
		values.Set("format", "jsonv2")
		values.Set("limit", strconv.Itoa(limit))
		values.Set("addressdetails", "1")

		req, err := http.NewRequest(http.MethodGet, p.baseURL+"?"+values.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", nominatimUserAgent)
		return req, nil
	}

	var payload []struct {
		DisplayName string  `json:"display_name"`
		Name        string  `json:"name"`
		Lat         string  `json:"lat"`
		Lon         string  `json:"lon"`
		Class       string  `json:"class"`
		Type        string  `json:"type"`
		Importance  float64 `json:"importance"`
	}

	if err := getJSON(ctx, p.client, p.circuit, p.retry, buildRequest, &payload); err != nil {
		return nil, err
	}

	results := make([]travel.PlaceResult, 0, len(payload))
	for _, raw := range payload {
		name := common.FirstNonEmpty(raw.Name, firstSegment(raw.DisplayName))
		if name == "" {
			continue
		}

		lat, errLat := strconv.ParseFloat(raw.Lat, 64)
		lon, errLon := strconv.ParseFloat(raw.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}

		results = append(results, travel.PlaceResult{
			Name:       name,
			Address:    raw.DisplayName,
			Lat:        lat,
			Lon:        lon,
			Type:       raw.Type,
			Category:   raw.Class,
			Importance: raw.Importance,
			Source:     p.name,
		})
	}

	return results, nil
}

func firstSegment(displayName string) string {
	segment, _, _ := strings.Cut(displayName, ",")
	return strings.TrimSpace(segment)
}
