package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/laveehere/wanderbot/internal/travel"
)

// NewsAPIProvider implements travel.NewsProvider for newsapi.org.
type NewsAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	retry   retryPolicy
	circuit *gobreaker.CircuitBreaker
}

func NewNewsAPIProvider(client *http.Client, apiKey string) *NewsAPIProvider {
	return &NewsAPIProvider{
		name:    "newsapi",
		apiKey:  apiKey,
		baseURL: "https://newsapi.org/v2/everything",
		client:  client,
		retry:   defaultRetry,
		circuit: newBreaker("newsapi"),
	}
}

func (p *NewsAPIProvider) Name() string {
	return p.name
}

// Search queries NewsAPI sorted by publish time and normalizes the
// articles. Articles without a title or URL are dropped.
func (p *NewsAPIProvider) Search(ctx context.Context, query string, limit int) ([]travel.NewsArticle, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("newsapi key is not configured")
	}
	if limit <= 0 {
		limit = 5
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", query)
		values.Set("sortBy", "publishedAt")
		values.Set("pageSize", strconv.Itoa(limit))
		values.Set("language", "en")

		req, err := http.NewRequest(http.MethodGet, p.baseURL+"?"+values.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Api-Key", p.apiKey)
		return req, nil
	}

	var payload struct {
		Status   string `json:"status"`
		Articles []struct {
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			Title       string    `json:"title"`
			Description string    `json:"description"`
			URL         string    `json:"url"`
			PublishedAt time.Time `json:"publishedAt"`
		} `json:"articles"`
	}

	if err := getJSON(ctx, p.client, p.circuit, p.retry, buildRequest, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q", payload.Status)
	}

	articles := make([]travel.NewsArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		articles = append(articles, travel.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
		})
	}

	return articles, nil
}
