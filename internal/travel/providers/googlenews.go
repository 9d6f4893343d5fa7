package providers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"github.com/laveehere/wanderbot/internal/travel"
)

// GoogleNewsProvider implements travel.NewsProvider over the Google News
// RSS search feed. It needs no API key, which makes it the secondary news
// source when NewsAPI is not configured.
type GoogleNewsProvider struct {
	name    string
	baseURL string
	client  *http.Client
	parser  *gofeed.Parser
	retry   retryPolicy
	circuit *gobreaker.CircuitBreaker
}

func NewGoogleNewsProvider(client *http.Client) *GoogleNewsProvider {
	return &GoogleNewsProvider{
		name:    "googlenews",
		baseURL: "https://news.google.com/rss/search",
		client:  client,
		parser:  gofeed.NewParser(),
		retry:   defaultRetry,
		circuit: newBreaker("googlenews"),
	}
}

func (p *GoogleNewsProvider) Name() string {
	return p.name
}

// Search fetches the RSS search feed for the query and maps items to
// articles. Items without a link or a parseable publish time are skipped.
func (p *GoogleNewsProvider) Search(ctx context.Context, query string, limit int) ([]travel.NewsArticle, error) {
	if limit <= 0 {
		limit = 5
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", query)
		values.Set("hl", "en-US")
		values.Set("gl", "US")
		values.Set("ceid", "US:en")
		return http.NewRequest(http.MethodGet, p.baseURL+"?"+values.Encode(), nil)
	}

	body, err := getBody(ctx, p.client, p.circuit, p.retry, buildRequest)
	if err != nil {
		return nil, err
	}

	feed, err := p.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse rss feed: %w", err)
	}

	articles := make([]travel.NewsArticle, 0, limit)
	for _, it := range feed.Items {
		if len(articles) >= limit {
			break
		}
		if it.Title == "" || it.Link == "" || it.PublishedParsed == nil {
			continue
		}

		source := p.name
		if feed.Title != "" {
			source = feed.Title
		}

		articles = append(articles, travel.NewsArticle{
			Title:       it.Title,
			Description: it.Description,
			URL:         it.Link,
			PublishedAt: *it.PublishedParsed,
			Source:      source,
		})
	}

	return articles, nil
}
