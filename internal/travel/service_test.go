package travel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stub collaborators. The real fallback library and classifiers live in
// their own packages; the service only needs the contracts.

type stubFallback struct{}

func (stubFallback) Weather(city string) WeatherSnapshot {
	return WeatherSnapshot{City: city, Temperature: 20, Condition: ConditionClear, Source: SourceDemo}
}

func (stubFallback) Places(city string, category Category) []PlaceResult {
	return []PlaceResult{{Name: "Demo " + string(category), Address: city, Source: SourceDemo}}
}

func (stubFallback) Articles(city string) []NewsArticle {
	return []NewsArticle{{Title: city + " demo event", Source: SourceDemo}}
}

func (stubFallback) Clothing(city string) ClothingAdvice {
	return ClothingAdvice{City: city, Traditional: []string{"demo notes"}, Source: SourceDemo}
}

func (stubFallback) Tips(city string) []string {
	return []string{"demo tip"}
}

type stubClassifier struct {
	category Category
}

func (c stubClassifier) Classify(context.Context, string) IntentResult {
	return IntentResult{Category: c.category, Confidence: 0.9, Source: "stub"}
}

type panicClassifier struct{}

func (panicClassifier) Classify(context.Context, string) IntentResult {
	panic("boom")
}

type stubWeatherProvider struct {
	calls int
	snap  WeatherSnapshot
	err   error
}

func (p *stubWeatherProvider) Name() string { return "stub-weather" }

func (p *stubWeatherProvider) Current(_ context.Context, city string) (WeatherSnapshot, error) {
	p.calls++
	if p.err != nil {
		return WeatherSnapshot{}, p.err
	}
	snap := p.snap
	snap.City = city
	snap.Live = true
	snap.Source = p.Name()
	return snap, nil
}

type stubPlaceProvider struct {
	calls int
	hits  []PlaceResult
	err   error
}

func (p *stubPlaceProvider) Name() string { return "stub-places" }

func (p *stubPlaceProvider) Search(context.Context, string, int) ([]PlaceResult, error) {
	p.calls++
	return p.hits, p.err
}

type stubNewsProvider struct {
	name     string
	calls    int
	articles []NewsArticle
	err      error
}

func (p *stubNewsProvider) Name() string { return p.name }

func (p *stubNewsProvider) Search(context.Context, string, int) ([]NewsArticle, error) {
	p.calls++
	return p.articles, p.err
}

func newTestService(opts Options) *Service {
	if opts.Fallback == nil {
		opts.Fallback = stubFallback{}
	}
	if opts.Classifier == nil {
		opts.Classifier = stubClassifier{category: CategoryGeneral}
	}
	if len(opts.Cities) == 0 {
		opts.Cities = []string{"tokyo", "paris"}
	}
	opts.QueryDelay = time.Millisecond
	return NewService(opts)
}

func TestWeatherDisabledUsesFallback(t *testing.T) {
	s := newTestService(Options{})

	snap := s.Weather(context.Background(), "tokyo")

	assert.Equal(t, SourceDemo, snap.Source)
	assert.False(t, snap.Live)
	assert.Equal(t, "tokyo", snap.City)
}

func TestWeatherCachesLiveResult(t *testing.T) {
	provider := &stubWeatherProvider{snap: WeatherSnapshot{Temperature: 25, Condition: ConditionClear}}
	s := newTestService(Options{Weather: provider})

	first := s.Weather(context.Background(), "tokyo")
	second := s.Weather(context.Background(), "tokyo")

	assert.Equal(t, 1, provider.calls, "second request within TTL must not hit the provider")
	assert.Equal(t, first, second)
	assert.True(t, first.Live)
	assert.Equal(t, int64(1), s.Stats()["stub-weather"])
}

func TestWeatherFailureFallsBackWithoutCaching(t *testing.T) {
	provider := &stubWeatherProvider{err: errors.New("down")}
	s := newTestService(Options{Weather: provider})

	snap := s.Weather(context.Background(), "tokyo")
	assert.Equal(t, SourceDemo, snap.Source)

	s.Weather(context.Background(), "tokyo")
	assert.Equal(t, 2, provider.calls, "fallback results must not be cached")
	assert.Zero(t, s.Stats()["stub-weather"])
}

func TestPlacesRanksLiveHits(t *testing.T) {
	provider := &stubPlaceProvider{hits: []PlaceResult{
		{Name: "Tokyo National Museum", Lat: 35.7188, Lon: 139.7765, Type: "museum", Importance: 0.8},
		{Name: "tokyo national museum", Lat: 35.7188, Lon: 139.7766, Type: "museum", Importance: 0.8},
		{Name: "Ueno Station", Lat: 35.7141, Lon: 139.7774, Type: "station", Importance: 0.9},
	}}
	s := newTestService(Options{Places: provider})

	places, live := s.Places(context.Background(), "tokyo", CategoryCulture)

	require.True(t, live)
	require.Len(t, places, 1, "duplicates folded and off-category hits dropped")
	assert.Equal(t, "Tokyo National Museum", places[0].Name)

	// One provider call per planned query.
	assert.Equal(t, 5, provider.calls)

	// Cached on the second request.
	s.Places(context.Background(), "tokyo", CategoryCulture)
	assert.Equal(t, 5, provider.calls)
}

func TestPlacesEmptyLiveResultFallsBack(t *testing.T) {
	provider := &stubPlaceProvider{hits: nil}
	s := newTestService(Options{Places: provider})

	places, live := s.Places(context.Background(), "tokyo", CategoryCulture)

	assert.False(t, live)
	require.NotEmpty(t, places)
	assert.Equal(t, SourceDemo, places[0].Source)
}

func TestNewsTriesProvidersInOrder(t *testing.T) {
	broken := &stubNewsProvider{name: "first", err: errors.New("401")}
	working := &stubNewsProvider{name: "second", articles: []NewsArticle{{Title: "ok", URL: "https://example.com"}}}
	s := newTestService(Options{News: []NewsProvider{broken, working}})

	articles, live := s.News(context.Background(), "paris")

	assert.True(t, live)
	require.Len(t, articles, 1)
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, working.calls)
	assert.Equal(t, int64(1), s.Stats()["second"])
}

func TestHandleMessageWeatherIntent(t *testing.T) {
	provider := &stubWeatherProvider{snap: WeatherSnapshot{Temperature: 25, Condition: ConditionClear}}
	s := newTestService(Options{
		Classifier: stubClassifier{category: CategoryWeather},
		Weather:    provider,
	})

	reply := s.HandleMessage(context.Background(), "", "how is the weather in tokyo?")

	assert.NotEmpty(t, reply.SessionID)
	assert.Equal(t, "weather", reply.Intent)
	assert.Equal(t, "tokyo", reply.City)
	require.NotNil(t, reply.Weather)
	assert.False(t, reply.Fallback)
	assert.NotEmpty(t, reply.Message)
}

func TestHandleMessageRemembersSessionCity(t *testing.T) {
	s := newTestService(Options{Classifier: stubClassifier{category: CategoryGeneral}})

	first := s.HandleMessage(context.Background(), "sess-1", "tell me about paris")
	assert.Equal(t, "paris", first.City)

	second := s.HandleMessage(context.Background(), "sess-1", "and the food?")
	assert.Equal(t, "paris", second.City)
}

func TestHandleMessageDefaultsCity(t *testing.T) {
	s := newTestService(Options{DefaultCity: "tokyo"})

	reply := s.HandleMessage(context.Background(), "sess-2", "hello")

	assert.Equal(t, "tokyo", reply.City)
}

func TestHandleMessageGeneralIntentGivesTips(t *testing.T) {
	s := newTestService(Options{Classifier: stubClassifier{category: CategoryGeneral}})

	reply := s.HandleMessage(context.Background(), "", "hello")

	assert.Equal(t, "general", reply.Intent)
	assert.NotEmpty(t, reply.Tips)
	assert.True(t, reply.Fallback)
}

func TestHandleMessageClothingCombinesWeather(t *testing.T) {
	provider := &stubWeatherProvider{snap: WeatherSnapshot{Temperature: 2, Condition: ConditionSnow}}
	s := newTestService(Options{
		Classifier: stubClassifier{category: CategoryClothing},
		Weather:    provider,
	})

	reply := s.HandleMessage(context.Background(), "", "what should I wear in tokyo")

	require.NotNil(t, reply.Clothing)
	assert.NotEmpty(t, reply.Clothing.Traditional)
	assert.Contains(t, reply.Clothing.Suggestion, "warmly")
	assert.False(t, reply.Fallback)
}

func TestHandleMessageLocalOverview(t *testing.T) {
	s := newTestService(Options{Classifier: stubClassifier{category: CategoryLocal}})

	reply := s.HandleMessage(context.Background(), "", "any local tips for paris")

	assert.NotNil(t, reply.Weather)
	assert.NotEmpty(t, reply.Places)
	assert.NotEmpty(t, reply.Tips)
}

func TestHandleMessageRecoversFromPanic(t *testing.T) {
	s := newTestService(Options{Classifier: panicClassifier{}})

	reply := s.HandleMessage(context.Background(), "sess-3", "anything")

	assert.Equal(t, "sess-3", reply.SessionID)
	assert.Equal(t, "general", reply.Intent)
	assert.True(t, reply.Fallback)
	assert.NotEmpty(t, reply.Message)
}
