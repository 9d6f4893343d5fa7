package travel

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/laveehere/wanderbot/internal/cache"
)

const (
	defaultWeatherTTL = 10 * time.Minute
	defaultPlacesTTL  = 30 * time.Minute
	defaultNewsTTL    = 15 * time.Minute

	defaultQueryDelay = 100 * time.Millisecond

	perQueryLimit = 10
	newsPageSize  = 5
)

// Options wires the service's collaborators. A nil Weather/Places provider
// or empty News slice marks that capability disabled; the corresponding
// handlers then answer from the fallback library only.
type Options struct {
	Classifier Classifier
	Weather    WeatherProvider
	Places     PlaceProvider
	News       []NewsProvider
	Suggester  QuerySuggester
	Fallback   FallbackLibrary

	Cities      []string
	DefaultCity string

	WeatherTTL time.Duration
	PlacesTTL  time.Duration
	NewsTTL    time.Duration

	// QueryDelay spaces out the serial geocoder queries of one place
	// search, to stay a polite API citizen.
	QueryDelay time.Duration
}

// Service orchestrates the whole pipeline: classify intent, resolve the
// city, dispatch to exactly one category handler, and always answer with
// live, cached or demo content. No handler ever returns an error.
type Service struct {
	classifier Classifier
	weather    WeatherProvider
	places     PlaceProvider
	news       []NewsProvider
	planner    *Planner
	fallback   FallbackLibrary
	sessions   *SessionStore
	stats      *CallStats

	cities     []string
	queryDelay time.Duration

	weatherCache *cache.Cache[WeatherSnapshot]
	placesCache  *cache.Cache[[]PlaceResult]
	newsCache    *cache.Cache[[]NewsArticle]
}

// NewService creates a Service from Options, applying defaults for unset
// TTLs and the query delay.
func NewService(opts Options) *Service {
	if opts.WeatherTTL <= 0 {
		opts.WeatherTTL = defaultWeatherTTL
	}
	if opts.PlacesTTL <= 0 {
		opts.PlacesTTL = defaultPlacesTTL
	}
	if opts.NewsTTL <= 0 {
		opts.NewsTTL = defaultNewsTTL
	}
	if opts.QueryDelay <= 0 {
		opts.QueryDelay = defaultQueryDelay
	}
	if opts.DefaultCity == "" && len(opts.Cities) > 0 {
		opts.DefaultCity = opts.Cities[0]
	}

	return &Service{
		classifier:   opts.Classifier,
		weather:      opts.Weather,
		places:       opts.Places,
		news:         opts.News,
		planner:      NewPlanner(opts.Suggester),
		fallback:     opts.Fallback,
		sessions:     NewSessionStore(opts.DefaultCity),
		stats:        NewCallStats(),
		cities:       opts.Cities,
		queryDelay:   opts.QueryDelay,
		weatherCache: cache.New[WeatherSnapshot](opts.WeatherTTL),
		placesCache:  cache.New[[]PlaceResult](opts.PlacesTTL),
		newsCache:    cache.New[[]NewsArticle](opts.NewsTTL),
	}
}

// Cities lists the preset cities the assistant knows demo content for.
func (s *Service) Cities() []string {
	return s.cities
}

// Stats reports completed live calls per provider.
func (s *Service) Stats() map[string]int64 {
	return s.stats.Snapshot()
}

// HandleMessage answers one user message. It never fails: classification
// is total, every handler terminates in fallback data, and a last-resort
// recover converts programming errors into a generic retry message.
func (s *Service) HandleMessage(ctx context.Context, sessionID, message string) (reply ChatReply) {
	sessionID = s.sessions.Ensure(sessionID)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("message", message).Msg("message handler panicked")
			reply = ChatReply{
				SessionID: sessionID,
				Intent:    string(CategoryGeneral),
				Message:   "Sorry, something went wrong on my side. Please try that again.",
				Fallback:  true,
			}
		}
	}()

	res := s.classifier.Classify(ctx, message)
	city := s.resolveCity(sessionID, message)

	log.Info().Str("session", sessionID).Str("intent", string(res.Category)).
		Float64("confidence", res.Confidence).Str("city", city).Msg("handling message")

	reply = ChatReply{
		SessionID:  sessionID,
		City:       city,
		Intent:     string(res.Category),
		Confidence: res.Confidence,
	}

	switch res.Category {
	case CategoryWeather:
		snap := s.Weather(ctx, city)
		reply.Weather = &snap
		reply.Fallback = !snap.Live
		reply.Message = weatherMessage(snap)

	case CategoryFood, CategoryCulture, CategoryShopping, CategoryPlaces:
		places, live := s.Places(ctx, city, res.Category)
		reply.Places = places
		reply.Fallback = !live
		reply.Message = placesMessage(city, res.Category, live)

	case CategoryEvents:
		articles, live := s.News(ctx, city)
		reply.Articles = articles
		reply.Fallback = !live
		if live {
			reply.Message = fmt.Sprintf("Here is what's happening around %s:", city)
		} else {
			reply.Message = fmt.Sprintf("I could not reach live listings, but these are usually on in %s:", city)
		}

	case CategoryClothing:
		advice, live := s.Clothing(ctx, city)
		reply.Clothing = &advice
		reply.Fallback = !live
		reply.Message = fmt.Sprintf("About dressing for %s:", city)

	case CategoryLocal:
		s.localOverview(ctx, city, &reply)

	default:
		reply.Tips = s.fallback.Tips(city)
		reply.Fallback = true
		reply.Message = fmt.Sprintf(
			"I can help with weather, food, culture, shopping, events, clothing and places to visit in %s. A few tips to start:", city)
	}

	return reply
}

// resolveCity picks the city for this message: an explicit mention wins
// (and updates the session), otherwise the session's current city.
func (s *Service) resolveCity(sessionID, message string) string {
	lowered := strings.ToLower(message)
	for _, city := range s.cities {
		if strings.Contains(lowered, CityKey(city)) {
			s.sessions.SetCity(sessionID, city)
			return city
		}
	}
	return s.sessions.City(sessionID)
}

// Weather returns current weather for the city: cached, live, or demo.
func (s *Service) Weather(ctx context.Context, city string) WeatherSnapshot {
	key := cache.Key("weather", city)
	snap, _ := cache.WithFallback(ctx, s.weatherCache, key, s.weather != nil,
		func(ctx context.Context) (WeatherSnapshot, error) {
			snap, err := s.weather.Current(ctx, city)
			if err != nil {
				log.Warn().Err(err).Str("city", city).Msg("live weather fetch failed")
				return WeatherSnapshot{}, err
			}
			s.stats.Record(s.weather.Name())
			return snap, nil
		},
		func() WeatherSnapshot {
			return s.fallback.Weather(city)
		},
	)
	return snap
}

// Places returns ranked category places for the city. The bool is true
// for live or cached geocoder results, false for demo fallback.
func (s *Service) Places(ctx context.Context, city string, category Category) ([]PlaceResult, bool) {
	key := cache.Key("places", city, string(category))
	return cache.WithFallback(ctx, s.placesCache, key, s.places != nil,
		func(ctx context.Context) ([]PlaceResult, error) {
			return s.searchPlacesLive(ctx, city, category)
		},
		func() []PlaceResult {
			return s.fallback.Places(city, category)
		},
	)
}

// searchPlacesLive runs the planned queries serially against the geocoder
// with a small delay between them, then ranks the union. Individual query
// failures are logged and skipped; zero surviving results is an error so
// the caller routes to fallback.
func (s *Service) searchPlacesLive(ctx context.Context, city string, category Category) ([]PlaceResult, error) {
	queries := s.planner.Plan(ctx, city, category)

	var raw []PlaceResult
	for i, q := range queries {
		if i > 0 {
			if err := sleepCtx(ctx, s.queryDelay); err != nil {
				return nil, err
			}
		}

		hits, err := s.places.Search(ctx, q, perQueryLimit)
		if err != nil {
			log.Warn().Err(err).Str("query", q).Msg("place query failed")
			continue
		}
		s.stats.Record(s.places.Name())
		raw = append(raw, hits...)
	}

	ranked := RankPlaces(raw, category, maxRankedPlaces)
	if len(ranked) == 0 {
		return nil, ErrNoResults
	}
	return ranked, nil
}

// News returns recent event/news articles for the city, trying each
// configured provider in order until one answers.
func (s *Service) News(ctx context.Context, city string) ([]NewsArticle, bool) {
	key := cache.Key("news", city)
	return cache.WithFallback(ctx, s.newsCache, key, len(s.news) > 0,
		func(ctx context.Context) ([]NewsArticle, error) {
			query := city + " events culture"
			for _, p := range s.news {
				articles, err := p.Search(ctx, query, newsPageSize)
				if err != nil {
					log.Warn().Err(err).Str("provider", p.Name()).Str("city", city).Msg("news search failed")
					continue
				}
				if len(articles) == 0 {
					continue
				}
				s.stats.Record(p.Name())
				return articles, nil
			}
			return nil, ErrNoResults
		},
		func() []NewsArticle {
			return s.fallback.Articles(city)
		},
	)
}

// Clothing combines the static traditional-clothing notes with a
// weather-informed dressing suggestion when live weather is available.
// The bool reports whether the suggestion came from live weather.
func (s *Service) Clothing(ctx context.Context, city string) (ClothingAdvice, bool) {
	advice := s.fallback.Clothing(city)

	snap := s.Weather(ctx, city)
	advice.Suggestion = dressSuggestion(snap)
	return advice, snap.Live
}

// localOverview fans out weather, local places and tips for a combined
// "tell me about this place" answer.
func (s *Service) localOverview(ctx context.Context, city string, reply *ChatReply) {
	var (
		wg     sync.WaitGroup
		snap   WeatherSnapshot
		places []PlaceResult
		live   bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		snap = s.Weather(ctx, city)
	}()
	go func() {
		defer wg.Done()
		places, live = s.Places(ctx, city, CategoryLocal)
	}()
	wg.Wait()

	reply.Weather = &snap
	reply.Places = places
	reply.Tips = s.fallback.Tips(city)
	reply.Fallback = !live
	reply.Message = fmt.Sprintf("Some local favourites in %s:", city)
}

func weatherMessage(snap WeatherSnapshot) string {
	desc := snap.Description
	if desc == "" {
		desc = string(snap.Condition)
	}
	if snap.Live {
		return fmt.Sprintf("It's %.0f°C with %s in %s right now.", snap.Temperature, desc, snap.City)
	}
	return fmt.Sprintf("Typically around %.0f°C with %s in %s (demo data).", snap.Temperature, desc, snap.City)
}

func placesMessage(city string, category Category, live bool) string {
	if live {
		return fmt.Sprintf("Here are some %s picks in %s:", category, city)
	}
	return fmt.Sprintf("I could not find live results, but these %s spots in %s are worth a look:", category, city)
}

func dressSuggestion(snap WeatherSnapshot) string {
	switch {
	case snap.Condition == ConditionRain || snap.Condition == ConditionStorm:
		return "Bring a rain jacket or umbrella today."
	case snap.Condition == ConditionSnow || snap.Temperature <= 5:
		return "Dress warmly: coat, layers and closed shoes."
	case snap.Temperature >= 28:
		return "Light, breathable clothing and sun protection recommended."
	default:
		return "Comfortable layers should do nicely."
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
