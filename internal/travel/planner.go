package travel

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const maxPlannedQueries = 5

// curatedQueries holds hand-picked, known-good search strings per city and
// category, used verbatim.
var curatedQueries = map[string]map[Category][]string{
	"tokyo": {
		CategoryCulture:  {"Senso-ji Temple Tokyo", "Meiji Shrine Tokyo", "Tokyo National Museum", "Imperial Palace Tokyo", "Nezu Museum Tokyo"},
		CategoryFood:     {"Tsukiji Outer Market Tokyo", "ramen Shinjuku Tokyo", "sushi Ginza Tokyo", "izakaya Shibuya Tokyo"},
		CategoryShopping: {"Ginza shopping Tokyo", "Shibuya 109 Tokyo", "Nakamise shopping street Tokyo", "Akihabara electronics Tokyo"},
		CategoryPlaces:   {"Tokyo Tower", "Tokyo Skytree", "Shibuya Crossing Tokyo", "Ueno Park Tokyo"},
	},
	"paris": {
		CategoryCulture:  {"Louvre Museum Paris", "Musee d'Orsay Paris", "Notre-Dame Cathedral Paris", "Sainte-Chapelle Paris"},
		CategoryFood:     {"bistro Le Marais Paris", "boulangerie Saint-Germain Paris", "Marche des Enfants Rouges Paris"},
		CategoryShopping: {"Galeries Lafayette Paris", "Champs-Elysees shopping Paris", "Le Bon Marche Paris"},
		CategoryPlaces:   {"Eiffel Tower Paris", "Arc de Triomphe Paris", "Montmartre Paris", "Jardin du Luxembourg Paris"},
	},
	"london": {
		CategoryCulture:  {"British Museum London", "Tower of London", "Westminster Abbey London", "Tate Modern London"},
		CategoryFood:     {"Borough Market London", "curry Brick Lane London", "pubs Covent Garden London"},
		CategoryShopping: {"Oxford Street shopping London", "Harrods London", "Camden Market London"},
		CategoryPlaces:   {"Big Ben London", "London Eye", "Buckingham Palace London", "Hyde Park London"},
	},
	"delhi": {
		CategoryCulture:  {"Red Fort Delhi", "Humayun's Tomb Delhi", "Qutub Minar Delhi", "National Museum Delhi"},
		CategoryFood:     {"Chandni Chowk street food Delhi", "Karim's restaurant Delhi", "Khan Market restaurants Delhi"},
		CategoryShopping: {"Dilli Haat Delhi", "Connaught Place shopping Delhi", "Sarojini Nagar Market Delhi"},
		CategoryPlaces:   {"India Gate Delhi", "Lotus Temple Delhi", "Lodhi Garden Delhi", "Akshardham Delhi"},
	},
	"new york": {
		CategoryCulture:  {"Metropolitan Museum of Art New York", "MoMA New York", "American Museum of Natural History New York"},
		CategoryFood:     {"Chelsea Market New York", "pizza Brooklyn New York", "Katz's Delicatessen New York"},
		CategoryShopping: {"Fifth Avenue shopping New York", "SoHo boutiques New York", "Macy's Herald Square New York"},
		CategoryPlaces:   {"Statue of Liberty New York", "Central Park New York", "Times Square New York", "Brooklyn Bridge New York"},
	},
}

// genericTemplates synthesizes per-category query strings for cities the
// curated table does not know about.
func genericTemplates(city string, category Category) []string {
	switch category {
	case CategoryCulture:
		return []string{
			"museums " + city,
			"temples " + city,
			"heritage sites " + city,
			"art galleries " + city,
		}
	case CategoryFood:
		return []string{
			"restaurants " + city,
			"food markets " + city,
			"local cuisine " + city,
			"best places to eat " + city,
		}
	case CategoryShopping:
		return []string{
			"shopping malls " + city,
			"markets " + city,
			"shopping districts " + city,
		}
	case CategoryPlaces:
		return []string{
			"tourist attractions " + city,
			"landmarks " + city,
			"famous places " + city,
			"sightseeing " + city,
		}
	default:
		return []string{
			fmt.Sprintf("%s in %s", category, city),
			fmt.Sprintf("top %s %s", category, city),
		}
	}
}

// Planner produces an ordered list of place-search query strings for a
// (city, category) pair, biased toward high-precision results. Sources in
// preference order: hosted-model suggestions, the curated table, generic
// templates. Unknown cities degrade to templates and never fail.
type Planner struct {
	suggester QuerySuggester
}

// NewPlanner creates a Planner. suggester may be nil.
func NewPlanner(suggester QuerySuggester) *Planner {
	return &Planner{suggester: suggester}
}

// Plan returns up to five queries for the pair. The generic pair
// "{category} in {city}" / "top {category} {city}" is always appended
// before deduplication and truncation.
func (p *Planner) Plan(ctx context.Context, city string, category Category) []string {
	var queries []string

	if p.suggester != nil {
		suggested, err := p.suggester.SuggestQueries(ctx, city, category)
		if err != nil {
			log.Debug().Err(err).Str("city", city).Str("category", string(category)).
				Msg("query suggestion failed, using templates")
		} else if len(suggested) > 0 {
			queries = suggested
		}
	}

	if len(queries) == 0 {
		if byCategory, ok := curatedQueries[CityKey(city)]; ok {
			queries = byCategory[category]
		}
	}
	if len(queries) == 0 {
		queries = genericTemplates(city, category)
	}

	if len(queries) > maxPlannedQueries {
		queries = queries[:maxPlannedQueries]
	}

	queries = append(queries,
		fmt.Sprintf("%s in %s", category, city),
		fmt.Sprintf("top %s %s", category, city),
	)

	return truncateQueries(dedupeQueries(queries), maxPlannedQueries)
}

func dedupeQueries(queries []string) []string {
	seen := make(map[string]struct{}, len(queries))
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		key := strings.ToLower(q)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}

func truncateQueries(queries []string, n int) []string {
	if len(queries) > n {
		return queries[:n]
	}
	return queries
}
