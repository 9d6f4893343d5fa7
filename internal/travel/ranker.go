package travel

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/laveehere/wanderbot/internal/common"
)

const maxRankedPlaces = 6

const (
	keywordMatchScore  = 2
	exactCategoryScore = 3
)

// categoryKeywords drive both the relevance filter and scoring. A free-text
// geocoder has no real category precision ("restaurants Tokyo" can return a
// transit station tagged with a restaurant amenity), so hits are kept only
// when they mention at least one keyword of the requested category.
var categoryKeywords = map[Category][]string{
	CategoryCulture: {
		"museum", "temple", "shrine", "gallery", "heritage", "historical",
		"monument", "palace", "church", "cathedral", "mosque", "art",
	},
	CategoryFood: {
		"restaurant", "cafe", "food", "market", "cuisine", "dining",
		"eatery", "bakery", "bar", "bistro", "deli",
	},
	CategoryShopping: {
		"mall", "market", "shop", "store", "shopping", "bazaar",
		"boutique", "plaza", "department",
	},
	CategoryPlaces: {
		"attraction", "landmark", "monument", "park", "tower", "bridge",
		"square", "garden", "museum", "palace", "viewpoint", "castle",
	},
	CategoryLocal: {
		"market", "park", "cafe", "neighbourhood", "neighborhood",
		"district", "square", "street", "garden",
	},
}

// dedupeKey folds near-identical hits together: coordinates rounded to
// three decimal places (~100m) plus the lowercased name.
func dedupeKey(p PlaceResult) string {
	return fmt.Sprintf("%s_%d_%d",
		strings.ToLower(p.Name),
		int(math.Round(p.Lat*1000)),
		int(math.Round(p.Lon*1000)),
	)
}

// DedupePlaces keeps the first occurrence of each dedupe key, preserving
// order. Idempotent: deduplicating an already-deduplicated list is a no-op.
func DedupePlaces(hits []PlaceResult) []PlaceResult {
	seen := make(map[string]struct{}, len(hits))
	out := make([]PlaceResult, 0, len(hits))
	for _, h := range hits {
		key := dedupeKey(h)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, h)
	}
	return out
}

func relevant(p PlaceResult, category Category) bool {
	keywords, ok := categoryKeywords[category]
	if !ok {
		// No keyword list for this category; keep everything.
		return true
	}
	haystack := strings.ToLower(p.Name + " " + p.Type + " " + p.Category + " " + p.Address)
	return common.HasAny(haystack, keywords...)
}

// scorePlace awards keywordMatchScore per category keyword found in
// name+type+category and exactCategoryScore when the hit's type or
// category equals the requested category outright.
func scorePlace(p PlaceResult, category Category) int {
	score := 0
	haystack := strings.ToLower(p.Name + " " + p.Type + " " + p.Category)
	for _, kw := range categoryKeywords[category] {
		if strings.Contains(haystack, kw) {
			score += keywordMatchScore
		}
	}
	if strings.EqualFold(p.Type, string(category)) || strings.EqualFold(p.Category, string(category)) {
		score += exactCategoryScore
	}
	return score
}

// RankPlaces turns the noisy union of per-query geocoder batches into a
// short relevant list: dedupe, category-relevance filter, score, stable
// sort by score then provider importance, truncate.
func RankPlaces(hits []PlaceResult, category Category, limit int) []PlaceResult {
	if limit <= 0 {
		limit = maxRankedPlaces
	}

	deduped := DedupePlaces(hits)

	filtered := make([]PlaceResult, 0, len(deduped))
	for _, h := range deduped {
		if relevant(h, category) {
			filtered = append(filtered, h)
		}
	}

	scores := make(map[string]int, len(filtered))
	for _, h := range filtered {
		scores[dedupeKey(h)] = scorePlace(h, category)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		si, sj := scores[dedupeKey(filtered[i])], scores[dedupeKey(filtered[j])]
		if si != sj {
			return si > sj
		}
		return filtered[i].Importance > filtered[j].Importance
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
