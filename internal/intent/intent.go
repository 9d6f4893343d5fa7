// Package intent classifies free-text user messages into travel
// categories, either by keyword matching or via a hosted zero-shot model
// with the keyword matcher as its fallback.
package intent

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/laveehere/wanderbot/internal/common"
	"github.com/laveehere/wanderbot/internal/travel"
)

const (
	// confidence levels for the keyword strategy
	specificConfidence = 0.9
	generalConfidence  = 0.7

	sourceKeyword = "keyword"
	sourceHosted  = "hosted"
)

type rule struct {
	category travel.Category
	keywords []string
}

// rules are tested in order; the first match wins. Order matters: a
// message like "where to eat near the weather station" should classify as
// weather before food only because weather outranks it here.
var rules = []rule{
	{travel.CategoryWeather, []string{"weather", "temperature", "forecast", "rain", "sunny", "hot", "cold", "humid", "climate"}},
	{travel.CategoryFood, []string{"food", "eat", "restaurant", "cuisine", "dish", "meal", "hungry", "dinner", "lunch", "breakfast"}},
	{travel.CategoryCulture, []string{"culture", "museum", "temple", "history", "heritage", "tradition", "art", "monument"}},
	{travel.CategoryShopping, []string{"shop", "shopping", "buy", "market", "mall", "souvenir", "store"}},
	{travel.CategoryEvents, []string{"event", "festival", "concert", "happening", "news", "show"}},
	{travel.CategoryClothing, []string{"clothing", "clothes", "wear", "dress", "outfit", "attire", "fashion"}},
	{travel.CategoryPlaces, []string{"place", "visit", "attraction", "see", "sight", "tour", "landmark", "go"}},
	{travel.CategoryLocal, []string{"local", "recommend", "suggestion", "tip", "advice", "hidden"}},
}

// KeywordClassifier is the pure, stateless keyword-matching strategy.
type KeywordClassifier struct{}

// NewKeywordClassifier creates a KeywordClassifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify lowercases the message and tests each rule's keyword set in
// priority order. No match yields the general category at a lower
// confidence; it never fails.
func (c *KeywordClassifier) Classify(_ context.Context, message string) travel.IntentResult {
	lowered := strings.ToLower(message)
	for _, r := range rules {
		if common.HasAny(lowered, r.keywords...) {
			return travel.IntentResult{
				Category:   r.category,
				Confidence: specificConfidence,
				Source:     sourceKeyword,
			}
		}
	}
	return travel.IntentResult{
		Category:   travel.CategoryGeneral,
		Confidence: generalConfidence,
		Source:     sourceKeyword,
	}
}

// ZeroShotModel is the hosted classification capability: message plus a
// candidate-label set in, top label plus score out.
type ZeroShotModel interface {
	ClassifyText(ctx context.Context, message string, labels []string) (string, float64, error)
}

// HostedClassifier asks a hosted zero-shot model first and degrades to the
// keyword strategy on any failure or out-of-set label.
type HostedClassifier struct {
	model   ZeroShotModel
	keyword *KeywordClassifier
}

// NewHostedClassifier creates a HostedClassifier around model.
func NewHostedClassifier(model ZeroShotModel) *HostedClassifier {
	return &HostedClassifier{
		model:   model,
		keyword: NewKeywordClassifier(),
	}
}

func candidateLabels() []string {
	cats := travel.Categories()
	labels := make([]string, 0, len(cats))
	for _, c := range cats {
		labels = append(labels, string(c))
	}
	return labels
}

// Classify never fails: model errors, empty answers, and labels outside
// the fixed set all fall through to the keyword strategy.
func (c *HostedClassifier) Classify(ctx context.Context, message string) travel.IntentResult {
	label, score, err := c.model.ClassifyText(ctx, message, candidateLabels())
	if err != nil {
		log.Debug().Err(err).Msg("hosted classification failed, using keyword strategy")
		return c.keyword.Classify(ctx, message)
	}

	category := travel.Category(strings.ToLower(strings.TrimSpace(label)))
	if !validCategory(category) {
		log.Debug().Str("label", label).Msg("hosted classifier returned unknown label")
		return c.keyword.Classify(ctx, message)
	}

	if score <= 0 || score > 1 {
		score = generalConfidence
	}
	return travel.IntentResult{
		Category:   category,
		Confidence: score,
		Source:     sourceHosted,
	}
}

func validCategory(c travel.Category) bool {
	for _, known := range travel.Categories() {
		if c == known {
			return true
		}
	}
	return false
}
