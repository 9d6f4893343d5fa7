package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laveehere/wanderbot/internal/travel"
)

func TestKeywordClassifier(t *testing.T) {
	c := NewKeywordClassifier()
	ctx := context.Background()

	tests := []struct {
		message    string
		category   travel.Category
		confidence float64
	}{
		{"What's the weather like?", travel.CategoryWeather, 0.9},
		{"where should I eat tonight", travel.CategoryFood, 0.9},
		{"any museums worth visiting", travel.CategoryCulture, 0.9},
		{"best markets for souvenirs", travel.CategoryShopping, 0.9},
		{"what festivals are happening", travel.CategoryEvents, 0.9},
		{"what should I wear there", travel.CategoryClothing, 0.9},
		{"top attractions please", travel.CategoryPlaces, 0.9},
		{"give me a local tip", travel.CategoryLocal, 0.9},
		{"hello there", travel.CategoryGeneral, 0.7},
	}

	for _, tt := range tests {
		res := c.Classify(ctx, tt.message)
		assert.Equalf(t, tt.category, res.Category, "message %q", tt.message)
		assert.Equalf(t, tt.confidence, res.Confidence, "message %q", tt.message)
		assert.Equal(t, "keyword", res.Source)
	}
}

func TestKeywordClassifierPriorityOrder(t *testing.T) {
	c := NewKeywordClassifier()

	// Mentions both food and shopping; food outranks shopping.
	res := c.Classify(context.Background(), "where to eat near the mall")
	assert.Equal(t, travel.CategoryFood, res.Category)
}

func TestKeywordClassifierIsTotal(t *testing.T) {
	c := NewKeywordClassifier()
	known := travel.Categories()

	for _, msg := range []string{"", "???", "zzzz", "12345", "クジラ"} {
		res := c.Classify(context.Background(), msg)
		assert.Contains(t, known, res.Category)
		assert.Greater(t, res.Confidence, 0.0)
	}
}

type stubModel struct {
	label string
	score float64
	err   error
}

func (m *stubModel) ClassifyText(context.Context, string, []string) (string, float64, error) {
	return m.label, m.score, m.err
}

func TestHostedClassifierUsesModel(t *testing.T) {
	c := NewHostedClassifier(&stubModel{label: "culture", score: 0.82})

	res := c.Classify(context.Background(), "tell me about the old temples")

	assert.Equal(t, travel.CategoryCulture, res.Category)
	assert.Equal(t, 0.82, res.Confidence)
	assert.Equal(t, "hosted", res.Source)
}

func TestHostedClassifierFallsBackOnError(t *testing.T) {
	c := NewHostedClassifier(&stubModel{err: errors.New("quota exceeded")})

	res := c.Classify(context.Background(), "what's the weather")

	assert.Equal(t, travel.CategoryWeather, res.Category)
	assert.Equal(t, "keyword", res.Source)
}

func TestHostedClassifierRejectsUnknownLabel(t *testing.T) {
	c := NewHostedClassifier(&stubModel{label: "astrology", score: 0.99})

	res := c.Classify(context.Background(), "what should I eat")

	require.Equal(t, travel.CategoryFood, res.Category)
	assert.Equal(t, "keyword", res.Source)
}

func TestHostedClassifierClampsBadScore(t *testing.T) {
	c := NewHostedClassifier(&stubModel{label: "weather", score: 7.5})

	res := c.Classify(context.Background(), "anything")

	assert.Equal(t, travel.CategoryWeather, res.Category)
	assert.Equal(t, 0.7, res.Confidence)
}
