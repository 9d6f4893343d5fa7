// Package assist wraps the hosted Gemini model behind the two narrow
// capabilities the pipeline can optionally use: zero-shot intent
// classification and place-search query suggestion. Both are best-effort;
// callers fall back to keyword/template strategies on any error.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/laveehere/wanderbot/internal/travel"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-flash-lite-latest"

const maxSuggestedQueries = 5

// Gemini is a thin client over the genai SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a client for the Gemini API. model may be empty.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

const classifyPromptTemplate = `Classify the traveler question below into exactly one of these labels: %s.
Respond with only a JSON object of the form {"intent": "<label>", "confidence": <0.0-1.0>} and nothing else.

Question: %s`

// ClassifyText asks the model to pick one label from the candidate set.
// Implements intent.ZeroShotModel.
func (g *Gemini) ClassifyText(ctx context.Context, message string, labels []string) (string, float64, error) {
	prompt := fmt.Sprintf(classifyPromptTemplate, strings.Join(labels, ", "), message)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return "", 0, err
	}

	var parsed struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parsed); err != nil {
		return "", 0, fmt.Errorf("unparseable classification %q: %w", text, err)
	}
	if parsed.Intent == "" {
		return "", 0, fmt.Errorf("classification missing intent: %q", text)
	}

	return parsed.Intent, parsed.Confidence, nil
}

// queryPrompts are the category-specific instructions for query suggestion.
var queryPrompts = map[travel.Category]string{
	travel.CategoryCulture:  "List 5 specific cultural sites in %s (museums, temples, heritage sites). Answer with names only, comma separated.",
	travel.CategoryFood:     "List 5 specific food destinations in %s (famous restaurants, food markets, food streets). Answer with names only, comma separated.",
	travel.CategoryShopping: "List 5 specific shopping destinations in %s (markets, malls, shopping streets). Answer with names only, comma separated.",
	travel.CategoryPlaces:   "List 5 must-see tourist attractions in %s. Answer with names only, comma separated.",
	travel.CategoryLocal:    "List 5 places in %s that locals love but tourists often miss. Answer with names only, comma separated.",
}

// SuggestQueries prompts the model for category-specific sites in the city
// and turns its freeform answer into search query strings. Implements
// travel.QuerySuggester.
func (g *Gemini) SuggestQueries(ctx context.Context, city string, category travel.Category) ([]string, error) {
	tmpl, ok := queryPrompts[category]
	if !ok {
		tmpl = fmt.Sprintf("List 5 specific %s spots in %%s. Answer with names only, comma separated.", category)
	}

	text, err := g.generate(ctx, fmt.Sprintf(tmpl, city))
	if err != nil {
		return nil, err
	}

	queries := parsePhrases(text, city)
	if len(queries) == 0 {
		return nil, fmt.Errorf("no usable phrases in model output %q", text)
	}
	return queries, nil
}

// parsePhrases splits freeform model output on commas and newlines, strips
// enumeration prefixes, bullets and quotes, and suffixes the city name so
// each phrase works as a standalone geocoder query.
func parsePhrases(text, city string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})

	cityLower := strings.ToLower(city)
	out := make([]string, 0, maxSuggestedQueries)
	for _, f := range fields {
		phrase := cleanPhrase(f)
		if len(phrase) < 3 || len(phrase) > 80 {
			continue
		}
		if !strings.Contains(strings.ToLower(phrase), cityLower) {
			phrase = phrase + " " + city
		}
		out = append(out, phrase)
		if len(out) >= maxSuggestedQueries {
			break
		}
	}
	return out
}

func cleanPhrase(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*•>")
	s = strings.TrimSpace(s)
	// Strip leading enumeration like "1." or "2)".
	for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
		s = s[1:]
	}
	s = strings.TrimLeft(s, ".)")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
