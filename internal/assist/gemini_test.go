package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePhrases(t *testing.T) {
	text := "1. Senso-ji Temple, 2. Meiji Shrine\n3) \"Tokyo National Museum\"\n- Nezu Museum Tokyo"

	phrases := parsePhrases(text, "Tokyo")

	assert.Equal(t, []string{
		"Senso-ji Temple Tokyo",
		"Meiji Shrine Tokyo",
		"Tokyo National Museum",
		"Nezu Museum Tokyo",
	}, phrases)
}

func TestParsePhrasesSkipsJunk(t *testing.T) {
	text := "ok, , a, " + string(make([]byte, 100)) + ", Louvre"

	phrases := parsePhrases(text, "Paris")

	assert.Equal(t, []string{"Louvre Paris"}, phrases)
}

func TestParsePhrasesCapsAtFive(t *testing.T) {
	text := "one, two x, three x, four x, five x, six x, seven x"

	phrases := parsePhrases(text, "Rome")

	assert.Len(t, phrases, 5)
}

func TestCleanPhrase(t *testing.T) {
	tests := map[string]string{
		"  1. Red Fort ":    "Red Fort",
		"- Borough Market":  "Borough Market",
		`"Hyde Park"`:       "Hyde Park",
		"12) India Gate":    "India Gate",
		"* 'Central Park'":  "Central Park",
		"• Shibuya Station": "Shibuya Station",
	}
	for in, want := range tests {
		assert.Equalf(t, want, cleanPhrase(in), "input %q", in)
	}
}

func TestStripCodeFence(t *testing.T) {
	fenced := "```json\n{\"intent\": \"food\", \"confidence\": 0.8}\n```"
	assert.Equal(t, `{"intent": "food", "confidence": 0.8}`, stripCodeFence(fenced))

	plain := `{"intent": "food"}`
	assert.Equal(t, plain, stripCodeFence(plain))
}
