package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r-ising/molzberg-monitor/internal/course"
)

var decodeTime = time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

func TestDecode(t *testing.T) {
	t.Run("plain JSON array", func(t *testing.T) {
		raw := `[
			{"name": "KINDERKURS KSK01-26", "date_time": "Mo 16:00 - 16:45", "price": "10,00 €"},
			{"name": "KINDERKURS KSK02-26", "date_time": "Di 16:00 - 16:45", "location": "Freizeitbad Molzberg"}
		]`

		courses, err := Decode(raw, decodeTime)
		require.NoError(t, err)
		require.Len(t, courses, 2)

		assert.Equal(t, "KINDERKURS KSK01-26", courses[0].Name)
		assert.Equal(t, "10,00 €", courses[0].Price)
		assert.Equal(t, course.Identity("KINDERKURS KSK01-26", "Mo 16:00 - 16:45"), courses[0].ID)
		assert.True(t, courses[0].FirstSeen.Equal(decodeTime))
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		raw := "```json\n[{\"name\": \"Seepferdchen\", \"date_time\": \"Sa 10:00\"}]\n```"

		courses, err := Decode(raw, decodeTime)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, "Seepferdchen", courses[0].Name)
	})

	t.Run("bare fence without language tag", func(t *testing.T) {
		raw := "```\n[{\"name\": \"Seepferdchen\"}]\n```"

		courses, err := Decode(raw, decodeTime)
		require.NoError(t, err)
		require.Len(t, courses, 1)
	})

	t.Run("empty array is not an error", func(t *testing.T) {
		courses, err := Decode("[]", decodeTime)
		require.NoError(t, err)
		assert.Empty(t, courses)
	})

	t.Run("malformed JSON fails", func(t *testing.T) {
		_, err := Decode("the page lists three courses", decodeTime)
		require.Error(t, err)
	})

	t.Run("non-array payload fails", func(t *testing.T) {
		_, err := Decode(`{"name": "Seepferdchen"}`, decodeTime)
		require.Error(t, err)
	})

	t.Run("record without name fails", func(t *testing.T) {
		_, err := Decode(`[{"name": "ok"}, {"price": "10,00 €"}]`, decodeTime)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 2")
	})

	t.Run("duplicate identities collapse", func(t *testing.T) {
		raw := `[
			{"name": "Seepferdchen", "date_time": "Sa 10:00"},
			{"name": "  SEEPFERDCHEN ", "date_time": "sa  10:00"}
		]`

		courses, err := Decode(raw, decodeTime)
		require.NoError(t, err)
		assert.Len(t, courses, 1)
	})

	t.Run("ignores extra fields from the model", func(t *testing.T) {
		raw := `[{"name": "Seepferdchen", "confidence": 0.97}]`

		courses, err := Decode(raw, decodeTime)
		require.NoError(t, err)
		require.Len(t, courses, 1)
	})
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no fence", input: `[1]`, expected: `[1]`},
		{name: "json fence", input: "```json\n[1]\n```", expected: `[1]`},
		{name: "plain fence", input: "```\n[1]\n```", expected: `[1]`},
		{name: "leading whitespace", input: "  \n```json\n[1]\n```  ", expected: `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripFences(tt.input))
		})
	}
}
