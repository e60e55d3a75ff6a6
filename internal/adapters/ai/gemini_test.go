package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

func TestDecodeContent_Valid(t *testing.T) {
	data := []byte(`{
		"activities": ["Taklimat diberikan oleh guru penasihat.", "Latihan dijalankan secara berkumpulan."],
		"values": ["Kerjasama", "Disiplin"],
		"pikebmTitle": "Kosa Kata Sukan",
		"pikebmSummary": "Murid menyenaraikan istilah sukan dalam Bahasa Melayu.",
		"kbat": "Menganalisis strategi permainan"
	}`)

	got, err := DecodeContent(data)
	require.NoError(t, err)
	assert.Len(t, got.Activities, 2)
	assert.Equal(t, []string{"Kerjasama", "Disiplin"}, got.Values)
	assert.Equal(t, "Kosa Kata Sukan", got.PikebmTitle)
	assert.Equal(t, "Menganalisis strategi permainan", got.Kbat)
}

func TestDecodeContent_MissingField(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing activities", `{"values":["a"],"pikebmTitle":"t","pikebmSummary":"s","kbat":"k"}`},
		{"missing values", `{"activities":["a"],"pikebmTitle":"t","pikebmSummary":"s","kbat":"k"}`},
		{"missing pikebmTitle", `{"activities":["a"],"values":["v"],"pikebmSummary":"s","kbat":"k"}`},
		{"missing pikebmSummary", `{"activities":["a"],"values":["v"],"pikebmTitle":"t","kbat":"k"}`},
		{"missing kbat", `{"activities":["a"],"values":["v"],"pikebmTitle":"t","pikebmSummary":"s"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeContent([]byte(tt.data))
			require.Error(t, err)
			var genErr *domain.GenerationError
			assert.ErrorAs(t, err, &genErr)
		})
	}
}

func TestDecodeContent_EmptyField(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty activities", `{"activities":[],"values":["v"],"pikebmTitle":"t","pikebmSummary":"s","kbat":"k"}`},
		{"empty values", `{"activities":["a"],"values":[],"pikebmTitle":"t","pikebmSummary":"s","kbat":"k"}`},
		{"empty pikebmTitle", `{"activities":["a"],"values":["v"],"pikebmTitle":"","pikebmSummary":"s","kbat":"k"}`},
		{"empty pikebmSummary", `{"activities":["a"],"values":["v"],"pikebmTitle":"t","pikebmSummary":"","kbat":"k"}`},
		{"empty kbat", `{"activities":["a"],"values":["v"],"pikebmTitle":"t","pikebmSummary":"s","kbat":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeContent([]byte(tt.data))
			require.Error(t, err)
			var genErr *domain.GenerationError
			assert.ErrorAs(t, err, &genErr)
		})
	}
}

func TestDecodeContent_InvalidJSON(t *testing.T) {
	_, err := DecodeContent([]byte("not json"))
	require.Error(t, err)
	var genErr *domain.GenerationError
	assert.ErrorAs(t, err, &genErr)
}

func TestDecodeContent_MistypedField(t *testing.T) {
	_, err := DecodeContent([]byte(`{"activities":"not-a-list","values":["v"],"pikebmTitle":"t","pikebmSummary":"s","kbat":"k"}`))
	require.Error(t, err)
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(t.Context(), "", "gemini-2.5-flash")
	require.Error(t, err)
}
