// Package ai provides the Gemini-backed content generator.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

// reportSchema constrains the generation response to exactly the five
// AI-fillable fields, all required.
var reportSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"activities": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "A list of detailed activities carried out during the meeting (3-5 items).",
		},
		"values": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of moral values (Nilai Murni) applied (e.g., Kerjasama, Bertanggungjawab).",
		},
		"pikebmTitle": {
			Type:        genai.TypeString,
			Description: "A suitable title for the PiKeBM (Program Interaktif Kemahiran Bahasa Melayu) insertion.",
		},
		"pikebmSummary": {
			Type:        genai.TypeString,
			Description: "A brief summary of the PiKeBM activity (5-10 mins language activity).",
		},
		"kbat": {
			Type:        genai.TypeString,
			Description: "Description of the Higher Order Thinking Skills (KBAT) applied in the session.",
		},
	},
	Required: []string{"activities", "values", "pikebmTitle", "pikebmSummary", "kbat"},
}

// GeminiGenerator implements ports.ContentGenerator against the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator for the given API key and model.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate requests structured report content for the topic. The response
// must conform to reportSchema; a missing or empty required field fails the
// whole call so a malformed response can never be partially merged.
func (g *GeminiGenerator) Generate(ctx context.Context, topic, unitName string) (domain.GeneratedContent, error) {
	if topic == "" {
		return domain.GeneratedContent{}, domain.ErrEmptyTopic
	}

	prompt := fmt.Sprintf(`Anda adalah pembantu guru kokurikulum di Malaysia.
Sila jana kandungan laporan kokurikulum berdasarkan topik aktiviti: "%s" untuk unit: "%s".

Pastikan:
1. Aktiviti adalah dalam bentuk ayat pasif atau format laporan rasmi.
2. Masukkan elemen Sisipan PiKeBM (Program Interaktif Kemahiran Bahasa Melayu) yang sesuai.
3. Nyatakan elemen KBAT (Kemahiran Berfikir Aras Tinggi).
4. Bahasa Melayu standard dan formal.`, topic, unitName)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   reportSchema,
		Temperature:      genai.Ptr[float32](0.7),
	})
	if err != nil {
		return domain.GeneratedContent{}, &domain.GenerationError{Reason: "request failed", Err: err}
	}

	text := resp.Text()
	if text == "" {
		return domain.GeneratedContent{}, &domain.GenerationError{Reason: "no content generated"}
	}

	return DecodeContent([]byte(text))
}

// DecodeContent strictly decodes a generation response. Every schema field
// must be present and non-empty.
func DecodeContent(data []byte) (domain.GeneratedContent, error) {
	var raw struct {
		Activities    []string `json:"activities"`
		Values        []string `json:"values"`
		PikebmTitle   *string  `json:"pikebmTitle"`
		PikebmSummary *string  `json:"pikebmSummary"`
		Kbat          *string  `json:"kbat"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.GeneratedContent{}, &domain.GenerationError{Reason: "response is not valid JSON", Err: err}
	}

	switch {
	case len(raw.Activities) == 0:
		return domain.GeneratedContent{}, &domain.GenerationError{Reason: "required field activities is missing or empty"}
	case len(raw.Values) == 0:
		return domain.GeneratedContent{}, &domain.GenerationError{Reason: "required field values is missing or empty"}
	case raw.PikebmTitle == nil || *raw.PikebmTitle == "":
		return domain.GeneratedContent{}, &domain.GenerationError{Reason: "required field pikebmTitle is missing or empty"}
	case raw.PikebmSummary == nil || *raw.PikebmSummary == "":
		return domain.GeneratedContent{}, &domain.GenerationError{Reason: "required field pikebmSummary is missing or empty"}
	case raw.Kbat == nil || *raw.Kbat == "":
		return domain.GeneratedContent{}, &domain.GenerationError{Reason: "required field kbat is missing or empty"}
	}

	return domain.GeneratedContent{
		Activities:    raw.Activities,
		Values:        raw.Values,
		PikebmTitle:   *raw.PikebmTitle,
		PikebmSummary: *raw.PikebmSummary,
		Kbat:          *raw.Kbat,
	}, nil
}
