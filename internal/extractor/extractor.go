package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/r-ising/molzberg-monitor/internal/course"
)

// DefaultModel is the Gemini model used unless overridden.
const DefaultModel = "gemini-2.5-flash"

const extractionPrompt = `Please analyze the following content from a swim course website and extract all available swim courses.

Return the result as a valid JSON array containing objects with the following structure:
[
    {
        "name": "",
        "date_time": "",
        "price": "",
        "location": "",
        "participants": "",
        "booking_status": "",
        "booking_link": "",
        "description": "",
        "instructor": ""
    }
]

Important:
- The "name" field is the course title or identifier shown on the page (like "KINDERKURS KSK00-00") and is required
- Extract exact price format including currency symbol (like "10,00 €")
- Include full date and time information in the "date_time" field
- Include location/pool information in the "location" field
- Extract participant limits in the "participants" field
- Include booking instructions or status in the "booking_status" field
- Include any PDF form links or registration links in the "booking_link" field
- If certain information is not available, use an empty string
- Only return valid JSON, no additional text or explanation
- Focus on actual swim courses for beginners/anfänger and children/kinder
- Under no circumstances should you make up data.

Page content:
`

// Extractor extracts course records from raw page text.
type Extractor interface {
	Extract(ctx context.Context, pageText string) ([]course.Course, error)
}

// Gemini is an Extractor backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini extractor. An empty model means DefaultModel.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Extract asks the model for the course listings on the page and decodes the
// response into course records.
func (g *Gemini) Extract(ctx context.Context, pageText string) ([]course.Course, error) {
	model := g.client.GenerativeModel(g.model)

	resp, err := model.GenerateContent(ctx, genai.Text(extractionPrompt+pageText))
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}

	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	return Decode(raw, time.Now().UTC())
}

// responseText flattens the first candidate's text parts.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}

	return b.String(), nil
}
