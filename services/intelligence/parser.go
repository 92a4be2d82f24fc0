// File: services/intelligence/parser.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"slotify/models"
)

// AvailabilityParser turns free-text operator messages ("tomorrow from 2pm
// to 4pm") into raw time ranges. Output is advisory only: it may be empty or
// out of bounds, and callers must re-validate every range locally.
type AvailabilityParser interface {
	ParseAvailability(ctx context.Context, text string, now time.Time) ([]models.RawRange, error)
}

type GeminiParser struct {
	model    *genai.GenerativeModel
	timezone string
}

func NewGeminiParser(apiKey, timezone string) *GeminiParser {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiParser{model: model, timezone: timezone}
}

// parsedRanges mirrors the JSON contract the model is instructed to return.
type parsedRanges struct {
	TimeRanges []struct {
		Date      string `json:"date"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	} `json:"timeRanges"`
}

func (g *GeminiParser) ParseAvailability(ctx context.Context, text string, now time.Time) ([]models.RawRange, error) {
	prompt := buildPrompt(text, now, g.timezone)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return DecodeRanges(sb.String()), nil
}

// DecodeRanges extracts raw time ranges from the model's JSON reply.
// Malformed JSON or unparseable entries degrade to an empty result rather
// than an error: garbage in, no ranges out.
func DecodeRanges(raw string) []models.RawRange {
	raw = stripCodeFences(raw)

	var parsed parsedRanges
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}

	var out []models.RawRange
	for _, tr := range parsed.TimeRanges {
		start, err := time.Parse(time.RFC3339, tr.StartTime)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, tr.EndTime)
		if err != nil {
			continue
		}
		out = append(out, models.RawRange{Start: start, End: end})
	}
	return out
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func buildPrompt(text string, now time.Time, timezone string) string {
	today := now.Format("2006-01-02")
	weekday := now.Weekday().String()
	return fmt.Sprintf(`You are an expert at recognizing dates and times. Analyze the following text and extract availability information.

Text: %q

Today: %s (%s)

IMPORTANT: the maximum length of a single range is 8 hours (480 minutes). If the user gives a longer span, split it into several ranges of 8 hours or less.

Return JSON in exactly this shape:
{
  "timeRanges": [
    {
      "date": "YYYY-MM-DD",
      "startTime": "YYYY-MM-DDTHH:MM:00Z",
      "endTime": "YYYY-MM-DDTHH:MM:00Z"
    }
  ]
}

Rules:
- "tomorrow" means the day after today; weekday names mean the nearest such day
- Times are always 24-hour; if no timezone is given assume %s and convert to UTC
- Minimum length is 15 minutes, aligned to 15-minute granularity
- For "all day" or large spans produce ranges only within working hours 09:00-18:00, split to respect the 8-hour maximum
- If a bare hour range like "from 3 to 6" has no AM/PM, treat it as afternoon
- If the text cannot be understood, return an empty timeRanges array

Return only valid JSON with no extra text.`, text, today, weekday, timezone)
}
