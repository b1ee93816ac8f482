package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const generateURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent?key="

type GeminiService struct {
	ApiKey string
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{ApiKey: apiKey}
}

// TranscribeAudio sends the audio inline to Gemini and returns the plain-text
// transcript.
func (g *GeminiService) TranscribeAudio(ctx context.Context, audioBase64, mimeType string) (string, error) {
	prompt := `Transcribe this voice note from a fundraising officer verbatim.
Return ONLY the transcript text, no preamble, no labels, no formatting.`

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"inline_data": map[string]string{
						"mime_type": mimeType,
						"data":      audioBase64,
					}},
					{"text": prompt},
				},
			},
		},
	}

	text, err := g.generate(ctx, payload)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SuggestEventTime asks Gemini for a better slot for a donor touchpoint.
// The model answers with a single RFC3339 timestamp or NONE.
func (g *GeminiService) SuggestEventTime(ctx context.Context, title string, scheduledAt time.Time) (*time.Time, error) {
	prompt := fmt.Sprintf(`A fundraising officer scheduled "%s" at %s.
Donor calls and meetings land best on weekday late mornings (10:00-11:30) or mid afternoons (14:00-16:00), local time.
If the scheduled time already falls in such a window, answer exactly NONE.
Otherwise answer ONLY an RFC3339 timestamp for the nearest better slot after the scheduled time. No other text.`,
		title, scheduledAt.Format(time.RFC3339))

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	text, err := g.generate(ctx, payload)
	if err != nil {
		return nil, err
	}

	answer := strings.TrimSpace(text)
	if answer == "" || strings.EqualFold(answer, "NONE") {
		return nil, nil
	}
	suggested, err := time.Parse(time.RFC3339, answer)
	if err != nil {
		// The model ignored the format; treat it as no suggestion.
		return nil, nil
	}
	return &suggested, nil
}

func (g *GeminiService) generate(ctx context.Context, payload map[string]interface{}) (string, error) {
	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", generateURL+g.ApiKey, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	// Walk candidates[0].content.parts[0].text
	if c, ok := result["candidates"].([]interface{}); ok && len(c) > 0 {
		if cand, ok := c[0].(map[string]interface{}); ok {
			if content, ok := cand["content"].(map[string]interface{}); ok {
				if parts, ok := content["parts"].([]interface{}); ok && len(parts) > 0 {
					if part, ok := parts[0].(map[string]interface{}); ok {
						if text, ok := part["text"].(string); ok {
							return text, nil
						}
					}
				}
			}
		}
	}
	return "", fmt.Errorf("no text returned")
}
