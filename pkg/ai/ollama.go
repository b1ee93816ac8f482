package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrAudioNotSupported is returned by providers without an audio endpoint.
var ErrAudioNotSupported = errors.New("provider does not support audio transcription")

// OllamaService implements AssistantService using a local Ollama LLM.
// It handles time suggestions only; transcription needs a multimodal provider.
type OllamaService struct {
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
}

// NewOllamaServiceWithGetters creates a new Ollama service with dynamic getters
// so settings can change at runtime without a restart.
func NewOllamaServiceWithGetters(getBaseURL, getModel func() string) *OllamaService {
	return &OllamaService{
		getBaseURL: getBaseURL,
		getModel:   getModel,
	}
}

// TranscribeAudio implements AssistantService
func (o *OllamaService) TranscribeAudio(ctx context.Context, audioBase64, mimeType string) (string, error) {
	return "", ErrAudioNotSupported
}

// SuggestEventTime implements AssistantService
func (o *OllamaService) SuggestEventTime(ctx context.Context, title string, scheduledAt time.Time) (*time.Time, error) {
	prompt := fmt.Sprintf(`A fundraising officer scheduled "%s" at %s.
Donor calls and meetings land best on weekday late mornings (10:00-11:30) or mid afternoons (14:00-16:00), local time.
If the scheduled time already falls in such a window, answer exactly NONE.
Otherwise answer ONLY an RFC3339 timestamp for the nearest better slot after the scheduled time. No other text.`,
		title, scheduledAt.Format(time.RFC3339))

	payload := map[string]interface{}{
		"model":  o.getModel(),
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.2,
			"num_predict": 40,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.getBaseURL()+"/api/generate", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	answer := strings.TrimSpace(result.Response)
	if answer == "" || strings.EqualFold(answer, "NONE") {
		return nil, nil
	}
	suggested, err := time.Parse(time.RFC3339, answer)
	if err != nil {
		return nil, nil
	}
	return &suggested, nil
}
