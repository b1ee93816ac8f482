package ai

import (
	"context"
	"time"
)

// AssistantService is the interface for AI-backed features: voice-note
// transcription and meeting time suggestions.
// Implement this interface to add new AI providers (Gemini, Ollama, OpenAI, etc.)
type AssistantService interface {
	// TranscribeAudio turns a base64-encoded audio payload into text.
	TranscribeAudio(ctx context.Context, audioBase64, mimeType string) (string, error)
	// SuggestEventTime proposes an alternate slot for an event, or nil when
	// the provider has no better suggestion.
	SuggestEventTime(ctx context.Context, title string, scheduledAt time.Time) (*time.Time, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
