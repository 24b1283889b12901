package assistant

import (
	"context"
	"fmt"

	"arogya-mitr/internal/dataset"
	"arogya-mitr/internal/llm"
	"arogya-mitr/internal/offline"
)

// Exchange is one prior turn of the conversation, passed along so the
// gateway can thread context into future prompt revisions.
type Exchange struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Gateway answers health questions through the hosted model and falls back
// to the local dataset when the model is unreachable or misbehaves.
type Gateway struct {
	llm     llm.Client
	offline *offline.Resolver
}

func NewGateway(client llm.Client, resolver *offline.Resolver) *Gateway {
	return &Gateway{llm: client, offline: resolver}
}

var answerOptions = llm.Options{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.8,
	MaxOutputTokens: 1024,
}

var medicineOptions = llm.Options{
	Temperature:     0.3,
	TopK:            40,
	TopP:            0.8,
	MaxOutputTokens: 1024,
}

// Answer always returns user-facing text. The hosted model is tried first;
// any failure degrades to the local dataset, and when the dataset has no
// matching entry either, the returned text explains the technical problem.
func (g *Gateway) Answer(ctx context.Context, query, langCode string, history []Exchange, emergency bool) string {
	_ = history // collected for context but not yet folded into the prompt

	prompt := buildHealthcarePrompt(query, langCode)
	if emergency {
		prompt = buildEmergencyPrompt(query, langCode)
	}

	text, err := g.llm.Generate(ctx, prompt, answerOptions)
	if err == nil {
		return text
	}

	lang := dataset.LanguageFor(langCode)
	fallback := g.offline.Resolve(query, lang, emergency)
	if fallback != offline.NotFound(lang) {
		return fallback + offline.OfflineSuffix(lang)
	}

	if lang == dataset.LangHindi {
		return fmt.Sprintf("खुशी से मदद करना चाहता हूं, लेकिन तकनीकी समस्या हो रही है: %s। कृपया फिर से कोशिश करें।", err)
	}
	return fmt.Sprintf("I'd be happy to help, but I'm experiencing a technical issue: %s. Please try again.", err)
}

// MedicineSuggestions asks the hosted model for over-the-counter relief for
// a common ailment. Unlike Answer it surfaces failures to the caller, which
// decides how to degrade.
func (g *Gateway) MedicineSuggestions(ctx context.Context, ailment, langCode string) (string, error) {
	text, err := g.llm.Generate(ctx, buildMedicinePrompt(ailment, langCode), medicineOptions)
	if err != nil {
		return "", fmt.Errorf("medicine suggestions: %w", err)
	}
	return text, nil
}
