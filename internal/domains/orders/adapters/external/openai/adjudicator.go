package openai

import (
	"context"
	"errors"
	"strings"

	openaiclient "github.com/medsupply/inventory-case-api/internal/clients/http/openai"
	"github.com/medsupply/inventory-case-api/internal/domains/orders/ports"
)

// DefaultModel is the fixed model identifier used for fault adjudication.
const DefaultModel = "gpt-3.5-turbo"

// Adjudicator implements the outbound adjudication port over the
// chat-completions client.
type Adjudicator struct {
	client *openaiclient.Client
	model  string
}

// NewAdjudicator wires the chat-completions client into an adjudication
// adapter. An empty model falls back to DefaultModel.
func NewAdjudicator(client *openaiclient.Client, model string) *Adjudicator {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Adjudicator{client: client, model: model}
}

// Adjudicate sends the system and user prompts as a two-message chat exchange
// and returns the generated verdict text.
func (a *Adjudicator) Adjudicate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if a == nil || a.client == nil {
		return "", errors.New("adjudicator not configured")
	}
	messages := []openaiclient.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}
	return a.client.CreateChatCompletion(ctx, a.model, messages)
}

var _ ports.Adjudicator = (*Adjudicator)(nil)
