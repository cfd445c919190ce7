package ports

import "context"

// Adjudicator defines the outbound capability for delegating a fault verdict
// to an external text-completion service. Implementations send the system and
// user prompts as an ordered chat exchange and return the generated text.
type Adjudicator interface {
	Adjudicate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
