// Package llm wraps the external text-completion provider behind a small
// interface so services stay testable and the provider stays swappable.
package llm

import (
	"context"
)

// Turn is one prior (user message, model response) exchange replayed as
// conversation context.
type Turn struct {
	Message  string
	Response string
}

// CompletionProvider is the boundary to the external completion service.
// Calls are synchronous; a slow provider stalls the request until it
// returns or errors.
type CompletionProvider interface {
	// Complete generates a reply for userPrompt under systemPrompt,
	// replaying history oldest-first.
	Complete(ctx context.Context, systemPrompt string, history []Turn, userPrompt string) (string, error)

	// Close releases the underlying client.
	Close() error
}
