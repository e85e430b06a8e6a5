package utils

import "context"

// CompletionClientInterface abstracts the chat-completion provider. A nil
// client means no credential is configured and callers serve fallback content.
type CompletionClientInterface interface {
	// CompleteJSON sends a single user prompt and asks the provider for a
	// strict-JSON reply.
	CompleteJSON(ctx context.Context, prompt string) (string, error)

	// Complete sends a system instruction plus a user message and returns the
	// raw text reply.
	Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error)
}
