package ports

import "context"

// Chat produces simulated concierge replies after a short artificial delay.
type Chat interface {
	// Reply blocks for the simulated delay and returns a canned response.
	// The delay is cancellable through ctx.
	Reply(ctx context.Context, message string) (string, error)
}
