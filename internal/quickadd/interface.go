package quickadd

import "context"

// UseCase defines the business logic for the quick-add domain: extract an
// event from a natural-language phrase and create it in the calendar.
type UseCase interface {
	// Create parses the raw text and creates the event through the
	// configured calendar backend. With DryRun set it stops after the
	// preview.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
}
