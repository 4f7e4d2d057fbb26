package calendar

import "context"

// Service creates events in an external calendar. One synchronous attempt
// per call, no retries; a failure carries the backend's diagnostic verbatim.
type Service interface {
	Create(ctx context.Context, ev Event) error
}
