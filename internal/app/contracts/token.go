package contracts

import (
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

// TokenSequencer derives the next queue token from the highest issued one.
// The value is never reserved; uniqueness is enforced by the store's unique
// index when the patient is written.
type TokenSequencer interface {
	NextToken(ctx context.Context) (int, error)
	ListTokens(ctx context.Context) ([]responses.TokenEntry, error)
}
