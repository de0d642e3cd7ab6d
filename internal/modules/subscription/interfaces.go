package subscription

import (
	"context"

	"streamfix/internal/domain"
)

// SubscriptionStore is the slice of the subscription repository the service
// needs.
type SubscriptionStore interface {
	Create(ctx context.Context, s *domain.Subscription) error
	FindByUserID(ctx context.Context, userID string) (*domain.Subscription, error)
	Save(ctx context.Context, s *domain.Subscription) error
}
