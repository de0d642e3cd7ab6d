package subscription

import (
	"context"

	"streamfix/internal/domain"
)

// Service owns the one-subscription-per-account ledger. Registration seeds
// the FREE row; everything after mutates that row in place.
type Service struct {
	subs SubscriptionStore
}

func NewService(subs SubscriptionStore) *Service {
	return &Service{subs: subs}
}

// Create seeds the account's FREE 30-day subscription. Rejected when a row
// already exists.
func (s *Service) Create(ctx context.Context, userID string) (*domain.Subscription, error) {
	existing, err := s.subs.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySubscribed
	}

	sub := domain.NewSubscription(userID)
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.Subscription, error) {
	sub, err := s.subs.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}
	return sub, nil
}

// Renew starts a fresh 30-day window. Only allowed once the current window
// has ended; renewing mid-window would silently discard paid time.
func (s *Service) Renew(ctx context.Context, userID string) (*domain.Subscription, error) {
	sub, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !sub.AbleToRenew() {
		return nil, ErrRenewNotAllowed
	}

	sub.Renew()
	if err := s.subs.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ChangeTier swaps the tier inside the current window. The window itself is
// untouched; after a renew the account may change tier again.
func (s *Service) ChangeTier(ctx context.Context, userID string, tier domain.Tier) (*domain.Subscription, error) {
	sub, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !sub.AbleToChange() {
		return nil, ErrChangeNotAllowed
	}

	sub.ChangeTier(tier)
	if err := s.subs.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) Deactivate(ctx context.Context, userID string) (*domain.Subscription, error) {
	sub, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub.Deactivate()
	if err := s.subs.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
