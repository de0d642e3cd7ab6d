package user

import (
	"context"

	"streamfix/internal/domain"
	"streamfix/internal/kakao"
)

// UserStore is the slice of the user repository the service needs.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByProviderID(ctx context.Context, providerID string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TokenIssuer hands out the account's token pair on login.
type TokenIssuer interface {
	Upsert(ctx context.Context, userID string) (*domain.Token, error)
}

// SubscriptionSeeder creates the FREE subscription every new account gets.
type SubscriptionSeeder interface {
	Create(ctx context.Context, userID string) (*domain.Subscription, error)
}

// OAuthProvider completes the social login handshake.
type OAuthProvider interface {
	GetAccessToken(ctx context.Context, code string) (string, error)
	GetProfile(ctx context.Context, accessToken string) (*kakao.Profile, error)
}
