package token

import (
	"context"
	"time"

	"streamfix/internal/domain"
	"streamfix/internal/pkg/jwt"
)

// TokenStore is the slice of the token repository the service needs.
type TokenStore interface {
	Create(ctx context.Context, t *domain.Token) error
	FindByUserID(ctx context.Context, userID string) (*domain.Token, error)
	Rotate(ctx context.Context, userID, access, refresh string, accessExpiresAt, refreshExpiresAt time.Time) (*domain.Token, error)
}

// AccountStore resolves subjects back to accounts.
type AccountStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.User, error)
}

// CredentialSigner mints and checks signed credentials.
type CredentialSigner interface {
	Sign(userID string, validFor time.Duration) (string, error)
	Verify(tokenStr string) (*jwt.Claims, error)
	ExtractSubject(tokenStr string) (string, error)
}
