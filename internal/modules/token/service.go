package token

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"streamfix/internal/domain"
	"streamfix/internal/pkg/jwt"
)

// Service owns the token pair lifecycle. Every account holds at most one
// pair; login re-issues by rotating the existing row rather than stacking
// new ones.
type Service struct {
	tokens TokenStore
	users  AccountStore
	signer CredentialSigner

	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(tokens TokenStore, users AccountStore, signer CredentialSigner, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		tokens:     tokens,
		users:      users,
		signer:     signer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueNew mints a fresh pair and persists the account's first ledger row.
func (s *Service) IssueNew(ctx context.Context, userID string) (*domain.Token, error) {
	access, refresh, accessExp, refreshExp, err := s.mint(userID)
	if err != nil {
		return nil, err
	}

	t := &domain.Token{
		TokenID:          uuid.NewString(),
		UserID:           userID,
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}
	if err := s.tokens.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks signature and expiry of an access token and returns its
// claims. Expiry, bad signature and malformed input surface as the signer's
// distinct errors.
func (s *Service) Validate(tokenStr string) (*jwt.Claims, error) {
	return s.signer.Verify(tokenStr)
}

// ResolveAccount maps a token to its account even when the token has
// expired. An expired access token still names its subject; only the
// signature must hold.
func (s *Service) ResolveAccount(ctx context.Context, tokenStr string) (*domain.User, error) {
	userID, err := s.signer.ExtractSubject(tokenStr)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return user, nil
}

// Upsert issues the account's pair: first login creates the row, every later
// login rotates it in place. Both expiries reset on rotate.
func (s *Service) Upsert(ctx context.Context, userID string) (*domain.Token, error) {
	existing, err := s.tokens.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.IssueNew(ctx, userID)
	}

	access, refresh, accessExp, refreshExp, err := s.mint(userID)
	if err != nil {
		return nil, err
	}

	rotated, err := s.tokens.Rotate(ctx, userID, access, refresh, accessExp, refreshExp)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return rotated, nil
}

func (s *Service) mint(userID string) (access, refresh string, accessExp, refreshExp time.Time, err error) {
	now := time.Now()

	access, err = s.signer.Sign(userID, s.accessTTL)
	if err != nil {
		return "", "", time.Time{}, time.Time{}, err
	}
	refresh, err = s.signer.Sign(userID, s.refreshTTL)
	if err != nil {
		return "", "", time.Time{}, time.Time{}, err
	}

	return access, refresh, now.Add(s.accessTTL), now.Add(s.refreshTTL), nil
}
