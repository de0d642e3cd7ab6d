package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"streamfix/internal/domain"
)

const providerKakao = "kakao"

// Service owns account registration and both login paths. Every new
// account, local or social, is seeded with the FREE subscription.
type Service struct {
	users  UserStore
	tokens TokenIssuer
	subs   SubscriptionSeeder
	oauth  OAuthProvider
}

func NewService(users UserStore, tokens TokenIssuer, subs SubscriptionSeeder, oauth OAuthProvider) *Service {
	return &Service{users: users, tokens: tokens, subs: subs, oauth: oauth}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		UserID:   uuid.NewString(),
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hash),
		Phone:    req.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if _, err := s.subs.Create(ctx, u.UserID); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues the token pair. The pair is
// upserted: a second login rotates the existing row instead of stacking a
// new one.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, *domain.Token, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	// Social accounts carry no local password.
	if u.Password == "" {
		return nil, nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	t, err := s.tokens.Upsert(ctx, u.UserID)
	if err != nil {
		return nil, nil, err
	}
	return u, t, nil
}

// KakaoCallback completes the OAuth round trip: exchange the authorization
// code, resolve the provider account, register it on first contact, then
// issue the token pair like any other login.
func (s *Service) KakaoCallback(ctx context.Context, code string) (*domain.User, *domain.Token, error) {
	accessToken, err := s.oauth.GetAccessToken(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.oauth.GetProfile(ctx, accessToken)
	if err != nil {
		return nil, nil, err
	}

	u, err := s.users.GetByProviderID(ctx, profile.ProviderID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		provider := providerKakao
		providerID := profile.ProviderID
		u = &domain.User{
			UserID:     uuid.NewString(),
			UserName:   profile.Nickname,
			Email:      fmt.Sprintf("%s.%s@social.streamfix.local", providerKakao, profile.ProviderID),
			Provider:   &provider,
			ProviderID: &providerID,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, nil, err
		}
		if _, err := s.subs.Create(ctx, u.UserID); err != nil {
			return nil, nil, err
		}
	}

	t, err := s.tokens.Upsert(ctx, u.UserID)
	if err != nil {
		return nil, nil, err
	}
	return u, t, nil
}
