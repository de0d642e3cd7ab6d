package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"streamfix/internal/domain"
	"streamfix/internal/kakao"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) GetByProviderID(ctx context.Context, providerID string) (*domain.User, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Upsert(ctx context.Context, userID string) (*domain.Token, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

type mockSubscriptionSeeder struct {
	mock.Mock
}

func (m *mockSubscriptionSeeder) Create(ctx context.Context, userID string) (*domain.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

type mockOAuthProvider struct {
	mock.Mock
}

func (m *mockOAuthProvider) GetAccessToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *mockOAuthProvider) GetProfile(ctx context.Context, accessToken string) (*kakao.Profile, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kakao.Profile), args.Error(1)
}

func TestService_Register_HashesPasswordAndSeedsSubscription(t *testing.T) {
	users := new(mockUserStore)
	tokens := new(mockTokenIssuer)
	subs := new(mockSubscriptionSeeder)
	svc := NewService(users, tokens, subs, nil)

	users.On("ExistsByEmail", mock.Anything, "a@example.com").Return(false, nil)
	var created *domain.User
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.User)
	}).Return(nil)
	subs.On("Create", mock.Anything, mock.Anything).Return(domain.NewSubscription("x"), nil)

	u, err := svc.Register(context.Background(), RegisterRequest{
		UserName: "alice",
		Email:    "a@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEqual(t, "s3cret-pass", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret-pass")))
	subs.AssertCalled(t, "Create", mock.Anything, u.UserID)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(mockUserStore)
	tokens := new(mockTokenIssuer)
	subs := new(mockSubscriptionSeeder)
	svc := NewService(users, tokens, subs, nil)

	users.On("ExistsByEmail", mock.Anything, "a@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		UserName: "alice",
		Email:    "a@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_UpsertsTokenPair(t *testing.T) {
	users := new(mockUserStore)
	tokens := new(mockTokenIssuer)
	subs := new(mockSubscriptionSeeder)
	svc := NewService(users, tokens, subs, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "a@example.com").
		Return(&domain.User{UserID: "user-1", Email: "a@example.com", Password: string(hash)}, nil)
	tokens.On("Upsert", mock.Anything, "user-1").
		Return(&domain.Token{TokenID: "tok-1", UserID: "user-1", AccessToken: "acc"}, nil)

	u, tok, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.UserID)
	assert.Equal(t, "tok-1", tok.TokenID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(mockUserStore)
	tokens := new(mockTokenIssuer)
	subs := new(mockSubscriptionSeeder)
	svc := NewService(users, tokens, subs, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "a@example.com").
		Return(&domain.User{UserID: "user-1", Password: string(hash)}, nil)

	_, _, err = svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(mockUserStore)
	tokens := new(mockTokenIssuer)
	subs := new(mockSubscriptionSeeder)
	svc := NewService(users, tokens, subs, nil)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_KakaoCallback_FirstContactRegisters(t *testing.T) {
	users := new(mockUserStore)
	tokens := new(mockTokenIssuer)
	subs := new(mockSubscriptionSeeder)
	oauth := new(mockOAuthProvider)
	svc := NewService(users, tokens, subs, oauth)

	oauth.On("GetAccessToken", mock.Anything, "auth-code").Return("provider-token", nil)
	oauth.On("GetProfile", mock.Anything, "provider-token").
		Return(&kakao.Profile{ProviderID: "12345", Nickname: "kim"}, nil)
	users.On("GetByProviderID", mock.Anything, "12345").Return(nil, nil)

	var created *domain.User
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.User)
	}).Return(nil)
	subs.On("Create", mock.Anything, mock.Anything).Return(domain.NewSubscription("x"), nil)
	tokens.On("Upsert", mock.Anything, mock.Anything).
		Return(&domain.Token{TokenID: "tok-1"}, nil)

	u, tok, err := svc.KakaoCallback(context.Background(), "auth-code")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "kim", u.UserName)
	require.NotNil(t, u.ProviderID)
	assert.Equal(t, "12345", *u.ProviderID)
	assert.Equal(t, "tok-1", tok.TokenID)
}

func TestService_KakaoCallback_KnownAccountSkipsRegistration(t *testing.T) {
	users := new(mockUserStore)
	tokens := new(mockTokenIssuer)
	subs := new(mockSubscriptionSeeder)
	oauth := new(mockOAuthProvider)
	svc := NewService(users, tokens, subs, oauth)

	oauth.On("GetAccessToken", mock.Anything, "auth-code").Return("provider-token", nil)
	oauth.On("GetProfile", mock.Anything, "provider-token").
		Return(&kakao.Profile{ProviderID: "12345", Nickname: "kim"}, nil)
	users.On("GetByProviderID", mock.Anything, "12345").
		Return(&domain.User{UserID: "user-1"}, nil)
	tokens.On("Upsert", mock.Anything, "user-1").
		Return(&domain.Token{TokenID: "tok-1", UserID: "user-1"}, nil)

	u, _, err := svc.KakaoCallback(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.UserID)

	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
