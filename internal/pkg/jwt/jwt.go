package jwt

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptySecret is a startup configuration failure, never a request error.
	ErrEmptySecret = errors.New("jwt signing secret is empty")

	ErrMalformedToken   = errors.New("malformed token")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrMissingSubject   = errors.New("token has no subject claim")
)

// Claims is the payload embedded in every signed token. The subject travels
// in the userId claim.
type Claims struct {
	UserID string `json:"userId"`
	jwtlib.RegisteredClaims
}

// Service signs and verifies HS256 tokens with one process-wide secret.
// Rotating the secret invalidates every outstanding token.
type Service struct {
	secret []byte
}

func New(secret string) (*Service, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	return &Service{secret: []byte(secret)}, nil
}

// Sign mints a token for userID expiring validFor from now.
func (s *Service) Sign(userID string, validFor time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(validFor)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token. Expiry, bad signature and structural
// failures surface as distinct errors so transports can answer differently.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, s.keyFunc)
	if err != nil {
		return nil, classify(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// ExtractSubject recovers the subject from any validly signed token,
// including one that has already expired. Callers deciding whether to
// rotate need the subject of an expired access token.
func (s *Service) ExtractSubject(tokenStr string) (string, error) {
	claims := &Claims{}
	_, err := jwtlib.ParseWithClaims(tokenStr, claims, s.keyFunc)
	if err != nil && !errors.Is(err, jwtlib.ErrTokenExpired) {
		return "", classify(err)
	}

	if claims.UserID == "" {
		return "", ErrMissingSubject
	}
	return claims.UserID, nil
}

func (s *Service) keyFunc(t *jwtlib.Token) (any, error) {
	if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
		return nil, ErrSignatureInvalid
	}
	return s.secret, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwtlib.ErrTokenSignatureInvalid), errors.Is(err, ErrSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, jwtlib.ErrTokenMalformed):
		return ErrMalformedToken
	default:
		return err
	}
}
