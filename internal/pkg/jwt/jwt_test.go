package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_32_characters_min"

func TestNew_EmptySecret(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = New("   ")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestSignAndVerify_RoundTrip(t *testing.T) {
	svc, err := New(testSecret)
	require.NoError(t, err)

	token, err := svc.Sign("u1", 3*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestVerify_Expired(t *testing.T) {
	svc, _ := New(testSecret)

	token, err := svc.Sign("u1", -time.Second)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongKey(t *testing.T) {
	signer, _ := New("key-two")
	verifier, _ := New("key-one")

	token, err := signer.Sign("u1", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	svc, _ := New(testSecret)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestExtractSubject_SurvivesExpiry(t *testing.T) {
	svc, _ := New(testSecret)

	live, err := svc.Sign("u1", time.Hour)
	require.NoError(t, err)
	expired, err := svc.Sign("u1", -time.Second)
	require.NoError(t, err)

	liveSubject, err := svc.ExtractSubject(live)
	require.NoError(t, err)
	expiredSubject, err := svc.ExtractSubject(expired)
	require.NoError(t, err)

	assert.Equal(t, liveSubject, expiredSubject)
	assert.Equal(t, "u1", expiredSubject)
}

func TestExtractSubject_WrongKey(t *testing.T) {
	signer, _ := New("key-two")
	verifier, _ := New("key-one")

	token, _ := signer.Sign("u1", time.Hour)

	_, err := verifier.ExtractSubject(token)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestExtractSubject_MissingSubjectClaim(t *testing.T) {
	svc, _ := New(testSecret)

	// Validly signed token without a userId claim.
	bare := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := bare.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ExtractSubject(token)
	assert.ErrorIs(t, err, ErrMissingSubject)
}
