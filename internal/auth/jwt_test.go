package auth

import (
	"testing"
	"time"

	"jobtrack_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func setTestConfig(ttlMinutes int) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit_test_secret_key"
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(60)

	token, err := GenerateToken("user-123", "Dana Serik", "Hr")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Dana Serik", claims.Name)
	assert.Equal(t, "Hr", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(60)
	token, err := GenerateToken("user-123", "Dana", "Candidate")
	assert.NoError(t, err)

	config.AppConfig.JWT.Secret = "a_different_secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(60)

	claims := &Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWT.Secret))
	assert.NoError(t, err)

	_, err = ParseToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSigningMethod(t *testing.T) {
	setTestConfig(60)

	// alg=none tokens must never validate.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-123"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = ParseToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
