package auth

import (
	"testing"
	"time"

	"interest/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")

	roles := []string{"shop_manager", "admin"}
	accessToken, err := jwtService.GenerateAccessToken(42, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "issuer_secret_key_very_long_for_testing")
	verifier := newTestJWTService(t, "verifier_secret_key_very_long_for_testing")

	token, err := issuer.GenerateAccessToken(1, []string{"admin"})
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")

	issuedAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	jwtService.now = func() time.Time { return issuedAt }
	token, err := jwtService.GenerateAccessToken(1, []string{"admin"})
	require.NoError(t, err)

	jwtService.now = func() time.Time { return issuedAt.Add(time.Hour) }
	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsOtherTokenType(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService := newTestJWTService(t, secret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "unexpected token type")
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetAccessTokenDuration(t *testing.T) {
	jwtService := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")

	assert.Equal(t, 15*time.Minute, jwtService.GetAccessTokenDuration())
}
