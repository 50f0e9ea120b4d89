package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"court-reservation-api/core/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSecret(t *testing.T) {
	t.Helper()
	prev, _ := config.GetSafe()
	config.Set(&config.Config{JWT: config.JWTConfig{Secret: "test-secret", Issuer: "test"}})
	t.Cleanup(func() { config.Set(prev) })
}

func TestGenerateAndValidateToken(t *testing.T) {
	withSecret(t)

	token, err := GenerateToken(TokenClaims{
		UserID: "12345678-9",
		Role:   "admin",
		Name:   "Ana",
		Email:  "ana@example.com",
	}, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "12345678-9", claims.UserID)
	assert.Equal(t, "access", claims.Scope)
	assert.Equal(t, "test", claims.Issuer)
	assert.True(t, claims.IsAdmin())
}

func TestValidateToken_Expired(t *testing.T) {
	withSecret(t)

	token, err := GenerateToken(TokenClaims{UserID: "1"}, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateAndParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_Tampered(t *testing.T) {
	withSecret(t)

	token, err := GenerateToken(TokenClaims{UserID: "1"}, time.Hour)
	require.NoError(t, err)

	_, err = ValidateAndParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetTokenFromHeader(t *testing.T) {
	e := echo.New()
	cases := map[string]struct {
		header string
		token  string
		err    error
	}{
		"missing":   {"", "", ErrMissingToken},
		"no bearer": {"Token abc", "", ErrInvalidFormat},
		"empty":     {"Bearer ", "", ErrInvalidFormat},
		"ok":        {"Bearer abc.def", "abc.def", nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			token, err := GetTokenFromHeader(e.NewContext(req, httptest.NewRecorder()))
			assert.Equal(t, tc.token, token)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, ComparePassword(hash, "s3cret"))
	assert.False(t, ComparePassword(hash, "other"))
}

func TestParseDate(t *testing.T) {
	loc := time.UTC
	iso, err := ParseDate("2026-10-19", loc)
	require.NoError(t, err)
	dmy, err := ParseDate("19-10-2026", loc)
	require.NoError(t, err)
	assert.True(t, iso.Equal(dmy))

	_, err = ParseDate("2026/10/19", loc)
	assert.Error(t, err)
}

func TestParseIDAndGenerateID(t *testing.T) {
	assert.Equal(t, int64(42), ParseID("42"))
	assert.Zero(t, ParseID("-1"))
	assert.Zero(t, ParseID("abc"))
	assert.NotEmpty(t, GenerateID())
}
