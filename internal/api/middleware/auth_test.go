// internal/api/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bankledger/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, tokens *auth.TokenManager) http.Handler {
	return Authenticator(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), claims.UserID)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthenticator(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("MissingHeaderIsUnauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		protectedHandler(t, tokens).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("InvalidTokenIsForbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		protectedHandler(t, tokens).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("WrongSecretIsForbidden", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", time.Hour)
		token, err := other.Generate(42, "john@mail.com")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)

		protectedHandler(t, tokens).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("ValidBearerToken", func(t *testing.T) {
		token, err := tokens.Generate(42, "john@mail.com")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		protectedHandler(t, tokens).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ValidRawToken", func(t *testing.T) {
		token, err := tokens.Generate(42, "john@mail.com")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)

		protectedHandler(t, tokens).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
