package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/internal/service"
)

func newAuthedMiddleware(t *testing.T) (*AuthMiddleware, *service.TokenService) {
	t.Helper()

	tokens := service.NewTokenService("test-secret", time.Hour)
	return NewAuthMiddleware(tokens), tokens
}

func claimsEchoHandler(t *testing.T, wantID string, wantRole string) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantID, claims.AccountID)
		assert.Equal(t, wantRole, claims.Role)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	mw, _ := newAuthedMiddleware(t)

	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/metadata", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	mw, tokens := newAuthedMiddleware(t)

	token, err := tokens.Issue("account-1", model.RoleUser)
	require.NoError(t, err)

	for _, header := range []string{"Basic abc", token, "Bearer", "Bearer  "} {
		handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			t.Fatalf("handler must not be reached for header %q", header)
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/user/metadata", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, "header %q", header)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	mw, _ := newAuthedMiddleware(t)

	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/metadata", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAuth_AttachesClaims(t *testing.T) {
	mw, tokens := newAuthedMiddleware(t)

	token, err := tokens.Issue("account-1", model.RoleAdmin)
	require.NoError(t, err)

	handler := mw.RequireAuth(claimsEchoHandler(t, "account-1", model.RoleAdmin))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/metadata", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_ForbidsNonAdmin(t *testing.T) {
	mw, tokens := newAuthedMiddleware(t)

	token, err := tokens.Issue("account-1", model.RoleUser)
	require.NoError(t, err)

	handler := mw.RequireAuth(mw.RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not be reached")
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/avatars", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_AllowsAdmin(t *testing.T) {
	mw, tokens := newAuthedMiddleware(t)

	token, err := tokens.Issue("account-1", model.RoleAdmin)
	require.NoError(t, err)

	handler := mw.RequireAuth(mw.RequireRole("admin")(claimsEchoHandler(t, "account-1", model.RoleAdmin)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/avatars", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_WithoutAuthContext(t *testing.T) {
	mw, _ := newAuthedMiddleware(t)

	// RequireRole chained without RequireAuth must still reject.
	handler := mw.RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/avatars", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
