package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-metaverse-api/internal/model"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("account-1", model.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "account-1", claims.AccountID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.TokenID)
}

func TestTokenService_TamperedTokenFails(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("account-1", model.RoleUser)
	require.NoError(t, err)

	// Swap the payload segment for one from a different token. The
	// signature no longer matches, so verification must fail.
	other, err := svc.Issue("account-2", model.RoleAdmin)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	require.Len(t, parts, 3)
	forged := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = svc.Verify(forged)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenService_WrongSecretFails(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("account-1", model.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenService_ExpiredTokenFails(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue("account-1", model.RoleUser)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenService_MalformedTokenFails(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c", "  "} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, model.ErrInvalidToken, "token %q", raw)
	}
}
