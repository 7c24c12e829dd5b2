package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/pkg/apierror"
)

type userStore interface {
	Create(ctx context.Context, u model.Account) error
	FindByUsername(ctx context.Context, username string) (model.Account, error)
}

type tokenIssuer interface {
	Issue(accountID string, role string) (string, error)
}

type AuthService struct {
	users      userStore
	tokens     tokenIssuer
	bcryptCost int
}

func NewAuthService(users userStore, tokens tokenIssuer, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = 12
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Signup registers a new account and returns its id. Username uniqueness
// is arbitrated by the store's insert, not checked up front, so two
// concurrent signups of the same username cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, username string, password string, role string) (string, error) {
	username = strings.TrimSpace(username)
	role = strings.ToLower(strings.TrimSpace(role))

	if username == "" || password == "" {
		return "", apierror.New("username and password are required", "", http.StatusBadRequest)
	}
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return "", apierror.New("invalid account type", role, http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	account := model.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, account); err != nil {
		return "", err
	}

	return account.ID, nil
}

// Signin verifies credentials and issues a bearer token. Unknown
// username and wrong password collapse into the same error so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) Signin(ctx context.Context, username string, password string) (string, error) {
	account, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	return s.tokens.Issue(account.ID, account.Role)
}
