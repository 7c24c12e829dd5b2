package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	AvatarID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthClaims is the verified token payload attached to request contexts.
type AuthClaims struct {
	AccountID string
	Role      string
	TokenID   string
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
