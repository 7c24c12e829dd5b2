package model

import "time"

type Avatar struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"-"`
}

// UserAvatar is one row of the bulk metadata lookup: an account joined
// with its chosen avatar, if any.
type UserAvatar struct {
	UserID   string  `json:"userId"`
	AvatarID *string `json:"avatarId"`
	ImageURL *string `json:"imageUrl"`
}
