package model

import (
	"fmt"
	"time"
)

type Space struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	OwnerID   string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Dimensions renders the wire form, e.g. "100x200".
func (s Space) Dimensions() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
