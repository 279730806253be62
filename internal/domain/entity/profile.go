// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// ProfileSummary is the display-oriented slice of a user profile supplied by
// the external profile service. It annotates map results and feeds the
// optional mode filter; it never participates in disclosure decisions.
type ProfileSummary struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
	Interests []string  `json:"interests"`
	Mode      string    `json:"mode"` // What the user is looking for: dating, friends, networking, events, travel.
}
