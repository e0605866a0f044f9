package model

import "time"

// Profile is the backend user record. Tier lives here, not in session
// metadata, and is re-resolved every time a fresh session is established.
type Profile struct {
	ID          string
	Email       string
	DisplayName string
	AvatarURL   string
	Tier        Tier
	CreatedAt   time.Time
}
