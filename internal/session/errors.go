package session

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired, sign in again")
	ErrInvalidName      = errors.New("display name must be 1 to 50 characters")
)
