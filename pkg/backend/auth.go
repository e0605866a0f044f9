package backend

import (
	"context"
	"net/http"
	"time"
)

// Session is an authenticated backend session.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
}

// Expired reports whether the access token is past its expiry.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

type authResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (r authResponse) session() Session {
	return Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(r.ExpiresIn) * time.Second),
		UserID:       r.User.ID,
		Email:        r.User.Email,
	}
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, email, password string) (Session, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", body, &resp, nil); err != nil {
		return Session{}, err
	}
	return resp.session(), nil
}

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", body, &resp, nil); err != nil {
		return Session{}, err
	}
	return resp.session(), nil
}

// RefreshSession exchanges a refresh token for a fresh session.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (Session, error) {
	var resp authResponse
	body := map[string]string{"refresh_token": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=refresh_token", body, &resp, nil); err != nil {
		return Session{}, err
	}
	return resp.session(), nil
}

// SignOut revokes the current session token.
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, nil, nil)
}

// ResetPassword sends a password-reset email.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/v1/recover", body, nil, nil)
}

// UpdatePassword changes the signed-in user's password.
func (c *Client) UpdatePassword(ctx context.Context, newPassword string) error {
	body := map[string]string{"password": newPassword}
	return c.do(ctx, http.MethodPut, "/auth/v1/user", body, nil, nil)
}

// UpdateEmail changes the signed-in user's email address.
func (c *Client) UpdateEmail(ctx context.Context, newEmail string) error {
	body := map[string]string{"email": newEmail}
	return c.do(ctx, http.MethodPut, "/auth/v1/user", body, nil, nil)
}
