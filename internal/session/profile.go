package session

import (
	"context"
	"fmt"
	"strings"

	"listkeeper/internal/model"
	"listkeeper/internal/validation"
	"listkeeper/pkg/backend"
)

const maxDisplayNameLen = 50

// UpdateDisplayName changes the profile display name through the backend's
// stored procedure, then refreshes the local profile.
func (m *Manager) UpdateDisplayName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > maxDisplayNameLen {
		return ErrInvalidName
	}
	if m.State() != StateAuthenticated {
		return ErrNotAuthenticated
	}

	params := map[string]string{"new_display_name": name}
	if err := m.authed().RPC(ctx, "update_display_name", params, nil); err != nil {
		return fmt.Errorf("update display name: %w", err)
	}

	m.mu.Lock()
	m.profile.DisplayName = name
	m.mu.Unlock()
	return nil
}

// UploadAvatar stores the image in the avatars bucket under the user's ID
// and points the profile at the public URL. Size and MIME checks happen in
// the storage client.
func (m *Manager) UploadAvatar(ctx context.Context, bucket, contentType string, data []byte) (string, error) {
	if m.State() != StateAuthenticated {
		return "", ErrNotAuthenticated
	}

	path := fmt.Sprintf("%s/avatar", m.UserID())
	url, err := m.authed().UploadObject(ctx, bucket, path, contentType, data)
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	patch := map[string]any{"avatar_url": url}
	if err := m.authed().Update(ctx, model.TableProfiles, map[string]string{"id": m.UserID()}, patch); err != nil {
		return "", fmt.Errorf("save avatar url: %w", err)
	}

	m.mu.Lock()
	m.profile.AvatarURL = url
	m.mu.Unlock()
	return url, nil
}

// UpdateEmail validates and forwards the change to the auth endpoint. The
// backend sends a confirmation email; the local profile updates on the next
// tier refresh after confirmation.
func (m *Manager) UpdateEmail(ctx context.Context, rawEmail string) error {
	email, err := validation.Email(rawEmail)
	if err != nil {
		return err
	}
	if m.State() != StateAuthenticated {
		return ErrNotAuthenticated
	}
	return m.authed().UpdateEmail(ctx, email)
}

// UpdatePassword forwards the change to the auth endpoint.
func (m *Manager) UpdatePassword(ctx context.Context, newPassword string) error {
	if m.State() != StateAuthenticated {
		return ErrNotAuthenticated
	}
	return m.authed().UpdatePassword(ctx, newPassword)
}

// ResetPassword triggers the password-reset email flow. Works signed out.
func (m *Manager) ResetPassword(ctx context.Context, rawEmail string) error {
	email, err := validation.Email(rawEmail)
	if err != nil {
		return err
	}
	return m.client.ResetPassword(ctx, email)
}

// authed returns a client carrying the current access token.
func (m *Manager) authed() *backend.Client {
	return m.client.WithToken(m.AccessToken())
}
