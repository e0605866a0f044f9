package supabase

import (
	"listkeeper/internal/list/repository"
	"listkeeper/pkg/backend"
	"listkeeper/pkg/log"
)

// TokenSource yields the signed-in user's access token. Implemented by the
// session manager.
type TokenSource interface {
	AccessToken() string
}

type implRepository struct {
	client *backend.Client
	tokens TokenSource
	l      log.Logger
}

// New creates a hosted-backend Repository for the list domain. Every call
// carries the current session token; row-level authorization is enforced
// server-side.
func New(client *backend.Client, tokens TokenSource, l log.Logger) repository.Repository {
	if client == nil {
		panic("list/repository/supabase: client is required")
	}
	return &implRepository{client: client, tokens: tokens, l: l}
}

func (r *implRepository) db() *backend.Client {
	if r.tokens == nil {
		return r.client
	}
	if token := r.tokens.AccessToken(); token != "" {
		return r.client.WithToken(token)
	}
	return r.client
}
