package middleware

import (
	"listkeeper/internal/session"
	"listkeeper/pkg/log"
)

type Middleware struct {
	l        log.Logger
	sessions *session.Manager
}

func New(l log.Logger, sessions *session.Manager) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
	}
}
