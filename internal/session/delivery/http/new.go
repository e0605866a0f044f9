package http

import (
	"github.com/gin-gonic/gin"

	"listkeeper/internal/session"
	"listkeeper/pkg/log"
)

type Handler interface {
	SignUp(c *gin.Context)
	SignIn(c *gin.Context)
	SignOut(c *gin.Context)
	State(c *gin.Context)
	Profile(c *gin.Context)
	UpdateDisplayName(c *gin.Context)
	UploadAvatar(c *gin.Context)
	UpdateEmail(c *gin.Context)
	UpdatePassword(c *gin.Context)
	ResetPassword(c *gin.Context)
}

type handler struct {
	l        log.Logger
	sessions *session.Manager
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, sessions *session.Manager) *handler {
	return &handler{
		l:        l,
		sessions: sessions,
	}
}
