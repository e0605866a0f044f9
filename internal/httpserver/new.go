package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	listHTTP "listkeeper/internal/list/delivery/http"
	"listkeeper/internal/middleware"
	"listkeeper/internal/realtime"
	sessionHTTP "listkeeper/internal/session/delivery/http"
	"listkeeper/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain handlers
	listHandler    listHTTP.Handler
	sessionHandler sessionHTTP.Handler

	// Realtime change webhook
	webhookHandler *realtime.WebhookHandler

	mw middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ListHandler    listHTTP.Handler
	SessionHandler sessionHTTP.Handler
	WebhookHandler *realtime.WebhookHandler
	Middleware     middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		listHandler:    cfg.ListHandler,
		sessionHandler: cfg.SessionHandler,
		webhookHandler: cfg.WebhookHandler,
		mw:             cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.listHandler == nil {
		return errors.New("list handler is required")
	}
	if srv.sessionHandler == nil {
		return errors.New("session handler is required")
	}
	return nil
}

// Run maps the handlers and blocks serving HTTP until the listener fails.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
