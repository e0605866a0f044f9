package realtime

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	pkgLog "listkeeper/pkg/log"
	pkgResponse "listkeeper/pkg/response"
)

// WebhookHandler receives database change webhooks from the backend.
type WebhookHandler struct {
	notifier  *Notifier
	validator *SecurityValidator
	l         pkgLog.Logger
}

// NewWebhookHandler creates the webhook receiver.
func NewWebhookHandler(notifier *Notifier, validator *SecurityValidator, l pkgLog.Logger) *WebhookHandler {
	return &WebhookHandler{
		notifier:  notifier,
		validator: validator,
		l:         l,
	}
}

// HandleChange validates and acknowledges a change notification. Validation
// is strict and cheap; everything downstream happens in the background so the
// backend never waits on our reconciliation.
func (h *WebhookHandler) HandleChange(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.validator.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Forbidden(c)
		return
	}
	if err := h.validator.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		pkgResponse.Error(c, err)
		return
	}
	if err := h.validator.ValidateSignature(body, c.GetHeader("X-Webhook-Signature")); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var payload changePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	ev, ok := payload.event()
	if !ok {
		h.l.Warnf(ctx, "webhook: unrecognized change type %q", payload.Type)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	h.l.Infof(ctx, "webhook: %s on %s row %s", ev.Kind, ev.Table, ev.RowID)
	h.notifier.Dispatch(ev)

	// Acknowledge immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}
