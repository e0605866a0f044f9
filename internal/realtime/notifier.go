package realtime

import (
	"context"
	"sync"
	"time"

	"listkeeper/internal/model"
	"listkeeper/pkg/log"
)

// dispatchTimeout bounds every background delivery so a stuck subscriber
// cannot leak goroutines.
const dispatchTimeout = 2 * time.Minute

// Handler consumes change events. The list store registers one that marks
// its snapshot stale; the session manager registers one for tier changes.
type Handler func(ctx context.Context, ev model.ChangeEvent)

// Notifier fans change events out to subscribers. The webhook receiver and
// the polling fallback both feed it, so consumers never care which transport
// delivered a change.
type Notifier struct {
	l log.Logger

	mu   sync.RWMutex
	subs []Handler
}

// NewNotifier creates an empty Notifier.
func NewNotifier(l log.Logger) *Notifier {
	return &Notifier{l: l}
}

// Subscribe registers a handler. Handlers run on the dispatch goroutine, in
// subscription order.
func (n *Notifier) Subscribe(fn Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// Dispatch delivers the event to all subscribers on a background goroutine
// so the caller (the webhook handler) can acknowledge immediately.
func (n *Notifier) Dispatch(ev model.ChangeEvent) {
	n.mu.RLock()
	subs := append([]Handler{}, n.subs...)
	n.mu.RUnlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		for _, fn := range subs {
			fn(ctx, ev)
		}
	}()
}
