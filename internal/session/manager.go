package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"listkeeper/internal/model"
	"listkeeper/pkg/backend"
	"listkeeper/pkg/kvstore"
	"listkeeper/pkg/log"
)

// State is the session lifecycle state.
type State string

const (
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
	StateSignedOut     State = "signed_out"
)

// Subscriber is notified after the effective tier changes. Subscribers run
// synchronously, in subscription order, after the cache mirror is updated.
type Subscriber func(newTier, oldTier model.Tier)

// Manager owns the backend session and the effective subscription tier. It
// implements list.Identity for the store. Tier always comes from the
// profiles table; the kvstore mirror is consulted only while a fetch is
// failing, so a stale cache can never outlive a successful resolve.
type Manager struct {
	client *backend.Client
	l      log.Logger
	tiers  kvstore.Store

	pollEvery time.Duration

	mu      sync.RWMutex
	state   State
	session backend.Session
	profile model.Profile
	subs    []Subscriber
}

// New creates a Manager in the anonymous state.
func New(client *backend.Client, l log.Logger, tiers kvstore.Store, pollEvery time.Duration) *Manager {
	return &Manager{
		client:    client,
		l:         l,
		tiers:     tiers,
		pollEvery: pollEvery,
		state:     StateAnonymous,
	}
}

// SignUp registers and establishes the resulting session.
func (m *Manager) SignUp(ctx context.Context, email, password string) error {
	s, err := m.client.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	return m.Establish(ctx, s)
}

// SignIn authenticates and establishes the resulting session.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	s, err := m.client.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return m.Establish(ctx, s)
}

// Establish adopts a session, refreshing an expired one first, and resolves
// the tier from the profiles table. A session that cannot be refreshed
// forces the signed-out state.
func (m *Manager) Establish(ctx context.Context, s backend.Session) error {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	if s.Expired() {
		refreshed, err := m.client.RefreshSession(ctx, s.RefreshToken)
		if err != nil {
			m.l.Warnf(ctx, "session.Establish refresh failed: %v", err)
			m.mu.Lock()
			m.state = StateSignedOut
			m.session = backend.Session{}
			m.profile = model.Profile{}
			m.mu.Unlock()
			return ErrSessionExpired
		}
		s = refreshed
	}

	m.mu.Lock()
	m.session = s
	m.state = StateAuthenticated
	m.profile = model.Profile{ID: s.UserID, Email: s.Email, Tier: m.cachedTier(s.UserID)}
	m.mu.Unlock()

	if err := m.RefreshTier(ctx); err != nil {
		// Cached tier stays in effect until a fetch succeeds.
		m.l.Warnf(ctx, "session.Establish tier fetch failed, using cached: %v", err)
	}
	return nil
}

// SignOut revokes the session and drops all local state, including the
// cached tier mirror for this user.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	s := m.session
	m.session = backend.Session{}
	m.profile = model.Profile{}
	m.state = StateSignedOut
	m.mu.Unlock()

	if s.UserID != "" {
		if err := m.tiers.Delete(tierKey(s.UserID)); err != nil {
			m.l.Warnf(ctx, "session.SignOut clear tier cache: %v", err)
		}
	}
	if s.AccessToken == "" {
		return nil
	}
	if err := m.client.WithToken(s.AccessToken).SignOut(ctx); err != nil {
		m.l.Warnf(ctx, "session.SignOut revoke: %v", err)
		return err
	}
	return nil
}

// State returns the lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Profile returns the current profile snapshot.
func (m *Manager) Profile() model.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

// UserID implements list.Identity.
func (m *Manager) UserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.UserID
}

// Tier implements list.Identity. Anonymous and signed-out sessions are free.
func (m *Manager) Tier() model.Tier {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated {
		return model.TierFree
	}
	return m.profile.Tier
}

// AccessToken implements list.Identity.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AccessToken
}

// Subscribe registers a tier-change callback.
func (m *Manager) Subscribe(fn Subscriber) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// profileRow is the profiles table shape.
type profileRow struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	Tier        string    `json:"tier"`
	CreatedAt   time.Time `json:"created_at"`
}

// RefreshTier re-resolves the tier from the profiles table. A fetched value
// always wins over the cache and is mirrored back through the kvstore.
func (m *Manager) RefreshTier(ctx context.Context) error {
	m.mu.RLock()
	s := m.session
	authed := m.state == StateAuthenticated
	m.mu.RUnlock()
	if !authed {
		return ErrNotAuthenticated
	}

	var rows []profileRow
	err := m.client.WithToken(s.AccessToken).Select(ctx, model.TableProfiles, backend.Query{
		Eq:    map[string]string{"id": s.UserID},
		Limit: 1,
	}, &rows)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	if len(rows) == 0 {
		return backend.ErrNotFound
	}

	row := rows[0]
	m.mu.Lock()
	old := m.profile.Tier
	m.profile = model.Profile{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		AvatarURL:   row.AvatarURL,
		Tier:        model.ParseTier(row.Tier),
		CreatedAt:   row.CreatedAt,
	}
	newTier := m.profile.Tier
	subs := append([]Subscriber{}, m.subs...)
	m.mu.Unlock()

	if err := m.tiers.Set(tierKey(s.UserID), string(newTier)); err != nil {
		m.l.Warnf(ctx, "session.RefreshTier cache mirror: %v", err)
	}

	if newTier != old {
		m.l.Infof(ctx, "session tier changed %s -> %s", old, newTier)
		for _, fn := range subs {
			fn(newTier, old)
		}
	}
	return nil
}

// HandleChange reacts to realtime change events. Only profile changes for
// the signed-in user matter here; list changes are the store's business.
func (m *Manager) HandleChange(ctx context.Context, ev model.ChangeEvent) {
	if ev.Table != model.TableProfiles || ev.RowID != m.UserID() {
		return
	}
	if err := m.RefreshTier(ctx); err != nil {
		m.l.Warnf(ctx, "session.HandleChange refresh tier: %v", err)
	}
}

// cachedTier reads the kvstore mirror, defaulting to free.
func (m *Manager) cachedTier(userID string) model.Tier {
	v, err := m.tiers.Get(tierKey(userID))
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			m.l.Warnf(context.Background(), "session cached tier read: %v", err)
		}
		return model.TierFree
	}
	return model.ParseTier(v)
}

func tierKey(userID string) string {
	return "tier:" + userID
}
