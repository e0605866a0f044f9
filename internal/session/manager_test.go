package session_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"listkeeper/internal/model"
	"listkeeper/internal/session"
	"listkeeper/pkg/backend"
	"listkeeper/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeBackend serves the auth and profile endpoints the manager touches.
type fakeBackend struct {
	mu          sync.Mutex
	tier        string
	profileHits int
	failProfile bool
	refreshHits int
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		if strings.Contains(r.URL.RawQuery, "refresh_token") {
			f.refreshHits++
		}
		f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "tok-fresh",
			"refresh_token": "ref-fresh",
			"expires_in":    3600,
			"user":          map[string]string{"id": "user-1", "email": "a@b.com"},
		})
	})
	mux.HandleFunc("/auth/v1/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/rest/v1/profiles", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.profileHits++
		fail, tier := f.failProfile, f.tier
		f.mu.Unlock()
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `[{"id":"user-1","email":"a@b.com","display_name":"Alex","tier":%q}]`, tier)
	})
	return mux
}

func newTestManager(t *testing.T, f *fakeBackend, tiers kvstore.Store) (*session.Manager, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(f.handler())
	t.Cleanup(ts.Close)
	client := backend.NewClient(backend.Config{URL: ts.URL, AnonKey: "anon"})
	return session.New(client, &mockLogger{}, tiers, time.Minute), ts
}

func validSession() backend.Session {
	return backend.Session{
		AccessToken:  "tok-1",
		RefreshToken: "ref-1",
		ExpiresAt:    time.Now().Add(time.Hour),
		UserID:       "user-1",
		Email:        "a@b.com",
	}
}

func TestEstablish(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves Tier From Profile", func(t *testing.T) {
		f := &fakeBackend{tier: "good"}
		m, _ := newTestManager(t, f, kvstore.NewMemory())

		if err := m.Establish(ctx, validSession()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.State() != session.StateAuthenticated {
			t.Errorf("expected authenticated, got %s", m.State())
		}
		if m.Tier() != model.TierGood {
			t.Errorf("expected tier good from profile, got %s", m.Tier())
		}
		if m.Profile().DisplayName != "Alex" {
			t.Errorf("expected profile loaded, got %+v", m.Profile())
		}
	})

	t.Run("Refreshes Expired Session", func(t *testing.T) {
		f := &fakeBackend{tier: "free"}
		m, _ := newTestManager(t, f, kvstore.NewMemory())

		s := validSession()
		s.ExpiresAt = time.Now().Add(-time.Hour)
		if err := m.Establish(ctx, s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.refreshHits != 1 {
			t.Errorf("expected one refresh call, got %d", f.refreshHits)
		}
		if m.AccessToken() != "tok-fresh" {
			t.Errorf("expected refreshed token, got %q", m.AccessToken())
		}
	})

	t.Run("Fetch Failure Falls Back To Cache", func(t *testing.T) {
		tiers := kvstore.NewMemory()
		tiers.Set("tier:user-1", "even_better")
		f := &fakeBackend{failProfile: true}
		m, _ := newTestManager(t, f, tiers)

		if err := m.Establish(ctx, validSession()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Tier() != model.TierEvenBetter {
			t.Errorf("expected cached tier while fetch fails, got %s", m.Tier())
		}
	})

	t.Run("Fetched Tier Wins Over Cache", func(t *testing.T) {
		tiers := kvstore.NewMemory()
		tiers.Set("tier:user-1", "lots_more")
		f := &fakeBackend{tier: "free"}
		m, _ := newTestManager(t, f, tiers)

		if err := m.Establish(ctx, validSession()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Tier() != model.TierFree {
			t.Errorf("expected fetched tier to win, got %s", m.Tier())
		}
		if v, _ := tiers.Get("tier:user-1"); v != "free" {
			t.Errorf("expected mirror rewritten to free, got %q", v)
		}
	})
}

func TestTierSubscribers(t *testing.T) {
	ctx := context.Background()
	f := &fakeBackend{tier: "free"}
	m, _ := newTestManager(t, f, kvstore.NewMemory())

	var calls []string
	m.Subscribe(func(newTier, oldTier model.Tier) {
		calls = append(calls, "first:"+string(oldTier)+">"+string(newTier))
	})
	m.Subscribe(func(newTier, oldTier model.Tier) {
		calls = append(calls, "second:"+string(oldTier)+">"+string(newTier))
	})

	if err := m.Establish(ctx, validSession()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls = nil

	f.mu.Lock()
	f.tier = "good"
	f.mu.Unlock()
	if err := m.RefreshTier(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"first:free>good", "second:free>good"}
	if len(calls) != 2 || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("expected subscribers in order %v, got %v", want, calls)
	}

	// same tier again: no notifications
	calls = nil
	if err := m.RefreshTier(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("expected no notifications without a change, got %v", calls)
	}
}

func TestHandleChange(t *testing.T) {
	ctx := context.Background()
	f := &fakeBackend{tier: "free"}
	m, _ := newTestManager(t, f, kvstore.NewMemory())
	if err := m.Establish(ctx, validSession()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := f.profileHits

	// other tables and other users are ignored
	m.HandleChange(ctx, model.ChangeEvent{Table: model.TableLists, RowID: "user-1"})
	m.HandleChange(ctx, model.ChangeEvent{Table: model.TableProfiles, RowID: "someone-else"})
	if f.profileHits != before {
		t.Errorf("expected no profile fetches for irrelevant events")
	}

	m.HandleChange(ctx, model.ChangeEvent{Table: model.TableProfiles, RowID: "user-1"})
	if f.profileHits != before+1 {
		t.Errorf("expected a tier refresh for own profile change")
	}
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()
	tiers := kvstore.NewMemory()
	f := &fakeBackend{tier: "good"}
	m, _ := newTestManager(t, f, tiers)
	if err := m.Establish(ctx, validSession()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.SignOut(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.State() != session.StateSignedOut {
		t.Errorf("expected signed out, got %s", m.State())
	}
	if m.Tier() != model.TierFree {
		t.Errorf("expected free tier when signed out, got %s", m.Tier())
	}
	if _, err := tiers.Get("tier:user-1"); err == nil {
		t.Error("expected tier mirror cleared on sign out")
	}
}
