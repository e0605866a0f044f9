package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(Config{URL: srv.URL, AnonKey: "anon-key"})
	return c, srv
}

func TestSelectBuildsQuery(t *testing.T) {
	var gotPath, gotAuth string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[{"id":"l1","title":"Groceries"}]`))
	})
	defer srv.Close()

	type row struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	var rows []row
	err := c.WithToken("user-token").Select(context.Background(), "lists", Query{
		Eq:    map[string]string{"owner_id": "u1"},
		Order: "created_at",
		Desc:  true,
		Limit: 10,
	}, &rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 || rows[0].ID != "l1" {
		t.Errorf("unexpected rows: %+v", rows)
	}
	if gotAuth != "Bearer user-token" {
		t.Errorf("expected user token bearer, got %q", gotAuth)
	}
	decoded, _ := url.QueryUnescape(gotPath)
	for _, want := range []string{"owner_id=eq.u1", "order=created_at.desc", "limit=10"} {
		if !strings.Contains(decoded, want) {
			t.Errorf("query %q missing %q", decoded, want)
		}
	}
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrSessionExpired},
		{http.StatusNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		err := c.Select(context.Background(), "lists", Query{}, &[]struct{}{})
		srv.Close()
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: got %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestTimeoutClassification(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	defer srv.Close()
	c.timeout = 20 * time.Millisecond

	err := c.Insert(context.Background(), "lists", map[string]string{"title": "x"}, nil)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestUploadObjectGuards(t *testing.T) {
	c := NewClient(Config{URL: "http://unused", AnonKey: "k"})

	big := make([]byte, MaxObjectSize+1)
	if _, err := c.UploadObject(context.Background(), "avatars", "a.png", "image/png", big); !errors.Is(err, ErrObjectTooLarge) {
		t.Errorf("expected ErrObjectTooLarge, got %v", err)
	}
	if _, err := c.UploadObject(context.Background(), "avatars", "a.exe", "application/octet-stream", []byte("x")); !errors.Is(err, ErrUnsupportedObjectType) {
		t.Errorf("expected ErrUnsupportedObjectType, got %v", err)
	}
}

func TestUploadObjectReturnsPublicURL(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "image/png" {
			t.Errorf("unexpected content type %s", r.Header.Get("Content-Type"))
		}
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	url, err := c.UploadObject(context.Background(), "avatars", "u1.png", "image/png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := srv.URL + "/storage/v1/object/public/avatars/u1.png"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}
