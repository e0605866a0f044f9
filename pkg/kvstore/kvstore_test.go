package kvstore_test

import (
	"errors"
	"path/filepath"
	"testing"

	"listkeeper/pkg/kvstore"
)

func TestMemoryStore(t *testing.T) {
	s := kvstore.NewMemory()

	if _, err := s.Get("missing"); !errors.Is(err, kvstore.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}

	if err := s.Set("tier", "good"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := s.Get("tier")
	if err != nil || v != "good" {
		t.Errorf("get = %q, %v", v, err)
	}

	if err := s.Delete("tier"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get("tier"); !errors.Is(err, kvstore.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	s := kvstore.NewFile(path)
	if err := s.Set("tier", "even_better"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// A fresh handle on the same path sees the value.
	s2 := kvstore.NewFile(path)
	v, err := s2.Get("tier")
	if err != nil || v != "even_better" {
		t.Errorf("get = %q, %v", v, err)
	}

	if err := s2.Delete("tier"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s2.Get("tier"); !errors.Is(err, kvstore.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}
