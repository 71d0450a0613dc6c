package kvstore_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"

	"eisenhower-task-management/pkg/kvstore"
)

func newTestStore(t *testing.T) *kvstore.FileStore {
	t.Helper()
	s, err := kvstore.NewFileStore(afero.NewMemMapFs(), "data")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func TestFileStore(t *testing.T) {
	t.Run("Get missing key", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Get("tasks:u1")
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("Set then Get round-trip", func(t *testing.T) {
		s := newTestStore(t)

		if err := s.Set("tasks:u1", []byte(`[{"id":"a"}]`)); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := s.Get("tasks:u1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(got) != `[{"id":"a"}]` {
			t.Errorf("unexpected value: %s", got)
		}
	})

	t.Run("Set overwrites", func(t *testing.T) {
		s := newTestStore(t)

		s.Set("k", []byte("one"))
		s.Set("k", []byte("two"))
		got, _ := s.Get("k")
		if string(got) != "two" {
			t.Errorf("expected overwrite, got %s", got)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		s := newTestStore(t)

		s.Set("k", []byte("v"))
		if err := s.Remove("k"); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if _, err := s.Get("k"); !errors.Is(err, kvstore.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound after remove, got %v", err)
		}
		// absent key is a no-op
		if err := s.Remove("k"); err != nil {
			t.Errorf("Remove absent key: %v", err)
		}
	})

	t.Run("Keys are isolated per user", func(t *testing.T) {
		s := newTestStore(t)

		s.Set("tasks:u1", []byte("a"))
		s.Set("tasks:u2", []byte("b"))
		got, _ := s.Get("tasks:u1")
		if string(got) != "a" {
			t.Errorf("key collision between users: %s", got)
		}
	})
}
