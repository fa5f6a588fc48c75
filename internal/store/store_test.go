package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"file": func(t *testing.T) Store {
			s, err := NewFileStore(t.TempDir())
			if err != nil {
				t.Fatalf("NewFileStore: %v", err)
			}
			return s
		},
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			if v, ok, err := s.Get(HighScoreKey); err != nil || ok || v != 0 {
				t.Fatalf("Expected empty store, got v=%d ok=%v err=%v", v, ok, err)
			}

			if err := s.Set(HighScoreKey, 120); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if v, ok, err := s.Get(HighScoreKey); err != nil || !ok || v != 120 {
				t.Fatalf("Expected 120, got v=%d ok=%v err=%v", v, ok, err)
			}

			if v, err := Raise(s, HighScoreKey, 50); err != nil || v != 120 {
				t.Errorf("Raise below current: expected 120, got %d (%v)", v, err)
			}
			if v, err := Raise(s, HighScoreKey, 200); err != nil || v != 200 {
				t.Errorf("Raise above current: expected 200, got %d (%v)", v, err)
			}
			if v, _, _ := s.Get(HighScoreKey); v != 200 {
				t.Errorf("Expected stored 200, got %d", v)
			}
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Set(HighScoreKey, 70); err != nil {
		t.Fatal(err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok, err := second.Get(HighScoreKey); err != nil || !ok || v != 70 {
		t.Errorf("Expected 70 after reopen, got v=%d ok=%v err=%v", v, ok, err)
	}
}

func TestFileStoreCorruptValue(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	// 0x08 starts a varint field that never ends.
	if err := os.WriteFile(filepath.Join(dir, HighScoreKey+".pb"), []byte{0x08}, 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := s.Get(HighScoreKey); !errors.Is(err, ErrPersistenceUnavailable) {
		t.Errorf("Expected ErrPersistenceUnavailable, got %v", err)
	}
}

func TestFileStoreUnusableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(filepath.Join(blocker, "sub")); !errors.Is(err, ErrPersistenceUnavailable) {
		t.Errorf("Expected ErrPersistenceUnavailable, got %v", err)
	}
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"", "../escape", "a/b", ".lock", ".hidden"} {
		if err := s.Set(key, 1); err == nil {
			t.Errorf("Expected key %q to be rejected", key)
		}
	}
}
