package prefs

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreGetMissing(t *testing.T) {
	s := openTestStore(t)
	v, ok, err := s.Get(KeyTheme)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get(missing) = %q, %v; want empty, false", v, ok)
	}
}

func TestSQLiteStoreSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	if err := s.Set(KeyLockedMantra, "2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(KeyLockedMantra, "null"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := s.Get(KeyLockedMantra)
	if err != nil || !ok || v != "null" {
		t.Errorf("Get = %q, %v, %v; want null, true, nil", v, ok, err)
	}

	entries, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len(List) = %d, want 1", len(entries))
	}
}

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Set(KeyFavoriteMantras, "[0,4]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	_ = s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = s.Close() }()
	v, ok, err := s.Get(KeyFavoriteMantras)
	if err != nil || !ok || v != "[0,4]" {
		t.Errorf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	s := openTestStore(t)
	_ = s.Set(KeyTheme, "dark")
	if err := s.Delete(KeyTheme); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(KeyTheme); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if _, ok, _ := s.Get(KeyTheme); ok {
		t.Error("key still present after Delete")
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	if _, ok, _ := m.Get("a"); ok {
		t.Error("empty store reported a value")
	}
	_ = m.Set("b", "2")
	_ = m.Set("a", "1")
	if v, ok, _ := m.Get("a"); !ok || v != "1" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	if v, ok, _ := m.Get("b"); !ok || v != "2" {
		t.Errorf("Get(b) = %q, %v", v, ok)
	}
}
