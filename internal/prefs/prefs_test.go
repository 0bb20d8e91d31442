package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetUnsetPreference(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("unset preference reported as present")
	}
}

func TestSetOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(KeyDarkMode, "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(KeyDarkMode, "false"); err != nil {
		t.Fatalf("Set again: %v", err)
	}

	value, ok, err := store.Get(KeyDarkMode)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if value != "false" {
		t.Fatalf("value = %q, want false", value)
	}
}

func TestDarkModeRoundTrip(t *testing.T) {
	store := openTestStore(t)

	on, err := store.DarkMode()
	if err != nil {
		t.Fatalf("DarkMode: %v", err)
	}
	if on {
		t.Fatal("dark mode should default to off")
	}

	if err := store.SetDarkMode(true); err != nil {
		t.Fatalf("SetDarkMode: %v", err)
	}
	on, err = store.DarkMode()
	if err != nil || !on {
		t.Fatalf("DarkMode after set: on=%v err=%v", on, err)
	}
}

func TestReminderHour(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.ReminderHour(); err != nil || ok {
		t.Fatalf("unset reminder: ok=%v err=%v", ok, err)
	}

	if err := store.SetReminderHour(21); err != nil {
		t.Fatalf("SetReminderHour: %v", err)
	}
	hour, ok, err := store.ReminderHour()
	if err != nil || !ok || hour != 21 {
		t.Fatalf("ReminderHour = %d, ok=%v, err=%v", hour, ok, err)
	}

	if err := store.SetReminderHour(24); !errors.Is(err, ErrInvalidHour) {
		t.Fatalf("SetReminderHour(24) err = %v", err)
	}
}

func TestCorruptReminderHourBehavesUnset(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(KeyReminderHour, "not-a-number"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := store.ReminderHour(); err != nil || ok {
		t.Fatalf("corrupt value: ok=%v err=%v", ok, err)
	}
}

func TestReopenKeepsValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.db")

	store, err := Open(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.SetDarkMode(true); err != nil {
		t.Fatalf("SetDarkMode: %v", err)
	}
	store.Close()

	reopened, err := Open(path, zap.NewNop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	on, err := reopened.DarkMode()
	if err != nil || !on {
		t.Fatalf("DarkMode after reopen: on=%v err=%v", on, err)
	}
}
