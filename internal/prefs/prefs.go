// Package prefs stores durable client-local preferences (the dark-mode
// flag and the reminder hour) in a small SQLite database. Preferences
// are keyed by fixed string names; everything else about the user lives
// on the backend.
package prefs

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Fixed preference names, kept identical to the web client's
// localStorage keys.
const (
	KeyDarkMode     = "darkMode"
	KeyReminderHour = "reminderHour"
)

var ErrInvalidHour = errors.New("reminder hour must be between 0 and 23")

// Store is the durable local key-value preference store.
type Store struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// Open connects to (creating if needed) the preference database at path
// and applies the schema.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create preference directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference database: %w", err)
	}

	if err := migrateStore(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("Preference store ready", zap.String("path", path))
	return &Store{db: db, logger: logger}, nil
}

// migrateStore applies the embedded schema migrations.
func migrateStore(db *sqlx.DB) error {
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to prepare migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "harulog", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate preference database: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw value of a preference and whether it was set.
func (s *Store) Get(name string) (string, bool, error) {
	var value string
	err := s.db.Get(&value, "SELECT value FROM preferences WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %q: %w", name, err)
	}
	return value, true, nil
}

// Set upserts a preference.
func (s *Store) Set(name, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO preferences (name, value) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET value = excluded.value",
		name, value,
	)
	if err != nil {
		return fmt.Errorf("failed to store preference %q: %w", name, err)
	}
	return nil
}

// DarkMode reports the saved dark-mode flag, defaulting to false.
func (s *Store) DarkMode() (bool, error) {
	value, ok, err := s.Get(KeyDarkMode)
	if err != nil || !ok {
		return false, err
	}
	return value == "true", nil
}

func (s *Store) SetDarkMode(on bool) error {
	return s.Set(KeyDarkMode, strconv.FormatBool(on))
}

// ReminderHour returns the configured daily reminder hour. ok is false
// when no reminder has been set.
func (s *Store) ReminderHour() (hour int, ok bool, err error) {
	value, ok, err := s.Get(KeyReminderHour)
	if err != nil || !ok {
		return 0, false, err
	}
	hour, convErr := strconv.Atoi(value)
	if convErr != nil || hour < 0 || hour > 23 {
		// A corrupt value behaves like an unset reminder.
		return 0, false, nil
	}
	return hour, true, nil
}

func (s *Store) SetReminderHour(hour int) error {
	if hour < 0 || hour > 23 {
		return ErrInvalidHour
	}
	return s.Set(KeyReminderHour, strconv.Itoa(hour))
}
