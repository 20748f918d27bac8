// Package store is the persistence boundary. Durable state is kept in
// a local SQLite database as keyed JSON documents: a JSON array of
// attempts under "studyflow_attempts" and a single user object under
// "studyflow_user". Callers go through repositories and never touch
// the key format.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/studyflow/studyflow/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Fixed document keys. Existing databases use these names, so they are
// part of the persisted contract and must never change.
const (
	KeyAttempts   = "studyflow_attempts"
	KeyUser       = "studyflow_user"
	KeyFlashcards = "studyflow_flashcards"
	KeyDoubts     = "studyflow_doubts"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store holds the database handle and provides access to repositories.
// The keyed documents live in a raw table; LLM request events go
// through the ent client.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a Store connected to the SQLite database at dsn. It
// applies recommended pragmas, runs ent auto-migration and creates
// the documents table.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	if err := createSchema(db); err != nil {
		client.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// AttemptRepo returns the attempt repository backed by this store.
func (s *Store) AttemptRepo() *AttemptRepo {
	return &AttemptRepo{docs: s.Documents()}
}

// Documents returns the raw keyed document accessor.
func (s *Store) Documents() *Documents {
	return &Documents{db: s.db}
}

// LLMEventRepo returns the LLM request event repository.
func (s *Store) LLMEventRepo() *LLMEventRepo {
	return &LLMEventRepo{client: s.client}
}

// UserRepo returns the signed-in user repository.
func (s *Store) UserRepo() *UserRepo {
	return &UserRepo{docs: s.Documents()}
}

// FlashcardRepo returns the flashcard deck repository.
func (s *Store) FlashcardRepo() *FlashcardRepo {
	return &FlashcardRepo{docs: s.Documents()}
}

// DoubtRepo returns the doubt feed repository.
func (s *Store) DoubtRepo() *DoubtRepo {
	return &DoubtRepo{docs: s.Documents()}
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// createSchema creates the keyed documents table. The table sits
// outside ent on purpose: the JSON envelope under each key is the
// persisted contract, not a relational entity.
func createSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. STUDYFLOW_DB environment variable
// 2. $XDG_DATA_HOME/studyflow/studyflow.db
// 3. ~/.local/share/studyflow/studyflow.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("STUDYFLOW_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "studyflow", "studyflow.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
