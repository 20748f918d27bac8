package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Documents provides raw access to the keyed JSON document table. Each
// key holds a single JSON payload; writes replace the whole value
// (last-writer-wins, no merge).
type Documents struct {
	db *sql.DB
}

// Get unmarshals the document stored under key into v. Returns
// ErrNotFound when the key has never been written.
func (d *Documents) Get(ctx context.Context, key string, v any) error {
	var raw string
	err := d.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("document %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("read document %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode document %s: %w", key, err)
	}
	return nil
}

// Put marshals v and stores it under key, replacing any prior value.
func (d *Documents) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}
	_, err = d.db.ExecContext(ctx,
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("write document %s: %w", key, err)
	}
	return nil
}

// Delete removes the document stored under key. Deleting a missing key
// is not an error.
func (d *Documents) Delete(ctx context.Context, key string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}
