// Package inquiry keeps submitted contact-form inquiries in a local SQLite
// outbox.
package inquiry

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/piwi3910/StudioFolio/internal/model"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ErrDuplicate is returned when an inquiry with the same ID was already submitted.
var ErrDuplicate = errors.New("inquiry already submitted")

// Store provides SQLite-backed persistence for inquiries.
type Store struct {
	sqlDB  *sql.DB
	logger *log.Logger
}

// Open opens the outbox at path, creating the schema if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{sqlDB: sqlDB, logger: log.New(log.Writer(), "inquiry: ", log.LstdFlags)}, nil
}

// SetLogger replaces the logger Submit writes to.
func (s *Store) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Submit validates q and records it. There is no network delivery; the
// payload is logged and kept for the studio to follow up.
func (s *Store) Submit(ctx context.Context, q model.Inquiry) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := q.Validate(); err != nil {
		return err
	}
	if q.ID == "" {
		return fmt.Errorf("inquiry id is required")
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	s.logger.Printf("submit id=%s name=%q email=%q scope=%q message=%q", q.ID, q.Name, q.Email, q.Scope, q.Message)

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO inquiries (id, name, email, scope, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		q.ID, q.Name, q.Email, string(q.Scope), q.Message, q.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			return ErrDuplicate
		}
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// List returns up to limit inquiries, newest first. A limit of zero or less
// returns all of them.
func (s *Store) List(ctx context.Context, limit int) ([]model.Inquiry, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, email, scope, message, created_at
		 FROM inquiries
		 ORDER BY created_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var out []model.Inquiry
	for rows.Next() {
		var q model.Inquiry
		var scope string
		var createdAt int64
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &scope, &q.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		q.Scope = model.Scope(scope)
		q.CreatedAt = time.UnixMilli(createdAt).UTC()
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return out, nil
}

// Count reports how many inquiries are stored.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return n, nil
}
