package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/xiaot623/supportbot/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const insertMessageQuery = `INSERT INTO chat_messages (session_id, role, text, created_at, escalate)
	VALUES (:session_id, :role, :text, :created_at, :escalate)`

const messageColumns = `id, session_id, role, text, created_at, escalate`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens the database and applies pending migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs the embedded schema migrations.
func (s *SQLiteStore) migrate() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(s.db.DB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	// m.Close would also close the shared *sql.DB, so only the source is released.
	defer source.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append inserts a single message.
func (s *SQLiteStore) Append(ctx context.Context, sessionID string, role domain.Role, text string, escalate bool) (*domain.ChatMessage, error) {
	msg := domain.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Escalate:  escalate,
	}

	res, err := s.db.NamedExecContext(ctx, insertMessageQuery, msg)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	msg.ID = id
	return &msg, nil
}

// AppendAll inserts every message or none of them.
func (s *SQLiteStore) AppendAll(ctx context.Context, messages []domain.ChatMessage) ([]domain.ChatMessage, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	saved := make([]domain.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.CreatedAt.IsZero() {
			msg.CreatedAt = time.Now().UTC()
		}
		res, err := tx.NamedExecContext(ctx, insertMessageQuery, msg)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		msg.ID = id
		saved = append(saved, msg)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return saved, nil
}

// History retrieves messages for a session in creation order.
func (s *SQLiteStore) History(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	query := `SELECT ` + messageColumns + ` FROM chat_messages WHERE session_id = ? ORDER BY created_at ASC, id ASC`
	args := []interface{}{sessionID}

	if limit > 0 {
		// Take the newest rows, then flip them back to ascending order.
		query = `SELECT ` + messageColumns + ` FROM (
			SELECT ` + messageColumns + ` FROM chat_messages WHERE session_id = ?
			ORDER BY created_at DESC, id DESC LIMIT ?
		) ORDER BY created_at ASC, id ASC`
		args = append(args, limit)
	}

	messages := []domain.ChatMessage{}
	if err := s.db.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListSessions returns distinct session IDs.
func (s *SQLiteStore) ListSessions(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultSessionListLimit
	}

	sessions := []string{}
	if err := s.db.SelectContext(ctx, &sessions, `SELECT DISTINCT session_id FROM chat_messages LIMIT ?`, limit); err != nil {
		return nil, err
	}
	return sessions, nil
}
