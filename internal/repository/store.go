// Package repository defines the message store interface and its SQLite implementation.
package repository

import (
	"context"

	"github.com/xiaot623/supportbot/internal/domain"
)

// DefaultSessionListLimit caps ListSessions when the caller passes no limit.
const DefaultSessionListLimit = 50

// Store is an append-only log of chat messages grouped by session.
type Store interface {
	// Append inserts one message and returns it with its assigned ID.
	Append(ctx context.Context, sessionID string, role domain.Role, text string, escalate bool) (*domain.ChatMessage, error)

	// AppendAll inserts messages in a single transaction, in order.
	AppendAll(ctx context.Context, messages []domain.ChatMessage) ([]domain.ChatMessage, error)

	// History returns a session's messages oldest first. When limit > 0 only
	// the most recent limit messages are returned. Unknown sessions yield an
	// empty slice.
	History(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error)

	// ListSessions returns up to limit distinct session IDs.
	ListSessions(ctx context.Context, limit int) ([]string, error)

	// Lifecycle
	Close() error
}
