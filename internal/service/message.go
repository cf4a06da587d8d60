package service

import (
	"context"
	"fmt"

	"github.com/xiaot623/supportbot/internal/domain"
)

// SessionHistory returns every message of a session, oldest first. Unknown
// sessions come back with an empty list.
func (s *Service) SessionHistory(ctx context.Context, sessionID string) (*domain.SessionHistory, error) {
	messages, err := s.store.History(ctx, sessionID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return &domain.SessionHistory{SessionID: sessionID, Messages: messages}, nil
}

func (s *Service) ListSessions(ctx context.Context, limit int) (*domain.SessionList, error) {
	sessions, err := s.store.ListSessions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return &domain.SessionList{Sessions: sessions}, nil
}

// FAQs returns the loaded FAQ set in load order.
func (s *Service) FAQs() []domain.FAQItem {
	return s.faqs.All()
}
