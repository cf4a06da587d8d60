package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/xiaot623/supportbot/internal/adapter/llm"
	"github.com/xiaot623/supportbot/internal/domain"
)

// ErrSessionIDRequired is returned when a chat request has no session ID.
var ErrSessionIDRequired = errors.New("session_id required")

// Chat stores the user message, answers from the FAQ set when possible and
// otherwise asks the reply generator, escalating low-confidence replies.
func (s *Service) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if req.SessionID == "" {
		return nil, ErrSessionIDRequired
	}

	logger := s.logger.With().Str("session_id", req.SessionID).Str("user_id", req.UserID).Logger()

	if _, err := s.store.Append(ctx, req.SessionID, domain.RoleUser, req.Message, false); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	if item, ok := s.faqs.Match(req.Message); ok {
		if _, err := s.store.Append(ctx, req.SessionID, domain.RoleAgent, item.Answer, false); err != nil {
			return nil, fmt.Errorf("failed to save faq reply: %w", err)
		}
		logger.Info().Str("faq_id", item.ID).Msg("answered from faq")
		return &domain.ChatResponse{Reply: item.Answer}, nil
	}

	history, err := s.store.History(ctx, req.SessionID, llm.DefaultHistoryTurns)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	reply := s.generator.GenerateReply(ctx, llm.SystemPrompt, llm.ToTurns(history), req.Message)

	if !s.escalator.ShouldEscalate(ctx, reply) {
		if _, err := s.store.Append(ctx, req.SessionID, domain.RoleAgent, reply, false); err != nil {
			return nil, fmt.Errorf("failed to save reply: %w", err)
		}
		logger.Info().Msg("answered from reply generator")
		return &domain.ChatResponse{Reply: reply}, nil
	}

	_, err = s.store.AppendAll(ctx, []domain.ChatMessage{
		{SessionID: req.SessionID, Role: domain.RoleAgent, Text: reply, Escalate: true},
		{SessionID: req.SessionID, Role: domain.RoleSystem, Text: escalationNote(req), Escalate: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save escalation: %w", err)
	}
	logger.Warn().Msg("reply escalated to a human")

	return &domain.ChatResponse{Reply: reply, Escalate: true}, nil
}

func escalationNote(req domain.ChatRequest) string {
	return fmt.Sprintf("Escalation needed for session %s. User: %s", req.SessionID, req.Message)
}
