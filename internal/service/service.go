// Package service implements the chat flow over the store, FAQ catalog,
// reply generator and escalation policy.
package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiaot623/supportbot/internal/adapter/llm"
	"github.com/xiaot623/supportbot/internal/faq"
	"github.com/xiaot623/supportbot/internal/repository"
)

// Escalator decides whether a generated reply needs a human.
type Escalator interface {
	ShouldEscalate(ctx context.Context, reply string) bool
}

type Service struct {
	store     repository.Store
	faqs      *faq.Catalog
	generator llm.ReplyGenerator
	escalator Escalator
	logger    zerolog.Logger
}

func New(store repository.Store, faqs *faq.Catalog, generator llm.ReplyGenerator, escalator Escalator, logger zerolog.Logger) *Service {
	return &Service{
		store:     store,
		faqs:      faqs,
		generator: generator,
		escalator: escalator,
		logger:    logger.With().Str("component", "service").Logger(),
	}
}
