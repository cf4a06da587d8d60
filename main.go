package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiaot623/supportbot/internal/adapter/llm"
	"github.com/xiaot623/supportbot/internal/config"
	"github.com/xiaot623/supportbot/internal/escalation"
	"github.com/xiaot623/supportbot/internal/faq"
	"github.com/xiaot623/supportbot/internal/logging"
	"github.com/xiaot623/supportbot/internal/repository"
	"github.com/xiaot623/supportbot/internal/service"
	transport "github.com/xiaot623/supportbot/internal/transport/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	logger.Info().
		Int("port", cfg.HTTPPort).
		Str("database", cfg.DatabaseURL).
		Str("faq_file", cfg.FAQFile).
		Bool("live_replies", cfg.LiveReplies()).
		Msg("Starting supportbot...")

	// Initialize store
	db, err := repository.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer db.Close()

	// Load FAQ set
	faqs, err := faq.LoadFile(cfg.FAQFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load FAQs")
	}
	logger.Info().Int("count", faqs.Len()).Msg("FAQs loaded")

	// Initialize reply generator
	generator, err := llm.NewReplyGenerator(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize reply generator")
	}

	// Initialize escalation policy
	ctx := context.Background()
	classifier, err := escalation.NewClassifierFromFile(ctx, cfg.EscalationPolicyFile, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize escalation policy")
	}

	// Initialize service
	svc := service.New(db, faqs, generator, classifier, logger)

	server := transport.NewServer(svc, logger)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	logger.Info().Int("port", cfg.HTTPPort).Msg("API started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down supportbot...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to shutdown server gracefully")
	}

	logger.Info().Msg("Supportbot stopped")
}
