package llm

import (
	"github.com/rs/zerolog"

	"github.com/xiaot623/supportbot/internal/config"
)

// NewReplyGenerator picks the generator once at startup: live when an API key
// is configured, placeholder otherwise.
func NewReplyGenerator(cfg *config.Config, logger zerolog.Logger) (ReplyGenerator, error) {
	if !cfg.LiveReplies() {
		logger.Info().Msg("OPENAI_API_KEY not set, using placeholder reply generator")
		return NewPlaceholderGenerator(), nil
	}

	gen, err := NewOpenAIGenerator(OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.LLMTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("model", cfg.OpenAIModel).Msg("using live reply generator")
	return gen, nil
}
