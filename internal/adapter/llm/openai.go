package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	liveMaxTokens   = 256
	liveTemperature = 0.2
)

var errEmptyCompletion = errors.New("completion returned no choices")

// OpenAIConfig configures the live generator.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OpenAIGenerator calls an OpenAI-compatible chat completion API.
type OpenAIGenerator struct {
	client *openai.LLM
	logger zerolog.Logger
}

// Ensure OpenAIGenerator implements ReplyGenerator.
var _ ReplyGenerator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates the live generator.
func NewOpenAIGenerator(cfg OpenAIConfig, logger zerolog.Logger) (*OpenAIGenerator, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}

	return &OpenAIGenerator{
		client: client,
		logger: logger.With().Str("component", "openai").Logger(),
	}, nil
}

// GenerateReply sends the system prompt, history and message, and returns the
// trimmed first choice. Any failure yields FallbackReply.
func (g *OpenAIGenerator) GenerateReply(ctx context.Context, system string, history []Turn, message string) string {
	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	for _, turn := range history {
		messages = append(messages, llms.TextParts(messageType(turn.Role), turn.Content))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))

	start := time.Now()
	resp, err := g.client.GenerateContent(ctx, messages,
		llms.WithMaxTokens(liveMaxTokens),
		llms.WithTemperature(liveTemperature),
	)
	if err == nil && len(resp.Choices) == 0 {
		err = errEmptyCompletion
	}
	if err != nil {
		g.logger.Warn().Err(err).Dur("latency", time.Since(start)).Msg("chat completion failed, using fallback reply")
		return FallbackReply
	}

	g.logger.Debug().Dur("latency", time.Since(start)).Int("history_turns", len(history)).Msg("chat completion done")
	return strings.TrimSpace(resp.Choices[0].Content)
}

func messageType(role string) llms.ChatMessageType {
	switch role {
	case RoleUser:
		return llms.ChatMessageTypeHuman
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeSystem
	}
}
