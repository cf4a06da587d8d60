// Package llm provides the reply generators used when no FAQ matches.
package llm

import (
	"context"

	"github.com/xiaot623/supportbot/internal/domain"
)

// Chat roles understood by the completion API.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// DefaultHistoryTurns is how many stored messages are sent as context.
const DefaultHistoryTurns = 10

// SystemPrompt is sent ahead of the conversation on every live call.
const SystemPrompt = "You are a helpful customer support assistant. Use the FAQ when possible and be concise. " +
	"If you cannot confidently answer, respond with 'I don't know, escalate' or similar."

// FallbackReply replaces the model output whenever a live call fails.
const FallbackReply = "Sorry — I'm having trouble contacting the AI service. Please try again later."

// Turn is one prior message in completion-API form.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ReplyGenerator produces a reply for a user message. Implementations never
// fail; errors are absorbed into a normal-looking reply.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, system string, history []Turn, message string) string
}

// ToTurns converts stored messages to completion turns. Only user and
// assistant keep their role; everything else, including agent, becomes system.
func ToTurns(messages []domain.ChatMessage) []Turn {
	turns := make([]Turn, 0, len(messages))
	for _, m := range messages {
		role := string(m.Role)
		if role != RoleUser && role != RoleAssistant {
			role = RoleSystem
		}
		turns = append(turns, Turn{Role: role, Content: m.Text})
	}
	return turns
}
