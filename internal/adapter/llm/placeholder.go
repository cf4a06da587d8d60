package llm

import (
	"context"
	"fmt"
)

const placeholderEchoLimit = 200

// PlaceholderGenerator is the offline generator used when no API key is set.
type PlaceholderGenerator struct{}

// NewPlaceholderGenerator creates a placeholder generator.
func NewPlaceholderGenerator() *PlaceholderGenerator {
	return &PlaceholderGenerator{}
}

// Ensure PlaceholderGenerator implements ReplyGenerator.
var _ ReplyGenerator = (*PlaceholderGenerator)(nil)

// GenerateReply echoes the start of the message and nudges towards the order FAQ.
func (p *PlaceholderGenerator) GenerateReply(ctx context.Context, system string, history []Turn, message string) string {
	return fmt.Sprintf("I received: \"%s\". If this is about orders, say 'order' to get more help.", truncate(message, placeholderEchoLimit))
}

// truncate keeps at most maxLen runes of s.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
