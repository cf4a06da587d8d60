package faq

import (
	"strings"

	"github.com/xiaot623/supportbot/internal/domain"
)

// FallbackKeywords are tried in order when no question text matches.
var FallbackKeywords = []string{"password", "refund", "refunds", "contact", "support", "order", "shipping"}

// Match returns the first FAQ that matches userText. A question matches when
// the whole question, or any single word of it, appears anywhere in the
// lower-cased input, so common words like "my" match broadly. Failing that,
// each fallback keyword present in the input is tried against question text
// and tags.
func Match(userText string, faqs []domain.FAQItem) (*domain.FAQItem, bool) {
	text := strings.ToLower(userText)

	for i := range faqs {
		question := strings.ToLower(faqs[i].Question)
		if strings.Contains(text, question) {
			return &faqs[i], true
		}
		for _, word := range strings.Fields(question) {
			if strings.Contains(text, word) {
				return &faqs[i], true
			}
		}
	}

	for _, keyword := range FallbackKeywords {
		if !strings.Contains(text, keyword) {
			continue
		}
		for i := range faqs {
			if strings.Contains(strings.ToLower(faqs[i].Question), keyword) || faqs[i].HasTag(keyword) {
				return &faqs[i], true
			}
		}
	}

	return nil, false
}
