// Package domain defines the core domain models for the support backend.
package domain

import "time"

// Role tags the origin of a stored message.
type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
	RoleSystem Role = "system"
)

// ChatMessage is one persisted turn of a conversation. Rows are append-only.
type ChatMessage struct {
	ID        int64     `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Role      Role      `json:"role" db:"role"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Escalate  bool      `json:"escalate" db:"escalate"`
}

// FAQItem is a static question/answer entry loaded at startup.
type FAQItem struct {
	ID       string   `json:"id" yaml:"id"`
	Question string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// HasTag reports whether tag is one of the item's tags (exact match).
func (f FAQItem) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
