package domain

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	UserID    string `json:"user_id,omitempty"`
}

// ChatResponse is returned for every accepted chat message.
// Suggestions is never populated and serialises as null.
type ChatResponse struct {
	Reply       string   `json:"reply"`
	Escalate    bool     `json:"escalate"`
	Suggestions []string `json:"suggestions"`
}

// SessionHistory is the body of GET /sessions/:session_id.
type SessionHistory struct {
	SessionID string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
}

// SessionList is the body of GET /sessions.
type SessionList struct {
	Sessions []string `json:"sessions"`
}
