package convo

import "time"

// Session captures a transient anonymous conversation.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message persists individual turns for audit/debug.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
