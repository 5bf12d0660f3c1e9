package lead

import "time"

// Lead is a completed, validated contact triple captured by the interview.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Platform   string    `json:"platform"`
	CapturedAt time.Time `json:"capturedAt"`
}
