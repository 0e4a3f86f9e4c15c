package models

import (
	"time"
)

// Conversation defines one chat turn based on the 'conversations' table.
// Rows are append-only and ordered by creation time ascending; a user's
// rows form the chatbot's per-user context window.
type Conversation struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	UserID    int64     `json:"userId" db:"user_id" example:"7"`
	Message   string    `json:"message" db:"message"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
