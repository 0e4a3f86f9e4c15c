package dto

import "time"

// ChatRequest represents one user chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse represents one completed chat turn
type ChatResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// PromptRequest represents the payload for updating the chatbot's base
// instruction
type PromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// PromptResponse represents the current chatbot base instruction
type PromptResponse struct {
	Prompt    string    `json:"prompt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StudentSummaryResponse represents a generated narrative summary. It is
// regenerated on each request and never persisted.
type StudentSummaryResponse struct {
	StudentID int64  `json:"studentId"`
	Name      string `json:"name"`
	Summary   string `json:"summary"`
}
