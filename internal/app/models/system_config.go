package models

import (
	"time"
)

// ConfigKeySystemPrompt is the system_config key holding the chatbot's
// admin-editable base instruction.
const ConfigKeySystemPrompt = "chatbot_system_prompt"

// SystemConfig defines a key-value row of the 'system_config' table.
type SystemConfig struct {
	Key       string    `json:"key" db:"key" example:"chatbot_system_prompt"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
