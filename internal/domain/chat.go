package domain

import (
	"time"
)

// ChatLogEntry is one recorded (user message, bot response) exchange.
// Entries are append-only; the system never mutates or deletes them.
type ChatLogEntry struct {
	ID          int64     `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}
