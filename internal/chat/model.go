package chat

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the aggregate the dispatcher works on. All mutation goes
// through the service, which serializes access per session.
type Session struct {
	ID       uuid.UUID `json:"id"`
	Language string    `json:"language"`
	Turns    []Turn    `json:"turns"`

	// EmergencyMode is sticky: once the emergency category is chosen,
	// every following question uses the emergency protocol until another
	// category clears it.
	EmergencyMode bool `json:"emergency_mode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	busy bool
}
