package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can receive cycle notifications.
type User struct {
	ID        uuid.UUID
	Username  string
	PushToken *string
	CreatedAt time.Time
}

// Recipient is a user with a registered push token.
type Recipient struct {
	UserID    uuid.UUID
	PushToken string
}
