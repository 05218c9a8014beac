package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// Notification is an outbox row handed to the push delivery worker.
// (UserID, Type, CycleDate) is unique, so re-running a tick enqueues nothing new.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PromptID  *uuid.UUID
	Type      cycle.NotificationType
	Tick      cycle.Tick
	CycleDate cycle.Date
	CreatedAt time.Time
}
