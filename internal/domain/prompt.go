package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// Prompt is the single prompt published for one civil date.
type Prompt struct {
	ID        uuid.UUID
	Date      cycle.Date
	Text      string
	CreatedAt time.Time
}

// PromptOpenMark records when a user first opened a prompt. It is written
// once per user per prompt and never updated.
type PromptOpenMark struct {
	UserID   uuid.UUID
	PromptID uuid.UUID
	OpenedAt time.Time
}
