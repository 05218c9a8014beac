package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres"
	"github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres/prompt"
	"github.com/heartmarshall/promptcycle-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/promptcycle-backend/internal/auth"
	"github.com/heartmarshall/promptcycle-backend/internal/domain"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

const maxPromptLen = 500

// IssueToken mints an access token for an existing user with the
// configured secret. It exists for operators and the countdown client.
func IssueToken(ctx context.Context, configPath, userID string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", domain.NewValidationError("user", "must be a UUID")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return "", err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, "promptcycle-token")
	if err != nil {
		return "", fmt.Errorf("open database: %w", err)
	}
	defer pool.Close()

	if _, err := user.New(pool).GetByID(ctx, id); err != nil {
		return "", err
	}

	return auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL, nil).GenerateAccessToken(id)
}

// SchedulePrompt stores the prompt published on one civil date.
func SchedulePrompt(ctx context.Context, configPath, date, text string) (*domain.Prompt, error) {
	p, err := newPrompt(date, text)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, "promptcycle-prompt")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer pool.Close()

	return prompt.New(pool).Create(ctx, p)
}

func newPrompt(date, text string) (domain.Prompt, error) {
	var errs []domain.FieldError

	d, err := cycle.ParseDate(date)
	if err != nil {
		errs = append(errs, domain.InvalidCycleInput("date", err).Errors...)
	}

	text = strings.TrimSpace(text)
	switch {
	case text == "":
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	case len([]rune(text)) > maxPromptLen:
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("at most %d characters", maxPromptLen)})
	}

	if len(errs) > 0 {
		return domain.Prompt{}, domain.NewValidationErrors(errs)
	}
	return domain.Prompt{Date: d, Text: text}, nil
}
