package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/promptcycle-backend/internal/domain"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user. A non-empty pushToken registers the user for
// notifications.
func SeedUser(t *testing.T, pool *pgxpool.Pool, pushToken string) domain.User {
	t.Helper()

	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if pushToken != "" {
		user.PushToken = &pushToken
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, push_token, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PushToken, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedPrompt creates the prompt for date, or returns the existing one.
// Prompt dates are unique, so parallel tests should pick distinct dates
// via RandomDate.
func SeedPrompt(t *testing.T, pool *pgxpool.Pool, date cycle.Date) domain.Prompt {
	t.Helper()

	p := domain.Prompt{
		ID:   uuid.New(),
		Date: date,
		Text: "What made you smile on " + date.String() + "?",
	}

	d, err := time.Parse(time.DateOnly, date.String())
	if err != nil {
		t.Fatalf("testhelper: SeedPrompt date: %v", err)
	}

	err = pool.QueryRow(context.Background(),
		`INSERT INTO prompts (id, prompt_date, text) VALUES ($1, $2, $3)
		 ON CONFLICT (prompt_date) DO UPDATE SET text = prompts.text
		 RETURNING id, created_at`,
		p.ID, d, p.Text,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPrompt: %v", err)
	}

	return p
}

// SeedPost records that user responded to prompt.
func SeedPost(t *testing.T, pool *pgxpool.Pool, userID, promptID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO posts (id, user_id, prompt_id, body) VALUES ($1, $2, $3, $4)`,
		uuid.New(), userID, promptID, "test post "+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}
}

// RandomDate returns a prompt date far from any real cycle so parallel
// tests do not collide on the unique prompt_date key.
func RandomDate() cycle.Date {
	id := uuid.New()
	days := int(id[0])<<16 | int(id[1])<<8 | int(id[2])
	return cycle.Date{Year: 3000, Month: 1, Day: 1}.AddDays(days % 300000)
}
