package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTTL <= 0 {
		return fmt.Errorf("auth.access_ttl must be positive")
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Cycle.validate(); err != nil {
		return fmt.Errorf("cycle: %w", err)
	}

	if err := c.Trigger.validate(); err != nil {
		return fmt.Errorf("trigger: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
}

func (c *CycleConfig) validate() error {
	raw := strings.TrimSpace(c.PhaseOverrideRaw)
	if raw == "" {
		c.PhaseOverride = ""
		return nil
	}

	p, err := cycle.ParsePhase(strings.ToLower(raw))
	if err != nil {
		return fmt.Errorf("phase_override: %w", err)
	}
	c.PhaseOverride = p
	return nil
}

func (t *TriggerConfig) validate() error {
	if len(t.Token) < 16 {
		return fmt.Errorf("token must be at least 16 characters (got %d)", len(t.Token))
	}
	if t.ClaimTTL <= 0 {
		return fmt.Errorf("claim_ttl must be > 0 (got %v)", t.ClaimTTL)
	}
	if t.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_min must be > 0 (got %d)", t.RateLimitPerMinute)
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	return nil
}
