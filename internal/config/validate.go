package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validate checks value ranges and fills derived fields. Load calls it.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.CORS.validate(); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
	}
	return nil
}

func (c *CORSConfig) validate() error {
	c.OriginPattern = nil
	if c.AllowedOriginPattern == "" {
		return nil
	}
	re, err := regexp.Compile(c.AllowedOriginPattern)
	if err != nil {
		return fmt.Errorf("allowed_origin_pattern: %w", err)
	}
	c.OriginPattern = re
	return nil
}

func (s *SessionConfig) validate() error {
	if s.DailyGoal <= 0 {
		return fmt.Errorf("daily_goal must be > 0 (got %d)", s.DailyGoal)
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc

	id, err := uuid.Parse(s.DefaultUserID)
	if err != nil {
		return fmt.Errorf("default_user_id: %w", err)
	}
	s.DefaultUser = id

	return nil
}

func (s *StorageConfig) validate() error {
	u, err := url.Parse(s.MediaBaseURL)
	if err != nil {
		return fmt.Errorf("media_base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("media_base_url must be an http(s) URL (got %q)", s.MediaBaseURL)
	}
	if strings.TrimSpace(s.Bucket) == "" {
		return fmt.Errorf("bucket is required")
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", r.RequestsPerMinute)
	}
	if r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", r.Burst)
	}
	if r.IdleTTL <= 0 {
		return fmt.Errorf("idle_ttl must be > 0 (got %v)", r.IdleTTL)
	}
	return nil
}

// Origins splits AllowedOrigins into a trimmed list.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
