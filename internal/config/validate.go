package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Community.DefaultPageSize < 1 {
		return fmt.Errorf("community.default_page_size must be >= 1 (got %d)", c.Community.DefaultPageSize)
	}
	if c.Community.MaxPageSize < c.Community.DefaultPageSize {
		return fmt.Errorf("community.max_page_size must be >= default_page_size (got %d < %d)",
			c.Community.MaxPageSize, c.Community.DefaultPageSize)
	}
	if c.Community.RecentPostLimit < 0 {
		return fmt.Errorf("community.recent_post_limit must be >= 0 (got %d)", c.Community.RecentPostLimit)
	}

	return nil
}
