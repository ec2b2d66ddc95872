package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Slack credentials are checked separately by SlackConfig.Validate because
// only the serve command needs them.
func (c *Config) Validate() error {
	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if err := c.Collection.validate(); err != nil {
		return fmt.Errorf("collection: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	return nil
}

// Validate checks that both Slack credentials are present.
func (s SlackConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(s.BotToken) == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}
	if strings.TrimSpace(s.SigningSecret) == "" {
		missing = append(missing, "SLACK_SIGNING_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("slack: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *CatalogConfig) validate() error {
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if _, err := url.ParseRequestURI(c.CoversURL); err != nil {
		return fmt.Errorf("covers_url: %w", err)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be > 0")
	}
	if c.FetchLimit <= 0 {
		return fmt.Errorf("fetch_limit must be > 0 (got %d)", c.FetchLimit)
	}
	if c.ResultLimit <= 0 || c.ResultLimit > c.FetchLimit {
		return fmt.Errorf("result_limit must be in 1..fetch_limit (got %d)", c.ResultLimit)
	}
	return nil
}

func (c *CollectionConfig) validate() error {
	if c.MaxItems <= 0 {
		return fmt.Errorf("max_items must be > 0 (got %d)", c.MaxItems)
	}
	if c.RatingsLimit <= 0 {
		return fmt.Errorf("ratings_limit must be > 0 (got %d)", c.RatingsLimit)
	}
	if c.LendersLimit <= 0 {
		return fmt.Errorf("lenders_limit must be > 0 (got %d)", c.LendersLimit)
	}
	return nil
}
