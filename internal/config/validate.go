package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("store.path must not be empty")
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	if l.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Attempts < 1 {
		return fmt.Errorf("attempts must be >= 1 (got %d)", l.Attempts)
	}
	if l.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must not be negative (got %v)", l.RetryDelay)
	}
	if strings.TrimSpace(l.TargetLanguage) == "" {
		return fmt.Errorf("target_language must not be empty")
	}
	return nil
}
