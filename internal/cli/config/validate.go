package config

import (
	"fmt"

	"github.com/tsawler/cadcodec/format"
	"github.com/tsawler/cadcodec/internal/codepage"
)

// Validate checks that the settings name real formats and code pages.
func (c *Config) Validate() error {
	if _, err := c.TargetFormat(); err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}
	if c.CodePage != "" {
		if _, ok := codepage.Lookup(c.CodePage); !ok {
			return fmt.Errorf("invalid codepage %q", c.CodePage)
		}
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}

// TargetFormat returns the output format named by Target.
func (c *Config) TargetFormat() (format.Format, error) {
	return format.ParseTarget(c.Target)
}
