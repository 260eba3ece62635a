package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if len(c.Sources.URLs) == 0 {
		return errors.New("sources.urls must list at least one mirror")
	}
	for _, u := range c.Sources.URLs {
		parsed, err := url.Parse(u)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return fmt.Errorf("sources.urls entry %q must be an absolute http(s) URL", u)
		}
	}

	if c.Sources.Timeout <= 0 {
		return errors.New("sources.timeout must be positive")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	return nil
}
