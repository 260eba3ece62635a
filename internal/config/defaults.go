package config

import (
	"github.com/jgrady/xkcd-geohash/internal/djia"
)

// Default values for optional configuration fields.
const (
	DefaultTimeout  = Duration(djia.DefaultTimeout)
	DefaultLogLevel = "info"
)

func (c *Config) applyDefaults() {
	if len(c.Sources.URLs) == 0 {
		c.Sources.URLs = djia.DefaultSources
	}
	if c.Sources.Timeout == 0 {
		c.Sources.Timeout = DefaultTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}
