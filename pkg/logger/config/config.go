package config

import (
	"fmt"
	"time"
)

// zapcore levels.
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
	FATAL_LEVEL = 5
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("LOG_LEVEL must be between %d and %d, got %d", DEBUG_LEVEL, FATAL_LEVEL, c.Level)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("LOG_TIME_FORMAT must not be empty")
	}
	// a layout that loses everything on a round trip is most likely a typo.
	if time.Now().Format(c.TimeFormat) == c.TimeFormat {
		return fmt.Errorf("LOG_TIME_FORMAT %q is not a time layout", c.TimeFormat)
	}
	return nil
}
