package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"restaurant/internal/core/domain/model/order"
)

type Config struct {
	HTTPPort            string
	LogLevel            string
	SeedFile            string
	OrderStatusPolicy   string
	OrderReportSchedule string
}

// Defaults applied to settings left empty.
const (
	DefaultHTTPPort = "8080"
	DefaultLogLevel = "info"
)

// WithDefaults returns c with empty settings replaced by their defaults.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return c
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// StatusPolicy parses OrderStatusPolicy.
func (c Config) StatusPolicy() (order.TransitionPolicy, error) {
	return order.ParseTransitionPolicy(c.OrderStatusPolicy)
}
