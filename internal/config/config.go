// Package config loads server settings from the environment, applying
// defaults for anything unset.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime settings for the chat server.
type Config struct {
	// Addr is the listen address for the HTTP and WebSocket server.
	Addr string
	// HistorySize bounds the in-memory message log.
	HistorySize int
	// MaxMessageSize caps inbound WebSocket frames, in bytes.
	MaxMessageSize int64
}

const (
	defaultAddr           = ":5000"
	defaultHistorySize    = 1000
	defaultMaxMessageSize = 512
)

// Load reads configuration from CHAT_ADDR, CHAT_HISTORY_SIZE, and
// CHAT_MAX_MESSAGE_SIZE. Unset variables fall back to defaults; malformed
// values are an error.
func Load() (Config, error) {
	cfg := Config{
		Addr:           defaultAddr,
		HistorySize:    defaultHistorySize,
		MaxMessageSize: defaultMaxMessageSize,
	}

	if addr := os.Getenv("CHAT_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	if raw := os.Getenv("CHAT_HISTORY_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return Config{}, fmt.Errorf("invalid CHAT_HISTORY_SIZE %q: must be a positive integer", raw)
		}
		cfg.HistorySize = size
	}

	if raw := os.Getenv("CHAT_MAX_MESSAGE_SIZE"); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || size <= 0 {
			return Config{}, fmt.Errorf("invalid CHAT_MAX_MESSAGE_SIZE %q: must be a positive integer", raw)
		}
		cfg.MaxMessageSize = size
	}

	return cfg, nil
}
