package session

import "github.com/danmuck/eftp/internal/protocol/frame"

// Config defines session behavior.
type Config struct {
	// ReceivedPrefix is prepended to the announced name when a received file
	// is stored.
	ReceivedPrefix string
	// MaxFileSize caps accepted files; values above the 24-bit length field
	// are clamped to it.
	MaxFileSize int
	// VerifySequence rejects data frames whose sequence number does not match
	// the expected countdown.
	VerifySequence bool
}

func DefaultConfig() Config {
	return Config{
		ReceivedPrefix: "rcvd-",
		MaxFileSize:    frame.MaxFileLen,
		VerifySequence: true,
	}
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 || c.MaxFileSize > frame.MaxFileLen {
		c.MaxFileSize = frame.MaxFileLen
	}
}
