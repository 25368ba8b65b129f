package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/eftp/internal/cli"
	"github.com/danmuck/eftp/internal/protocol/session"
)

type fileConfig struct {
	Prompt         string `toml:"prompt"`
	Echo           bool   `toml:"echo"`
	LogLevel       string `toml:"log_level"`
	DataDir        string `toml:"data_dir"`
	ReceivedPrefix string `toml:"received_prefix"`
	MaxFileSize    int    `toml:"max_file_size"`
	VerifySequence bool   `toml:"verify_sequence"`
}

// shellConfig is everything the eftp binary needs to start.
type shellConfig struct {
	Shell    cli.Options
	Session  session.Config
	LogLevel string
	DataDir  string
}

func defaultShellConfig() shellConfig {
	return shellConfig{
		Shell:   cli.DefaultOptions(),
		Session: session.DefaultConfig(),
		DataDir: ".",
	}
}

func loadShellConfig(path string) (shellConfig, error) {
	cfg := defaultShellConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return shellConfig{}, fmt.Errorf("load eftp config: %w", err)
	}

	if meta.IsDefined("prompt") {
		cfg.Shell.Prompt = raw.Prompt
	}

	if meta.IsDefined("echo") {
		cfg.Shell.Echo = raw.Echo
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("data_dir") {
		dir := strings.TrimSpace(raw.DataDir)
		if dir == "" {
			return shellConfig{}, fmt.Errorf("data_dir must not be empty")
		}
		cfg.DataDir = dir
	}

	if meta.IsDefined("received_prefix") {
		cfg.Session.ReceivedPrefix = raw.ReceivedPrefix
	}

	if meta.IsDefined("max_file_size") {
		if raw.MaxFileSize <= 0 {
			return shellConfig{}, fmt.Errorf("max_file_size must be positive")
		}
		cfg.Session.MaxFileSize = raw.MaxFileSize
	}

	if meta.IsDefined("verify_sequence") {
		cfg.Session.VerifySequence = raw.VerifySequence
	}

	return cfg, nil
}
