package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/eftp/internal/config"
	"github.com/danmuck/eftp/internal/linecode"
	"github.com/danmuck/eftp/internal/logging"
	"github.com/danmuck/eftp/internal/medium"
	"github.com/danmuck/eftp/internal/protocol/session"
	"github.com/danmuck/eftp/internal/server"
	"github.com/danmuck/eftp/internal/storage"
)

func main() {
	configPath := flag.String("config", "cmd/eftpd/config.toml", "path to the eftpd TOML config")
	flag.Parse()

	logging.ConfigureRuntime()
	logger := logging.Component("eftpd")

	cfg := config.DefaultServerConfig()
	if _, err := os.Stat(*configPath); err == nil {
		loaded, err := config.LoadServerConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "eftpd: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		logger.Warn().Str("path", *configPath).Msg("config not found, using defaults")
	}
	if !logging.SetLevel(cfg.LogLevel) {
		logger.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level ignored")
	}

	dir, err := storage.NewDir(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eftpd: %v\n", err)
		os.Exit(1)
	}
	line := medium.NewCable[linecode.Streams]()
	sess := session.New(line, dir, &session.Config{
		ReceivedPrefix: cfg.ReceivedPrefix,
		MaxFileSize:    cfg.MaxFileSize,
		VerifySequence: true,
	})

	srv := server.New(server.Options{
		Name:        cfg.Name,
		Addr:        cfg.Addr,
		CorsOrigins: cfg.CorsOrigins,
		Line:        line,
		Session:     sess,
		Logger:      logger,
	})
	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "eftpd: %v\n", err)
		os.Exit(1)
	}
}
