package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/eftp/internal/cli"
	"github.com/danmuck/eftp/internal/linecode"
	"github.com/danmuck/eftp/internal/logging"
	"github.com/danmuck/eftp/internal/medium"
	"github.com/danmuck/eftp/internal/protocol/session"
	"github.com/danmuck/eftp/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to an eftp TOML config")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg := defaultShellConfig()
	if *configPath != "" {
		loaded, err := loadShellConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "eftp: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if cfg.LogLevel != "" && !logging.SetLevel(cfg.LogLevel) {
		fmt.Fprintf(os.Stderr, "eftp: unknown log level %q\n", cfg.LogLevel)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "eftp: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg shellConfig) error {
	dir, err := storage.NewDir(cfg.DataDir)
	if err != nil {
		return err
	}
	line := medium.NewCable[linecode.Streams]()
	sess := session.New(line, dir, &cfg.Session)

	return cli.NewShell(os.Stdin, os.Stdout, sess, line, cfg.Shell).Run()
}
