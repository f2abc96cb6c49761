//go:build !js && !wasm

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Its-donkey/techsolutions-site/internal/config"
	"github.com/Its-donkey/techsolutions-site/internal/server"
	"github.com/Its-donkey/techsolutions-site/logging"
)

const (
	logFileName  = "site-serve.log"
	logMaxSizeMB = 10
	logMaxFiles  = 5
)

func main() {
	configPath := flag.String("config", "config.json", "path to server configuration (optional)")
	dotenvPath := flag.String("env", ".env", "dotenv file filling unset SITE_* variables (optional)")
	listen := flag.String("listen", "", "address to serve the site (defaults to config server.addr+port)")
	assetsDir := flag.String("assets", "", "directory holding index.html, styles.css and main.wasm (defaults to config app.assets)")
	index := flag.String("index", "", "page markup file inside the assets dir (defaults to config app.index)")
	logLevel := flag.String("log-level", "", "minimum log level (defaults to config log.level)")
	logDir := flag.String("logs", "", "directory for rotated log files (defaults to config log.dir)")
	flag.Parse()

	cfg, err := config.Load(*configPath, *dotenvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg, *assetsDir, *index, *logLevel, *logDir)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger, closeLogs, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLogs()

	addr := cfg.ListenAddr()
	if *listen != "" {
		addr = *listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = server.Run(ctx, server.Options{
		Listen:    addr,
		AssetsDir: cfg.App.Assets,
		Index:     cfg.App.Index,
		Logger:    logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server", "site server stopped", err, nil)
		closeLogs()
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config, assetsDir, index, logLevel, logDir string) {
	if assetsDir != "" {
		cfg.App.Assets = assetsDir
	}
	if index != "" {
		cfg.App.Index = index
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logDir != "" {
		cfg.Log.Dir = logDir
	}
}

// newLogger writes JSON lines to stdout and, when a log dir is configured, to
// a rotating file as well.
func newLogger(cfg config.LogConfig) (*logging.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	writers := []io.Writer{os.Stdout}
	closeFn := func() {}
	if cfg.Dir != "" {
		fw, err := logging.NewFileWriter(cfg.Dir, logFileName, logMaxSizeMB, logMaxFiles)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, fw)
		closeFn = func() { _ = fw.Close() }
	}
	return logging.New("techsolutions", level, writers...), closeFn, nil
}
