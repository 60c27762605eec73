package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/banner-server/internal/platform/config"
	applog "github.com/janisto/banner-server/internal/platform/logging"
	"github.com/janisto/banner-server/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	if err := applog.Init(Version); err != nil {
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
	}
	defer func() {
		if err := applog.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "logger sync error: %v\n", err)
		}
	}()

	cfg := config.Load()
	ln, err := server.Listen(cfg.Addr())
	if err != nil {
		applog.LogFatal(context.Background(), "listen failed", err, zap.String("addr", cfg.Addr()))
	}
	applog.LogInfo(context.Background(), "server listening", zap.String("addr", ln.Addr().String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewHTTPServer(server.NewRouter(Version))
	if err := server.Run(ctx, srv, ln); err != nil {
		applog.LogError(context.Background(), "server error", err)
		_ = applog.Sync()
		stop()
		os.Exit(1)
	}
	applog.LogInfo(context.Background(), "server exited")
}
