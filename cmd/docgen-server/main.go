package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-docgen/internal/config"
	"github.com/goliatone/go-docgen/internal/logger"
	"github.com/goliatone/go-docgen/internal/server"
	"github.com/goliatone/go-docgen/internal/store/postgres"
	"github.com/goliatone/go-docgen/pkg/docgen"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "docgen-server: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "docgen-server: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("Startup failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	templates, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = templates.Close() }()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := templates.Ping(pingCtx); err != nil {
		return fmt.Errorf("template store unreachable: %w", err)
	}

	generator := docgen.New(templates, docgen.WithLogger(log))
	service := server.NewService(generator, log)

	srv, err := server.New(service, server.Options{
		Port:       cfg.Port,
		MaxWorkers: cfg.MaxWorkers,
		Production: cfg.IsProduction,
		CertFile:   cfg.CertFile,
		KeyFile:    cfg.KeyFile,
	}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		srv.GracefulStop()
	}()

	return srv.ListenAndServe()
}
