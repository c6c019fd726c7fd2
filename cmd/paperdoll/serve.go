package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/api/rest"
	"github.com/cory-johannsen/paperdoll/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	start := time.Now()
	e, err := loadEnv(opts.configPath, nil)
	if err != nil {
		return err
	}
	defer func() { _ = e.logger.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, health, release, err := e.sessions(ctx)
	if err != nil {
		return err
	}
	defer release()

	if e.cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := rest.NewRouter(ctx, rest.NewHandler(sessions, health, e.logger), e.cfg.API, e.logger)
	srv := rest.NewServer(e.cfg.API, router)

	lc := server.NewLifecycle(e.logger, server.DefaultStopTimeout)
	// Sessions are added first so they flush after the API stops taking writes.
	lc.Add("sessions", &server.FuncService{StopFn: sessions.CloseAll})
	lc.Add("session-sweeper", &server.FuncService{
		StartFn: func(ctx context.Context) error {
			return sessions.Sweep(ctx, e.cfg.Sessions.SweepInterval)
		},
	})
	lc.Add("api", server.HTTPService(srv))

	e.logger.Info("api listening",
		zap.String("addr", srv.Addr),
		zap.Duration("startup", time.Since(start)),
	)
	return lc.Run(ctx)
}
