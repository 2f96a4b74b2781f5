package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/brenonun3s/project-llm-optimizer/config"
	"github.com/brenonun3s/project-llm-optimizer/server"
	"github.com/brenonun3s/project-llm-optimizer/utils"
)

const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the optimization HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		logger := utils.NewLogger(cfg.LogLevel)

		opt := buildOptimizer(cfg, logger)
		srv := server.New(opt, logger, cfg.HasCredential())

		httpServer := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", "port", cfg.Port, "model", cfg.Model)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		}
	},
}
