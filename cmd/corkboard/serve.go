package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpggio/corkboard/internal/mcp"
	"github.com/rpggio/corkboard/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func serveCmd(configPath *string) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board tools over MCP (stdio or streamable HTTP)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != "" {
				if err := os.Setenv("CORKBOARD_TRANSPORT", mode); err != nil {
					return err
				}
			}
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			mcpServer := mcp.NewServer(mcp.Config{
				Services: mcp.Services{
					Directory: a.directory,
					Boards:    a.workspace,
					Activity:  a.activity,
				},
				Version: Version,
				Logger:  a.logger,
			})

			if a.cfg.Transport.Mode == "stdio" {
				return runStdioMode(a.logger, mcpServer)
			}
			return runHTTPMode(a, mcpServer)
		},
	}
	cmd.Flags().StringVar(&mode, "transport", "", "transport mode: stdio or http (overrides config)")

	return cmd
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stdio server error: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func runHTTPMode(a *app, mcpServer *sdkmcp.Server) error {
	router := transport.NewRouter(mcpServer, transport.Options{
		AllowedOrigins: a.cfg.Server.AllowedOrigins,
		Logger:         a.logger,
	})

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	return waitForShutdown(a.logger, httpServer, errCh)
}

func waitForShutdown(logger *slog.Logger, server *http.Server, errCh <-chan error) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
