package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/faturaquick/fatura-cli/internal/server"
	"github.com/faturaquick/fatura-cli/internal/session"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local proposal editor server",
	Example: `  fatura serve
  fatura serve --addr 127.0.0.1:9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" && cfg != nil {
			addr = cfg.ListenAddr
		}
		if addr == "" {
			addr = "127.0.0.1:8787"
		}

		sess := session.New(newAIClient(), logger)
		srv := &http.Server{Addr: addr, Handler: server.New(sess, logger)}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("editor listening", "addr", addr)
			fmt.Printf("Editor em http://%s (Ctrl+C para sair)\n", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-quit:
		}
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}
