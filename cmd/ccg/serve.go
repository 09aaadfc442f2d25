package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/npillmayer/ccg/server"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts an HTTP server exposing the parser as a JSON API, together with Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, engine, err := setup(cmd)
		if err != nil {
			return err
		}
		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           server.NewHandler(engine),
			ReadHeaderTimeout: 10 * time.Second,
		}
		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			pterm.Info.Printf("Starting server on %s with lexicon %s\n", srv.Addr, engine.Lexicon().Name)
			serverErrors <- srv.ListenAndServe()
		}()
		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case sig := <-shutdown:
			tracer().Infof("Start shutdown, signal %v", sig)
			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				tracer().Errorf("Graceful shutdown did not complete: %v", err)
				return srv.Close()
			}
			pterm.Info.Println("Server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", DefaultConfig().Addr, "address to listen on")
}
