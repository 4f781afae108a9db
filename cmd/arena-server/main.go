// Package main is the arena relay server entrypoint.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"arena/arena"
	"arena/config"
	"arena/logging"
	"arena/network"
)

var (
	flagAddr string

	rootCmd = &cobra.Command{
		Use:   "arena-server",
		Short: "Relay server for the physics battle arena.",
		RunE:  run,
	}
)

func init() {
	rootCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides ARENA_ADDR)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}

	log := logging.New(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	a := arena.New(log)
	go a.Run()
	defer a.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", network.Handler(a, log))
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan arena.StatsResult, 1)
		a.Inbox <- arena.Stats{Reply: reply}
		st := <-reply
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sessions": st.Sessions,
			"entities": st.Entities,
			"frame":    st.Frame,
			"relay":    a.Metrics().Snapshot(),
		})
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		log.Infof("arena listening on %s; ws endpoint at ws://localhost%s/ws", cfg.Addr, cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen failed")
	case <-quit:
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(ctx), "shutdown failed")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
