package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/events"
	"github.com/Falakejaz786/company-jobs-web-scraper/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a local HTTP API for starting runs, reading history and following progress",
	RunE:  runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:38471", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := setup(nil)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	db, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if db == nil {
		return errors.New("serve needs the run store (store.enabled=true)")
	}
	defer db.Close()

	var runs sync.WaitGroup
	handler := httpapi.Handler(httpapi.Deps{
		Store:     db,
		Hub:       events.NewHub(),
		Cfg:       a.cfg,
		Processor: a.pipeline(a.client(), db),
		RunStatus: &atomic.Value{},
		Runs:      &runs,
		BaseCtx:   ctx,
		Log:       a.log,
	})

	ln, err := net.Listen("tcp", serveAddr)
	if err != nil {
		return err
	}
	a.log.Info("listening", zap.String("addr", "http://"+ln.Addr().String()), zap.String("db", a.cfg.StorePath()))

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		// open /events streams end when ctx is cancelled
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	err = srv.Serve(ln)
	// a run cancelled by ctx still records its partial results before db closes
	runs.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
