// Command scrolls is the interactive record keeper for volunteers and befriendees.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"scrolls/internal/blob"
	"scrolls/internal/commands"
	"scrolls/internal/core"
	"scrolls/internal/logic"
	"scrolls/internal/metrics"
	"scrolls/internal/parser"
	"scrolls/pkg/config"
	"scrolls/pkg/logging"
)

var exitFunc = os.Exit

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		exitFunc(1)
		return
	}
	logger := logging.SetupWithLevel(logging.ParseLevel(cfg.Log.Level))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("scrolls stopped", "error", err)
		exitFunc(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	store, err := core.OpenPersistentStore(ctx, core.StorageOptions{
		Driver:      core.StorageDriver(cfg.Storage.Driver),
		SQLitePath:  cfg.Storage.SQLitePath,
		PostgresDSN: cfg.Storage.PostgresDSN,
	}, core.NewDefaultRulesEngine())
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() { _ = store.Close() }()
	if res, err := store.Verify(ctx); err != nil {
		return fmt.Errorf("verify storage: %w", err)
	} else if len(res.Violations) > 0 {
		logger.Warn("stored records violate rules", "violations", len(res.Violations))
	}

	exports, err := blob.Open(ctx, blob.Options{
		Driver: blob.Driver(cfg.Blob.Driver),
		FSRoot: cfg.Blob.FSRoot,
		S3: blob.S3Config{
			Region:    cfg.Blob.S3Region,
			Bucket:    cfg.Blob.S3Bucket,
			Endpoint:  cfg.Blob.S3Endpoint,
			PathStyle: cfg.Blob.S3PathStyle,
		},
	})
	if err != nil {
		return fmt.Errorf("open export store: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(registry)
	if cfg.Metrics.Addr != "" {
		srv := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           metrics.SetupMetricsRoute(registry),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "addr", cfg.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	model := core.NewModelManager(store, core.WithLogger(logger), core.WithHistoryLimit(cfg.History.Limit))
	manager := logic.NewManager(
		parser.New(parser.WithExportStore(exports)),
		model,
		logic.WithLogger(logger),
		logic.WithRecorder(collector),
	)
	logger.Info("scrolls ready", "storage", cfg.Storage.Driver, "exports", exports.Driver())

	return repl(ctx, manager, in, out)
}

func repl(ctx context.Context, manager *logic.Manager, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}
		res, err := manager.Execute(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, res.Feedback)
		if res.ShowLists {
			fmt.Fprintln(out, commands.RenderLists(manager.Datastore()))
		}
		if res.Exit {
			return nil
		}
	}
}
