package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wayfind/cache"
	"github.com/katalvlaran/wayfind/internal/config"
	"github.com/katalvlaran/wayfind/internal/logging"
	"github.com/katalvlaran/wayfind/internal/metrics"
	"github.com/katalvlaran/wayfind/runner"
	"github.com/katalvlaran/wayfind/server"
)

const shutdownGrace = 10 * time.Second

var serveFlags struct {
	configPath string
	addr       string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Long: `Start the HTTP API with structured logging, Prometheus metrics on
/metrics, and the solution cache configured in the YAML config file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVarP(&serveFlags.configPath, "config", "c", "", "Path to YAML config (defaults apply without one)")
	f.StringVar(&serveFlags.addr, "addr", "", "Listen address, overrides the config file")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveFlags.configPath)
	if err != nil {
		return err
	}
	if serveFlags.addr != "" {
		cfg.Addr = serveFlags.addr
	}

	logging.Init(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
	log := logging.New("serve")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store, err := buildStore(cfg.Cache)
	if err != nil {
		return err
	}

	run := runner.New(
		runner.WithStore(store),
		runner.WithLogger(logging.New("runner")),
		runner.WithObserver(metrics.New(reg)),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(run, server.WithLogger(logging.New("http")), server.WithRegistry(reg)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", cfg.Addr, "cache", cfg.Cache.Kind)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// buildStore maps the cache config onto a Store backend. A nil Store
// disables caching.
func buildStore(cfg config.CacheConfig) (cache.Store, error) {
	switch cfg.Kind {
	case "", "none":
		return nil, nil
	case "memory":
		return cache.NewMemory(cfg.MaxEntries), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		opts := []cache.RedisOption{}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, cache.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, cache.WithTTL(time.Duration(cfg.Redis.TTL)))
		}

		return cache.NewRedis(client, opts...), nil
	default:
		return nil, fmt.Errorf("unknown cache kind %q (want none, memory, or redis)", cfg.Kind)
	}
}
