package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"geohash-service/api"
	"geohash-service/cache"
	"geohash-service/config"
	"geohash-service/index"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the geohash HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// buildIndex creates the configured index, connecting to Redis when the
// geohash technique needs it. The returned close func is never nil.
func buildIndex(ctx context.Context, cfg *config.Config) (index.Index, func(), error) {
	technique := index.Technique(cfg.Index.Technique)

	var rdb *redis.Client
	closeFn := func() {}
	if technique == index.GeohashTechnique {
		var err error
		rdb, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, closeFn, err
		}
		closeFn = func() { rdb.Close() }
	}

	idx, err := index.New(technique, rdb, cfg.Index.PrecisionKm)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return idx, closeFn, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	idx, closeIndex, err := buildIndex(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeIndex()

	h := api.NewHandler(idx, cfg.Geohash.DefaultPrecisionKm)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.RegisterRoutes(h, os.Stdout),
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Server started on %s (index: %s)", cfg.Server.Addr, cfg.Index.Technique)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
