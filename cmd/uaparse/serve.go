package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaparse/internal/api"
	"github.com/dmitrymomot/uaparse/pkg/cache"
	"github.com/dmitrymomot/uaparse/pkg/config"
	"github.com/dmitrymomot/uaparse/pkg/httpserver"
	"github.com/dmitrymomot/uaparse/pkg/logger"
	"github.com/dmitrymomot/uaparse/pkg/redis"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the classification HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd)
		},
	}
}

func serve(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	logger.SetAsDefault(log)

	var (
		httpCfg httpserver.Config
		apiCfg  api.Config
	)
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	if err := config.Load(&apiCfg); err != nil {
		return err
	}

	cacheOpts := []cache.Option{cache.WithLogger(log.With(logger.Component("cache")))}
	var ready []httpserver.Check

	if cfg.RedisEnabled {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		cacheOpts = append(cacheOpts, cache.WithStore(redis.NewResultStoreFromConfig(client, redisCfg)))
		ready = append(ready, redis.Healthcheck(client))
		log.Info("redis result store enabled", "prefix", redisCfg.KeyPrefix, "ttl", redisCfg.TTL)
	}

	router := api.NewRouter(api.Deps{
		Cache:  cache.New(max(cfg.CacheSize, 1), cacheOpts...),
		Logger: log,
		Config: apiCfg,
		Ready:  ready,
	})

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log.With(logger.Component("http"))))
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		return err
	}
	return nil
}
