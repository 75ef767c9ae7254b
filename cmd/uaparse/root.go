package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaparse/pkg/config"
	"github.com/dmitrymomot/uaparse/pkg/logger"
	"github.com/dmitrymomot/uaparse/pkg/requestid"
	"github.com/dmitrymomot/uaparse/pkg/useragent"
)

type appConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	Name         string `env:"APP_NAME" envDefault:"uaparse"`
	LogLevel     string `env:"LOG_LEVEL"`
	CacheSize    int    `env:"CACHE_SIZE" envDefault:"10000"`
	RedisEnabled bool   `env:"REDIS_ENABLED" envDefault:"false"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "uaparse",
		Short:        "Classify User-Agent strings",
		Long:         "Classify User-Agent strings into platform, browser and browser version.",
		SilenceUsage: true,
	}
	root.AddCommand(newParseCmd(), newServeCmd())
	return root
}

func loadAppConfig() (appConfig, error) {
	var cfg appConfig
	err := config.Load(&cfg)
	return cfg, err
}

func newLogger(cmd *cobra.Command, cfg appConfig) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.LoggerExtractor(), useragent.LoggerExtractor()),
	)
}
