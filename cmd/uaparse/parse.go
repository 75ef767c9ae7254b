package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaparse/internal/batch"
	"github.com/dmitrymomot/uaparse/pkg/cache"
	"github.com/dmitrymomot/uaparse/pkg/logger"
)

func newParseCmd() *cobra.Command {
	var (
		format  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "parse [user-agent...]",
		Short: "Classify the given User-Agent strings, or stdin lines when none are given",
		Example: `  uaparse parse "curl/8.0.1"
  uaparse parse --format yaml < access-agents.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := batch.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := loadAppConfig()
			if err != nil {
				return err
			}
			log := newLogger(cmd, cfg)

			lines := args
			if len(lines) == 0 {
				if lines, err = batch.ReadLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			start := time.Now()
			c := cache.New(max(cfg.CacheSize, 1), cache.WithLogger(log))
			records, err := batch.Classify(cmd.Context(), lines, workers, c.ParseFunc())
			if err != nil {
				return err
			}
			log.Debug("classified user agents",
				logger.Count(len(records)),
				logger.Duration(time.Since(start)),
				"distinct", c.Len(),
			)
			return batch.Encode(cmd.OutOrStdout(), records, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(batch.FormatJSON), "output format: json, yaml or text")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent classifiers, 0 uses GOMAXPROCS")
	return cmd
}
