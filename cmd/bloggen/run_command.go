package main

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bloggen/internal/articlecache"
	"bloggen/internal/config"
	"bloggen/internal/logging"
	"bloggen/internal/pipeline"
	"bloggen/internal/posts"
	"bloggen/internal/services/ollama"
)

func newRunCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Generate and persist articles for every document in the corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			logger = logger.With(logging.String("run_id", uuid.NewString()))

			// One run at a time: concurrent runs would race on the cache
			// directory and defeat the in-memory dedup pre-check.
			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another bloggen run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			store, err := posts.Open(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cache, err := articlecache.New(cfg.Paths.CacheDir, logger)
			if err != nil {
				return err
			}

			client := ollama.NewClient(ollama.Config{
				BaseURL:        cfg.Ollama.BaseURL,
				Model:          cfg.Ollama.Model,
				TimeoutSeconds: cfg.Ollama.TimeoutSeconds,
				Retries:        cfg.Ollama.Retries,
			})

			runner, err := pipeline.New(cfg, store, cache, client, logger)
			if err != nil {
				return err
			}

			summary, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
			return nil
		},
	}
}
