package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bloggen/internal/config"
	"bloggen/internal/posts"
)

func newPostsCommand(configFlag *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List the most recently persisted articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			store, err := posts.Open(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			recent, err := store.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No articles stored yet.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderPosts(recent))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of articles to list")
	return cmd
}
