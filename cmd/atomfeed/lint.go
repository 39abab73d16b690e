package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"atomfeed/internal/logging"
	"atomfeed/pkg/atom"
)

func lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "Validate an Atom XML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewTextLogger()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			feed, err := atom.DecodeFeed(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			logger.Info("feed is valid",
				"id", feed.ID.String(),
				"title", feed.Title.Value,
				"entries", len(feed.Entries))
			return nil
		},
	}
}
