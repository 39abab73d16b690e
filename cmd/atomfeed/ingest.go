package main

import (
	"fmt"
	"os"

	"github.com/mmcdole/gofeed"
	"github.com/spf13/cobra"

	"atomfeed/internal/ingest"
	"atomfeed/pkg/atom"
)

func ingestCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "ingest <feed file>",
		Short: "Re-emit a parseable feed file as validated Atom XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			parsed, err := gofeed.NewParser().Parse(in)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			feed, err := ingest.FromGofeed(parsed)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := os.Stdout
			if output != "" {
				out, err = os.Create(output)
				if err != nil {
					return err
				}
				defer out.Close()
			}
			return atom.EncodeFeed(out, feed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
