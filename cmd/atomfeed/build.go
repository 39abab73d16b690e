package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"atomfeed/internal/feedfile"
	"atomfeed/pkg/atom"
)

func buildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build <definition.yaml>",
		Short: "Build an Atom document from a YAML feed definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			feed, err := feedfile.Load(in)
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
