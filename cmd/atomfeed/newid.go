package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atomfeed/pkg/atom"
)

func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-id",
		Short: "Mint a urn:uuid identifier for a feed or entry",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(atom.NewID())
		},
	}
}
