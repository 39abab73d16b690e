// Package main provides the atomfeed binary entry point.
// Atomfeed validates, builds and re-emits Atom Syndication Format documents
// using the typed model in pkg/atom.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "atomfeed"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Atom feed validator and builder",
		Long: `Atomfeed works with Atom Syndication Format documents.

It provides:
- lint: decode an Atom XML document and check the format's rules
- build: build an Atom document from a YAML feed definition
- ingest: re-emit any parseable feed file as validated Atom XML
- new-id: mint a urn:uuid identifier for a feed or entry`,
		SilenceUsage: true,
	}

	cmd.AddCommand(lintCmd())
	cmd.AddCommand(buildCmd())
	cmd.AddCommand(ingestCmd())
	cmd.AddCommand(newIDCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}
