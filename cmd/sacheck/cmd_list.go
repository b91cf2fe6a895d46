package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	jsonadapter "github.com/gdexplorer/sacheck/internal/external-adapters/json"
)

func runList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	var (
		saDir       = fs.String("sa-dir", "", "Folder with service account JSON files (required)")
		unknownOnly = fs.Bool("unknown-only", false, "Only show files whose identity could not be parsed")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sacheck list [options]

List credential files and the account identity parsed from each.

Examples:
  sacheck list --sa-dir ./accounts
  sacheck list --sa-dir ./accounts --unknown-only

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}

	if *saDir == "" {
		fmt.Fprintf(os.Stderr, "Error: --sa-dir is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	repo := jsonadapter.NewAccountRepository(*saDir)
	credentials, err := repo.ListCredentials(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *unknownOnly {
		filtered := credentials[:0]
		for _, cred := range credentials {
			if !cred.Identified() {
				filtered = append(filtered, cred)
			}
		}
		credentials = filtered
	}

	fmt.Printf("Credential files (%d total):\n\n", len(credentials))
	for _, cred := range credentials {
		size := "?"
		if info, err := os.Stat(cred.Path); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		fmt.Printf("  %-40s %-12s %s\n", cred.Name(), size, cred.Identity)
	}
}
