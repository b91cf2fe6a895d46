package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdexplorer/sacheck/internal/domain-adapters/gateways"
	"github.com/gdexplorer/sacheck/internal/domain/interfaces"
	jsonadapter "github.com/gdexplorer/sacheck/internal/external-adapters/json"
)

func runSetupRemote(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("setup-remote", flag.ContinueOnError)
	var (
		saDir   = fs.String("sa-dir", "", "Folder with service account JSON files (required)")
		rclone  = fs.String("rclone", "rclone", "Path to rclone binary")
		remote  = fs.String("remote", "", "Rclone remote name to create or update (required)")
		verbose = fs.Bool("verbose", false, "Verbose diagnostics on stderr")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sacheck setup-remote [options]

Create the rclone drive remote used by "sacheck check", seeded with the first
credential file in the folder. If the remote already exists it is updated in
place.

Examples:
  sacheck setup-remote --sa-dir ./accounts --remote gdrive

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

	if *saDir == "" || *remote == "" {
		fmt.Fprintf(os.Stderr, "Error: --sa-dir and --remote are required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	repo := jsonadapter.NewAccountRepository(*saDir)
	credentials, err := repo.ListCredentials(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := &interfaces.StderrLogger{Verbose: *verbose}
	configurator := gateways.NewRemoteConfigurator(*rclone, logger)
	if err := configurator.Configure(ctx, *remote, credentials[0].Path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Remote %q configured with %s\n", *remote, credentials[0].Name())
}
