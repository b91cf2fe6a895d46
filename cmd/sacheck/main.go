// Package main provides the sacheck CLI for batch-verifying service-account credentials.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "check":
		runCheck(ctx, os.Args[2:])
	case "list":
		runList(ctx, os.Args[2:])
	case "resolve":
		runResolve(os.Args[2:])
	case "setup-remote":
		runSetupRemote(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sacheck - Verify service-account credentials against a Drive folder

Usage:
  sacheck <command> [options]

Commands:
  check         Upload a test file with each credential and report which work
  list          List credential files and their account identities
  resolve       Extract the folder id from a folder URL or bare id
  setup-remote  Create or update the rclone remote used for checks

Use "sacheck <command> --help" for more information about a command.`)
}
