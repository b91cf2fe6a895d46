package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdexplorer/sacheck/internal/domain/services"
)

func runResolve(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sacheck resolve <folder-url-or-id>

Print the bare folder id extracted from a Drive folder URL. Bare ids pass
through unchanged.

Examples:
  sacheck resolve 'https://drive.google.com/drive/folders/1AbC?usp=sharing'
  sacheck resolve 1AbC
`)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: a folder URL or id is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	folderID, err := services.ResolveFolderID(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(folderID)
}
