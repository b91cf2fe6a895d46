package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdexplorer/sacheck/internal/domain-adapters/gateways"
	orchestrators "github.com/gdexplorer/sacheck/internal/domain-orchestrators"
	"github.com/gdexplorer/sacheck/internal/domain/interfaces"
	"github.com/gdexplorer/sacheck/internal/domain/services"
	jsonadapter "github.com/gdexplorer/sacheck/internal/external-adapters/json"
	yamladapter "github.com/gdexplorer/sacheck/internal/external-adapters/yaml"
)

const defaultLogFile = "sacheck.log"

// Exit codes: 0 all units succeeded, 1 fatal setup error, 2 the batch ran
// but at least one unit failed.
const (
	exitSetupError  = 1
	exitUnitsFailed = 2
)

func runCheck(ctx context.Context, args []string) {
	// ContinueOnError keeps flag-parse failures on exit code 1; exit code 2
	// is reserved for a batch that ran with failing units.
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		saDir    = fs.String("sa-dir", "", "Folder with service account JSON files (required)")
		rclone   = fs.String("rclone", "rclone", "Path to rclone binary")
		remote   = fs.String("remote", "", "Rclone remote name (required)")
		dest     = fs.String("dest", "", "Destination folder id or Drive folder URL (required)")
		file     = fs.String("file", "", "Path to test file; if omitted, one artifact per credential is synthesized")
		parallel = fs.Int("parallel", orchestrators.DefaultParallel, "Number of concurrent uploads")
		logFile  = fs.String("log-file", defaultLogFile, "Output log file")
		config   = fs.String("config", "", "Optional YAML config file with defaults for these flags")
		verbose  = fs.Bool("verbose", false, "Verbose diagnostics on stderr")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sacheck check [options]

Upload a small test file to the destination folder with each service-account
credential and report which credentials are usable.

Examples:
  sacheck check --sa-dir ./accounts --remote gdrive --dest 1AbC...
  sacheck check --sa-dir ./accounts --remote gdrive --dest 'https://drive.google.com/drive/folders/1AbC?usp=sharing'
  sacheck check --config sacheck.yml --parallel 8

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(exitSetupError)
	}

	if *config != "" {
		cfg, err := yamladapter.NewConfigParser().ParseFile(*config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitSetupError)
		}

		// Config fills in only the flags not given on the command line.
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["rclone"] && cfg.Rclone != "" {
			*rclone = cfg.Rclone
		}
		if !set["remote"] && cfg.Remote != "" {
			*remote = cfg.Remote
		}
		if !set["dest"] && cfg.Dest != "" {
			*dest = cfg.Dest
		}
		if !set["file"] && cfg.File != "" {
			*file = cfg.File
		}
		if !set["parallel"] && cfg.Parallel > 0 {
			*parallel = cfg.Parallel
		}
		if !set["log-file"] && cfg.LogFile != "" {
			*logFile = cfg.LogFile
		}
	}

	if *saDir == "" || *remote == "" || *dest == "" {
		fmt.Fprintf(os.Stderr, "Error: --sa-dir, --remote and --dest are required\n\n")
		fs.Usage()
		os.Exit(exitSetupError)
	}

	folderID, err := services.ResolveFolderID(*dest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitSetupError)
	}

	logger := &interfaces.StderrLogger{Verbose: *verbose}
	orch := orchestrators.NewCheckOrchestrator(
		jsonadapter.NewAccountRepository(*saDir),
		gateways.NewRcloneGateway(*rclone, logger),
		services.NewFailureClassifier(),
		logger,
		orchestrators.CheckOrchestratorConfig{
			Remote:       *remote,
			FolderID:     folderID,
			ArtifactPath: *file,
			Parallel:     *parallel,
		},
	)

	// Status lines print as units complete; the summary follows once the
	// batch drains.
	report, err := orch.Run(ctx, func(lines []string) {
		for _, line := range lines {
			fmt.Println(line)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitSetupError)
	}

	fmt.Println(report.Summary())
	if len(report.NeedsAccess) > 0 {
		fmt.Println("Emails to add to destination drive:")
		fmt.Println(strings.Join(report.NeedsAccess, "\n"))
	}
	if report.Retryable > 0 {
		fmt.Printf("Note: %d failure(s) look like rate-limit or quota rejections and may pass on a later run.\n", report.Retryable)
	}

	if err := os.WriteFile(*logFile, []byte(strings.Join(report.Lines, "\n")+"\n"), 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write log file: %v\n", err)
	} else {
		fmt.Printf("Log written to: %s\n", *logFile)
	}

	if !report.AllSucceeded() {
		os.Exit(exitUnitsFailed)
	}
}
