// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdexplorer/sacheck/internal/domain/entities"
	"github.com/gdexplorer/sacheck/internal/domain/interfaces"
	"github.com/gdexplorer/sacheck/internal/domain/interfaces/repositories"
	"github.com/gdexplorer/sacheck/internal/domain/services"
)

const (
	// artifactPrefix groups one run's synthesized artifacts by name.
	artifactPrefix = "sacheck-"

	// artifactMarker is the content of every synthesized test artifact.
	artifactMarker = "sacheck test upload.\n"

	// defaultWorkDirName is the synthesis directory under the OS temp dir.
	defaultWorkDirName = "sacheck-run"

	// DefaultParallel is the worker-pool size when none is configured.
	DefaultParallel = 4
)

// TransferGateway interface for performing one authenticated upload per call
type TransferGateway interface {
	Upload(ctx context.Context, req entities.TransferRequest) entities.TransferOutcome
}

// FailureClassifier interface for extracting failure reasons from raw output
type FailureClassifier interface {
	Classify(output string) (string, bool)
	Retryable(reason string) bool
}

// CheckOrchestrator coordinates the complete batch verification workflow:
// load credentials, build work units, execute them with bounded parallelism,
// and aggregate the results into a report.
type CheckOrchestrator struct {
	credRepo   repositories.CredentialRepository
	transfer   TransferGateway
	classifier FailureClassifier
	logger     interfaces.Logger
	remote     string
	folderID   string
	artifact   string
	parallel   int
	workDir    string
}

// CheckOrchestratorConfig holds configuration for the orchestrator
type CheckOrchestratorConfig struct {
	// Remote is the rclone remote name uploads go through.
	Remote string
	// FolderID is the bare destination folder id.
	FolderID string
	// ArtifactPath is an explicit test file shared by every unit. Empty
	// triggers per-credential artifact synthesis.
	ArtifactPath string
	// Parallel is the maximum number of concurrent uploads (minimum 1).
	Parallel int
	// WorkDir overrides the synthesis directory. Empty uses the OS temp dir.
	WorkDir string
}

// NewCheckOrchestrator creates a new check orchestrator
func NewCheckOrchestrator(
	credRepo repositories.CredentialRepository,
	transfer TransferGateway,
	classifier FailureClassifier,
	logger interfaces.Logger,
	config CheckOrchestratorConfig,
) *CheckOrchestrator {
	// The default of 4 comes from the CLI flag; anything lower than 1 here
	// clamps to a single worker.
	parallel := config.Parallel
	if parallel < 1 {
		parallel = 1
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &CheckOrchestrator{
		credRepo:   credRepo,
		transfer:   transfer,
		classifier: classifier,
		logger:     logger,
		remote:     config.Remote,
		folderID:   config.FolderID,
		artifact:   config.ArtifactPath,
		parallel:   parallel,
		workDir:    config.WorkDir,
	}
}

// unitOutcome pairs a work unit with its transfer result on the results channel.
type unitOutcome struct {
	unit   entities.WorkUnit
	result entities.TransferResult
}

// Run executes the batch to completion and returns the final report. Errors
// are setup failures only; per-unit transfer failures are recorded in the
// report and never abort the run. onResult, when non-nil, observes each
// unit's log lines as they arrive, in completion order.
func (o *CheckOrchestrator) Run(ctx context.Context, onResult func(lines []string)) (entities.Report, error) {
	credentials, err := o.credRepo.ListCredentials(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	units, cleanup, err := o.buildUnits(credentials)
	if err != nil {
		return entities.Report{}, err
	}
	defer cleanup()

	workers := o.parallel
	if workers > len(units) {
		workers = len(units)
	}
	o.logger.Debug("starting batch",
		interfaces.F("units", len(units)),
		interfaces.F("workers", workers))

	unitCh := make(chan entities.WorkUnit)
	resultCh := make(chan unitOutcome)

	for i := 0; i < workers; i++ {
		go func() {
			for unit := range unitCh {
				resultCh <- unitOutcome{unit: unit, result: o.runUnit(ctx, unit)}
			}
		}()
	}
	go func() {
		for _, unit := range units {
			unitCh <- unit
		}
		close(unitCh)
	}()

	// Drain exactly one result per unit. The builder is the only consumer,
	// so no locking is needed around the report state.
	builder := services.NewReportBuilder()
	retryable := 0
	for range units {
		outcome := <-resultCh
		lines := builder.Add(outcome.unit, outcome.result)
		if onResult != nil {
			onResult(lines)
		}
		if !outcome.result.Success && o.classifier.Retryable(outcome.result.Reason) {
			retryable++
		}
	}

	report := builder.Finalize()
	report.Retryable = retryable
	return report, nil
}

// runUnit performs one transfer attempt. Every failure is converted into a
// terminal result here; nothing propagates across the worker boundary.
func (o *CheckOrchestrator) runUnit(ctx context.Context, unit entities.WorkUnit) entities.TransferResult {
	outcome := o.transfer.Upload(ctx, entities.TransferRequest{
		SourcePath:     unit.SourcePath,
		Remote:         o.remote,
		FolderID:       o.folderID,
		CredentialPath: unit.Credential.Path,
		DestName:       unit.DestName,
	})

	result := entities.TransferResult{
		Success: outcome.Success,
		Output:  outcome.Output,
	}
	if !outcome.Success {
		if reason, ok := o.classifier.Classify(outcome.Output); ok {
			result.Reason = reason
		}
	}
	return result
}

// buildUnits pairs each credential with its source artifact and destination
// name. The returned cleanup removes synthesized artifacts, best effort.
func (o *CheckOrchestrator) buildUnits(credentials []entities.CredentialDescriptor) ([]entities.WorkUnit, func(), error) {
	if o.artifact != "" {
		info, err := os.Stat(o.artifact)
		if err != nil || info.IsDir() {
			return nil, nil, fmt.Errorf("%w: %s", entities.ErrArtifactNotFound, o.artifact)
		}

		units := make([]entities.WorkUnit, 0, len(credentials))
		for _, cred := range credentials {
			units = append(units, entities.WorkUnit{
				Credential: cred,
				SourcePath: o.artifact,
				DestName:   services.DestName(o.artifact, cred.Identity),
			})
		}
		return units, func() {}, nil
	}

	// Synthesis mode: one marker artifact per credential, written
	// sequentially before any worker starts, so each upload reads its own
	// file and failures stay traceable to a credential by filename alone.
	workDir := o.workDir
	if workDir == "" {
		workDir = filepath.Join(os.TempDir(), defaultWorkDirName)
	}
	if err := os.MkdirAll(workDir, 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create work directory: %w", err)
	}

	timestamp := time.Now().UTC().Format("20060102-150405")
	units := make([]entities.WorkUnit, 0, len(credentials))
	created := make([]string, 0, len(credentials))
	for idx, cred := range credentials {
		name := fmt.Sprintf("%s%s-%03d-%s.txt", artifactPrefix, timestamp, idx+1, services.SanitizeName(cred.Identity))
		path := filepath.Join(workDir, name)
		if err := os.WriteFile(path, []byte(artifactMarker), 0o600); err != nil {
			for _, p := range created {
				_ = os.Remove(p)
			}
			return nil, nil, fmt.Errorf("failed to write test artifact: %w", err)
		}
		created = append(created, path)
		units = append(units, entities.WorkUnit{
			Credential: cred,
			SourcePath: path,
			DestName:   services.DestName(path, cred.Identity),
		})
	}

	cleanup := func() {
		for _, path := range created {
			// Best effort; a leftover artifact is harmless.
			_ = os.Remove(path)
		}
	}
	return units, cleanup, nil
}
