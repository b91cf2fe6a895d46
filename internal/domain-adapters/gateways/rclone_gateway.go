// Package gateways provides adapters that drive external binaries.
package gateways

import (
	"context"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/gdexplorer/sacheck/internal/domain/entities"
	"github.com/gdexplorer/sacheck/internal/domain/interfaces"
)

// defaultBinary is resolved via PATH when no explicit rclone path is given.
const defaultBinary = "rclone"

// RcloneGateway performs uploads by shelling out to the rclone binary. Each
// Upload call is one blocking subprocess invocation; there is no timeout, the
// binary is trusted to terminate.
type RcloneGateway struct {
	binary string
	logger interfaces.Logger
}

// NewRcloneGateway creates a new rclone transfer gateway
func NewRcloneGateway(binary string, logger interfaces.Logger) *RcloneGateway {
	if binary == "" {
		binary = defaultBinary
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &RcloneGateway{
		binary: binary,
		logger: logger,
	}
}

// Upload copies the source file to <remote>:<destName> using the given
// credential file. Exit status 0 means success; stdout and stderr are merged
// into the returned output so failures can be classified from one stream.
func (g *RcloneGateway) Upload(ctx context.Context, req entities.TransferRequest) entities.TransferOutcome {
	args := []string{
		"copyto",
		req.SourcePath,
		req.Remote + ":" + req.DestName,
		"--drive-root-folder-id", req.FolderID,
		"--drive-service-account-file", req.CredentialPath,
		"--log-level", "INFO",
		"--use-json-log",
	}

	g.logger.Debug("running transfer",
		interfaces.F("command", shellquote.Join(append([]string{g.binary}, args...)...)))

	//nolint:gosec // G204: the binary path and credential paths are user-supplied on purpose
	cmd := exec.CommandContext(ctx, g.binary, args...)
	output, err := cmd.CombinedOutput()

	return entities.TransferOutcome{
		Success: err == nil,
		Output:  string(output),
	}
}
