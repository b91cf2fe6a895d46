package gateways

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/gdexplorer/sacheck/internal/domain/interfaces"
)

// RemoteConfigurator creates or updates the rclone remote the checks upload
// through. Creation is tried first; when the remote already exists, rclone
// refuses and the configurator falls back to updating the credential file on
// the existing remote.
type RemoteConfigurator struct {
	binary string
	logger interfaces.Logger
}

// NewRemoteConfigurator creates a new rclone remote configurator
func NewRemoteConfigurator(binary string, logger interfaces.Logger) *RemoteConfigurator {
	if binary == "" {
		binary = defaultBinary
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &RemoteConfigurator{
		binary: binary,
		logger: logger,
	}
}

// Configure points the named drive remote at the given credential file.
func (c *RemoteConfigurator) Configure(ctx context.Context, remote, credentialPath string) error {
	createArgs := []string{
		"config", "create", remote, "drive",
		"service_account_file", credentialPath,
		"scope", "drive",
		"--non-interactive",
	}
	//nolint:gosec // G204: binary path and arguments are user-supplied on purpose
	create := exec.CommandContext(ctx, c.binary, createArgs...)
	createOutput, err := create.CombinedOutput()
	if err == nil {
		return nil
	}
	c.logger.Debug("rclone config create failed, trying update",
		interfaces.F("remote", remote),
		interfaces.F("output", string(createOutput)))

	updateArgs := []string{
		"config", "update", remote,
		"service_account_file", credentialPath,
	}
	//nolint:gosec // G204: binary path and arguments are user-supplied on purpose
	update := exec.CommandContext(ctx, c.binary, updateArgs...)
	if output, err := update.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to configure rclone remote %q: %w\nOutput: %s", remote, err, output)
	}
	return nil
}
