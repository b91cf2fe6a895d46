// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/gdexplorer/sacheck/internal/domain/entities"
)

// CredentialRepository defines the interface for discovering credential
// descriptor files
type CredentialRepository interface {
	// ListCredentials returns one descriptor per credential file, sorted by
	// filename. Unparseable files degrade to the unknown identity rather
	// than erroring.
	ListCredentials(ctx context.Context) ([]entities.CredentialDescriptor, error)
}
