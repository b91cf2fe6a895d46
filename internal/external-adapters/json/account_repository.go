package json

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdexplorer/sacheck/internal/domain/entities"
)

// AccountRepository implements repositories.CredentialRepository over a
// directory of service-account JSON files
type AccountRepository struct {
	dir    string
	parser *AccountParser
}

// NewAccountRepository creates a new directory-backed credential repository
func NewAccountRepository(dir string) *AccountRepository {
	return &AccountRepository{
		dir:    dir,
		parser: NewAccountParser(),
	}
}

// ListCredentials returns one descriptor per regular .json file in the
// directory (extension matched case-insensitively), sorted by filename.
// Fails with ErrCredentialDirNotFound when the directory is missing and
// ErrNoCredentials when no credential files are present.
func (r *AccountRepository) ListCredentials(_ context.Context) ([]entities.CredentialDescriptor, error) {
	info, err := os.Stat(r.dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", entities.ErrCredentialDirNotFound, r.dir)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential directory: %w", err)
	}

	// os.ReadDir returns entries sorted by filename, which gives the run a
	// deterministic unit order.
	credentials := make([]entities.CredentialDescriptor, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(r.dir, entry.Name())
		credentials = append(credentials, entities.CredentialDescriptor{
			Path:     path,
			Identity: r.parser.ParseIdentity(path),
		})
	}

	if len(credentials) == 0 {
		return nil, fmt.Errorf("%w in %s", entities.ErrNoCredentials, r.dir)
	}
	return credentials, nil
}
