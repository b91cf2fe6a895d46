// Package json provides JSON-based service-account credential parsing and
// repository implementations.
package json

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/gdexplorer/sacheck/internal/domain/entities"
)

// serviceAccountJSON captures the one field the checker relies on. Service
// account files carry many more keys; all are ignored here.
type serviceAccountJSON struct {
	ClientEmail string `json:"client_email"`
}

// AccountParser extracts account identities from service-account JSON files
type AccountParser struct{}

// NewAccountParser creates a new service-account parser
func NewAccountParser() *AccountParser {
	return &AccountParser{}
}

// ParseIdentity reads the account email from a credential file. Any read or
// parse failure, and a missing or blank client_email, degrade to
// UnknownIdentity; a malformed credential file must not abort the batch.
func (p *AccountParser) ParseIdentity(path string) string {
	//nolint:gosec // G304: path comes from the user-selected credential directory
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.UnknownIdentity
	}

	var account serviceAccountJSON
	if err := json.Unmarshal(data, &account); err != nil {
		return entities.UnknownIdentity
	}

	if strings.TrimSpace(account.ClientEmail) == "" {
		return entities.UnknownIdentity
	}
	return account.ClientEmail
}
