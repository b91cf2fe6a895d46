package json

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdexplorer/sacheck/internal/domain/entities"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestAccountRepository_ListCredentials_Success(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "b.json", `{"client_email":"b@x.com"}`)
	writeFile(t, tmpDir, "a.json", `{"client_email":"a@x.com"}`)
	writeFile(t, tmpDir, "notes.txt", "ignore me")

	repo := NewAccountRepository(tmpDir)
	credentials, err := repo.ListCredentials(context.Background())
	if err != nil {
		t.Fatalf("ListCredentials() error = %v", err)
	}

	if len(credentials) != 2 {
		t.Fatalf("ListCredentials() returned %d descriptors, want 2", len(credentials))
	}
	// Sorted by filename for a deterministic unit order.
	if credentials[0].Name() != "a.json" || credentials[1].Name() != "b.json" {
		t.Errorf("ListCredentials() order = %s, %s", credentials[0].Name(), credentials[1].Name())
	}
	if credentials[0].Identity != "a@x.com" {
		t.Errorf("ListCredentials() identity = %q, want a@x.com", credentials[0].Identity)
	}
}

func TestAccountRepository_ListCredentials_ExtensionCaseInsensitive(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "upper.JSON", `{"client_email":"u@x.com"}`)

	repo := NewAccountRepository(tmpDir)
	credentials, err := repo.ListCredentials(context.Background())
	if err != nil {
		t.Fatalf("ListCredentials() error = %v", err)
	}
	if len(credentials) != 1 {
		t.Errorf("ListCredentials() returned %d descriptors, want 1", len(credentials))
	}
}

func TestAccountRepository_ListCredentials_MalformedFileDegrades(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "bad.json", `{not json at all`)
	writeFile(t, tmpDir, "good.json", `{"client_email":"good@x.com"}`)

	repo := NewAccountRepository(tmpDir)
	credentials, err := repo.ListCredentials(context.Background())
	if err != nil {
		t.Fatalf("ListCredentials() error = %v, malformed files must not abort the batch", err)
	}

	if credentials[0].Identity != entities.UnknownIdentity {
		t.Errorf("malformed file identity = %q, want %q", credentials[0].Identity, entities.UnknownIdentity)
	}
	if credentials[1].Identity != "good@x.com" {
		t.Errorf("well-formed file identity = %q, want good@x.com", credentials[1].Identity)
	}
}

func TestAccountRepository_ListCredentials_DirNotFound(t *testing.T) {
	repo := NewAccountRepository(filepath.Join(t.TempDir(), "missing"))

	_, err := repo.ListCredentials(context.Background())
	if !errors.Is(err, entities.ErrCredentialDirNotFound) {
		t.Errorf("ListCredentials() error = %v, want ErrCredentialDirNotFound", err)
	}
}

func TestAccountRepository_ListCredentials_PathIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "file.json", `{}`)

	repo := NewAccountRepository(path)
	_, err := repo.ListCredentials(context.Background())
	if !errors.Is(err, entities.ErrCredentialDirNotFound) {
		t.Errorf("ListCredentials() error = %v, want ErrCredentialDirNotFound", err)
	}
}

func TestAccountRepository_ListCredentials_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "readme.md", "no credentials here")

	repo := NewAccountRepository(tmpDir)
	_, err := repo.ListCredentials(context.Background())
	if !errors.Is(err, entities.ErrNoCredentials) {
		t.Errorf("ListCredentials() error = %v, want ErrNoCredentials", err)
	}
}

func TestAccountParser_ParseIdentity(t *testing.T) {
	tmpDir := t.TempDir()
	parser := NewAccountParser()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"valid", `{"client_email":"svc@proj.iam.gserviceaccount.com","private_key":"..."}`, "svc@proj.iam.gserviceaccount.com"},
		{"missing field", `{"type":"service_account"}`, entities.UnknownIdentity},
		{"blank email", `{"client_email":"   "}`, entities.UnknownIdentity},
		{"invalid json", `{{{`, entities.UnknownIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tmpDir, tt.name+".json", tt.content)
			if got := parser.ParseIdentity(path); got != tt.want {
				t.Errorf("ParseIdentity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccountParser_ParseIdentity_UnreadableFile(t *testing.T) {
	parser := NewAccountParser()
	if got := parser.ParseIdentity(filepath.Join(t.TempDir(), "absent.json")); got != entities.UnknownIdentity {
		t.Errorf("ParseIdentity() = %q, want %q", got, entities.UnknownIdentity)
	}
}
