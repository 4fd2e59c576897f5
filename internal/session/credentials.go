package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fjod/go_marketplace/internal/domain"
)

type credentialsFile struct {
	Credentials []domain.Credential `json:"credentials"`
}

// LoadCredentials reads the validation database from a JSON file of the form
// {"credentials": [{"email": ..., "password": ..., "isAdmin": ...}, ...]}.
// It is read once at startup and never written back.
func LoadCredentials(path string) ([]domain.Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var file credentialsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return file.Credentials, nil
}
