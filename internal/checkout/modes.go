package checkout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fjod/go_marketplace/internal/domain"
)

type modesFile struct {
	Modes domain.PaymentModes `json:"modes"`
}

// LoadModes reads the payment mode set from a JSON file of the form
// {"modes": {"<key>": "<display name>"}}. Loaded once at startup.
func LoadModes(path string) (domain.PaymentModes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payment modes file: %w", err)
	}

	var file modesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse payment modes file: %w", err)
	}
	return file.Modes, nil
}
