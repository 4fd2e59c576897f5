package checkout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_marketplace/internal/domain"
)

func TestLoadModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modes.json")
	payload := `{"modes": {"upi": "UPI", "card": "Credit Card"}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	modes, err := LoadModes(path)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentModes{"upi": "UPI", "card": "Credit Card"}, modes)
}

func TestLoadModes_MissingFile(t *testing.T) {
	_, err := LoadModes(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadModes_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"modes":`), 0o600))

	_, err := LoadModes(path)
	assert.Error(t, err)
}
