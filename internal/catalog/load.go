package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fjod/go_marketplace/internal/domain"
)

type productsFile struct {
	Data map[int]domain.Product `json:"data"`
}

type categoriesFile struct {
	Data map[int]domain.Category `json:"data"`
}

// Load reads the catalogue from the two JSON data files, each of the form
// {"data": {"<id>": {...}}}. Both files are read once; the store never
// touches them again.
func Load(productsPath, categoriesPath string) (*Store, error) {
	var products productsFile
	if err := readJSON(productsPath, &products); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var categories categoriesFile
	if err := readJSON(categoriesPath, &categories); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return NewStore(products.Data, categories.Data), nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
