package listing

import (
	"fmt"

	"github.com/hoofledger/hoofledger/internal/adapter"
)

// LoadForm reads a listing form from a JSON file and attaches the photo at
// photoPath when one is given
func LoadForm(fs adapter.FileSystem, json adapter.JSON, path string, photoPath string) (*Form, error) {
	raw, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}

	var form Form
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, fmt.Errorf("invalid listing file %s: %w", path, err)
	}

	if photoPath != "" {
		form.Photo, err = fs.ReadFile(photoPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read photo: %w", err)
		}
	}
	return &form, nil
}
