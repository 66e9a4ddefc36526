package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the conventional manifest filename inside a package directory.
const FileName = "agentfiles.json"

var (
	// ErrNotFound reports a missing manifest or source file.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports a manifest that fails schema validation.
	ErrValidation = errors.New("manifest validation failed")
)

// Load reads and validates a manifest. path may be the manifest document
// itself or a directory containing agentfiles.json. The returned manifest
// records the directory it was loaded from in Dir.
func Load(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("manifest %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	if info.IsDir() {
		path = filepath.Join(path, FileName)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("manifest %s: %w", path, ErrNotFound)
			}
			return nil, fmt.Errorf("reading manifest %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("manifest %s: %s: %w", path, result.Summary(), ErrValidation)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	m.Dir = filepath.Dir(path)

	return &m, nil
}

// Save writes the manifest as pretty-printed JSON into dir and returns the
// path written. dir must be a directory, not a file.
func Save(m *Manifest, dir string) (string, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return "", fmt.Errorf("cannot save manifest into %s: not a directory", dir)
	}

	if m.Files == nil {
		m.Files = []FileMapping{}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling manifest: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing manifest %s: %w", path, err)
	}

	return path, nil
}
