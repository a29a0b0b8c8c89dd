package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrSnapshotNotFound = errors.New("snapshot file does not exist")

// ParseSnapshot decodes a WrappedData document.
func ParseSnapshot(data []byte) (*WrappedData, error) {
	var snapshot WrappedData
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

// LoadSnapshot reads a WrappedData document from disk.
func LoadSnapshot(path string) (*WrappedData, error) {
	// check if snapshot file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return ParseSnapshot(data)
}

// SaveSnapshot writes a WrappedData document, creating the parent directory
// when needed.
func SaveSnapshot(path string, snapshot *WrappedData) error {
	// Marshal the data with indentation for readability
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}
