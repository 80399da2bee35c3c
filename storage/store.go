// Package storage persists produced descriptor documents to disk and,
// when configured, mirrors them to S3.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"veoforge/types"
)

// DocumentStore writes descriptor documents under a root directory, one
// subdirectory per project.
type DocumentStore struct {
	root string
}

// NewDocumentStore creates a store rooted at the given directory.
func NewDocumentStore(root string) *DocumentStore {
	return &DocumentStore{root: root}
}

// SaveProject writes the master and every clip descriptor as UTF-8 JSON
// with 2-space indentation, non-ASCII characters preserved. It returns the
// written file paths: master first, then clips in order.
func (s *DocumentStore) SaveProject(projectID string, m types.MasterDescriptor, clipDocs []types.ClipDescriptor) ([]string, error) {
	dir := filepath.Join(s.root, projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create project dir: %w", err)
	}

	paths := make([]string, 0, len(clipDocs)+1)

	masterPath := filepath.Join(dir, "master.json")
	if err := writeJSON(masterPath, m); err != nil {
		return nil, err
	}
	paths = append(paths, masterPath)

	for i, clip := range clipDocs {
		clipPath := filepath.Join(dir, fmt.Sprintf("clip_%d.json", i+1))
		if err := writeJSON(clipPath, clip); err != nil {
			return nil, err
		}
		paths = append(paths, clipPath)
	}

	return paths, nil
}

// writeJSON encodes v with 2-space indentation and HTML escaping disabled
// so non-ASCII and markup characters survive verbatim.
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return nil
}
