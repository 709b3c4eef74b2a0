// Copyright (c) 2026 Kinodex. All rights reserved.

package poster

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kinodex/kinodex/internal/platform/apperr"
)

// DiskFileStore implements [FileStore] on a local directory.
//
// Asset names are flattened to their base name before touching the
// filesystem, so a crafted imdbID cannot escape the poster directory.
type DiskFileStore struct {
	root string
}

// NewDiskFileStore creates the poster directory if needed and returns a
// store rooted at it.
func NewDiskFileStore(root string) (*DiskFileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("poster_dir_create_failed: %w", err)
	}
	return &DiskFileStore{root: root}, nil
}

// Save writes the content to <root>/<assetName>, replacing any previous file.
func (store *DiskFileStore) Save(ctx context.Context, assetName string, content io.Reader) (string, error) {
	assetName = filepath.Base(strings.TrimSpace(assetName))

	// Write to a temp file first so a failed upload never truncates the
	// poster currently being served.
	tempFile, err := os.CreateTemp(store.root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("poster_temp_create_failed: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := io.Copy(tempFile, content); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("poster_write_failed: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("poster_close_failed: %w", err)
	}

	finalPath := filepath.Join(store.root, assetName)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("poster_rename_failed: %w", err)
	}

	return assetName, nil
}

// Resolve maps an asset path to an absolute path, verifying the blob exists.
func (store *DiskFileStore) Resolve(assetPath string) (string, error) {
	fullPath := filepath.Join(store.root, filepath.Base(assetPath))

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return "", apperr.NotFound("Poster file is missing")
	}

	return fullPath, nil
}
