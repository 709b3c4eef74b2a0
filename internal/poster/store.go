// Copyright (c) 2026 Kinodex. All rights reserved.

package poster

import (
	"context"
	"io"
)

// Repository defines the data access contract for poster rows.
type Repository interface {
	// FindByImdbID returns the poster row for a title.
	//
	// Returns [dberr.ErrNotFound] if no poster was ever uploaded.
	FindByImdbID(ctx context.Context, imdbID string) (*Poster, error)

	// Upsert creates the poster row for a title or refreshes its asset path
	// and updated timestamp when one already exists.
	Upsert(ctx context.Context, record *Poster) error
}

// FileStore defines the blob storage contract for poster images.
//
// # Implementations
//
// The canonical implementation writes to a local directory (filestore.go).
// The interface keeps the service indifferent to where bytes live, so an
// object-store implementation can drop in without touching the domain.
type FileStore interface {
	// Save streams the uploaded content into the store under the given
	// asset name, replacing any previous content. It returns the asset
	// path to persist on the poster row.
	Save(ctx context.Context, assetName string, content io.Reader) (string, error)

	// Resolve maps an asset path to an absolute filesystem path suitable
	// for serving.
	//
	// Returns [apperr.NotFound] if the blob is missing, even when a row
	// still references it.
	Resolve(assetPath string) (string, error)
}
