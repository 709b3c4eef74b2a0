// Copyright (c) 2026 Kinodex. All rights reserved.

package poster

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kinodex/kinodex/internal/platform/apperr"
	"github.com/kinodex/kinodex/internal/platform/dberr"
)

// Service implements the poster asset use cases.
type Service struct {
	repository Repository
	files      FileStore
}

// NewService constructs a poster [Service].
func NewService(repository Repository, files FileStore) *Service {
	return &Service{
		repository: repository,
		files:      files,
	}
}

// Resolve returns the servable filesystem path of a title's poster.
//
// Both the database row and the blob must exist; a dangling row whose file
// was lost is reported the same way as a never-uploaded poster.
func (service *Service) Resolve(ctx context.Context, imdbID string) (string, error) {
	record, err := service.repository.FindByImdbID(ctx, imdbID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return "", apperr.NotFound(fmt.Sprintf("Poster not found: %s.", imdbID))
		}
		return "", err
	}

	path, err := service.files.Resolve(record.AssetPath)
	if err != nil {
		return "", apperr.NotFound(fmt.Sprintf("Poster not found: %s.", imdbID))
	}

	return path, nil
}

// Upload stores a poster image for a title and upserts its row.
//
// The asset is always named <imdbID>.png, so re-uploading replaces the
// previous poster in place.
func (service *Service) Upload(ctx context.Context, imdbID string, content io.Reader) (*Poster, error) {
	assetPath, err := service.files.Save(ctx, imdbID+".png", content)
	if err != nil {
		return nil, fmt.Errorf("poster_service_save_failed: %w", err)
	}

	record := &Poster{
		ImdbID:    imdbID,
		AssetPath: assetPath,
	}

	if err := service.repository.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("poster_service_upsert_failed: %w", err)
	}

	return record, nil
}
