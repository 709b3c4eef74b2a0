// Copyright (c) 2026 Kinodex. All rights reserved.

// Package poster implements storage and delivery of movie poster assets.
//
// # Architecture
//
// A poster is a mutable side entity of a catalog title: at most one row per
// imdbID, pointing at a blob held by a [FileStore]. The database row is the
// source of truth for existence; the blob store only holds bytes.
package poster

import (
	"time"
)

// Poster represents the stored asset record for one title.
type Poster struct {
	ImdbID    string    `json:"imdbID"`
	AssetPath string    `json:"asset_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	// FormField is the multipart form field carrying the uploaded image.
	FormField = "poster"

	// MaxUploadBytes bounds a poster upload. Posters are small images;
	// anything bigger is either corrupt or abuse.
	MaxUploadBytes = 10 << 20 // 10 MiB
)
