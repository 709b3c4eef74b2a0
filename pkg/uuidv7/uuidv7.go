// Copyright (c) 2026 Kinodex. All rights reserved.

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// Session and account identifiers use UUIDv7 so that primary-key inserts stay
// clustered-index friendly in PostgreSQL instead of fragmenting like random
// UUIDv4 keys do.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable, which is an
// unrecoverable system-level failure.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}
