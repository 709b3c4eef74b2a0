// Copyright (c) 2026 Kinodex. All rights reserved.

// Package idlist decodes the comma-delimited person-id lists stored in the
// crew table (e.g. "nm0905152,nm0905154").
//
// The dataset uses a delimited string column where a real relation would
// normally sit, so decoding must be total: there is no input, including the
// empty string, for which it fails.
package idlist

import "strings"

// Decode parses a comma-delimited id list into an ordered slice of ids.
//
// An empty or absent value decodes to a nil slice, never to a slice holding a
// single empty id. Blank entries between delimiters are dropped.
func Decode(raw string) []string {
	if raw == "" {
		return nil
	}

	var ids []string
	for _, part := range strings.Split(raw, ",") {
		clean := strings.TrimSpace(part)
		if clean != "" {
			ids = append(ids, clean)
		}
	}
	return ids
}
