// Copyright (c) 2026 Kinodex. All rights reserved.

// Package schema holds table and column name references for the catalog
// database. Repositories build their SQL from these definitions so a rename
// is a one-file change instead of a grep across every query string.
package schema
