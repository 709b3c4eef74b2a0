// Copyright (c) 2026 Kinodex. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting range metadata is delivered in the API response
// envelope. All arithmetic assumes already-coerced positive integers; wire
// coercion happens exclusively in [FromRequest].
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPerPage is the number of rows per page if not specified.
	DefaultPerPage = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and perPage from a request's query string.
type Params struct {
	Page    int
	PerPage int
}

// Offset returns the SQL OFFSET value derived from [Page] and [PerPage].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Meta is the pagination metadata included in API list responses.
//
// From and To describe the 1-based row range actually returned: From is
// offset+1 regardless of whether the page holds any rows, and To is
// offset plus the returned row count.
type Meta struct {
	Total       int `json:"total"`
	LastPage    int `json:"lastPage"`
	PerPage     int `json:"perPage"`
	CurrentPage int `json:"currentPage"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// NewMeta constructs pagination metadata for a response.
//
// LastPage is the ceiling of total/perPage and is 0 when the filtered set is
// empty. The returned argument is the number of rows the current page actually
// carries, which may be smaller than PerPage on the final page or zero when
// the offset runs past the total.
func NewMeta(params Params, total, returned int) Meta {
	lastPage := 0
	if params.PerPage > 0 {
		lastPage = (total + params.PerPage - 1) / params.PerPage
	}

	offset := params.Offset()

	return Meta{
		Total:       total,
		LastPage:    lastPage,
		PerPage:     params.PerPage,
		CurrentPage: params.Page,
		From:        offset + 1,
		To:          offset + returned,
	}
}

// FromRequest parses "page" and "perPage" query parameters from an HTTP request.
//
// # Coercion
//
// Missing, non-numeric, or non-positive values fall back to [DefaultPage] and
// [DefaultPerPage]. Downstream components never see an unvalidated value.
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	perPage := parseIntParam(r, "perPage", DefaultPerPage)

	if page < 1 {
		page = DefaultPage
	}

	if perPage < 1 {
		perPage = DefaultPerPage
	}

	return Params{Page: page, PerPage: perPage}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
