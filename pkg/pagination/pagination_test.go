// Copyright (c) 2026 Kinodex. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinodex/kinodex/pkg/pagination"
)

func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    int
	}{
		{"first_page", 1, 100, 0},
		{"second_page", 2, 100, 100},
		{"small_per_page", 5, 10, 40},
		{"page_below_one_clamps_to_zero", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Params{Page: tt.page, PerPage: tt.perPage}
			assert.Equal(t, tt.want, p.Offset())
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		perPage  int
		total    int
		returned int
		want     pagination.Meta
	}{
		{
			name: "single_full_page", page: 1, perPage: 10, total: 3, returned: 3,
			want: pagination.Meta{Total: 3, LastPage: 1, PerPage: 10, CurrentPage: 1, From: 1, To: 3},
		},
		{
			name: "middle_page", page: 2, perPage: 100, total: 250, returned: 100,
			want: pagination.Meta{Total: 250, LastPage: 3, PerPage: 100, CurrentPage: 2, From: 101, To: 200},
		},
		{
			name: "short_last_page", page: 3, perPage: 100, total: 250, returned: 50,
			want: pagination.Meta{Total: 250, LastPage: 3, PerPage: 100, CurrentPage: 3, From: 201, To: 250},
		},
		{
			name: "empty_result_set", page: 1, perPage: 100, total: 0, returned: 0,
			want: pagination.Meta{Total: 0, LastPage: 0, PerPage: 100, CurrentPage: 1, From: 1, To: 0},
		},
		{
			name: "offset_past_total", page: 5, perPage: 100, total: 120, returned: 0,
			want: pagination.Meta{Total: 120, LastPage: 2, PerPage: 100, CurrentPage: 5, From: 401, To: 400},
		},
		{
			name: "exact_boundary", page: 2, perPage: 50, total: 100, returned: 50,
			want: pagination.Meta{Total: 100, LastPage: 2, PerPage: 50, CurrentPage: 2, From: 51, To: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.Params{Page: tt.page, PerPage: tt.perPage}
			got := pagination.NewMeta(params, tt.total, tt.returned)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"defaults_when_absent", "", 1, 100},
		{"explicit_values", "page=3&perPage=25", 3, 25},
		{"non_numeric_page", "page=abc&perPage=10", 1, 10},
		{"non_numeric_per_page", "page=2&perPage=xyz", 2, 100},
		{"zero_values_fall_back", "page=0&perPage=0", 1, 100},
		{"negative_values_fall_back", "page=-4&perPage=-1", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/catalog/search?"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantPerPage, params.PerPage)
		})
	}
}
