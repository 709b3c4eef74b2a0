// Copyright (c) 2026 Kinodex. All rights reserved.

package idlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinodex/kinodex/pkg/idlist"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty_string", "", nil},
		{"single_id", "nm0000206", []string{"nm0000206"}},
		{"multiple_ids", "nm0905152,nm0905154", []string{"nm0905152", "nm0905154"}},
		{"preserves_order", "nm3,nm1,nm2", []string{"nm3", "nm1", "nm2"}},
		{"trims_whitespace", " nm0000206 , nm0000210", []string{"nm0000206", "nm0000210"}},
		{"drops_blank_entries", "nm0000206,,nm0000210,", []string{"nm0000206", "nm0000210"}},
		{"only_delimiters", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idlist.Decode(tt.raw))
		})
	}
}
