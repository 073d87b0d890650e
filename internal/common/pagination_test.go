package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		perPage  int
		total    int64
		wantPage int
		wantPrev bool
		wantNext bool
	}{
		{name: "empty", page: 1, perPage: 20, total: 0, wantPage: 0},
		{name: "exact fit", page: 1, perPage: 10, total: 10, wantPage: 1},
		{name: "first of three", page: 1, perPage: 10, total: 21, wantPage: 3, wantNext: true},
		{name: "middle", page: 2, perPage: 10, total: 21, wantPage: 3, wantPrev: true, wantNext: true},
		{name: "past the end", page: 5, perPage: 10, total: 21, wantPage: 3, wantPrev: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPaginationMeta(tc.page, tc.perPage, tc.total)
			assert.Equal(t, tc.wantPage, meta.TotalPages)
			assert.Equal(t, tc.wantPrev, meta.HasPrevious)
			assert.Equal(t, tc.wantNext, meta.HasNext)
			assert.Equal(t, tc.total, meta.TotalItems)
		})
	}
}
