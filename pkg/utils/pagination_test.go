package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationBounds(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		hasPrev    bool
		hasNext    bool
	}{
		{name: "only page", page: 0, totalPages: 1, hasPrev: false, hasNext: false},
		{name: "first of many", page: 0, totalPages: 3, hasPrev: false, hasNext: true},
		{name: "middle", page: 1, totalPages: 3, hasPrev: true, hasNext: true},
		{name: "last", page: 2, totalPages: 3, hasPrev: true, hasNext: false},
		{name: "no pages at all", page: 0, totalPages: 0, hasPrev: false, hasNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hasPrev, HasPrevPage(tt.page))
			assert.Equal(t, tt.hasNext, HasNextPage(tt.page, tt.totalPages))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 0, ClampPage(-1, 5))
	assert.Equal(t, 4, ClampPage(9, 5))
	assert.Equal(t, 2, ClampPage(2, 5))
	assert.Equal(t, 0, ClampPage(3, 0))
}
