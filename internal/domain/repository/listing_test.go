package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int64
		perPage    int
		want       int
	}{
		{name: "exact multiple", totalCount: 100, perPage: 10, want: 10},
		{name: "partial last page", totalCount: 101, perPage: 10, want: 11},
		{name: "single short page", totalCount: 3, perPage: 10, want: 1},
		{name: "empty collection", totalCount: 0, perPage: 10, want: 0},
		{name: "per page one", totalCount: 7, perPage: 1, want: 7},
		{name: "invalid per page", totalCount: 7, perPage: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.totalCount, tt.perPage))
		})
	}
}

func TestWindowLength(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		totalCount int64
		want       int
	}{
		{name: "full middle page", page: 2, perPage: 10, totalCount: 35, want: 10},
		{name: "partial last page", page: 4, perPage: 10, totalCount: 35, want: 5},
		{name: "page past the end", page: 5, perPage: 10, totalCount: 35, want: 0},
		{name: "empty collection", page: 1, perPage: 10, totalCount: 0, want: 0},
		{name: "zero page treated as first", page: 0, perPage: 10, totalCount: 4, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowLength(tt.page, tt.perPage, tt.totalCount))
		})
	}
}

func TestListQuery_OffsetAndLimit(t *testing.T) {
	q := ListQuery{Page: 3, PerPage: 12}
	assert.Equal(t, 24, q.Offset())
	assert.Equal(t, 12, q.Limit())

	// Degenerate values are clamped rather than producing negative windows.
	q = ListQuery{Page: 0, PerPage: 0}
	assert.Equal(t, 0, q.Offset())
	assert.Equal(t, 1, q.Limit())
}

func TestListQuery_Fingerprint_Deterministic(t *testing.T) {
	a := ListQuery{Conditions: []Condition{
		Eq("is_published", true),
		Eq("category_id", "c1"),
	}}
	b := ListQuery{Conditions: []Condition{
		Eq("category_id", "c1"),
		Eq("is_published", true),
	}}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), ListQuery{}.Fingerprint())
	assert.Equal(t, "all", ListQuery{}.Fingerprint())
}

func TestNewPageResult(t *testing.T) {
	items := []string{"a", "b", "c"}
	page := NewPageResult(items, 23, ListQuery{Page: 1, PerPage: 10})

	assert.Equal(t, items, page.Items)
	assert.Equal(t, int64(23), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}
