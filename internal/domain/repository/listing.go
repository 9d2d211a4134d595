// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"fmt"
	"sort"
	"strings"
)

// Op is a filter operator. Conditions compose conjunctively.
type Op string

const (
	OpEq  Op = "eq"
	OpIn  Op = "in"
	OpGte Op = "gte"
	OpLte Op = "lte"
	OpGt  Op = "gt"
	OpLt  Op = "lt"
)

// Condition filters a listing on a single column.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Eq matches rows whose field equals value.
func Eq(field string, value any) Condition { return Condition{Field: field, Op: OpEq, Value: value} }

// In matches rows whose field is one of values.
func In(field string, values any) Condition { return Condition{Field: field, Op: OpIn, Value: values} }

// Gte matches rows whose field is >= value.
func Gte(field string, value any) Condition { return Condition{Field: field, Op: OpGte, Value: value} }

// Lte matches rows whose field is <= value.
func Lte(field string, value any) Condition { return Condition{Field: field, Op: OpLte, Value: value} }

// Gt matches rows whose field is > value.
func Gt(field string, value any) Condition { return Condition{Field: field, Op: OpGt, Value: value} }

// Lt matches rows whose field is < value.
func Lt(field string, value any) Condition { return Condition{Field: field, Op: OpLt, Value: value} }

// Sort orders a listing on a single column.
type Sort struct {
	Field string
	Desc  bool
}

// ListQuery describes a filtered, paginated read. Page is 1-based; the
// returned window is rows [(Page-1)*PerPage, Page*PerPage).
type ListQuery struct {
	Page       int
	PerPage    int
	Conditions []Condition
	Sorts      []Sort
}

// Offset is the index of the first row in the requested window.
func (q ListQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * q.Limit()
}

// Limit is the window size.
func (q ListQuery) Limit() int {
	if q.PerPage < 1 {
		return 1
	}

	return q.PerPage
}

// Fingerprint renders the conditions deterministically so identical filters
// always produce identical cache keys, regardless of construction order.
func (q ListQuery) Fingerprint() string {
	if len(q.Conditions) == 0 {
		return "all"
	}

	parts := make([]string, 0, len(q.Conditions))
	for _, cond := range q.Conditions {
		parts = append(parts, fmt.Sprintf("%s.%s.%v", cond.Field, cond.Op, cond.Value))
	}
	sort.Strings(parts)

	return strings.Join(parts, ",")
}

// PageResult holds one window of a listing together with its totals.
type PageResult[T any] struct {
	Items       []T
	TotalCount  int64
	TotalPages  int
	CurrentPage int
}

// NewPageResult assembles a PageResult, deriving total pages from the count.
func NewPageResult[T any](items []T, totalCount int64, query ListQuery) PageResult[T] {
	page := query.Page
	if page < 1 {
		page = 1
	}

	return PageResult[T]{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  TotalPages(totalCount, query.Limit()),
		CurrentPage: page,
	}
}

// TotalPages is ceil(totalCount / perPage), 0 for an empty collection.
func TotalPages(totalCount int64, perPage int) int {
	if totalCount <= 0 || perPage <= 0 {
		return 0
	}

	return int((totalCount + int64(perPage) - 1) / int64(perPage))
}

// WindowLength is the number of rows a page can return:
// min(perPage, totalCount-(page-1)*perPage) clamped to >= 0.
func WindowLength(page, perPage int, totalCount int64) int {
	if page < 1 {
		page = 1
	}
	remaining := totalCount - int64(page-1)*int64(perPage)
	if remaining <= 0 {
		return 0
	}
	if remaining < int64(perPage) {
		return int(remaining)
	}

	return perPage
}
