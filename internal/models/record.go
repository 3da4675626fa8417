// Package models defines data structures for the loaders, normalizers and analytics engine.
package models

import (
	"sort"
	"strings"
)

// NoInfo is the sentinel substituted for a missing descriptive field.
const NoInfo = "No Info"

// NullToken is the literal placeholder some sources use for a missing value.
const NullToken = "NULL"

// RawRecord is a loosely-typed source row. A missing key means the value was absent;
// loaders never store empty strings or nulls.
type RawRecord map[string]string

// Get returns the value for key and whether it was present.
func (r RawRecord) Get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Key returns a canonical string for full-row equality.
func (r RawRecord) Key() string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var sb strings.Builder

	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('\x1f')
		sb.WriteString(r[k])
		sb.WriteByte('\x1e')
	}

	return sb.String()
}

// Optional holds a value together with an explicit presence flag.
type Optional[T any] struct {
	Value T    `json:"value"`
	Valid bool `json:"valid"`
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}
