package models

import "strings"

// AuthorSet is the sorted, trimmed list of authors of a book.
type AuthorSet []string

// Key returns a comparable representation of the set.
func (a AuthorSet) Key() string {
	return strings.Join(a, "\x1f")
}

// First returns the representative author (the first in sorted order).
func (a AuthorSet) First() string {
	if len(a) == 0 {
		return ""
	}

	return a[0]
}

// Book is a normalized catalog row.
type Book struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Author    string            `json:"author"`
	AuthorSet AuthorSet         `json:"authorSet"`
	Year      Optional[int]     `json:"year"`
	Extra     map[string]string `json:"extra,omitempty"`
}
