package normalizer

import (
	"sort"
	"strconv"
	"strings"

	"bookstats/internal/models"
)

// KeyMarker is the tag character the catalog format prefixes keys with.
const KeyMarker = ":"

// Catalog column names.
const (
	BookID     = "id"
	BookTitle  = "title"
	BookAuthor = "author"
	BookYear   = "year"
)

// CatalogNormalizer flattens and cleans catalog records.
type CatalogNormalizer struct{}

// NewCatalogNormalizer creates a new catalog normalizer.
func NewCatalogNormalizer() *CatalogNormalizer {
	return &CatalogNormalizer{}
}

// Normalize strips key markers, drops exact duplicates and converts each record to a Book.
func (c *CatalogNormalizer) Normalize(records []models.RawRecord) []models.Book {
	flat := make([]models.RawRecord, 0, len(records))
	for _, r := range records {
		flat = append(flat, StripKeyMarkers(r))
	}

	flat = DeduplicateRecords(flat)
	extraCols := unionColumns(flat, BookID, BookTitle, BookAuthor, BookYear)

	books := make([]models.Book, 0, len(flat))

	for _, r := range flat {
		author := fillText(r, BookAuthor)
		year, _ := r.Get(BookYear)

		books = append(books, models.Book{
			ID:        canonicalID(r, BookID),
			Title:     fillText(r, BookTitle),
			Author:    author,
			AuthorSet: NormalizeAuthors(author),
			Year:      ParseYear(year),
			Extra:     fillExtra(r, extraCols),
		})
	}

	return books
}

// StripKeyMarkers removes leading marker characters from every key.
func StripKeyMarkers(r models.RawRecord) models.RawRecord {
	out := make(models.RawRecord, len(r))
	for k, v := range r {
		out[strings.TrimLeft(k, KeyMarker)] = v
	}

	return out
}

// ParseYear returns the year when the trimmed value is made only of digits.
// Anything else, including an empty value, is absent.
func ParseYear(raw string) models.Optional[int] {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.None[int]()
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return models.None[int]()
		}
	}

	year, err := strconv.Atoi(s)
	if err != nil {
		return models.None[int]()
	}

	return models.Some(year)
}

// NormalizeAuthors splits a comma-separated author list into a sorted, trimmed set.
func NormalizeAuthors(raw string) models.AuthorSet {
	parts := strings.Split(raw, ",")

	set := make(models.AuthorSet, 0, len(parts))
	for _, p := range parts {
		set = append(set, strings.TrimSpace(p))
	}

	sort.Strings(set)

	return set
}
