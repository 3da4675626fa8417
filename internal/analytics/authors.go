package analytics

import "sort"

// AuthorSales is the winning author and the number of copies credited to them.
type AuthorSales struct {
	Author   string `json:"author"`
	Quantity int64  `json:"quantity"`
	Found    bool   `json:"found"`
}

// UniqueAuthorSets counts distinct author sets across the catalog.
func (e *Engine) UniqueAuthorSets() int {
	seen := map[string]struct{}{}
	for _, b := range e.ds.Books {
		seen[b.AuthorSet.Key()] = struct{}{}
	}

	return len(seen)
}

// MostPopularAuthor joins orders to books on book id and credits each sale in full to
// the first author of the book's sorted author set. The single highest total wins;
// ties go to the alphabetically first author.
func (e *Engine) MostPopularAuthor() AuthorSales {
	authorsByBook := map[string][]string{}

	for _, b := range e.ds.Books {
		if joinable(b.ID) {
			authorsByBook[b.ID] = append(authorsByBook[b.ID], b.AuthorSet.First())
		}
	}

	sales := map[string]int64{}

	for _, o := range e.ds.Orders {
		for _, author := range authorsByBook[o.BookID] {
			qty := sales[author]
			if o.Quantity.Valid {
				qty += o.Quantity.Value
			}

			sales[author] = qty
		}
	}

	if len(sales) == 0 {
		return AuthorSales{}
	}

	authors := make([]string, 0, len(sales))
	for a := range sales {
		authors = append(authors, a)
	}

	sort.Strings(authors)

	best := AuthorSales{Author: authors[0], Quantity: sales[authors[0]], Found: true}

	for _, a := range authors[1:] {
		if sales[a] > best.Quantity {
			best.Author = a
			best.Quantity = sales[a]
		}
	}

	return best
}
