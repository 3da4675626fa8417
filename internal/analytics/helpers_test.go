package analytics

import (
	"github.com/shopspring/decimal"

	"bookstats/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func order(user, book, date string, qty int64, paid string) models.Order {
	o := models.Order{UserID: user, BookID: book, Quantity: models.Some(qty)}

	if date != "" {
		o.Timestamp.Status = models.StatusValid
		o.DateOnly = models.Some(date)
	} else {
		o.Timestamp.Status = models.StatusUnparseable
	}

	if paid != "" {
		o.UnitPrice.Status = models.StatusValid
		o.PaidPrice = models.Some(dec(paid))
	} else {
		o.UnitPrice.Status = models.StatusUnparseable
	}

	return o
}

func book(id string, authors ...string) models.Book {
	return models.Book{ID: id, AuthorSet: authors}
}

func customer(id, name string) models.Customer {
	return models.Customer{ID: id, Name: name, Address: "addr", Phone: "555-000-0000", Email: name + "@example.com"}
}
