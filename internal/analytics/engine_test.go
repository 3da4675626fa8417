package analytics

import (
	"testing"

	"bookstats/internal/models"
)

func TestEngine_Report(t *testing.T) {
	ds := &models.Dataset{
		Customers: []models.Customer{customer("1", "ann")},
		Books:     []models.Book{book("7", "Adams")},
		Orders: []models.Order{
			order("1", "7", "2021-01-01", 2, "20"),
			{UserID: "1", BookID: "7"},
		},
	}

	r := NewEngine(ds).Report(DefaultTopDays)

	if len(r.TopDays) != 1 || len(r.DailyRevenue) != 1 {
		t.Errorf("unexpected revenue series: %v / %v", r.TopDays, r.DailyRevenue)
	}

	if r.UniqueCustomers != 1 || r.UniqueAuthorSets != 1 {
		t.Errorf("unexpected counts: %d / %d", r.UniqueCustomers, r.UniqueAuthorSets)
	}

	if !r.TopCustomers.Total.Equal(dec("20")) || r.PopularAuthor.Quantity != 2 {
		t.Errorf("unexpected winners: %+v / %+v", r.TopCustomers, r.PopularAuthor)
	}

	if r.Summary.Orders != 2 || r.Summary.MissingTimestamps != 1 || r.Summary.MissingPrices != 1 || r.Summary.MissingQuantities != 1 {
		t.Errorf("unexpected summary: %+v", r.Summary)
	}
}
