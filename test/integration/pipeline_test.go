package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookstats/internal/config"
	"bookstats/internal/logger"
	"bookstats/internal/models"
	"bookstats/internal/pipeline"
	"bookstats/pkg/metadata"
)

func loadFixtureConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.LoadConfig(filepath.Join("..", "fixtures", "config.yaml"))
	if err != nil {
		t.Fatalf("Failed to load fixture config: %v", err)
	}

	cfg.Output.Dir = t.TempDir()

	return cfg
}

func TestPipeline_Fixtures(t *testing.T) {
	cfg := loadFixtureConfig(t)

	result, err := pipeline.New(cfg, logger.Discard()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	r := result.Report

	// 1. Revenue
	wantTop := []struct {
		date  string
		total string
	}{
		{"2021-03-01", "1234.56"},
		{"2021-03-02", "2469.00"},
		{"2021-03-04", "1481.47"},
		{"2021-03-05", "30.00"},
		{"2021-03-13", "30.00"},
	}

	if len(r.TopDays) != len(wantTop) {
		t.Fatalf("Expected %d top days, got %+v", len(wantTop), r.TopDays)
	}

	for i, want := range wantTop {
		got := r.TopDays[i]
		if got.Date != want.date || got.Total.StringFixed(2) != want.total {
			t.Errorf("Top day %d: expected %s %s, got %s %s",
				i, want.date, want.total, got.Date, got.Total.StringFixed(2))
		}
	}

	// Days with only unpriced orders still appear in the daily series.
	if len(r.DailyRevenue) != 7 {
		t.Errorf("Expected 7 revenue days, got %d", len(r.DailyRevenue))
	}

	// 2. Users
	if r.UniqueCustomers != 3 {
		t.Errorf("Expected 3 unique customers, got %d", r.UniqueCustomers)
	}

	if ids := r.TopCustomers.IDs; len(ids) != 1 || ids[0] != "2" {
		t.Fatalf("Expected top customer [2], got %v", ids)
	}

	if r.TopCustomers.Total.StringFixed(2) != "3950.47" {
		t.Errorf("Expected top total 3950.47, got %s", r.TopCustomers.Total)
	}

	if len(r.TopCustomers.Records) != 1 || r.TopCustomers.Records[0].Address != models.NoInfo {
		t.Errorf("Unexpected top customer records: %+v", r.TopCustomers.Records)
	}

	// 3. Authors
	if r.UniqueAuthorSets != 3 {
		t.Errorf("Expected 3 unique author sets, got %d", r.UniqueAuthorSets)
	}

	if r.PopularAuthor.Author != "Gaiman" || r.PopularAuthor.Quantity != 5 {
		t.Errorf("Expected Gaiman with 5 copies, got %+v", r.PopularAuthor)
	}

	// 4. Data quality
	s := r.Summary
	if s.Orders != 9 || s.Books != 3 || s.Customers != 3 {
		t.Errorf("Unexpected row counts: %+v", s)
	}

	if s.MissingTimestamps != 1 || s.UnparseableTimestamps != 1 {
		t.Errorf("Unexpected timestamp tallies: %+v", s)
	}

	if s.MissingPrices != 1 || s.UnparseablePrices != 1 || s.MissingQuantities != 1 {
		t.Errorf("Unexpected price tallies: %+v", s)
	}

	if s.BooksWithoutYear != 1 {
		t.Errorf("Expected 1 book without year, got %d", s.BooksWithoutYear)
	}
}

func TestPipeline_NormalizedFields(t *testing.T) {
	cfg := loadFixtureConfig(t)

	ds, err := pipeline.New(cfg, nil).Normalize(context.Background())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	phones := map[string]string{}
	for _, c := range ds.Customers {
		phones[c.ID] = c.Phone
	}

	wantPhones := map[string]string{
		"1": "555-123-4567",
		"2": "555-987-6500",
		"3": "155-522-2333",
	}

	for id, want := range wantPhones {
		if phones[id] != want {
			t.Errorf("Customer %s phone: expected %s, got %s", id, want, phones[id])
		}
	}

	book := ds.Books[0]
	if strings.Join(book.AuthorSet, "|") != "Donovan|Kernighan" {
		t.Errorf("Expected sorted author set, got %v", book.AuthorSet)
	}

	if book.Extra["publisher"] != "Addison-Wesley" {
		t.Errorf("Expected key markers stripped from extra columns, got %v", book.Extra)
	}

	if ds.Books[1].Title != models.NoInfo {
		t.Errorf("Expected NULL title to become %q, got %q", models.NoInfo, ds.Books[1].Title)
	}

	order := ds.Orders[1]
	if order.Timestamp.Time.Format("2006-01-02 15:04") != "2021-03-04 14:30" {
		t.Errorf("Expected time-first timestamp reordered, got %v", order.Timestamp.Time)
	}

	if order.UnitPrice.Currency != "EUR" || order.UnitPrice.Amount.StringFixed(2) != "1481.47" {
		t.Errorf("Expected EUR 1481.47, got %s %s", order.UnitPrice.Currency, order.UnitPrice.Amount)
	}

	if ds.Orders[8].Timestamp.Time.Format("2006-01-02 15:04") != "2021-03-07 06:00" {
		t.Errorf("Expected offset converted to UTC, got %v", ds.Orders[8].Timestamp.Time)
	}
}

func TestPipeline_Artifacts(t *testing.T) {
	cfg := loadFixtureConfig(t)

	result, err := pipeline.New(cfg, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{"dashboard.md", "top_days.svg", "daily_revenue.svg", "report.json"} {
		if _, err := os.Stat(filepath.Join(cfg.Output.Dir, name)); err != nil {
			t.Errorf("Expected artifact %s: %v", name, err)
		}
	}

	if len(result.Artifacts) != 4 {
		t.Errorf("Expected 4 artifacts, got %v", result.Artifacts)
	}

	content, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "dashboard.md"))
	if err != nil {
		t.Fatalf("Failed to read dashboard: %v", err)
	}

	dashboard := string(content)

	for _, want := range []string{"Fixture Dashboard", "Revenue", "Users", "Authors", "Gaiman", "3950.47"} {
		if !strings.Contains(dashboard, want) {
			t.Errorf("Dashboard missing %q", want)
		}
	}

	if ok, err := metadata.Verify(dashboard); !ok {
		t.Errorf("Dashboard signature invalid: %v", err)
	}
}
