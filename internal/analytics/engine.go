// Package analytics derives the business aggregates shown on the dashboard from a
// normalized dataset. Every function is read-only over its input.
package analytics

import (
	"bookstats/internal/models"
)

// DefaultTopDays is how many best revenue days the report keeps.
const DefaultTopDays = 5

// Report is everything the presentation layer consumes.
type Report struct {
	TopDays          []DayTotal   `json:"topDays"`
	DailyRevenue     []DayTotal   `json:"dailyRevenue"`
	UniqueCustomers  int          `json:"uniqueCustomers"`
	TopCustomers     TopCustomers `json:"topCustomers"`
	UniqueAuthorSets int          `json:"uniqueAuthorSets"`
	PopularAuthor    AuthorSales  `json:"popularAuthor"`
	Summary          Summary      `json:"summary"`
}

// Engine computes aggregates over a normalized dataset.
type Engine struct {
	ds *models.Dataset
}

// NewEngine creates an engine over ds. A nil dataset behaves as an empty one.
func NewEngine(ds *models.Dataset) *Engine {
	if ds == nil {
		ds = &models.Dataset{}
	}

	return &Engine{ds: ds}
}

// Report computes every aggregate, keeping topDays best revenue days.
func (e *Engine) Report(topDays int) Report {
	daily := e.DailyRevenue()

	return Report{
		TopDays:          TopDays(daily, topDays),
		DailyRevenue:     daily,
		UniqueCustomers:  e.UniqueCustomers(),
		TopCustomers:     e.TopCustomers(),
		UniqueAuthorSets: e.UniqueAuthorSets(),
		PopularAuthor:    e.MostPopularAuthor(),
		Summary:          Summarize(e.ds),
	}
}

// joinable reports whether an identifier may take part in a join. Missing ids never match.
func joinable(id string) bool {
	return id != "" && id != models.NoInfo
}
