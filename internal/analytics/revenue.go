package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DayTotal is the revenue of one calendar day.
type DayTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// DailyRevenue sums paid prices per calendar date, ascending by date.
// Orders without a parsed timestamp are skipped; absent paid prices add nothing.
func (e *Engine) DailyRevenue() []DayTotal {
	totals := map[string]decimal.Decimal{}

	for _, o := range e.ds.Orders {
		if !o.DateOnly.Valid {
			continue
		}

		sum := totals[o.DateOnly.Value]
		if o.PaidPrice.Valid {
			sum = sum.Add(o.PaidPrice.Value)
		}

		totals[o.DateOnly.Value] = sum
	}

	series := make([]DayTotal, 0, len(totals))
	for date, total := range totals {
		series = append(series, DayTotal{Date: date, Total: total})
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	return series
}

// TopDays picks the n days with the highest totals, earlier entries winning ties,
// and returns them ordered by date.
func TopDays(series []DayTotal, n int) []DayTotal {
	if n <= 0 {
		return []DayTotal{}
	}

	ranked := append([]DayTotal(nil), series...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Date < ranked[j].Date })

	return ranked
}
