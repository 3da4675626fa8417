package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"bookstats/internal/models"
)

// TopCustomers holds every customer sharing the highest spend.
type TopCustomers struct {
	IDs     []string          `json:"ids"`
	Records []models.Customer `json:"records"`
	Total   decimal.Decimal   `json:"total"`
}

// Found reports whether any order matched a customer.
func (t TopCustomers) Found() bool {
	return len(t.IDs) > 0
}

// UniqueCustomers counts distinct (id, name, address, phone, email) tuples.
func (e *Engine) UniqueCustomers() int {
	seen := map[[5]string]struct{}{}
	for _, c := range e.ds.Customers {
		seen[c.IdentityKey()] = struct{}{}
	}

	return len(seen)
}

// TopCustomers joins orders to customers on user id, sums paid prices per user and
// keeps all users tied at the maximum. A customer id listed n times contributes each
// matching order n times.
func (e *Engine) TopCustomers() TopCustomers {
	rowsByID := map[string]int{}

	for _, c := range e.ds.Customers {
		if joinable(c.ID) {
			rowsByID[c.ID]++
		}
	}

	spend := map[string]decimal.Decimal{}

	for _, o := range e.ds.Orders {
		rows := rowsByID[o.UserID]
		if rows == 0 {
			continue
		}

		sum := spend[o.UserID]
		if o.PaidPrice.Valid {
			sum = sum.Add(o.PaidPrice.Value.Mul(decimal.NewFromInt(int64(rows))))
		}

		spend[o.UserID] = sum
	}

	if len(spend) == 0 {
		return TopCustomers{}
	}

	var best decimal.Decimal

	first := true
	for _, total := range spend {
		if first || total.GreaterThan(best) {
			best = total
			first = false
		}
	}

	var ids []string

	for id, total := range spend {
		if total.Equal(best) {
			ids = append(ids, id)
		}
	}

	sort.Strings(ids)

	winners := make(map[string]bool, len(ids))
	for _, id := range ids {
		winners[id] = true
	}

	var records []models.Customer

	for _, c := range e.ds.Customers {
		if winners[c.ID] {
			records = append(records, c)
		}
	}

	return TopCustomers{IDs: ids, Records: records, Total: best}
}
