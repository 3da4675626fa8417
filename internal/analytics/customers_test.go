package analytics

import (
	"reflect"
	"testing"

	"bookstats/internal/models"
)

func TestEngine_UniqueCustomers(t *testing.T) {
	a := customer("1", "ann")
	b := customer("1", "ann")
	b.Email = "other@example.com"

	e := NewEngine(&models.Dataset{Customers: []models.Customer{a, a, b, customer("2", "bob")}})

	if got := e.UniqueCustomers(); got != 3 {
		t.Errorf("UniqueCustomers = %d, want 3", got)
	}
}

func TestEngine_TopCustomers_Ties(t *testing.T) {
	e := NewEngine(&models.Dataset{
		Customers: []models.Customer{customer("1", "ann"), customer("2", "bob"), customer("3", "cy")},
		Orders: []models.Order{
			order("1", "x", "2021-01-01", 1, "30"),
			order("2", "x", "2021-01-01", 1, "10"),
			order("2", "x", "2021-01-02", 1, "20"),
			order("3", "x", "2021-01-02", 1, "5"),
			order("9", "x", "2021-01-02", 1, "500"),
		},
	})

	top := e.TopCustomers()
	if !reflect.DeepEqual(top.IDs, []string{"1", "2"}) {
		t.Fatalf("IDs = %v, want [1 2]", top.IDs)
	}

	if !top.Total.Equal(dec("30")) {
		t.Errorf("Total = %s, want 30", top.Total)
	}

	if len(top.Records) != 2 || top.Records[0].Name != "ann" || top.Records[1].Name != "bob" {
		t.Errorf("Records = %+v", top.Records)
	}
}

func TestEngine_TopCustomers_DuplicateIDsMultiplyRows(t *testing.T) {
	dup := customer("1", "ann")
	dup.Address = "moved"

	e := NewEngine(&models.Dataset{
		Customers: []models.Customer{customer("1", "ann"), dup, customer("2", "bob")},
		Orders: []models.Order{
			order("1", "x", "2021-01-01", 1, "10"),
			order("2", "x", "2021-01-01", 1, "15"),
		},
	})

	top := e.TopCustomers()
	if !reflect.DeepEqual(top.IDs, []string{"1"}) || !top.Total.Equal(dec("20")) {
		t.Errorf("TopCustomers = %v / %s, want [1] / 20", top.IDs, top.Total)
	}

	if len(top.Records) != 2 {
		t.Errorf("expected both rows of customer 1, got %d", len(top.Records))
	}
}

func TestEngine_TopCustomers_NoMatches(t *testing.T) {
	e := NewEngine(&models.Dataset{
		Customers: []models.Customer{{ID: models.NoInfo}},
		Orders:    []models.Order{{UserID: models.NoInfo}},
	})

	if top := e.TopCustomers(); top.Found() {
		t.Errorf("expected no top customers, got %+v", top)
	}
}
