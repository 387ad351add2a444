package listfilter

import (
	"reflect"
	"testing"
	"time"
)

type item struct {
	ID     string
	Status string
	Title  string
	Price  float64
	Date   time.Time
}

func fields(it item) Fields {
	return Fields{
		Status: it.Status,
		Text:   []string{it.Title},
		Price:  it.Price,
		Date:   it.Date,
	}
}

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func day(n int) time.Time {
	return time.Date(2026, 8, n, 0, 0, 0, 0, time.UTC)
}

func TestApplyStatusFilterPreservesOrder(t *testing.T) {
	items := []item{
		{ID: "a", Status: "completed"},
		{ID: "b", Status: "pending"},
		{ID: "c", Status: "active"},
		{ID: "d", Status: "completed"},
		{ID: "e", Status: "cancelled"},
	}

	got := Apply(items, Options{Statuses: []string{"completed", "active"}}, fields)
	want := []string{"a", "c", "d"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("filtered ids = %v, want %v", ids(got), want)
	}
}

func TestApplyNilStatusesPassesEverything(t *testing.T) {
	items := []item{{ID: "a", Status: "x"}, {ID: "b", Status: "y"}}
	got := Apply(items, Options{}, fields)
	if len(got) != 2 {
		t.Errorf("got %d items, want 2", len(got))
	}
}

func TestApplyEmptyStatusesPassesNothing(t *testing.T) {
	items := []item{{ID: "a", Status: "x"}}
	got := Apply(items, Options{Statuses: []string{}}, fields)
	if len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
}

func TestApplySearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := []item{
		{ID: "a", Title: "Deep Cleaning"},
		{ID: "b", Title: "Garden Work"},
		{ID: "c", Title: "Window cleaning"},
	}

	got := Apply(items, Options{Search: "CLEAN"}, fields)
	want := []string{"a", "c"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("search ids = %v, want %v", ids(got), want)
	}
}

func TestApplyCombinedSortDateDominates(t *testing.T) {
	items := []item{
		{ID: "a", Price: 10, Date: day(1)},
		{ID: "b", Price: 30, Date: day(2)},
		{ID: "c", Price: 20, Date: day(2)},
		{ID: "d", Price: 40, Date: day(1)},
	}

	got := Apply(items, Options{PriceSort: PriceHigh, DateSort: DateNew}, fields)
	// Date descending first; among equal dates, price descending survives
	// from the earlier stable price pass.
	want := []string{"b", "c", "d", "a"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("sorted ids = %v, want %v", ids(got), want)
	}
}

func TestApplyPriceSortAlone(t *testing.T) {
	items := []item{
		{ID: "a", Price: 20},
		{ID: "b", Price: 10},
		{ID: "c", Price: 30},
	}

	got := Apply(items, Options{PriceSort: PriceLow}, fields)
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("price-sorted ids = %v, want %v", ids(got), want)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := []item{
		{ID: "a", Price: 10},
		{ID: "b", Price: 20},
	}

	Apply(items, Options{PriceSort: PriceHigh}, fields)
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Error("input slice was reordered")
	}
}
