// Package listfilter narrows and orders fully-fetched in-memory collections.
// The console never asks the core API to filter or paginate; every page pulls
// the whole list and shapes it locally, so the same engine serves bookings,
// events, services and feed posts.
package listfilter

import (
	"sort"
	"strings"
	"time"
)

// Sort directions. Empty string means "leave order alone".
const (
	PriceHigh = "high"
	PriceLow  = "low"
	DateNew   = "newest"
	DateOld   = "oldest"
)

// Options selects and orders items. A nil Statuses slice passes every item;
// an empty non-nil slice passes none. Search is a case-insensitive substring
// match over the item's text fields.
type Options struct {
	Statuses  []string
	Search    string
	PriceSort string
	DateSort  string
}

// Fields is the view of one item the engine filters and sorts on.
type Fields struct {
	Status string
	Text   []string
	Price  float64
	Date   time.Time
}

// Apply filters then sorts. Price order is applied first and date order
// second with a stable sort, so when both are requested the date dominates
// and price breaks ties among equal dates. Items that match no sort keep
// their original relative order. The input slice is never mutated.
func Apply[T any](items []T, opts Options, fields func(T) Fields) []T {
	needle := strings.ToLower(strings.TrimSpace(opts.Search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		f := fields(item)
		if !statusAllowed(f.Status, opts.Statuses) {
			continue
		}
		if needle != "" && !textMatches(f.Text, needle) {
			continue
		}
		out = append(out, item)
	}

	switch opts.PriceSort {
	case PriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return fields(out[i]).Price > fields(out[j]).Price })
	case PriceLow:
		sort.SliceStable(out, func(i, j int) bool { return fields(out[i]).Price < fields(out[j]).Price })
	}

	switch opts.DateSort {
	case DateNew:
		sort.SliceStable(out, func(i, j int) bool { return fields(out[i]).Date.After(fields(out[j]).Date) })
	case DateOld:
		sort.SliceStable(out, func(i, j int) bool { return fields(out[i]).Date.Before(fields(out[j]).Date) })
	}

	return out
}

func statusAllowed(status string, allowed []string) bool {
	if allowed == nil {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(status, a) {
			return true
		}
	}
	return false
}

func textMatches(texts []string, needle string) bool {
	for _, t := range texts {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
