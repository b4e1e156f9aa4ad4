package search

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"ondemand-engine/internal/domain"
)

type SortKey string

const (
	SortNone     SortKey = ""
	SortRating   SortKey = "rating"
	SortPrice    SortKey = "price"
	SortDistance SortKey = "distance"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNone, SortRating, SortPrice, SortDistance:
		return k, nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q", s)
}

// MatchText reports whether q occurs, ignoring case, in the worker's name,
// category, any skill or description.
func MatchText(w domain.Worker, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(w.Name), q) ||
		strings.Contains(strings.ToLower(w.Category), q) ||
		strings.Contains(strings.ToLower(w.Description), q) {
		return true
	}
	for _, s := range w.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// Query keeps workers matching q. A blank q returns a copy of the input.
func Query(workers []domain.Worker, q string) []domain.Worker {
	out := make([]domain.Worker, 0, len(workers))
	for _, w := range workers {
		if MatchText(w, q) {
			out = append(out, w)
		}
	}
	return out
}

func Filter(workers []domain.Worker, f Filters) []domain.Worker {
	out := make([]domain.Worker, 0, len(workers))
	for _, w := range workers {
		if f.Match(w) {
			out = append(out, w)
		}
	}
	return out
}

// Sort returns a sorted copy. Equal keys fall back to ID so the order is
// total; SortNone keeps input order.
func Sort(workers []domain.Worker, key SortKey) []domain.Worker {
	out := slices.Clone(workers)
	if key == SortNone {
		return out
	}
	slices.SortStableFunc(out, func(a, b domain.Worker) int {
		var c int
		switch key {
		case SortRating:
			c = cmp.Compare(b.Rating, a.Rating)
		case SortPrice:
			c = cmp.Compare(a.HourlyRate, b.HourlyRate)
		case SortDistance:
			c = cmp.Compare(a.DistanceOrZero(), b.DistanceOrZero())
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Request bundles one results-screen query.
type Request struct {
	Query   string  `json:"query,omitempty"`
	Filters Filters `json:"filters"`
	Sort    SortKey `json:"sort,omitempty"`
}

// Apply runs text match, then filters, then sort.
func Apply(workers []domain.Worker, r Request) []domain.Worker {
	return Sort(Filter(Query(workers, r.Query), r.Filters), r.Sort)
}
