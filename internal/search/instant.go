package search

import (
	"strings"

	"ondemand-engine/internal/domain"
)

// InstantFind is the quick picker: one optional category chip plus a text box.
type InstantFind struct {
	Category string `json:"category,omitempty"`
	Query    string `json:"query,omitempty"`
}

// Toggle selects id, or clears the selection when id is already selected.
func (f *InstantFind) Toggle(id string) {
	if strings.EqualFold(f.Category, id) {
		f.Category = ""
		return
	}
	f.Category = id
}

// Results prefers the category chip over the text box. With neither set,
// every worker is returned.
func (f InstantFind) Results(workers []domain.Worker) []domain.Worker {
	if f.Category == "" {
		return Query(workers, f.Query)
	}
	out := make([]domain.Worker, 0, len(workers))
	for _, w := range workers {
		if strings.EqualFold(w.Category, f.Category) {
			out = append(out, w)
		}
	}
	return out
}
