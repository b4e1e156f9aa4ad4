package httpapi

import (
	"net/http"

	"ondemand-engine/internal/domain"
	"ondemand-engine/internal/events"
	"ondemand-engine/internal/search"
	"ondemand-engine/internal/store"
)

type DirectoryHandler struct {
	Dir Directory
	Hub *events.Hub
}

func (h DirectoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Dir.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, cats)
}

func (h DirectoryHandler) SubCategories(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Dir.ListSubCategories(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, subs)
}

// searchRequestFrom reads q, province, district, city, category, minRating,
// price, available, verified and sort.
func searchRequestFrom(r *http.Request) (search.Request, error) {
	v := r.URL.Query()
	req := search.Request{
		Query: v.Get("q"),
		Filters: search.Filters{
			Province:      v.Get("province"),
			District:      v.Get("district"),
			City:          v.Get("city"),
			Category:      v.Get("category"),
			AvailableOnly: queryBool(r, "available"),
			VerifiedOnly:  queryBool(r, "verified"),
		},
	}
	var err error
	if req.Filters.MinRating, err = queryFloat(r, "minRating"); err != nil {
		return req, err
	}
	if req.Filters.Price, err = search.ParsePriceBand(v.Get("price")); err != nil {
		return req, err
	}
	if req.Sort, err = search.ParseSortKey(v.Get("sort")); err != nil {
		return req, err
	}
	return req, nil
}

type workersResp struct {
	Workers           []domain.Worker `json:"workers"`
	Total             int             `json:"total"`
	ActiveFilterCount int             `json:"activeFilterCount"`
}

func (h DirectoryHandler) Workers(w http.ResponseWriter, r *http.Request) {
	req, err := searchRequestFrom(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}
	all, err := h.Dir.ListWorkers(r.Context(), "")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	res := search.Apply(all, req)
	writeJSON(w, workersResp{Workers: res, Total: len(res), ActiveFilterCount: req.Filters.ActiveCount()})
}

// InstantFind serves the quick picker: ?category= wins over ?q=.
func (h DirectoryHandler) InstantFind(w http.ResponseWriter, r *http.Request) {
	all, err := h.Dir.ListWorkers(r.Context(), "")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	f := search.InstantFind{Category: r.URL.Query().Get("category"), Query: r.URL.Query().Get("q")}
	res := f.Results(all)

	out := map[string]any{"workers": res, "total": len(res)}
	if f.Category != "" {
		out["categoryName"] = h.Dir.CategoryName(r.Context(), f.Category)
	}
	writeJSON(w, out)
}

func (h DirectoryHandler) Worker(w http.ResponseWriter, r *http.Request) {
	wk, err := h.Dir.GetWorker(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, wk)
}

type priceBandOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (h DirectoryHandler) SearchOptions(w http.ResponseWriter, r *http.Request) {
	bands := []priceBandOption{}
	for _, b := range search.PriceBands() {
		bands = append(bands, priceBandOption{Key: b.String(), Label: b.Label()})
	}
	writeJSON(w, map[string]any{
		"ratings":    search.RatingOptions(),
		"priceBands": bands,
		"sortKeys":   []search.SortKey{search.SortRating, search.SortPrice, search.SortDistance},
	})
}

type jobView struct {
	domain.Job
	StatusLabel string `json:"statusLabel"`
}

func (h DirectoryHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	tab, err := store.ParseJobTab(r.URL.Query().Get("tab"))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}
	jobs, err := h.Dir.ListJobs(r.Context(), tab)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobView{Job: j, StatusLabel: j.Status.Label()})
	}
	writeJSON(w, out)
}

func (h DirectoryHandler) Seed(w http.ResponseWriter, r *http.Request) {
	res, err := h.Dir.Seed(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeDirectorySeeded, res))
	}
	writeJSON(w, res)
}
