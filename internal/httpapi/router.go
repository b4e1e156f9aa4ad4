package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	hh := HealthHandler{Dir: d.Dir, State: d.State, Hub: d.Hub, Sync: d.SyncStatus}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		OnSaved:     d.OnConfigSaved,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// State, auth and profile
	sh := StateHandler{State: d.State}
	mux.HandleFunc("/state", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Snapshot,
	}))
	mux.HandleFunc("/state/dispatch", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Dispatch,
	}))
	mux.HandleFunc("/auth/login", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Login,
	}))
	mux.HandleFunc("/auth/logout", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Logout,
	}))
	mux.HandleFunc("/auth/check", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Check,
	}))
	mux.HandleFunc("/auth/clear-error", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.ClearError,
	}))
	mux.HandleFunc("/profile", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.GetProfile,
		http.MethodPut: sh.UpdateProfile,
	}))

	// Posts
	ph := PostsHandler{State: d.State, Uploader: d.Uploader}
	mux.HandleFunc("/posts", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  ph.List,
		http.MethodPost: ph.Create,
	}))
	mux.HandleFunc("/posts/image", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ph.UploadImage,
	}))
	mux.HandleFunc("/posts/{id}", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    ph.Get,
		http.MethodPut:    ph.Update,
		http.MethodDelete: ph.Delete,
	}))

	// Directory
	dh := DirectoryHandler{Dir: d.Dir, Hub: d.Hub}
	mux.HandleFunc("/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Categories,
	}))
	mux.HandleFunc("/categories/{id}/subcategories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.SubCategories,
	}))
	mux.HandleFunc("/workers", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Workers,
	}))
	mux.HandleFunc("/workers/instant", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.InstantFind,
	}))
	mux.HandleFunc("/workers/{id}", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Worker,
	}))
	mux.HandleFunc("/search/options", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.SearchOptions,
	}))
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Jobs,
	}))
	mux.HandleFunc("/seed", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dh.Seed,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
